// Package hexlit renders bytes as comma terminated hex literals, ready to paste into a C or Go array.
package hexlit

import (
	"io"
	"strings"
)

// DefaultPerLine is the number of literals written before a line break.
const DefaultPerLine = 16

const hexDigits = "0123456789abcdef"

// Writer emits each byte written to it as "0x<hh>," to the underlying io.Writer.
// A line break follows every PerLine-th literal, counted across calls to Write.
type Writer struct {
	target  io.Writer
	perLine int
	count   int
	buf     []byte
}

// NewWriter creates a Writer that breaks lines after perLine literals.
// A perLine less than 1 uses DefaultPerLine.
func NewWriter(target io.Writer, perLine int) *Writer {
	if perLine < 1 {
		perLine = DefaultPerLine
	}
	return &Writer{
		target:  target,
		perLine: perLine,
	}
}

// Write reports len(p) on success, not the number of formatted bytes produced.
func (w *Writer) Write(p []byte) (int, error) {
	w.buf = w.buf[:0]
	for _, b := range p {
		w.buf = append(w.buf, '0', 'x', hexDigits[b>>4], hexDigits[b&0x0f], ',')
		w.count++
		if w.count%w.perLine == 0 {
			w.buf = append(w.buf, '\n')
		}
	}
	if _, err := w.target.Write(w.buf); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Count returns the number of literals written so far.
func (w *Writer) Count() int {
	return w.count
}

// Format returns data as hex literals, perLine to a line.
func Format(data []byte, perLine int) string {
	var sb strings.Builder
	_, _ = NewWriter(&sb, perLine).Write(data)
	return sb.String()
}
