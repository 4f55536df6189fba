package xor

import (
	"io"
)

// Reader is an io.Reader that screens everything it reads.
type Reader interface {
	io.Reader
	// Reset switches to a new source and rewinds the key to its initial offset.
	Reset(source io.Reader)
}

// Writer is an io.Writer that screens everything before passing it to its target.
type Writer interface {
	io.Writer
	// Reset switches to a new target and rewinds the key to its initial offset.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	r      *ring
}

// NewReader screens all bytes read from src with key, starting at offset.
func NewReader(src io.Reader, key []byte, offset ...int) (Reader, error) {
	r, err := newRing(key, offset...)
	if err != nil {
		return nil, err
	}
	return &reader{source: src, r: r}, nil
}

func (rd *reader) Read(out []byte) (n int, err error) {
	n, err = rd.source.Read(out)
	for i := 0; i < n; i++ {
		out[i] = rd.r.next(out[i])
	}
	return n, err
}

func (rd *reader) Reset(source io.Reader) {
	rd.source = source
	rd.r.reset()
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	r      *ring
	buf    []byte
}

// NewWriter screens all bytes written with key, starting at offset, before writing them to target.
func NewWriter(target io.Writer, key []byte, offset ...int) (Writer, error) {
	r, err := newRing(key, offset...)
	if err != nil {
		return nil, err
	}
	return &writer{target: target, r: r}, nil
}

func (w *writer) Write(in []byte) (int, error) {
	w.buf = w.buf[:0]
	for _, b := range in {
		w.buf = append(w.buf, w.r.next(b))
	}
	return w.target.Write(w.buf)
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.r.reset()
}
