package hexlit

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_Short(t *testing.T) {
	assert.Equal(t, "0x05,0x49,0xff,", Format([]byte{0x05, 0x49, 0xff}, DefaultPerLine))
	assert.Equal(t, "", Format(nil, DefaultPerLine))
}

func TestFormat_LineBreaks(t *testing.T) {
	data := make([]byte, 20)
	out := Format(data, 16)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat("0x00,", 16), lines[0])
	assert.Equal(t, strings.Repeat("0x00,", 4), lines[1])
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestFormat_ExactMultiple(t *testing.T) {
	out := Format(make([]byte, 32), 16)
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestFormat_DefaultPerLine(t *testing.T) {
	out := Format(make([]byte, 17), 0)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Equal(t, 16*5, strings.Index(out, "\n"))
}

func TestWriter_CountsAcrossWrites(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb, 4)
	n, err := w.Write([]byte{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	_, err = w.Write([]byte{4, 5})
	assert.NoError(t, err)
	assert.Equal(t, "0x01,0x02,0x03,0x04,\n0x05,", sb.String())
	assert.Equal(t, 5, w.Count())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriter_TargetError(t *testing.T) {
	n, err := NewWriter(failWriter{}, 16).Write([]byte{1})
	assert.Error(t, err)
	assert.Equal(t, 0, n)
}
