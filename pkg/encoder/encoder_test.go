package encoder

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/csc840/tasking/pkg/xor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_DefaultInput(t *testing.T) {
	var sb strings.Builder
	err := Encode(&sb, DefaultInput, []byte{xor.DefaultKey})
	require.NoError(t, err)

	expected := "0x51,0x08,0x43,0x4e,0x08,0x10,0x08,0x69,0x79,0x69,0x12,0x1e,0x1a,0x07,0x6b,0x6d,\n" +
		"0x6f,0x64,0x7e,0x08,0x06,0x08,0x45,0x5a,0x08,0x10,0x08,0x5a,0x43,0x44,0x4d,0x08,\n" +
		"0x06,0x08,0x5c,0x4f,0x58,0x08,0x10,0x08,0x1b,0x04,0x1a,0x08,0x57,"
	assert.Equal(t, expected, sb.String())
}

// decode parses Encode output back into bytes.
func decode(t *testing.T, out string) []byte {
	t.Helper()
	var data []byte
	for _, lit := range strings.FieldsFunc(out, func(r rune) bool { return r == ',' || r == '\n' }) {
		require.True(t, strings.HasPrefix(lit, "0x"), lit)
		b, err := hex.DecodeString(strings.TrimPrefix(lit, "0x"))
		require.NoError(t, err)
		data = append(data, b...)
	}
	return data
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			input, err := Lookup(name)
			require.NoError(t, err)

			var sb strings.Builder
			require.NoError(t, Encode(&sb, input, []byte{xor.DefaultKey}))
			encoded := decode(t, sb.String())
			assert.Len(t, encoded, len(input))

			plain, err := xor.Screen(encoded, []byte{xor.DefaultKey})
			require.NoError(t, err)
			assert.Equal(t, input, string(plain))
		})
	}
}

func TestEncode_LineWrapping(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Encode(&sb, DefaultInput, []byte{xor.DefaultKey}))
	out := sb.String()
	assert.Equal(t, len(DefaultInput)/16, strings.Count(out, "\n"))
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.LessOrEqual(t, strings.Count(line, ","), 16)
	}
}

func TestEncode_EmptyKey(t *testing.T) {
	var sb strings.Builder
	err := Encode(&sb, DefaultInput, nil)
	assert.ErrorIs(t, err, xor.ErrEmptyKey)
	assert.Empty(t, sb.String())
}

func TestLookup(t *testing.T) {
	input, err := Lookup("path")
	assert.NoError(t, err)
	assert.Equal(t, "/checkin", input)

	_, err = Lookup("nope")
	assert.Error(t, err)
	assert.Equal(t, []string{"json", "path", "user-agent"}, PresetNames())
}
