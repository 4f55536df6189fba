package tasking

import (
	"bufio"
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Exact(t *testing.T) {
	expected := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: text/plain\r\n" +
		"Content-Length: 7\r\n" +
		"Connection: close\r\n" +
		"\r\n" +
		"SLEEP=3"
	assert.Equal(t, expected, string(Response(DefaultTask)))
}

func TestResponse_MultiByteLength(t *testing.T) {
	task := "SLEEP=5 ✓ héllo"
	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(Response(task))), nil)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	assert.Equal(t, int64(len(task)), resp.ContentLength)
	assert.Greater(t, len(task), len([]rune(task)))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, task, string(body))
}
