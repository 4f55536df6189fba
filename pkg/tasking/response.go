package tasking

import (
	"bytes"
	"strconv"
)

// Response returns the complete HTTP/1.1 response carrying task as its body.
// Content-Length is the byte length of the UTF-8 body.
func Response(task string) []byte {
	var buf bytes.Buffer
	buf.WriteString("HTTP/1.1 200 OK\r\n")
	buf.WriteString("Content-Type: text/plain\r\n")
	buf.WriteString("Content-Length: " + strconv.Itoa(len(task)) + "\r\n")
	buf.WriteString("Connection: close\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(task)
	return buf.Bytes()
}
