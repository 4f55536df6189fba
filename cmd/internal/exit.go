// Package internal holds console helpers shared by the commands.
package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Stderr is where Echo, Warn and Fatal write.
var Stderr io.Writer = os.Stderr

// Fatal will Echo the message and exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(1)
}

// Warn will Echo the message prefixed with "warning: ".
func Warn(msg string, args ...any) {
	Echo("warning: "+msg, args...)
}

// Echo writes the message to Stderr with a trailing newline and no logging decoration.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(Stderr, msg, args...)
}
