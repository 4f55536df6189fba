// Package encoder screens short strings with an XOR key and prints them as hex literals
// suitable for pasting into a C byte array.
package encoder

import (
	"fmt"
	"io"
	"sort"

	"github.com/csc840/tasking/pkg/hexlit"
	"github.com/csc840/tasking/pkg/xor"
)

// DefaultInput is the beacon check-in payload.
const DefaultInput = `{"id":"CSC840-AGENT","op":"ping","ver":"1.0"}`

// DefaultPreset names the preset used when none is given.
const DefaultPreset = "json"

// Presets are the strings the beacon embeds in screened form.
var Presets = map[string]string{
	DefaultPreset: DefaultInput,
	"user-agent":  "Mozilla/5.0 (X11; Linux x86_64) CSC840-Beacon/1.0",
	"path":        "/checkin",
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the input registered under name.
func Lookup(name string) (string, error) {
	input, ok := Presets[name]
	if !ok {
		return "", fmt.Errorf("unknown preset %q", name)
	}
	return input, nil
}

// Encode screens the UTF-8 bytes of input with key and writes them to w as hex literals,
// hexlit.DefaultPerLine to a line.
func Encode(w io.Writer, input string, key []byte) error {
	out := hexlit.NewWriter(w, hexlit.DefaultPerLine)
	screen, err := xor.NewWriter(out, key)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(screen, input); err != nil {
		return fmt.Errorf("failed to write encoded bytes: %w", err)
	}
	return nil
}
