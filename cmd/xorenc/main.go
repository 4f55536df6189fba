package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/csc840/tasking/cmd/internal"
	"github.com/csc840/tasking/pkg/encoder"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag    bool
		versionFlag bool
		keyFlag     string
		presetFlag  string
	)
	flags := flag.NewFlagSet("xorenc", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the version and exits.")
	flags.StringVarP(&keyFlag, "key", "k", "2a", "XOR key as a hex string. Multi-byte keys are applied as a repeating ring.")
	flags.StringVarP(&presetFlag, "preset", "p", encoder.DefaultPreset, fmt.Sprintf("Built in string to encode, one of: %s.", strings.Join(encoder.PresetNames(), ", ")))
	flags.Usage = func() {
		fmt.Printf(`
xorenc XORs a string with a key and prints the result as hex literals, 16 to a line, ready to paste into a C byte array.
Without arguments the beacon check-in payload is encoded with key 0x2a.

USAGE:  xorenc [FLAGS] [STRING]

ARGS:
    STRING is optional and overrides the preset.

FLAGS:
%s
SECURITY:
    This is obfuscation, not encryption. Anyone with the output can recover the input by XORing with the same key.
`, flags.FlagUsages())
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		fmt.Println(version)
		return
	}

	key, err := parseKey(keyFlag)
	if err != nil {
		internal.Fatal("Failed to decode KEY, must be a hex string with only the characters a-f, A-F, or 0-9")
	}

	var input string
	switch flags.NArg() {
	case 0:
		input, err = encoder.Lookup(presetFlag)
		if err != nil {
			internal.Fatal("%v", err)
		}
	case 1:
		input = flags.Arg(0)
	default:
		internal.Fatal("Expected at most one STRING argument, got %d", flags.NArg())
	}

	if err := encoder.Encode(os.Stdout, input, key); err != nil {
		internal.Fatal("Failed to encode: %v", err)
	}
}

func parseKey(s string) ([]byte, error) {
	var key bytes.Buffer
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if _, err := io.Copy(&key, hex.NewDecoder(strings.NewReader(s))); err != nil {
		return nil, err
	}
	return key.Bytes(), nil
}
