package xor

import (
	"errors"
	"fmt"
)

// DefaultKey is the single key byte used to screen embedded strings.
const DefaultKey byte = 0x2A

var (
	ErrEmptyKey = errors.New("cannot use empty key")
)

type ring struct {
	key  []byte
	init int
	cur  int
}

func newRing(key []byte, offset ...int) (*ring, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	r := &ring{
		key: key,
	}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(key) {
			return nil, fmt.Errorf("offset %d out of range for key of len %d", offset[0], len(key))
		}
		r.init = offset[0]
		r.cur = r.init
	}
	return r, nil
}

func (r *ring) next(b byte) byte {
	b ^= r.key[r.cur]
	r.cur = (r.cur + 1) % len(r.key)
	return b
}

func (r *ring) reset() {
	r.cur = r.init
}

// Screen returns a copy of data with every byte XORed against key, starting at offset within the key.
// Applying Screen twice with the same key and offset yields the original data.
func Screen(data []byte, key []byte, offset ...int) ([]byte, error) {
	r, err := newRing(key, offset...)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = r.next(b)
	}
	return out, nil
}
