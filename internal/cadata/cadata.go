// package cadata provides content ids for Glypho source code.
//
// Programs are identified by the hash of their source, so identical sources can share
// the work of decoding and linking.
package cadata

import (
	"encoding/base64"

	"lukechampine.com/blake3"
)

const (
	IDSize = 32
	// Base64Alphabet is used when encoding IDs as base64 strings.
	// It is a URL and filepath safe encoding, which maintains ordering.
	Base64Alphabet = "-0123456789" + "ABCDEFGHIJKLMNOPQRSTUVWXYZ" + "_" + "abcdefghijklmnopqrstuvwxyz"
)

// ID identifies a particular piece of data
type ID [IDSize]byte

// Hash returns the ID of x.
// If salt is non-nil the hash is keyed with it.
func Hash(salt *ID, x []byte) (ret ID) {
	var key []byte
	if salt != nil {
		key = salt[:]
	}
	h := blake3.New(IDSize, key)
	h.Write(x)
	h.Sum(ret[:0])
	return ret
}

var enc = base64.NewEncoding(Base64Alphabet).WithPadding(base64.NoPadding)

func (id ID) String() string {
	return enc.EncodeToString(id[:])
}

// Short returns a prefix of the String form, for logs.
func (id ID) Short() string {
	return id.String()[:8]
}
