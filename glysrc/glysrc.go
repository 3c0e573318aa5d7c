// package glysrc reads Glypho source code into encoded instructions.
//
// Whitespace is ignored. Every other symbol is significant, and the symbols are
// grouped into instructions of glypho.CodeSize symbols each.
//
// Source which is valid UTF-8 is read as code points. Any other source is read one
// byte per symbol, so distinct invalid bytes stay distinct symbols.
package glysrc

import (
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"go.glypho.dev/glypho"
)

// Read reads all of r and splits it into codes.
// It returns a *glypho.SyntaxError with kind CodeLengthInvalid if the number of symbols
// is not a multiple of glypho.CodeSize.
func Read(r io.Reader) ([]glypho.Code, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return ReadBytes(data)
}

// ReadBytes is Read for source already in memory.
func ReadBytes(src []byte) ([]glypho.Code, error) {
	var codes []glypho.Code
	var cur glypho.Code
	var n int
	add := func(c rune) {
		cur[n] = c
		n++
		if n == glypho.CodeSize {
			codes = append(codes, cur)
			n = 0
		}
	}
	if utf8.Valid(src) {
		for _, c := range string(src) {
			if !unicode.IsSpace(c) {
				add(c)
			}
		}
	} else {
		// only ASCII bytes can be whitespace
		for _, b := range src {
			if b >= utf8.RuneSelf || !unicode.IsSpace(rune(b)) {
				add(rune(b))
			}
		}
	}
	if n != 0 {
		return nil, &glypho.SyntaxError{Kind: glypho.CodeLengthInvalid, ID: -1}
	}
	return codes, nil
}

// ReadFile reads the source file at p.
// Failing to open the file is an *glypho.ArgumentError.
func ReadFile(p string) ([]byte, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, &glypho.ArgumentError{Arg: p, Cause: fmt.Errorf("couldn't find or open the specified file: %w", err)}
	}
	return data, nil
}
