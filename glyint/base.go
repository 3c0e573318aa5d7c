package glyint

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

const digitChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	MinBase = 2
	MaxBase = len(digitChars)
)

var ErrInvalidDigits = errors.New("glyint: invalid digits for base")

// ValidBase returns true if b can be used with ToBase, FromBase and Format.
func ValidBase(b int) bool {
	return b >= MinBase && b <= MaxBase
}

func checkBase(b int) {
	if !ValidBase(b) {
		panic(fmt.Sprintf("glyint: unsupported base %d", b))
	}
}

// ToBase formats a machine integer in base b, using the digits 0-9A-Z.
// Negative values are the magnitude prefixed with a '-'.
// ToBase panics if b is not a ValidBase.
func ToBase[T constraints.Integer](b int, v T) string {
	checkBase(b)
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = -mag
	}
	if mag == 0 {
		return "0"
	}
	var buf []byte
	for mag > 0 {
		buf = append(buf, digitChars[mag%uint64(b)])
		mag /= uint64(b)
	}
	if neg {
		buf = append(buf, '-')
	}
	slices.Reverse(buf)
	return string(buf)
}

// Format formats x in base b, the same way as ToBase.
// Format panics if b is not a ValidBase.
func (x Int) Format(b int) string {
	checkBase(b)
	if b == 10 {
		return x.String()
	}
	mag := x.mag()
	if isZeroMag(mag) {
		return "0"
	}
	var buf []byte
	for !isZeroMag(mag) {
		var r int
		mag, r = quoRemSmall(mag, b)
		buf = append(buf, digitChars[r])
	}
	if x.Sign() < 0 {
		buf = append(buf, '-')
	}
	slices.Reverse(buf)
	return string(buf)
}

// FromBase parses text written in base b, with an optional leading '-'.
// Letters may be upper or lower case.
// It returns ErrInvalidDigits if text is empty, or contains a digit out of range for b.
func FromBase(b int, text string) (Int, error) {
	if !ValidBase(b) {
		return Int{}, fmt.Errorf("glyint: unsupported base %d", b)
	}
	body, neg := strings.CutPrefix(text, "-")
	if body == "" {
		return Int{}, ErrInvalidDigits
	}
	mag := []uint8{0}
	for i := 0; i < len(body); i++ {
		d := digitValue(body[i])
		if d < 0 || d >= b {
			return Int{}, fmt.Errorf("%w: %q in base %d", ErrInvalidDigits, text, b)
		}
		mag = mulSmallAdd(mag, b, d)
	}
	return newInt(neg, mag), nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	default:
		return -1
	}
}
