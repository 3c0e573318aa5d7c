// package glyint implements the arbitrary precision signed integers held on the Glypho stack.
//
// An Int is a sign and a sequence of decimal digits, least significant first.
// Ints are values: no operation modifies its operands.
package glyint

import (
	"errors"
	"strings"
)

var (
	ErrSyntax         = errors.New("glyint: not a decimal integer literal")
	ErrDivisionByZero = errors.New("glyint: division by zero")
)

// Int is an arbitrary precision signed integer.
// The zero value is 0.
type Int struct {
	neg bool
	// digits are least significant first, with no leading zeros.
	// The only Int with a 0 in the most significant position is 0 itself.
	digits []uint8
}

var (
	zero = Int{digits: []uint8{0}}
	one  = Int{digits: []uint8{1}}
)

// Zero returns 0.
func Zero() Int { return zero }

// One returns 1.
func One() Int { return one }

// Parse parses a decimal literal matching -?[0-9]+.
// "-0" is accepted and yields 0.
func Parse(s string) (Int, error) {
	body, neg := strings.CutPrefix(s, "-")
	if body == "" {
		return Int{}, ErrSyntax
	}
	ds := make([]uint8, len(body))
	for i := 0; i < len(body); i++ {
		c := body[len(body)-1-i]
		if c < '0' || c > '9' {
			return Int{}, ErrSyntax
		}
		ds[i] = c - '0'
	}
	return newInt(neg, ds), nil
}

// MustParse calls Parse and panics on error.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// FromInt64 converts a machine integer.
func FromInt64(x int64) Int {
	neg := x < 0
	mag := uint64(x)
	if neg {
		mag = -mag
	}
	return newInt(neg, magFromUint64(mag))
}

func magFromUint64(mag uint64) []uint8 {
	if mag == 0 {
		return []uint8{0}
	}
	var ds []uint8
	for mag > 0 {
		ds = append(ds, uint8(mag%10))
		mag /= 10
	}
	return ds
}

// newInt takes ownership of ds and returns a canonical Int.
func newInt(neg bool, ds []uint8) Int {
	ds = trim(ds)
	if isZeroMag(ds) {
		return zero
	}
	return Int{neg: neg, digits: ds}
}

func (x Int) mag() []uint8 {
	if len(x.digits) == 0 {
		return zero.digits
	}
	return x.digits
}

// Sign returns -1, 0 or 1.
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

func (x Int) IsZero() bool {
	return isZeroMag(x.mag())
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{digits: x.mag()}
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.IsZero() {
		return zero
	}
	return Int{neg: !x.neg, digits: x.mag()}
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return newInt(x.neg, addMag(x.mag(), y.mag()))
	}
	// signs differ, subtract the smaller magnitude from the larger
	if cmpMag(x.mag(), y.mag()) >= 0 {
		return newInt(x.neg, subMag(x.mag(), y.mag()))
	}
	return newInt(y.neg, subMag(y.mag(), x.mag()))
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return newInt(x.neg != y.neg, mulMag(x.mag(), y.mag()))
}

// Inc returns x + 1.
func (x Int) Inc() Int {
	return x.Add(one)
}

// Dec returns x - 1.
func (x Int) Dec() Int {
	return x.Sub(one)
}

// QuoRem returns the quotient and remainder of x / y, truncated toward zero.
// The remainder has the sign of x.
// QuoRem returns ErrDivisionByZero if y is 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	qm, rm := quoRemMag(x.mag(), y.mag())
	return newInt(x.neg != y.neg, qm), newInt(x.neg, rm), nil
}

// Quo returns x / y truncated toward zero.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns x - y * (x / y).
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Cmp returns -1 if x < y, 0 if x == y and 1 if x > y.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	}
	c := cmpMag(x.mag(), y.mag())
	if xs < 0 {
		return -c
	}
	return c
}

func (x Int) Equal(y Int) bool     { return x.Cmp(y) == 0 }
func (x Int) Less(y Int) bool      { return x.Cmp(y) < 0 }
func (x Int) LessEq(y Int) bool    { return x.Cmp(y) <= 0 }
func (x Int) Greater(y Int) bool   { return x.Cmp(y) > 0 }
func (x Int) GreaterEq(y Int) bool { return x.Cmp(y) >= 0 }

// Int64 returns x as an int64, and false if it does not fit.
func (x Int) Int64() (int64, bool) {
	ds := x.mag()
	if len(ds) > 19 {
		return 0, false
	}
	var mag uint64
	for i := len(ds) - 1; i >= 0; i-- {
		mag = mag*10 + uint64(ds[i])
	}
	const maxMag = 1 << 63
	switch {
	case x.neg && mag <= maxMag:
		return int64(-mag), true
	case !x.neg && mag < maxMag:
		return int64(mag), true
	default:
		return 0, false
	}
}

// String formats x in decimal.
// There is no sign on 0.
func (x Int) String() string {
	ds := x.mag()
	var sb strings.Builder
	sb.Grow(len(ds) + 1)
	if x.Sign() < 0 {
		sb.WriteByte('-')
	}
	for i := len(ds) - 1; i >= 0; i-- {
		sb.WriteByte('0' + ds[i])
	}
	return sb.String()
}
