package glyint

// Magnitudes are slices of decimal digits, least significant first.
// None of these functions modify their inputs.

func trim(ds []uint8) []uint8 {
	n := len(ds)
	for n > 1 && ds[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []uint8{0}
	}
	return ds[:n]
}

func isZeroMag(ds []uint8) bool {
	for _, d := range ds {
		if d != 0 {
			return false
		}
	}
	return true
}

func cmpMag(a, b []uint8) int {
	a, b = trim(a), trim(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

func addMag(a, b []uint8) []uint8 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint8, len(a)+1)
	var carry uint8
	for i := range a {
		s := a[i] + carry
		if i < len(b) {
			s += b[i]
		}
		out[i] = s % 10
		carry = s / 10
	}
	out[len(a)] = carry
	return trim(out)
}

// subMag returns a - b. It requires a >= b.
func subMag(a, b []uint8) []uint8 {
	out := make([]uint8, len(a))
	var borrow int
	for i := range a {
		d := int(a[i]) - borrow
		if i < len(b) {
			d -= int(b[i])
		}
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		out[i] = uint8(d)
	}
	if borrow != 0 {
		panic("glyint: subMag underflow")
	}
	return trim(out)
}

func mulMag(a, b []uint8) []uint8 {
	if isZeroMag(a) || isZeroMag(b) {
		return []uint8{0}
	}
	acc := make([]int, len(a)+len(b))
	for i, da := range a {
		if da == 0 {
			continue
		}
		for j, db := range b {
			acc[i+j] += int(da) * int(db)
		}
	}
	out := make([]uint8, len(acc))
	carry := 0
	for i, v := range acc {
		v += carry
		out[i] = uint8(v % 10)
		carry = v / 10
	}
	return trim(out)
}

// mulSmallAdd returns a*m + add for small non-negative m and add.
func mulSmallAdd(a []uint8, m, add int) []uint8 {
	out := make([]uint8, 0, len(a)+4)
	carry := add
	for _, d := range a {
		v := int(d)*m + carry
		out = append(out, uint8(v%10))
		carry = v / 10
	}
	for carry > 0 {
		out = append(out, uint8(carry%10))
		carry /= 10
	}
	return trim(out)
}

// quoRemSmall divides a by a small positive d.
func quoRemSmall(a []uint8, d int) ([]uint8, int) {
	q := make([]uint8, len(a))
	r := 0
	for i := len(a) - 1; i >= 0; i-- {
		cur := r*10 + int(a[i])
		q[i] = uint8(cur / d)
		r = cur % d
	}
	return trim(q), r
}

// quoRemMag is schoolbook long division.
// Each quotient digit is found by repeated subtraction, so at most 9 subtractions per digit.
// It requires b != 0.
func quoRemMag(a, b []uint8) (q, r []uint8) {
	b = trim(b)
	q = make([]uint8, len(a))
	r = []uint8{0}
	for i := len(a) - 1; i >= 0; i-- {
		// r = r*10 + a[i]
		r = mulSmallAdd(r, 10, int(a[i]))
		var d uint8
		for cmpMag(r, b) >= 0 {
			r = subMag(r, b)
			d++
		}
		q[i] = d
	}
	return trim(q), trim(r)
}
