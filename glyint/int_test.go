package glyint

import (
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, s := range []string{
		"0", "1", "-1", "9", "10", "-10", "99", "100",
		"123456789012345678901234567890",
		"-98765432109876543210",
	} {
		x, err := Parse(s)
		require.NoError(t, err)
		require.Equal(t, s, x.String())
	}
	require.Equal(t, "0", MustParse("-0").String())
	require.Equal(t, "0", MustParse("-000").String())
	require.Equal(t, "12", MustParse("0012").String())
	require.Equal(t, 0, MustParse("-0").Sign())
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "-", "+1", "1-", "12a", " 1", "--1", "0x10"} {
		_, err := Parse(s)
		require.ErrorIs(t, err, ErrSyntax, "input %q", s)
	}
}

func TestZeroValue(t *testing.T) {
	t.Parallel()
	var x Int
	require.True(t, x.IsZero())
	require.Equal(t, "0", x.String())
	require.True(t, x.Equal(Zero()))
	require.Equal(t, "1", x.Inc().String())
	require.Equal(t, "-1", x.Dec().String())
}

func TestArith(t *testing.T) {
	t.Parallel()
	type testCase struct {
		A, B string
		Sum  string
		Diff string
		Prod string
	}
	tcs := []testCase{
		{A: "0", B: "0", Sum: "0", Diff: "0", Prod: "0"},
		{A: "1", B: "1", Sum: "2", Diff: "0", Prod: "1"},
		{A: "9", B: "1", Sum: "10", Diff: "8", Prod: "9"},
		{A: "1", B: "9", Sum: "10", Diff: "-8", Prod: "9"},
		{A: "-5", B: "3", Sum: "-2", Diff: "-8", Prod: "-15"},
		{A: "5", B: "-3", Sum: "2", Diff: "8", Prod: "-15"},
		{A: "-5", B: "-3", Sum: "-8", Diff: "-2", Prod: "15"},
		{A: "-3", B: "5", Sum: "2", Diff: "-8", Prod: "-15"},
		{A: "1000", B: "-1", Sum: "999", Diff: "1001", Prod: "-1000"},
		{A: "-100", B: "100", Sum: "0", Diff: "-200", Prod: "-10000"},
		{
			A:    "99999999999999999999",
			B:    "1",
			Sum:  "100000000000000000000",
			Diff: "99999999999999999998",
			Prod: "99999999999999999999",
		},
		{
			A:    "123456789123456789",
			B:    "987654321987654321",
			Sum:  "1111111111111111110",
			Diff: "-864197532864197532",
			Prod: "121932631356500531347203169112635269",
		},
	}
	for _, tc := range tcs {
		a, b := MustParse(tc.A), MustParse(tc.B)
		require.Equal(t, tc.Sum, a.Add(b).String(), "%s + %s", tc.A, tc.B)
		require.Equal(t, tc.Diff, a.Sub(b).String(), "%s - %s", tc.A, tc.B)
		require.Equal(t, tc.Prod, a.Mul(b).String(), "%s * %s", tc.A, tc.B)
	}
}

func TestIncDec(t *testing.T) {
	t.Parallel()
	require.Equal(t, "0", MustParse("-1").Inc().String())
	require.Equal(t, "-1", MustParse("0").Dec().String())
	require.Equal(t, "1000", MustParse("999").Inc().String())
	require.Equal(t, "-1000", MustParse("-999").Dec().String())
	require.Equal(t, "-999", MustParse("-1000").Inc().String())
	require.Equal(t, "99", MustParse("100").Dec().String())
}

func TestNoAliasing(t *testing.T) {
	t.Parallel()
	a := MustParse("19")
	b := MustParse("1")
	_ = a.Add(b)
	_ = a.Mul(b)
	_ = a.Neg()
	_, _, _ = a.QuoRem(b)
	require.Equal(t, "19", a.String())
	require.Equal(t, "1", b.String())
}

func TestCmp(t *testing.T) {
	t.Parallel()
	ordered := []string{"-1000", "-100", "-50", "-9", "-1", "0", "1", "9", "50", "100", "1000"}
	for i := range ordered {
		for j := range ordered {
			a, b := MustParse(ordered[i]), MustParse(ordered[j])
			require.Equal(t, cmpInt(i, j), a.Cmp(b), "%v cmp %v", a, b)
			require.Equal(t, i < j, a.Less(b))
			require.Equal(t, i <= j, a.LessEq(b))
			require.Equal(t, i > j, a.Greater(b))
			require.Equal(t, i >= j, a.GreaterEq(b))
			require.Equal(t, i == j, a.Equal(b))
		}
	}
}

func TestAbsNeg(t *testing.T) {
	t.Parallel()
	require.Equal(t, "5", MustParse("-5").Abs().String())
	require.Equal(t, "5", MustParse("5").Abs().String())
	require.Equal(t, "-5", MustParse("5").Neg().String())
	require.Equal(t, "5", MustParse("-5").Neg().String())
	require.Equal(t, "0", Zero().Neg().String())
}

func TestQuoRem(t *testing.T) {
	t.Parallel()
	type testCase struct {
		A, B string
		Q, R string
	}
	tcs := []testCase{
		{A: "7", B: "2", Q: "3", R: "1"},
		{A: "-7", B: "2", Q: "-3", R: "-1"},
		{A: "7", B: "-2", Q: "-3", R: "1"},
		{A: "-7", B: "-2", Q: "3", R: "-1"},
		{A: "0", B: "5", Q: "0", R: "0"},
		{A: "4", B: "5", Q: "0", R: "4"},
		{A: "1000000000000000000000", B: "7", Q: "142857142857142857142", R: "6"},
		{A: "121932631356500531347203169112635269", B: "987654321987654321", Q: "123456789123456789", R: "0"},
	}
	for _, tc := range tcs {
		q, r, err := MustParse(tc.A).QuoRem(MustParse(tc.B))
		require.NoError(t, err)
		require.Equal(t, tc.Q, q.String(), "%s / %s", tc.A, tc.B)
		require.Equal(t, tc.R, r.String(), "%s %% %s", tc.A, tc.B)
	}
}

func TestDivisionByZero(t *testing.T) {
	t.Parallel()
	_, _, err := MustParse("10").QuoRem(Zero())
	require.ErrorIs(t, err, ErrDivisionByZero)
	_, err = MustParse("10").Quo(MustParse("-0"))
	require.ErrorIs(t, err, ErrDivisionByZero)
	_, err = MustParse("-3").Rem(Int{})
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestInt64(t *testing.T) {
	t.Parallel()
	for _, x := range []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64} {
		y, ok := FromInt64(x).Int64()
		require.True(t, ok)
		require.Equal(t, x, y)
		require.Equal(t, strconv.FormatInt(x, 10), FromInt64(x).String())
	}
	_, ok := MustParse("9223372036854775808").Int64()
	require.False(t, ok)
	_, ok = MustParse("-9223372036854775809").Int64()
	require.False(t, ok)
}

func TestLaws(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a, b := randInt(rng), randInt(rng)
		require.True(t, a.Add(b).Equal(b.Add(a)), "%v + %v", a, b)
		require.True(t, a.Sub(a).IsZero())
		require.True(t, a.Mul(Zero()).IsZero())
		require.True(t, a.Add(b).Sub(b).Equal(a))
	}
}

func TestAgainstBig(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 300; i++ {
		a, b := randInt(rng), randInt(rng)
		ab, bb := toBig(a), toBig(b)
		require.Equal(t, new(big.Int).Add(ab, bb).String(), a.Add(b).String())
		require.Equal(t, new(big.Int).Sub(ab, bb).String(), a.Sub(b).String())
		require.Equal(t, new(big.Int).Mul(ab, bb).String(), a.Mul(b).String())
		require.Equal(t, ab.Cmp(bb), a.Cmp(b))
		if b.IsZero() {
			continue
		}
		q, r, err := a.QuoRem(b)
		require.NoError(t, err)
		bq, br := new(big.Int).QuoRem(ab, bb, new(big.Int))
		require.Equal(t, bq.String(), q.String())
		require.Equal(t, br.String(), r.String())
	}
}

func randInt(rng *rand.Rand) Int {
	n := 1 + rng.Intn(30)
	buf := make([]byte, 0, n+1)
	if rng.Intn(2) == 0 {
		buf = append(buf, '-')
	}
	for i := 0; i < n; i++ {
		buf = append(buf, byte('0'+rng.Intn(10)))
	}
	return MustParse(string(buf))
}

func toBig(x Int) *big.Int {
	b, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic(x)
	}
	return b
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
