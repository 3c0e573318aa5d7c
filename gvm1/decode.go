package gvm1

import (
	"context"
	"runtime"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go.glypho.dev/glypho"
	"go.glypho.dev/glypho/glyint"
)

// kindTable maps a pattern index to a Kind.
// Indexes which are not in the table are NOP.
var kindTable = map[int]Kind{
	0:  NOP,
	1:  Input,
	3:  Rot,
	4:  Swap,
	5:  Push,
	9:  RRot,
	10: Dup,
	11: Add,
	12: LBrace,
	13: Output,
	14: Multiply,
	15: Execute,
	16: Negate,
	17: Pop,
	18: RBrace,
}

// Pattern is the equality pattern of a code.
// Each position holds the order in which its symbol was first seen, starting at 0.
type Pattern [glypho.CodeSize]int

// PatternOf computes the equality pattern of xs.
// Only equality between the elements matters, never their identity.
func PatternOf[T any](xs [glypho.CodeSize]T, eq func(a, b T) bool) (p Pattern) {
	seen := 0
	for i := range xs {
		p[i] = -1
		for j := 0; j < i; j++ {
			if eq(xs[i], xs[j]) {
				p[i] = p[j]
				break
			}
		}
		if p[i] < 0 {
			p[i] = seen
			seen++
		}
	}
	return p
}

// Index returns sum(p[i] * 3^(3-i)).
func (p Pattern) Index() int {
	var idx int
	for _, x := range p {
		idx = idx*3 + x
	}
	return idx
}

func (p Pattern) Kind() Kind {
	return kindTable[p.Index()]
}

// Decode returns the Kind of an encoded instruction.
func Decode(c glypho.Code) Kind {
	return PatternOf(c, func(a, b rune) bool { return a == b }).Kind()
}

// decodeValues decodes the values taken from the stack by Execute.
func decodeValues(xs []glyint.Int) Kind {
	var arr [glypho.CodeSize]glyint.Int
	copy(arr[:], xs)
	return PatternOf(arr, glyint.Int.Equal).Kind()
}

// Code returns the canonical spelling of k, using the symbols a, b, c and d.
func (k Kind) Code() glypho.Code {
	p, ok := kindPatterns[k]
	if !ok {
		panic(k)
	}
	var c glypho.Code
	for i, x := range p {
		c[i] = 'a' + rune(x)
	}
	return c
}

var kindPatterns = canonicalPatterns()

// canonicalPatterns enumerates every equality pattern, keyed by the Kind it decodes to.
func canonicalPatterns() map[Kind]Pattern {
	ret := make(map[Kind]Pattern)
	var walk func(p Pattern, i, seen int)
	walk = func(p Pattern, i, seen int) {
		if i == len(p) {
			if _, exists := ret[p.Kind()]; !exists {
				ret[p.Kind()] = p
			}
			return
		}
		for x := 0; x <= seen; x++ {
			p[i] = x
			walk(p, i+1, max(seen, x+1))
		}
	}
	walk(Pattern{}, 0, 0)
	return ret
}

// DecodeAll decodes codes into an unlinked program.
// The codes are split into contiguous ranges, and each range is decoded by its own goroutine.
// If workers < 1, the number of available CPUs is used.
func DecodeAll(ctx context.Context, codes []glypho.Code, workers int) ([]I, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = max(1, min(workers, len(codes)))
	prog := make([]I, len(codes))
	logctx.Debug(ctx, "decoding", zap.Int("instructions", len(codes)), zap.Int("workers", workers))

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		beg := w * len(codes) / workers
		end := (w + 1) * len(codes) / workers
		eg.Go(func() error {
			for id := beg; id < end; id++ {
				prog[id] = I{
					Kind:   Decode(codes[id]),
					ID:     id,
					Next:   glypho.Halt,
					Jump:   glypho.Halt,
					Parent: id,
				}
			}
			return ctx.Err()
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return prog, nil
}
