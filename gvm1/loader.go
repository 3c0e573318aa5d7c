package gvm1

import (
	"context"
	"slices"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"go.glypho.dev/glypho"
	"go.glypho.dev/glypho/glysrc"
	"go.glypho.dev/glypho/internal/cadata"
)

// Load decodes and links codes, using all available CPUs to decode.
func Load(ctx context.Context, codes []glypho.Code) ([]I, error) {
	prog, err := DecodeAll(ctx, codes, 0)
	if err != nil {
		return nil, err
	}
	if err := Link(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

// Loader turns source code into linked programs.
// Linked programs are cached by the hash of their source.
type Loader struct {
	workers int

	mu    sync.Mutex
	cache *simplelru.LRU[cadata.ID, []I]
}

// NewLoader creates a Loader which decodes with the given number of workers
// and remembers up to cacheSize programs.
// If workers < 1, the number of available CPUs is used.
func NewLoader(workers, cacheSize int) *Loader {
	cache, err := simplelru.NewLRU[cadata.ID, []I](max(1, cacheSize), nil)
	if err != nil {
		panic(err)
	}
	return &Loader{
		workers: workers,
		cache:   cache,
	}
}

// Load reads, decodes and links src.
// Every call returns a separate arena, because running a program can append to it.
func (l *Loader) Load(ctx context.Context, src []byte) ([]I, error) {
	id := cadata.Hash(nil, src)
	l.mu.Lock()
	prog, ok := l.cache.Get(id)
	l.mu.Unlock()
	if ok {
		logctx.Debug(ctx, "program cache hit", zap.String("id", id.Short()))
		return slices.Clone(prog), nil
	}

	codes, err := glysrc.ReadBytes(src)
	if err != nil {
		return nil, err
	}
	prog, err = DecodeAll(ctx, codes, l.workers)
	if err != nil {
		return nil, err
	}
	if err := Link(prog); err != nil {
		return nil, err
	}
	logctx.Debug(ctx, "program loaded", zap.String("id", id.Short()), zap.Int("instructions", len(prog)))

	l.mu.Lock()
	l.cache.Add(id, prog)
	l.mu.Unlock()
	return slices.Clone(prog), nil
}

// Len returns the number of cached programs.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Len()
}
