package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

func Context(t testing.TB) context.Context {
	ctx := context.Background()
	ctx, cf := context.WithCancel(ctx)
	t.Cleanup(cf)
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	ctx = logctx.NewContext(ctx, l)
	return ctx
}

// WriteSource writes src to a file in a temporary directory, and returns its path.
func WriteSource(t testing.TB, src string) string {
	p := filepath.Join(t.TempDir(), "prog.gly")
	require.NoError(t, os.WriteFile(p, []byte(src), 0o644))
	return p
}
