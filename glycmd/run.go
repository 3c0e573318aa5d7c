package glycmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.brendoncarroll.net/exp/slices2"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"go.glypho.dev/glypho"
	"go.glypho.dev/glypho/glysrc"
	"go.glypho.dev/glypho/gvm1"
)

// ErrStepLimit is returned by Run when a program is still running after Config.MaxSteps.
var ErrStepLimit = errors.New("step limit reached")

// source is a program read from a file.
type source struct {
	Path string
	Data []byte
}

// readSources reads every file before anything is loaded, so that a missing file
// is reported before any program runs.
func readSources(paths []string) ([]source, error) {
	if len(paths) == 0 {
		return nil, &glypho.ArgumentError{Arg: "src", Cause: errors.New("no source files")}
	}
	srcs := make([]source, len(paths))
	for i, p := range paths {
		data, err := glysrc.ReadFile(p)
		if err != nil {
			return nil, err
		}
		srcs[i] = source{Path: p, Data: data}
	}
	return srcs, nil
}

// newLoader returns a Loader with room for every program in srcs.
func newLoader(cfg Config, srcs []source) *gvm1.Loader {
	return gvm1.NewLoader(cfg.Workers, len(srcs))
}

// Run loads and runs the programs at paths in order.
// The programs share in and out, so input left over by one program is read by the next.
// Run stops at the first program which fails.
// If cfg.Dump is set, the stack of each program is written to diag when it stops.
func Run(ctx context.Context, cfg Config, paths []string, in io.Reader, out, diag io.Writer) error {
	srcs, err := readSources(paths)
	if err != nil {
		return err
	}
	if in == nil {
		in = strings.NewReader("")
	}
	loader := newLoader(cfg, srcs)
	toks := gvm1.NewTokens(in)
	for _, src := range srcs {
		prog, err := loader.Load(ctx, src.Data)
		if err != nil {
			return err
		}
		logctx.Debug(ctx, "running", zap.String("src", src.Path), zap.Int("instructions", len(prog)))
		vm := gvm1.New(prog, gvm1.Config{
			Base:   cfg.Base,
			Tokens: toks,
			Out:    out,
		})
		err = runVM(ctx, cfg, vm)
		if cfg.Dump && diag != nil {
			if _, err := fmt.Fprintf(diag, "%s: stack [%s]\n", src.Path, strings.Join(vm.Stack().Strings(cfg.Base), " ")); err != nil {
				return err
			}
		}
		if errors.Is(err, ErrStepLimit) {
			return fmt.Errorf("%s: %w after %d steps", src.Path, err, vm.Steps())
		} else if err != nil {
			return err
		}
	}
	return nil
}

func runVM(ctx context.Context, cfg Config, vm *gvm1.VM) error {
	if cfg.MaxSteps == 0 {
		return vm.RunToHalt(ctx)
	}
	vm.Run(ctx, cfg.MaxSteps)
	if err := vm.Err(); err != nil {
		return err
	}
	if !vm.Halted() {
		return ErrStepLimit
	}
	return nil
}

// Check loads the programs at paths without running them.
// It writes one line per program to out.
func Check(ctx context.Context, cfg Config, paths []string, out io.Writer) error {
	srcs, err := readSources(paths)
	if err != nil {
		return err
	}
	loader := newLoader(cfg, srcs)
	for _, src := range srcs {
		prog, err := loader.Load(ctx, src.Data)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s: ok, %d instructions\n", src.Path, len(prog)); err != nil {
			return err
		}
	}
	return nil
}

// Disasm writes the linked instructions of the programs at paths to out.
// When there is more than one program, each listing starts with a line naming its file.
func Disasm(ctx context.Context, cfg Config, paths []string, out io.Writer) error {
	srcs, err := readSources(paths)
	if err != nil {
		return err
	}
	loader := newLoader(cfg, srcs)
	for _, src := range srcs {
		prog, err := loader.Load(ctx, src.Data)
		if err != nil {
			return err
		}
		var sb strings.Builder
		if len(srcs) > 1 {
			fmt.Fprintf(&sb, "# %s\n", src.Path)
		}
		for _, line := range slices2.Map(prog, gvm1.I.String) {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		if _, err := io.WriteString(out, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
