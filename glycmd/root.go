// package glycmd implements the glypho command line tool.
package glycmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.brendoncarroll.net/star"

	"go.glypho.dev/glypho"
)

// Exec runs the command line args against the glypho command tree and returns the
// exit status for the process.
// Output is flushed before the error, if any, is written to stderr.
func Exec(ctx context.Context, calledAs string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	bout := bufio.NewWriter(stdout)
	berr := bufio.NewWriter(stderr)
	err := star.Run(ctx, Root(), nil, calledAs, args, bufio.NewReader(stdin), bout, berr)
	var ce commandError
	if err != nil && !errors.As(err, &ce) {
		// star rejected the arguments before any command ran
		err = &glypho.ArgumentError{Arg: "args", Cause: err}
	}
	flushErr := bout.Flush()
	if err == nil && flushErr != nil {
		err = fmt.Errorf("writing output: %w", flushErr)
	}
	if err != nil {
		fmt.Fprintln(berr, err)
	}
	berr.Flush()
	return ExitCode(err)
}

// commandError marks errors returned by a command, as opposed to argument parsing.
type commandError struct {
	err error
}

func (e commandError) Error() string {
	return e.err.Error()
}

func (e commandError) Unwrap() error {
	return e.err
}

func command(f func(c star.Context) error) func(c star.Context) error {
	return func(c star.Context) error {
		if err := f(c); err != nil {
			return commandError{err}
		}
		return nil
	}
}

// Root returns the glypho command tree.
func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "Glypho interpreter",
}, map[star.Symbol]star.Command{
	"run":    runCmd,
	"check":  checkCmd,
	"disasm": disasmCmd,
})

var runCmd = star.Command{
	Metadata: star.Metadata{
		Short: "run one or more programs, one after another, on the same stdin and stdout",
	},
	Flags: []star.IParam{configParam, baseParam, maxStepsParam, logLevelParam, dumpParam},
	Pos:   []star.IParam{srcParam},
	F: command(func(c star.Context) error {
		cfg, err := LoadConfig(loadFlags(c))
		if err != nil {
			return err
		}
		ctx, cf, err := withLogger(c.Context, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer cf()
		return Run(ctx, cfg, srcParam.LoadAll(c), c.StdIn, c.StdOut, c.StdErr)
	}),
}

var checkCmd = star.Command{
	Metadata: star.Metadata{
		Short: "load programs without running them, and report syntax errors",
	},
	Flags: []star.IParam{configParam, logLevelParam},
	Pos:   []star.IParam{srcParam},
	F: command(func(c star.Context) error {
		cfg, err := LoadConfig(loadFlags(c))
		if err != nil {
			return err
		}
		ctx, cf, err := withLogger(c.Context, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer cf()
		return Check(ctx, cfg, srcParam.LoadAll(c), c.StdOut)
	}),
}

var disasmCmd = star.Command{
	Metadata: star.Metadata{
		Short: "print the instructions of programs",
	},
	Flags: []star.IParam{configParam, logLevelParam},
	Pos:   []star.IParam{srcParam},
	F: command(func(c star.Context) error {
		cfg, err := LoadConfig(loadFlags(c))
		if err != nil {
			return err
		}
		ctx, cf, err := withLogger(c.Context, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer cf()
		return Disasm(ctx, cfg, srcParam.LoadAll(c), c.StdOut)
	}),
}

var srcParam = star.Param[string]{
	Name:     "src",
	Repeated: true,
	Parse:    star.ParseString,
}

// The flags are optional, so they are Repeated and the last value wins.
// Values are validated by LoadConfig, so that a bad value is an ArgumentError.
var (
	configParam   = optString("config")
	baseParam     = optString("base")
	maxStepsParam = optString("max-steps")
	logLevelParam = optString("log-level")
	dumpParam     = optString("dump")
)

func optString(name star.Symbol) star.Param[string] {
	return star.Param[string]{
		Name:     name,
		Repeated: true,
		Parse:    star.ParseString,
	}
}

// loadFlags collects the flags which were given.
// Commands which do not take a flag never have a value for it.
func loadFlags(c star.Context) Flags {
	var f Flags
	for _, x := range []struct {
		p   star.Param[string]
		dst *string
	}{
		{configParam, &f.Config},
		{baseParam, &f.Base},
		{maxStepsParam, &f.MaxSteps},
		{logLevelParam, &f.LogLevel},
		{dumpParam, &f.Dump},
	} {
		if _, ok := c.Params[x.p.Name]; !ok {
			continue
		}
		if v, ok := x.p.LoadOpt(c); ok {
			*x.dst = v
		}
	}
	return f
}
