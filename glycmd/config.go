package glycmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.glypho.dev/glypho"
	"go.glypho.dev/glypho/glyint"
)

// Config is the validated configuration for the commands.
type Config struct {
	// Base is used to parse Input and format Output.
	Base int
	// MaxSteps limits the number of instructions each program may execute.
	// Zero means no limit.
	MaxSteps uint64
	LogLevel zapcore.Level
	// Workers is the number of goroutines used to decode a program.
	// Zero means one per CPU.
	Workers int
	// Dump writes the stack of each program to the diagnostic stream when it stops.
	Dump bool
}

func DefaultConfig() Config {
	return Config{
		Base:     glypho.DefaultBase,
		LogLevel: zapcore.WarnLevel,
	}
}

// Flags are the raw values from the command line.
// The empty string means the flag was not given.
type Flags struct {
	// Config is the path to a TOML file.
	Config   string
	Base     string
	MaxSteps string
	LogLevel string
	Dump     string
}

// fileConfig is the format of the file named by Flags.Config.
//
//	base = 16
//	max-steps = 1000000
//	log-level = "info"
//	workers = 4
//	dump = true
type fileConfig struct {
	Base     *int    `toml:"base"`
	MaxSteps *uint64 `toml:"max-steps"`
	LogLevel string  `toml:"log-level"`
	Workers  *int    `toml:"workers"`
	Dump     *bool   `toml:"dump"`
}

// LoadConfig starts from DefaultConfig, applies the config file if there is one,
// and then the flags.
// Every failure is a *glypho.ArgumentError.
func LoadConfig(f Flags) (Config, error) {
	cfg := DefaultConfig()
	if f.Config != "" {
		if err := applyFile(&cfg, f.Config); err != nil {
			return Config{}, err
		}
	}
	if f.Base != "" {
		b, err := strconv.Atoi(f.Base)
		if err != nil {
			return Config{}, &glypho.ArgumentError{Arg: "base", Cause: fmt.Errorf("%q is not a number", f.Base)}
		}
		if err := checkBase(b); err != nil {
			return Config{}, err
		}
		cfg.Base = b
	}
	if f.MaxSteps != "" {
		n, err := strconv.ParseUint(f.MaxSteps, 10, 64)
		if err != nil {
			return Config{}, &glypho.ArgumentError{Arg: "max-steps", Cause: fmt.Errorf("%q is not a non-negative number", f.MaxSteps)}
		}
		cfg.MaxSteps = n
	}
	if f.LogLevel != "" {
		lvl, err := parseLevel(f.LogLevel)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = lvl
	}
	if f.Dump != "" {
		dump, err := strconv.ParseBool(f.Dump)
		if err != nil {
			return Config{}, &glypho.ArgumentError{Arg: "dump", Cause: fmt.Errorf("%q is not true or false", f.Dump)}
		}
		cfg.Dump = dump
	}
	return cfg, nil
}

// ParseConfig is LoadConfig without a config file.
func ParseConfig(base, maxSteps, logLevel string) (Config, error) {
	return LoadConfig(Flags{Base: base, MaxSteps: maxSteps, LogLevel: logLevel})
}

func applyFile(cfg *Config, p string) error {
	data, err := os.ReadFile(p)
	if err != nil {
		return &glypho.ArgumentError{Arg: "config", Cause: err}
	}
	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return &glypho.ArgumentError{Arg: "config", Cause: fmt.Errorf("parse error in %s: %w", p, err)}
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		var keys []string
		for _, k := range undec {
			keys = append(keys, k.String())
		}
		return &glypho.ArgumentError{Arg: "config", Cause: fmt.Errorf("unknown keys in %s: %s", p, strings.Join(keys, ", "))}
	}

	if fc.Base != nil {
		if err := checkBase(*fc.Base); err != nil {
			return err
		}
		cfg.Base = *fc.Base
	}
	if fc.MaxSteps != nil {
		cfg.MaxSteps = *fc.MaxSteps
	}
	if fc.LogLevel != "" {
		lvl, err := parseLevel(fc.LogLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = lvl
	}
	if fc.Workers != nil {
		if *fc.Workers < 0 {
			return &glypho.ArgumentError{Arg: "config", Cause: fmt.Errorf("workers must not be negative, have %d", *fc.Workers)}
		}
		cfg.Workers = *fc.Workers
	}
	if fc.Dump != nil {
		cfg.Dump = *fc.Dump
	}
	return nil
}

func checkBase(b int) error {
	if !glyint.ValidBase(b) {
		return &glypho.ArgumentError{Arg: "base", Cause: fmt.Errorf("%d is not supported, it must be between %d and %d", b, glypho.MinBase, glypho.MaxBase)}
	}
	return nil
}

func parseLevel(x string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(x)
	if err != nil {
		return 0, &glypho.ArgumentError{Arg: "log-level", Cause: err}
	}
	return lvl, nil
}

// withLogger returns a context carrying a logger which writes to stderr at lvl.
// The returned func flushes the logger.
func withLogger(ctx context.Context, lvl zapcore.Level) (context.Context, func(), error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	l, err := zcfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return logctx.NewContext(ctx, l), func() { _ = l.Sync() }, nil
}

// ExitCode maps an error to the process exit status.
//
//	0 no error
//	1 anything not listed below
//	2 *glypho.ArgumentError
//	3 *glypho.SyntaxError
//	4 *glypho.RuntimeError
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ae *glypho.ArgumentError
	var se *glypho.SyntaxError
	var re *glypho.RuntimeError
	switch {
	case errors.As(err, &ae):
		return 2
	case errors.As(err, &se):
		return 3
	case errors.As(err, &re):
		return 4
	default:
		return 1
	}
}
