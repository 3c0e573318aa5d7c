package main

import (
	"context"
	"os"
	"os/signal"

	"go.glypho.dev/glypho/glycmd"
)

func main() {
	ctx, cf := signal.NotifyContext(context.Background(), os.Interrupt)
	code := glycmd.Exec(ctx, os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cf()
	os.Exit(code)
}
