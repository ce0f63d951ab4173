package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// Exit code on SIGINT/SIGTERM, matching shell convention (128 + SIGINT).
const exitCodeInterrupted = 130

var cli struct {
	Analyze AnalyzeCmd `cmd:"" default:"withargs" help:"Report how much of the current code evolved from a base commit."`
	Version VersionCmd `cmd:"" help:"Print the version."`
}

type cmdContext struct {
	ctx context.Context
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := ctx.Run(&cmdContext{ctx: runCtx})

	if runCtx.Err() != nil {
		fmt.Fprintln(os.Stderr, "interrupted")
		os.Exit(exitCodeInterrupted)
	}

	ctx.FatalIfErrorf(err)
}
