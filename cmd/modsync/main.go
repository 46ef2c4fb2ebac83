package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/modsync/internal/cli"
	"github.com/arthur-debert/modsync/pkg/ui/progress"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !cli.Reported(err) {
			rich := progress.DetectFormat(os.Stderr) == progress.FormatTerminal
			fmt.Fprintln(os.Stderr, progress.FormatError(err, rich))
		}
		stop()
		os.Exit(1)
	}
}
