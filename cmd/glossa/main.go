package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debug bool

	rootCommand := &cobra.Command{
		Use:           "glossa",
		Short:         "Dictionary lookups and glossary generation for classical texts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(debug)
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "path to the configuration file")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")

	rootCommand.AddCommand(newLookupCommand())
	rootCommand.AddCommand(newGlossCommand())
	rootCommand.AddCommand(newCacheCommand())
	return rootCommand
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
