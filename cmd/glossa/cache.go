package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/autocom/glossa/internal/cache"
)

func newCacheCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the dictionary cache",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print record counts per source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			counts, err := store.CountBySource(cmd.Context())
			if err != nil {
				return err
			}
			sources := make([]string, 0, len(counts))
			var total int64
			for source, n := range counts {
				sources = append(sources, source)
				total += n
			}
			sort.Strings(sources)
			for _, source := range sources {
				cmd.Printf("%-12s %d\n", source, counts[source])
			}
			cmd.Println(color.New(color.Bold).Sprintf("%-12s %d", "total", total))
			return nil
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Delete records whose TTL has elapsed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			n, err := store.PurgeExpired(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("removed %d expired records\n", n)
			return nil
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "clear [source]",
		Short: "Delete all records, or all records for one source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			n, err := store.Clear(cmd.Context(), source)
			if err != nil {
				return err
			}
			cmd.Printf("removed %d records\n", n)
			return nil
		},
	})

	return rootCommand
}

func openStore() (*cache.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	store, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary cache: %w", err)
	}
	return store, nil
}
