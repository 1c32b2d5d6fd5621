package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/config"
	"github.com/bookkeep-dev/bookkeep/internal/engine"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new bookkeep project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating project directories: %w", err)
	}

	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, configFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed an empty state file so the first mutating command starts
	// from a known-good snapshot.
	eng := engine.New(cfg)
	data, err := eng.Snapshot()
	if err != nil {
		return fmt.Errorf("creating initial state: %w", err)
	}
	if err := os.WriteFile(p(dir, cfg.Files.State), data, 0o644); err != nil {
		return fmt.Errorf("writing initial state: %w", err)
	}

	fmt.Printf("Initialized bookkeep project for %q at %s\n", name, dir)
	return nil
}
