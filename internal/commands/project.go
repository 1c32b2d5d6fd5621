package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/config"
	"github.com/bookkeep-dev/bookkeep/internal/engine"
)

const configFile = "bookkeep.yaml"

// project bundles the loaded config and engine for one command run.
type project struct {
	root string
	cfg  *config.Config
	eng  *engine.Engine
}

// openProject loads bookkeep.yaml from dir and restores the engine
// from the state file. A missing or corrupt state file yields a fresh
// engine, never an error.
func openProject(dir string) (*project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, configFile))
	if err != nil {
		return nil, fmt.Errorf("no bookkeep project at %s (run bookkeep init first): %w", root, err)
	}

	eng := engine.New(cfg)
	if data, err := os.ReadFile(p(root, cfg.Files.State)); err == nil {
		eng.Restore(data)
	}

	return &project{root: root, cfg: cfg, eng: eng}, nil
}

// saveState serializes the engine back to the state file.
func (pr *project) saveState() error {
	data, err := pr.eng.Snapshot()
	if err != nil {
		return err
	}
	path := p(pr.root, pr.cfg.Files.State)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}

func (pr *project) auditPath() string {
	return p(pr.root, pr.cfg.Files.AuditLog)
}

func p(root, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(root, rel)
}

// addDirFlag registers the shared --dir flag.
func addDirFlag(cmd *cobra.Command, dir *string) {
	cmd.Flags().StringVar(dir, "dir", ".", "project directory")
}
