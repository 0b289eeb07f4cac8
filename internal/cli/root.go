// Package cli implements the command-line interface for cubesolve.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolve/internal/config"
	"github.com/seamusw/cubesolve/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	cfgPath string
	dbPath  string
	noColor bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolve",
	Short: "Layer-by-layer Rubik's cube solver",
	Long: `cubesolve - a layer-by-layer Rubik's cube solver for the terminal.

Scramble a virtual cube, solve it step by step with human-readable
explanations, replay solutions interactively, and keep a history of
past solves.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: ~/.cubesolve/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesolve/cubesolve.db)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// loadConfig reads the config file and folds in global flag overrides.
func loadConfig() (*config.Config, error) {
	path := cfgPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if noColor {
		cfg.ColorOutput = false
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	return cfg, nil
}

// openDB opens the solve history database.
func openDB(cfg *config.Config) (*storage.DB, error) {
	if cfg.DatabasePath != "" {
		return storage.Open(cfg.DatabasePath)
	}
	return storage.OpenDefault()
}
