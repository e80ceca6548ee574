package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/locurasdelsur/Notaspasa/internal/config"
	"github.com/locurasdelsur/Notaspasa/internal/logging"
)

// app carries state shared by subcommands once the root pre-run has
// loaded configuration.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "notaspasa",
		Short: "Analyze student grade workbooks",
		Long: `notaspasa reads Excel grade workbooks (one sheet per subject),
reconciles student names across sheets and reports how many students
pass every subject, owe up to five, or owe six or more.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.Setup(cfg.Logging, os.Stderr)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	rootCmd.AddCommand(newAnalyzeCmd(a), newServeCmd(a))
	return rootCmd
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
