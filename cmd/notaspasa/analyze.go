package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/output"
)

type analyzeFlags struct {
	outputPath string
	pretty     bool
	mode       string
	format     string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var f analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze [input.xlsx]",
		Short: "Analyze a grade workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags left unset fall back to the configured report defaults.
			if !cmd.Flags().Changed("mode") {
				f.mode = a.cfg.Report.Mode
			}
			if !cmd.Flags().Changed("format") {
				f.format = a.cfg.Report.Format
			}
			if !cmd.Flags().Changed("pretty") {
				f.pretty = a.cfg.Report.Pretty
			}
			return runAnalyze(cmd, a, f, args[0])
		},
	}

	cmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&f.mode, "mode", "standard", "Analysis mode: light, standard, verbose")
	cmd.Flags().StringVar(&f.format, "format", "json", "Output format: json, yaml, text")
	return cmd
}

func runAnalyze(cmd *cobra.Command, a *app, f analyzeFlags, inputPath string) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	mode, err := notaspasa.ParseMode(f.mode)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(f.format)
	if err != nil {
		return err
	}

	res, err := notaspasa.AnalyzeFile(inputPath, notaspasa.Options{Mode: mode, Logger: a.logger})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	var buf bytes.Buffer
	if err := output.Write(&buf, res, format, f.pretty); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd, f.outputPath, buf.Bytes())
}
