// Package notaspasa analyzes student grade workbooks.
package notaspasa

import (
	"fmt"
	"log/slog"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/names"
)

// Mode represents the analysis detail level.
type Mode string

const (
	// ModeLight computes the general and overall summaries only.
	ModeLight Mode = "light"
	// ModeStandard adds per-sheet analyses and the period report.
	ModeStandard Mode = "standard"
	// ModeVerbose adds grade statistics and the student roster with merged spellings.
	ModeVerbose Mode = "verbose"
)

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLight, ModeStandard, ModeVerbose:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", s)
	}
}

// Options configures analysis behavior.
type Options struct {
	// Mode specifies the analysis mode (light, standard, verbose).
	Mode Mode
	// IncludeSheets specifies whether to include per-sheet analyses.
	// If nil, defaults to false for light mode, true otherwise.
	IncludeSheets *bool
	// IncludePeriods specifies whether to include the TEA/TEP/TED period report.
	// If nil, defaults to false for light mode, true otherwise.
	IncludePeriods *bool
	// IncludeStats specifies whether to include grade statistics.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeStats *bool
	// IncludeRoster specifies whether to include the student roster.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeRoster *bool
	// Logger receives progress logs. If nil, slog.Default() is used.
	Logger *slog.Logger
	// NewResolver builds the name resolver of each run. If nil, names.NewPool is used.
	NewResolver func() names.Resolver
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeSheets returns whether to include per-sheet analyses.
func (o Options) ShouldIncludeSheets() bool {
	if o.IncludeSheets != nil {
		return *o.IncludeSheets
	}
	return o.Mode != ModeLight
}

// ShouldIncludePeriods returns whether to include the period report.
func (o Options) ShouldIncludePeriods() bool {
	if o.IncludePeriods != nil {
		return *o.IncludePeriods
	}
	return o.Mode != ModeLight
}

// ShouldIncludeStats returns whether to include grade statistics.
func (o Options) ShouldIncludeStats() bool {
	if o.IncludeStats != nil {
		return *o.IncludeStats
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludeRoster returns whether to include the student roster.
func (o Options) ShouldIncludeRoster() bool {
	if o.IncludeRoster != nil {
		return *o.IncludeRoster
	}
	return o.Mode == ModeVerbose
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) resolver() names.Resolver {
	if o.NewResolver != nil {
		return o.NewResolver()
	}
	return names.NewPool()
}
