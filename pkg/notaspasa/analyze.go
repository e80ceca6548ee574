package notaspasa

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/aggregate"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/parser"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/summary"
)

// Input is an uploaded workbook.
type Input struct {
	// Name is the original file name; its extension is checked against the allowlist.
	Name string
	// MIMEType is the declared media type, if any.
	MIMEType string
	// Data holds the raw workbook bytes.
	Data []byte
}

// Outcome is the single value delivered by AnalyzeAsync.
type Outcome struct {
	Result *models.Result
	Err    error
}

// Analyze checks the file type, decodes the workbook and analyzes it.
// Only a rejected file type or a decode failure is returned as an error;
// malformed rows and cells are left out of the tallies.
func Analyze(in Input, opts Options) (*models.Result, error) {
	if err := CheckFileType(in.Name, in.MIMEType); err != nil {
		opts.logger().Warn("Rejected upload",
			slog.String("book", in.Name),
			slog.String("mime", in.MIMEType))
		return nil, err
	}

	wb, err := parser.Decode(in.Name, in.Data)
	if err != nil {
		format := parser.DetectFormat(in.Name, in.Data)
		opts.logger().Error("Failed to decode workbook",
			slog.String("book", in.Name),
			slog.String("format", string(format)),
			slog.String("error", err.Error()))
		return nil, NewDecodeError(filepath.Base(in.Name), format, err)
	}

	return AnalyzeWorkbook(wb, opts), nil
}

// AnalyzeAsync runs Analyze on its own goroutine and delivers exactly one
// Outcome on the returned channel. There is no cancellation: the analysis
// runs until the workbook is processed or fails to decode.
func AnalyzeAsync(in Input, opts Options) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		res, err := Analyze(in, opts)
		ch <- Outcome{Result: res, Err: err}
	}()
	return ch
}

// AnalyzeFile reads and analyzes the workbook at path.
func AnalyzeFile(path string, opts Options) (*models.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	return Analyze(Input{Name: path, Data: data}, opts)
}

// AnalyzeWorkbook analyzes an already decoded workbook. Every call uses a
// fresh aggregation session.
func AnalyzeWorkbook(wb *models.Workbook, opts Options) *models.Result {
	start := time.Now()
	runID := uuid.NewString()
	logger := opts.logger().With(
		slog.String("run_id", runID),
		slog.String("book", wb.BookName))

	res := &models.Result{
		RunID:    runID,
		BookName: wb.BookName,
		Format:   wb.Format,
	}

	session := aggregate.NewSession(opts.resolver())
	for _, sheet := range wb.Sheets {
		if parser.IsWorkshopSheet(sheet.Name) {
			res.WorkshopSheetPresent = true
		}
		if !parser.Eligible(sheet.Name) {
			res.ExcludedSheets = append(res.ExcludedSheets, sheet.Name)
			logger.Debug("Sheet excluded", slog.String("sheet", sheet.Name))
			continue
		}

		var stats parser.ScanStats
		if n := session.AddSheet(sheet.Name, parser.Scan(sheet, &stats)); n == 0 {
			res.EmptySheets = append(res.EmptySheets, sheet.Name)
		}
		logger.Debug("Sheet scanned",
			slog.String("sheet", sheet.Name),
			slog.Int("rows", stats.Rows),
			slog.Int("students", stats.Students),
			slog.Int("blank", stats.Blank),
			slog.Int("noise", stats.Noise),
			slog.Int("invalid_name", stats.InvalidName))
	}

	records := session.Records()
	res.Subjects = session.Subjects()
	res.TotalSubjects = len(res.Subjects)
	res.TotalStudents = len(records)

	sum := summary.Summarize(records, models.Columns)
	res.General = sum.Columns
	res.Overall = sum.Overall

	if opts.ShouldIncludeSheets() {
		for _, subject := range res.Subjects {
			res.Sheets = append(res.Sheets, summary.AnalyzeSheet(subject, records, models.Columns))
		}
	}
	if opts.ShouldIncludePeriods() {
		res.Periods = summary.Periods(records, res.TotalSubjects)
	}
	if opts.ShouldIncludeStats() {
		res.Stats = summary.Statistics(records, models.Columns)
	}
	if opts.ShouldIncludeRoster() {
		res.Students = session.Roster()
	}

	logger.Info("Analysis complete",
		slog.Int("students", res.TotalStudents),
		slog.Int("subjects", res.TotalSubjects),
		slog.Int("excluded_sheets", len(res.ExcludedSheets)),
		slog.Duration("duration", time.Since(start)))
	return res
}
