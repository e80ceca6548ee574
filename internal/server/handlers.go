package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/output"
)

// uploadField is the multipart field carrying the workbook.
const uploadField = "file"

var errMissingFile = errors.New("multipart field \"file\" is required")

// handleAnalyze returns the analysis result as JSON.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	res, ok := s.analyze(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, res)
}

// handleReport returns the plain-text report.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	res, ok := s.analyze(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", output.FormatText.ContentType())
	if err := output.WriteText(w, res); err != nil {
		s.logger.Error("Failed to write report",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("error", err.Error()))
	}
}

// analyze reads the upload and runs the analysis, writing an error
// response and returning false when either step fails.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) (*models.Result, bool) {
	mode := notaspasa.Mode(s.report.Mode)
	if q := r.URL.Query().Get("mode"); q != "" {
		m, err := notaspasa.ParseMode(q)
		if err != nil {
			render.Render(w, r, newProblem(r, http.StatusBadRequest, TypeBadRequest, "Invalid mode", err))
			return nil, false
		}
		mode = m
	}

	in, err := s.readUpload(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			render.Render(w, r, problemFor(r, err))
		} else {
			render.Render(w, r, newProblem(r, http.StatusBadRequest, TypeBadRequest, "Invalid upload", err))
		}
		return nil, false
	}

	opts := notaspasa.Options{
		Mode:   mode,
		Logger: s.logger.With(slog.String("request_id", middleware.GetReqID(r.Context()))),
	}
	start := time.Now()
	res, err := notaspasa.Analyze(in, opts)
	students := 0
	if res != nil {
		students = res.TotalStudents
	}
	s.metrics.observe(outcomeOf(err), time.Since(start), students)
	if err != nil {
		render.Render(w, r, problemFor(r, err))
		return nil, false
	}
	return res, true
}

func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (notaspasa.Input, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		return notaspasa.Input{}, fmt.Errorf("parse form: %w", err)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return notaspasa.Input{}, errMissingFile
		}
		return notaspasa.Input{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return notaspasa.Input{}, fmt.Errorf("read upload: %w", err)
	}
	return notaspasa.Input{
		Name:     header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}
