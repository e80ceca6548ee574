package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa"
)

// Problem types.
const (
	TypeBadRequest      = "/errors/bad-request"
	TypeUnsupportedFile = "/errors/unsupported-file-type"
	TypeUndecodable     = "/errors/undecodable-workbook"
	TypePayloadTooLarge = "/errors/payload-too-large"
	TypeInternal        = "/errors/internal"
)

// Values of the outcome label of notaspasa_analyses_total.
const (
	outcomeOK            = "ok"
	outcomeRejected      = "rejected"
	outcomeDecodeFailure = "decode_failed"
)

// Problem is an RFC 7807 error body.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	TraceID  string `json:"trace_id,omitempty"`
}

// Render implements the render.Renderer interface.
func (p *Problem) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, p.Status)
	return nil
}

func newProblem(r *http.Request, status int, typ, title string, err error) *Problem {
	p := &Problem{
		Type:     typ,
		Title:    title,
		Status:   status,
		Instance: r.URL.Path,
		TraceID:  middleware.GetReqID(r.Context()),
	}
	if err != nil {
		p.Detail = err.Error()
	}
	return p
}

// problemFor maps an analysis error to its HTTP problem.
func problemFor(r *http.Request, err error) *Problem {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, notaspasa.ErrUnsupportedFileType):
		return newProblem(r, http.StatusUnsupportedMediaType, TypeUnsupportedFile, "Unsupported file type", err)
	case errors.Is(err, notaspasa.ErrDecodeFailed):
		return newProblem(r, http.StatusUnprocessableEntity, TypeUndecodable, "Workbook could not be read", err)
	case errors.As(err, &tooLarge):
		return newProblem(r, http.StatusRequestEntityTooLarge, TypePayloadTooLarge, "Upload too large", err)
	default:
		return newProblem(r, http.StatusInternalServerError, TypeInternal, "Internal error", err)
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, notaspasa.ErrDecodeFailed):
		return outcomeDecodeFailure
	default:
		return outcomeRejected
	}
}
