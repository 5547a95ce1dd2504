package middlewares

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

const InternalErrorMessage = "An error occurred processing your request"

// HandlerFunc is an http handler that hands unexpected failures back to the
// boundary instead of writing a response for them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorBoundary is the one place unhandled failures become a 500. It covers
// returned errors (Handle) and panics (Recover).
type ErrorBoundary struct {
	logger *slog.Logger
}

func NewErrorBoundary(logger *slog.Logger) *ErrorBoundary {
	return &ErrorBoundary{logger: logger}
}

func (b *ErrorBoundary) Handle(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := wrapWriter(w)
		if err := fn(rec, r); err != nil {
			b.fail(rec, r, err)
		}
	})
}

func (b *ErrorBoundary) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := wrapWriter(w)
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}

			err, ok := v.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", v)
			}
			b.fail(rec, r, err)
		}()

		next.ServeHTTP(rec, r)
	})
}

func (b *ErrorBoundary) fail(w *statusRecorder, r *http.Request, err error) {
	b.logger.ErrorContext(r.Context(), "Exception caught: "+err.Error(),
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", RequestIDFrom(r.Context()),
	)

	if w.wroteHeader {
		return
	}

	WriteInternalError(w)
}

func WriteInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": InternalErrorMessage})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func wrapWriter(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if !s.wroteHeader {
		s.wroteHeader = true
	}
	return s.ResponseWriter.Write(b)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
