// Package server exposes letter submission over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/reasonandrage/letterbox"
)

// MaxBodyBytes bounds a request body.
const MaxBodyBytes = 1 << 20

// RequestIDHeader carries the request id on every response.
const RequestIDHeader = "X-Request-ID"

// Shutdown and timeout defaults for Run.
const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Submitter is the part of letterbox.Service the server needs.
type Submitter interface {
	Submit(ctx context.Context, in letterbox.Submission) (*letterbox.Result, error)
	Preview(ctx context.Context, in letterbox.Submission) (*letterbox.Preview, error)
}

// Server serves the submission API.
type Server struct {
	svc    Submitter
	logger *slog.Logger
}

// New creates a Server. A nil logger means slog.Default().
func New(svc Submitter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, logger: logger}
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/submit", s.post(s.handleSubmit))
	mux.HandleFunc("/api/preview", s.post(s.handlePreview))
	return s.withRequestID(mux)
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type submitResponse struct {
	Success  bool   `json:"success"`
	PRURL    string `json:"pr_url"`
	PRNumber int    `json:"pr_number"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decode(w, r)
	if !ok {
		return
	}

	res, err := s.svc.Submit(r.Context(), in)
	if err != nil {
		s.fail(w, r, "submission failed", err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{Success: true, PRURL: res.URL, PRNumber: res.Number})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	in, ok := s.decode(w, r)
	if !ok {
		return
	}

	p, err := s.svc.Preview(r.Context(), in)
	if err != nil {
		s.fail(w, r, "preview failed", err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// post rejects every method but POST with a JSON 405.
func (s *Server) post(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}
		next(w, r)
	}
}

// decode reads a Submission from the body. Unknown fields are ignored.
// On failure it writes the response and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (letterbox.Submission, bool) {
	var in letterbox.Submission

	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return in, false
		}
		s.logger.DebugContext(r.Context(), "malformed request body", "request_id", RequestID(r.Context()), "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: letterbox.ErrValidation.Error() + ": malformed JSON body"})
		return in, false
	}
	return in, true
}

// fail logs err once and writes the JSON error envelope.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := statusFor(err)
	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	s.logger.Log(r.Context(), level, msg, "request_id", RequestID(r.Context()), "status", status, "error", err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, letterbox.ErrValidation):
		return http.StatusBadRequest
	default:
		// Configuration, structure, upstream and unclassified errors
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type ctxKey struct{}

// RequestID returns the request id stored by the server, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// withRequestID tags every request and response with an id. A valid UUID
// sent by the client is kept.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))

		s.logger.Info("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// statusRecorder captures the status code for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
