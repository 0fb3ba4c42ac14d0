// Package server exposes a cookbook over a small HTTP JSON API. It is the
// remote end of access.Remote.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/foodie/internal/access"
	"github.com/five82/foodie/internal/cookbook"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
	requestIDHeader = "X-Request-ID"
)

// Server serves an access.Cookbook over HTTP.
type Server struct {
	book   access.Cookbook
	logger *zap.Logger
	mux    *http.ServeMux
}

// New builds a Server. A nil logger discards logs.
func New(book access.Cookbook, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{book: book, logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /api/status", s.handleStatus)
	s.mux.HandleFunc("GET /api/recipes", s.handleList)
	s.mux.HandleFunc("POST /api/recipes", s.handleCreate)
	s.mux.HandleFunc("GET /api/recipes/{name}", s.handleGet)
	s.mux.HandleFunc("PUT /api/recipes/{name}", s.handleUpdate)
	s.mux.HandleFunc("DELETE /api/recipes/{name}", s.handleDelete)
	return s
}

// Handler returns the HTTP handler with request logging applied.
func (s *Server) Handler() http.Handler {
	return s.withRequestLog(s.mux)
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("serving cookbook",
			zap.String("addr", ln.Addr().String()),
			zap.String("backend", s.book.Describe()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.logger.Info("server stopped")
		return nil
	})
	return g.Wait()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	cb, err := s.book.Cookbook(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, access.StatusResponse{
		Recipes:   cb.Len(),
		Favorites: len(cb.Favorites()),
		Backend:   s.book.Describe(),
	})
}

// handleList applies the label, fav and q filters in that order; they compose.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	cb, err := s.book.Cookbook(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	query := r.URL.Query()

	recipes := cb.Recipes()
	if label := strings.TrimSpace(query.Get("label")); label != "" {
		recipes, err = cb.WithLabel(label)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	if isTruthy(query.Get("fav")) {
		recipes = cookbook.New(recipes...).Favorites()
	}
	if q := strings.TrimSpace(query.Get("q")); q != "" {
		recipes = cookbook.New(recipes...).Search(q)
	}
	writeJSON(w, http.StatusOK, access.RecipeList{Recipes: recipes})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	cb, err := s.book.Cookbook(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	recipe, ok := cb.Get(r.PathValue("name"))
	if !ok {
		s.writeError(w, r, cookbook.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	recipe, ok := s.decodeRecipe(w, r)
	if !ok {
		return
	}
	if err := s.book.AddRecipe(r.Context(), recipe); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, recipe)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	recipe, ok := s.decodeRecipe(w, r)
	if !ok {
		return
	}
	if err := s.book.EditRecipe(r.Context(), r.PathValue("name"), recipe); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.book.DeleteRecipe(r.Context(), r.PathValue("name")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) decodeRecipe(w http.ResponseWriter, r *http.Request) (cookbook.Recipe, bool) {
	var recipe cookbook.Recipe
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&recipe); err != nil {
		s.writeError(w, r, errors.Join(access.ErrInvalid, fmt.Errorf("decode recipe: %w", err)))
		return cookbook.Recipe{}, false
	}
	return recipe, true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", w.Header().Get(requestIDHeader)),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	writeJSON(w, status, access.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, cookbook.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, cookbook.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, access.ErrInvalid), errors.Is(err, cookbook.ErrInvalidLabel), cookbook.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes payload before writing the status so an encode failure
// becomes a 500 instead of a truncated body.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(access.ErrorResponse{Error: fmt.Sprintf("encode response: %v", err)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
