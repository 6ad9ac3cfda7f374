// Copyright 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package web serves the upload form and the table view of the uploaded spreadsheet.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"

	"github.com/UNO-SOFT/sheetview"
)

// DefaultMaxUpload is the default upload size limit.
const DefaultMaxUpload = 10 << 20

const sessionCookie = "xlsview_session"

// Config of the Server.
type Config struct {
	// Location the serial dates are shown in; nil is UTC.
	Location *time.Location
	// Addr to listen on.
	Addr string
	// Locale of the dates when the browser sends no Accept-Language.
	Locale sheetview.Locale
	// MaxUpload is the upload size limit in bytes.
	MaxUpload int64
	// SessionTTL is how long an idle session keeps its dataset.
	SessionTTL time.Duration
}

// Server is the web UI.
type Server struct {
	logger *slog.Logger
	store  *Store
	cfg    Config
}

// New returns a Server with an empty session store.
func New(cfg Config, logger *slog.Logger) *Server {
	if cfg.MaxUpload <= 0 {
		cfg.MaxUpload = DefaultMaxUpload
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, logger: logger, store: NewStore(cfg.SessionTTL)}
}

// Handler returns the routes of the UI, gzip compressed.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, s.logRequests, middleware.Recoverer)
	r.Get("/", s.index)
	r.Post("/upload", s.upload)
	r.Get("/api/dataset", s.dataset)
	return gzhttp.GzipHandler(r)
}

// ListenAndServe serves on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "address", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down http server")
	if err := srv.Shutdown(shutCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.LogAttrs(r.Context(), slog.LevelDebug, "request",
			slog.String("id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("dur", time.Since(start)),
		)
	})
}

// sessionID returns the session of the browser, starting a new one if it has none.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name: sessionCookie, Value: id, Path: "/",
		HttpOnly: true, SameSite: http.SameSiteLaxMode,
	})
	return id
}

// normalizer uses the browser's language for the dates, or the configured one.
func (s *Server) normalizer(r *http.Request) sheetview.Normalizer {
	n := sheetview.Normalizer{Locale: s.cfg.Locale, Location: s.cfg.Location}
	if al := r.Header.Get("Accept-Language"); al != "" {
		n.Locale = sheetview.ParseLocale(al)
	}
	return n
}
