// Package server exposes the tagging service as a JSON HTTP API:
//
//	POST /tag   body: {"sentence":"..."}   →   {"tokens":[{"<surface>":"<tag>",...},...]}
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/kelime-lab/turkce/internal/config"
	"github.com/kelime-lab/turkce/internal/logger"
	"github.com/kelime-lab/turkce/internal/tagger"
)

// TagService tags one sentence within the caller's context.
type TagService interface {
	Tag(ctx context.Context, sentence string) ([]tagger.TaggedWord, error)
}

// Server is the HTTP front end of a TagService.
type Server struct {
	svc TagService
	cfg config.Config
}

// New creates a Server. The service is shared by all requests.
func New(svc TagService, cfg config.Config) *Server {
	return &Server{svc: svc, cfg: cfg}
}

// Handler returns the routed handler wrapped in the CORS policy.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
	})
	r.HandleFunc("/tag", handleTag(s.svc, s.cfg.Server.MaxBodyBytes)).Methods(http.MethodPost)

	// wrapped outside the router so unmatched requests pass through too
	return cors.New(corsOptions(s.cfg.CORS)).Handler(requestID(accessLog(recoverer(r))))
}

// corsOptions translates the configuration. A "*" origin is echoed back
// instead of sent literally, since browsers reject a literal wildcard on
// credentialed requests.
func corsOptions(c config.CORS) cors.Options {
	opts := cors.Options{
		AllowedMethods:   c.AllowedMethods,
		AllowedHeaders:   c.AllowedHeaders,
		AllowCredentials: c.AllowCredentials,
		MaxAge:           c.MaxAge,
		ExposedHeaders:   []string{requestIDHeader},
	}
	if slices.Contains(c.AllowedOrigins, "*") {
		opts.AllowOriginFunc = func(string) bool { return true }
	} else {
		opts.AllowedOrigins = c.AllowedOrigins
	}
	return opts
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout.Std(),
		ErrorLog:          logger.StdLog(),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	logger.Info("listening on %s", ln.Addr())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout.Std())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
