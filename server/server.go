// Package server exposes the rating scheduler over HTTP: it logs user
// actions, starts rating flows and delivers the flow's dialogs to web
// clients, acting as the scheduler's dialog presenter.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/nudge/pkg/rating"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/rater.go -pkg mocks -skip-ensure -fmt goimports . Rater

// maxEvents bounds the in-memory flow event history
const maxEvents = 100

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	rater   Rater
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
	baseCtx    context.Context // server lifetime, parents background flows

	flowActive atomic.Bool

	dialogMu sync.Mutex
	pending  *pendingDialog

	eventsMu sync.Mutex
	events   []FlowEvent
}

// Rater interface for rating scheduler operations
type Rater interface {
	LogUserAction(ctx context.Context) error
	StartRatingFlow(ctx context.Context, listener rating.Listener) error
	State(ctx context.Context) (rating.State, error)
	Reset(ctx context.Context) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// FlowEvent is one listener event of a rating flow as reported by the API
type FlowEvent struct {
	Flow  string    `json:"flow"`
	Event string    `json:"event"`
	Time  time.Time `json:"time"`
}

// New initializes a new server instance
func New(cfg ConfigProvider, rater Rater, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		rater:   rater,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.baseCtx = ctx
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("nudge", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64K, requests are tiny
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /action", s.actionHandler)
		r.HandleFunc("POST /flow", s.flowHandler)
		r.HandleFunc("GET /dialog", s.dialogHandler)
		r.HandleFunc("POST /dialog/{id}", s.answerHandler)
		r.HandleFunc("GET /events", s.eventsHandler)
		r.HandleFunc("POST /reset", s.resetHandler)
	})
}

// flowContext returns the context background flows run under, server
// lifetime when running, plain background in tests calling handlers directly
func (s *Server) flowContext() context.Context {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.baseCtx != nil {
		return s.baseCtx
	}
	return context.Background()
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
