// Package gateway is the HTTP persistence gateway: it accepts framework
// drafts, stores them with their rendered documents, and serves them back.
package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/ports"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/usecase"
)

const (
	// MaxBodyBytes bounds save requests.
	MaxBodyBytes int64 = 1 << 20

	shutdownTimeout = 5 * time.Second
)

type Server struct {
	engine   *gin.Engine
	save     *usecase.SaveFramework
	catalog  *usecase.FrameworkCatalog
	metrics  *Metrics
	log      *slog.Logger
	storage  string
	now      func() time.Time
	saveOpts []usecase.SaveOption
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStorageName is reported by the health endpoint.
func WithStorageName(name string) Option {
	return func(s *Server) { s.storage = name }
}

// WithSaveOptions forwards options (clock, id source) to the save use case.
func WithSaveOptions(opts ...usecase.SaveOption) Option {
	return func(s *Server) { s.saveOpts = append(s.saveOpts, opts...) }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func New(store ports.FrameworkStore, opts ...Option) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		metrics: NewMetrics(),
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
		storage: "fs",
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.save = usecase.NewSaveFramework(store, s.saveOpts...)
	s.catalog = usecase.NewFrameworkCatalog(store)
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(recovery(s.log), requestID(), accessLog(s.log), s.metrics.observe())

	api := r.Group("/api")
	api.POST("/save-framework", bodyLimit(MaxBodyBytes), s.handleSave)
	api.GET("/frameworks", s.handleList)
	api.GET("/framework/:id", s.handleGet)
	api.GET("/framework/:id/document", s.handleDocument)
	api.GET("/health", s.handleHealth)

	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	return r
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) Metrics() *Metrics { return s.metrics }

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then drains in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("gateway.listening", "addr", ln.Addr().String(), "storage", s.storage)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("gateway.shutdown")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
