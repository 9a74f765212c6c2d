package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/GEON1999/PomoFarm/internal/clock"
	"github.com/GEON1999/PomoFarm/internal/handler"
	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/metrics"
	"github.com/GEON1999/PomoFarm/internal/sse"
)

// Options are the listener and security settings of the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Deps are the services the routes are wired to
type Deps struct {
	Game    handler.GameService
	Catalog handler.ShopItemLister
	Clock   clock.Clock
	Storage handler.Pinger // nil when the backend needs no connection
	Saves   handler.SnapshotLoader
	Hub     *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the full route tree. Exposed so tests can drive it without a listener.
func NewRouter(opts Options, deps Deps) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Storage))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	// Live state stream for the browser
	r.Get(EventsPath, sse.Handler(deps.Hub))

	game := handler.NewGameHandler(deps.Game, deps.Catalog)
	backups := handler.NewBackupHandler(deps.Game, deps.Saves, deps.Clock)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", game.HandleGetState)
		r.Patch("/settings", game.HandleUpdateSettings)
		r.Post("/reset", game.HandleResetAll)

		r.Route("/timer", func(r chi.Router) {
			r.Post("/start", game.HandleStartTimer)
			r.Post("/pause", game.HandlePauseTimer)
			r.Post("/reset", game.HandleResetTimer)
			r.Post("/mode", game.HandleSetMode)
			r.Put("/durations", game.HandleUpdateDurations)
			r.Post("/accumulated/reset", game.HandleResetAccumulated)
		})

		r.Route("/farm", func(r chi.Router) {
			r.Post("/plots/{"+handler.URLParamPlotID+"}/plant", game.HandlePlant)
			r.Post("/plots/{"+handler.URLParamPlotID+"}/harvest", game.HandleHarvest)
			r.Post("/animals/{"+handler.URLParamAnimalID+"}/collect", game.HandleCollectProduct)
			r.Post("/animals/{"+handler.URLParamAnimalID+"}/feed", game.HandleFeed)
			r.Post("/update", game.HandleUpdateFarm)
		})

		r.Route("/shop", func(r chi.Router) {
			r.Get("/", game.HandleGetShop)
			r.Post("/sell", game.HandleSell)
			r.Post("/buy", game.HandleBuy)
			r.Post("/refresh", game.HandleRefreshShop)
		})

		r.Post("/gacha/pull", game.HandlePull)

		r.Route("/backup", func(r chi.Router) {
			r.Get("/", backups.HandleExport)
			r.Post("/", backups.HandleImport)
		})
	})

	// Swagger documentation
	r.Get(SwaggerPathPrefix+"*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health checks and scrapes
		for _, path := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
