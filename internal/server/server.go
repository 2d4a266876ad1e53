package server

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/DisruptPoints_Go/internal/database"
	"github.com/osse101/DisruptPoints_Go/internal/handler"
	"github.com/osse101/DisruptPoints_Go/internal/item"
	"github.com/osse101/DisruptPoints_Go/internal/logger"
	"github.com/osse101/DisruptPoints_Go/internal/metrics"
	"github.com/osse101/DisruptPoints_Go/internal/progression"
)

// Server is the HTTP face of the engine, consumed by platform gateways.
type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer wires the chi router: public health/metrics endpoints, and
// the API-key protected /api/v1 engine routes.
func NewServer(port int, apiKey string, dbPool database.Pool, svc progression.Service, catalog *item.Catalog) *Server {
	r := chi.NewRouter()

	r.Use(authMiddleware(apiKey))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/account", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterAccount(svc))
			r.Get("/", handler.HandleGetAccount(svc))
			r.Post("/remove", handler.HandleRemoveAccount(svc))
			r.Get("/inventory", handler.HandleGetInventory(svc))
			r.Get("/energy", handler.HandleGetEnergy(svc))
		})

		r.Get("/leaderboard", handler.HandleGetLeaderboard(svc))

		r.Route("/points", func(r chi.Router) {
			r.Post("/xp", handler.HandleAwardXP(svc))
			r.Post("/award", handler.HandleAwardPoints(svc))
			r.Post("/gift", handler.HandleGift(svc))
			r.Post("/gamble", handler.HandleGamble(svc))
		})

		r.Route("/item", func(r chi.Router) {
			r.Get("/catalog", handler.HandleGetCatalog(catalog))
			r.Post("/buy", handler.HandleBuyItem(svc))
			r.Post("/consume", handler.HandleConsumeItem(svc))
			r.Post("/remove", handler.HandleRemoveItem(svc))
			r.Post("/read", handler.HandleReadItem(svc))
			r.Post("/cheers", handler.HandleCheers(svc))
			r.Post("/explore", handler.HandleExplore(svc))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// publicPath reports whether a path is served without the API key.
func publicPath(path string) bool {
	return strings.HasPrefix(path, "/healthz") ||
		strings.HasPrefix(path, "/readyz") ||
		strings.HasPrefix(path, "/metrics") ||
		strings.HasPrefix(path, "/version")
}

// authMiddleware enforces the X-API-Key header on all engine routes.
func authMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				slog.Warn("Unauthorized request", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and scrapes would drown out real traffic.
		if publicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
