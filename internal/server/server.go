package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/MakeServer_Go/docs" // registers the swagger document
	"github.com/osse101/MakeServer_Go/internal/handler"
	"github.com/osse101/MakeServer_Go/internal/logger"
	"github.com/osse101/MakeServer_Go/internal/makerspace"
	"github.com/osse101/MakeServer_Go/internal/metrics"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	TrustedProxies []string
	MaxBodyBytes   int64
	// Notifier receives repeated failed-auth alerts. May be nil.
	Notifier Notifier
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc makerspace.Service, ready handler.ReadinessChecker) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.Notifier)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(ready))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	checkouts := handler.NewCheckoutHandler(svc)
	users := handler.NewUserHandler(svc)
	printers := handler.NewPrinterHandler(svc)
	storage := handler.NewStorageHandler(svc)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/help", handler.HandleHelp())
		r.Get("/openapi.yaml", handler.HandleOpenAPIYAML())

		r.Get("/inventory", checkouts.HandleGetInventory)
		r.Get("/quizzes/{api_key}", users.HandleGetQuizzes)

		r.Route("/users", func(r chi.Router) {
			r.Get("/all/{api_key}", users.HandleGetAllUsers)
			r.Get("/info/{id_number}", users.HandleGetUserInfo)
		})

		r.Route("/checkouts", func(r chi.Router) {
			r.Get("/log/{api_key}", checkouts.HandleGetCheckoutLog)
			r.Post("/add_entry/{id_number}/{item_name}/{api_key}", checkouts.HandleCheckoutByName)
			r.Post("/add_entry_uuid/{id_number}/{item_uuid}/{api_key}", checkouts.HandleCheckoutByUUID)
			r.Post("/return/{entry_id}/{api_key}", checkouts.HandleReturnCheckout)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/set_level/{id_number}/{auth_level}/{api_key}", users.HandleSetAuthLevel)
			r.Post("/set_quiz/{id_number}/{quiz_name}/{passed}/{api_key}", users.HandleSetQuiz)
		})

		r.Route("/printers", func(r chi.Router) {
			r.Post("/update_status", printers.HandleUpdateStatus)
			r.Get("/{api_key}", printers.HandleGetPrinters)
		})

		r.Route("/student_storage", func(r chi.Router) {
			r.Get("/user/{id_number}", storage.HandleGetForUser)
			r.Get("/all/{api_key}", storage.HandleGetAll)
			r.Post("/add_entry/{id_number}/{slot_id}/{api_key}", storage.HandleCheckout)
			r.Post("/renew/{id_number}/{slot_id}", storage.HandleRenew)
			r.Post("/renew/{id_number}/{slot_id}/{api_key}", storage.HandleRenew)
			r.Post("/release/{id_number}/{slot_id}", storage.HandleRelease)
			r.Post("/release/{id_number}/{slot_id}/{api_key}", storage.HandleRelease)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(logger.HeaderRequestID, requestID)

		log := logger.FromContext(ctx)

		// The path is only logged once routing has identified the key segment
		log.Debug(LogMsgRequestStarted,
			"method", r.Method,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"route", metrics.RoutePattern(r),
			"path", redactedPath(r),
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		} else {
			out[k] = v
		}
	}
	return out
}

// redactedPath returns the escaped request path with the api_key segment
// replaced. Requests that matched no route are not logged by path at all.
func redactedPath(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.RoutePattern() == "" {
		return metrics.UnmatchedRoute
	}
	path := r.URL.EscapedPath()
	key := rctx.URLParam(ParamAPIKey)
	if key == "" {
		return path
	}

	segs := strings.Split(path, "/")
	for i := len(segs) - 1; i >= 0; i-- {
		unescaped, err := url.PathUnescape(segs[i])
		if segs[i] == key || (err == nil && unescaped == key) {
			segs[i] = RedactedValue
			break
		}
	}
	return strings.Join(segs, "/")
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
