package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/apdd/apdd-server/internal/api/http/handler"
	"github.com/apdd/apdd-server/internal/api/http/middleware"
	"github.com/apdd/apdd-server/internal/logger"
	"github.com/apdd/apdd-server/internal/service"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize = 1 << 20 // 1 MiB

// Router wires handlers and middleware into the HTTP surface.
type Router struct {
	authService    *service.Auth
	leadService    *service.Lead
	postService    *service.Post
	reportService  *service.Report
	uploadService  *service.Upload
	db             handler.Pinger
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates a new Router instance. uploadService may be nil when object
// storage is not configured.
func New(
	authService *service.Auth,
	leadService *service.Lead,
	postService *service.Post,
	reportService *service.Report,
	uploadService *service.Upload,
	db handler.Pinger,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		leadService:    leadService,
		postService:    postService,
		reportService:  reportService,
		uploadService:  uploadService,
		db:             db,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the route tree with all middleware attached.
func (rt *Router) Register() http.Handler {
	authHandler := handler.NewAuth(rt.authService, rt.logger)
	leadHandler := handler.NewLead(rt.leadService, rt.logger)
	postHandler := handler.NewPost(rt.postService, rt.logger)
	reportHandler := handler.NewReport(rt.reportService, rt.logger)
	// A nil *service.Upload must land in the handler as a nil interface so
	// the unavailable check fires.
	uploadHandler := handler.NewUpload(nil, rt.logger)
	if rt.uploadService != nil {
		uploadHandler = handler.NewUpload(rt.uploadService, rt.logger)
	}
	healthHandler := handler.NewHealth(rt.db, rt.logger)

	logging := middleware.NewLogging(rt.logger)
	authenticate := middleware.NewAuthenticate(rt.authService, rt.logger)
	authenticateExport := middleware.NewAuthenticateWithQueryToken(rt.authService, rt.logger)
	loginLimiter := middleware.NewLoginRateLimit()

	// Applied per route: the cap covers JSON bodies only, the multipart
	// upload route carries its own larger limit.
	jsonBody := chimiddleware.RequestSize(maxBodySize)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(logging.Handle)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)
		r.With(jsonBody).Post("/lead", leadHandler.Submit)
		r.With(jsonBody, loginLimiter.Handle).Post("/login", authHandler.Login)
		r.Get("/posts", postHandler.List)
		r.Get("/posts/{id}", postHandler.Get)

		r.Route("/admin", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authenticate.Handle)
				r.Post("/logout", authHandler.Logout)
				r.With(jsonBody).Post("/posts", postHandler.Create)
				r.With(jsonBody).Put("/posts/{id}", postHandler.Update)
				r.Delete("/posts/{id}", postHandler.Delete)
				r.Get("/leads", leadHandler.List)
				r.Get("/stats", reportHandler.Stats)
				r.Get("/chart-data", reportHandler.ChartData)
				r.Post("/uploads", uploadHandler.Store)
			})

			// The export route also accepts ?token= so the dashboard can
			// trigger a plain browser download.
			r.With(authenticateExport.Handle).Get("/leads/export", reportHandler.Export)
		})

		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"ok":false,"error":"Rota não encontrada"}`))
		})
	})

	return r
}
