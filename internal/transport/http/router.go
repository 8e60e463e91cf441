package http

import (
	"net/http"

	"github.com/colis-timer-api/internal/application/employee"
	"github.com/colis-timer-api/internal/application/health"
	"github.com/colis-timer-api/internal/application/session"
	"github.com/colis-timer-api/internal/application/supermarket"
	"github.com/colis-timer-api/internal/config"
	"github.com/colis-timer-api/internal/transport/http/handler"
	appmiddleware "github.com/colis-timer-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	if cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.StripSlashes)
	r.Use(chimiddleware.RequestLogger(&chimiddleware.DefaultLogFormatter{
		Logger:  logrus.StandardLogger(),
		NoColor: !cfg.IsDevelopment(),
	}))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	writeLimit := rate.Limit(cfg.SessionWriteRate)
	if cfg.SessionWriteRate <= 0 {
		writeLimit = rate.Inf
	}
	sessionWriteRL := appmiddleware.NewRateLimiter(writeLimit, cfg.SessionWriteBurst)

	healthSvc := health.NewService(deps.ClockRepo)
	sessionSvc := session.NewService(deps.SessionRepo)
	supermarketSvc := supermarket.NewService(deps.SupermarketRepo)
	employeeSvc := employee.NewService(deps.EmployeeRepo)

	healthH := handler.NewHealthHandler(healthSvc)
	sessionH := handler.NewSessionHandler(sessionSvc)
	supermarketH := handler.NewSupermarketHandler(supermarketSvc)
	employeeH := handler.NewEmployeeHandler(employeeSvc)

	r.Get("/health-check/{action}", healthH.Ping)
	r.Get("/test-db", healthH.TestDB)

	r.Get("/sessions", sessionH.List)
	r.With(sessionWriteRL.Limit).Post("/sessions", sessionH.Create)
	r.Get("/sessions/details", sessionH.ListDetailed)

	r.Get("/supermarches", supermarketH.List)
	r.Get("/employes", employeeH.List)

	// Everything the API does not claim belongs to the frontend.
	spa := spaHandler(cfg.StaticDir, cfg.StaticIndex)
	r.NotFound(spa)
	r.MethodNotAllowed(spa)

	return r
}
