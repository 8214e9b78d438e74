package httpapi

import (
	"net/http"
	"time"

	"bistro-pos-service/internal/config"
	"bistro-pos-service/internal/http/handlers"
	"bistro-pos-service/internal/middleware"
	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/queue"
	"bistro-pos-service/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter wires the full REST surface. Reads on menu, table and feedback
// collections are public; everything else needs a userid header, and
// catalog/table/user writes need the admin role on top.
func NewRouter(st *store.Store, logger *zap.Logger, cfg config.Config, queueClient *queue.Client) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(middleware.RequestID())

	if cfg.Env == "development" || len(cfg.CorsAllowedOrigins) > 0 {
		options := cors.Options{
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With", "userid"},
			AllowCredentials: true,
			MaxAge:           300,
		}
		if cfg.Env == "development" {
			options.AllowOriginFunc = func(_ *http.Request, origin string) bool { return true }
		} else {
			options.AllowedOrigins = cfg.CorsAllowedOrigins
		}
		r.Use(cors.Handler(options))
	}

	h := &handlers.Handler{Store: st, Logger: logger, Config: cfg, Queue: queueClient}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Public surface: login, guest feedback and the read-only menu/floor
	// catalog.
	r.Group(func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/feedback", h.FeedbackCreate)
		r.Get("/feedback", h.FeedbackList)
		r.Get("/areas-with-tables", h.AreasWithTables)

		handlers.RegisterRead(r, h, handlers.CategoriesCollection())
		handlers.RegisterRead(r, h, handlers.SubCategoriesCollection())
		handlers.RegisterRead(r, h, handlers.MenuItemsCollection())
		handlers.RegisterRead(r, h, handlers.AreaTablesCollection())
		handlers.RegisterRead(r, h, handlers.TablesCollection())
	})

	// Authenticated surface.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser(st))

		r.With(middleware.RequireRoles(models.RoleServe, models.RoleAdmin)).Post("/orders", h.OrderCreate)
		r.Get("/orders", h.OrdersToday)
		r.Patch("/orders/{id}", h.OrderUpdateStatus)

		r.Get("/statistics", h.StatisticsList)
		r.Get("/statistics/today", h.StatisticsToday)
		r.Get("/statistics/this-week", h.StatisticsThisWeek)
		r.Get("/statistics/best-sellers", h.StatisticsBestSellers)
		r.Get("/aggregatedStatistics", h.AggregatedStatisticsList)
		r.Get("/statisticsYears", h.StatisticsYears)

		handlers.RegisterRead(r, h, handlers.UsersCollection())
		handlers.RegisterRead(r, h, handlers.OrderHistoryCollection())

		// Catalog, floor plan and user management writes are admin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(models.RoleAdmin))

			handlers.RegisterWrite(r, h, handlers.UsersCollection())
			handlers.RegisterWrite(r, h, handlers.CategoriesCollection())
			handlers.RegisterWrite(r, h, handlers.SubCategoriesCollection())
			handlers.RegisterWrite(r, h, handlers.MenuItemsCollection())
			handlers.RegisterWrite(r, h, handlers.AreaTablesCollection())
			handlers.RegisterWrite(r, h, handlers.TablesCollection())
		})
	})

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
