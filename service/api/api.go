package api

import (
	"net/http"
	"time"

	"deepcheck_api/config"
	"deepcheck_api/pkg/credauth"
	"deepcheck_api/pkg/db"
	"deepcheck_api/pkg/logger"
	"deepcheck_api/pkg/rds"
	"deepcheck_api/pkg/store"
	"deepcheck_api/pkg/tasks"
	"deepcheck_api/service/api/admin"
	authapi "deepcheck_api/service/api/auth"
	"deepcheck_api/service/api/middleware/auth"
	"deepcheck_api/service/api/user/account"
	"deepcheck_api/service/api/user/apikey"
	"deepcheck_api/service/api/user/detection"
	"deepcheck_api/service/api/user/plan"
	"deepcheck_api/service/api/user/report"
	"deepcheck_api/service/api/user/usage"
	"deepcheck_api/service/api/user/webhook"
	v1 "deepcheck_api/service/api/v1"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
)

func Run() {
	logger.Init(config.Cfg.Log)
	defer logger.Close()

	engine, err := db.NewEngine(config.Cfg.Database)
	if err != nil {
		logger.Logger.Error("database init failed", "error", err.Error())
		return
	}
	defer db.Close(engine)

	if err := db.Sync(engine); err != nil {
		logger.Logger.Error("schema sync failed", "error", err.Error())
		return
	}

	s := store.New(engine)

	// Redis is optional: without it API keys are not rate limited and
	// webhook delivery is skipped.
	var rdb *redis.Client
	if config.Cfg.Redis.Host != "" {
		rdb, err = rds.New(config.Cfg.Redis)
		if err != nil {
			logger.Logger.Warn("redis unavailable, rate limiting disabled", "error", err.Error())
		} else {
			defer rds.Close(rdb)
			tasks.InitClient(config.Cfg.Redis)
			defer tasks.AsynqClient.Close()
		}
	}

	authority := credauth.NewLocal(s, time.Duration(config.Cfg.Auth.SessionTTLHours)*time.Hour)

	logger.Logger.Info("api server starting", "addr", config.Cfg.Server.Addr)
	if err := http.ListenAndServe(config.Cfg.Server.Addr, Router(s, authority, rdb)); err != nil {
		logger.Logger.Error("api server stopped", "error", err.Error())
	}
}

// Router wires every route group. Split out from Run so tests can mount the
// full surface on an httptest server.
func Router(s *store.Store, authority credauth.Authority, rdb *redis.Client) *chi.Mux {
	cfg := config.Cfg
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	allowedOrigins := cfg.Server.CorsOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", auth.ApiKeyHeader},
		ExposedHeaders:   []string{"Link", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authHandler := &authapi.Handler{Authority: authority}
	accountHandler := &account.Handler{Store: s}
	detectionHandler := &detection.Handler{Store: s}
	apikeyHandler := &apikey.Handler{Store: s}
	usageHandler := &usage.Handler{Store: s}
	planHandler := &plan.Handler{Store: s}
	webhookHandler := &webhook.Handler{Store: s}
	reportHandler := &report.Handler{Store: s}
	adminHandler := &admin.Handler{Store: s}
	v1Handler := &v1.Handler{
		Store:    s,
		Asynq:    tasks.AsynqClient,
		CacheTTL: time.Duration(cfg.Cache.TTLHours) * time.Hour,
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup/email", authHandler.SignupEmail)
		r.Post("/signin/email", authHandler.SigninEmail)
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Use(auth.RequireSession(s))

		r.Get("/profile", accountHandler.Profile)
		r.Delete("/account", accountHandler.Delete)

		r.Route("/detections", func(r chi.Router) {
			r.Get("/", detectionHandler.List)
			r.Get("/{id}", detectionHandler.Get)
			r.Patch("/{id}", detectionHandler.Annotate)
			r.Delete("/{id}", detectionHandler.Delete)
		})

		r.Route("/api_key", func(r chi.Router) {
			r.Get("/", apikeyHandler.List)
			r.Post("/", apikeyHandler.Create)
			r.Delete("/{id}", apikeyHandler.Delete)
		})

		r.Get("/usage", usageHandler.GetCurrentUsage)
		r.Get("/usage_history", usageHandler.GetUsageHistory)

		r.Get("/current_plan", planHandler.CurrentPlan)
		r.Get("/plans", planHandler.ListPlans)

		r.Route("/webhook", func(r chi.Router) {
			r.Get("/", webhookHandler.GetConfig)
			r.Post("/", webhookHandler.AddConfig)
			r.Put("/{id}", webhookHandler.UpdateConfig)
			r.Delete("/{id}", webhookHandler.DeleteConfig)
		})

		r.Route("/report", func(r chi.Router) {
			r.Get("/", reportHandler.List)
			r.Post("/", reportHandler.Create)
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.AuthApiKey(s, rdb))

		r.Post("/detections", v1Handler.IngestDetection)
		r.Get("/cache/{frameHash}", v1Handler.CacheLookup)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.RequireAdmin([]byte(cfg.Auth.AdminJwtSecret)))

		r.Get("/reports", adminHandler.ListReports)
		r.Put("/reports/{id}", adminHandler.ModerateReport)
	})

	return r
}
