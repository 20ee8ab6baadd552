package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	api "github.com/mundero/ceps-service/internal/api/http"
	"github.com/mundero/ceps-service/internal/auth"
	authmw "github.com/mundero/ceps-service/internal/auth/middleware"
	"github.com/mundero/ceps-service/internal/config"
	"github.com/mundero/ceps-service/internal/db"
	"github.com/mundero/ceps-service/internal/events"
	"github.com/mundero/ceps-service/internal/rbac"
	"github.com/mundero/ceps-service/internal/session"
	"github.com/mundero/ceps-service/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	var sink events.Sink = events.NopSink{}
	if cfg.EnableEvents {
		sink = events.NewSQLSink(dbh, cfg.SiteID)
	}

	store := session.NewSQLStore(dbh)
	mgr := session.NewManager(store, sink, time.Now)
	go mgr.RunAutosave(context.Background(), cfg.AutosaveInterval)

	// --- Auth (local JWT) ---
	secret := getenvOr("AUTH_HMAC_SECRET", "supersecret-dev-key")
	authSvc := authmw.NewAuthService(secret)

	// --- Report archive ---
	bs, err := storage.NewFSStore(cfg.ReportBasePath)
	if err != nil {
		log.Fatalf("report store: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", authmw.LoginHandler(authSvc, dbh, cfg.AdminUser, cfg.AdminPassHash))
	}
	if cfg.EnableGuestAuth {
		r.Post("/auth/guest", auth.GuestLoginHandler(authSvc, dbh, cfg))
	}

	// Catalog is public read-only configuration.
	r.Get("/ceps/catalog", api.CatalogHandler())

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))
		pr.Use(authmw.AttachRoleFromDB(dbh, cfg.Mode == config.ModeOffline))

		pr.With(rbac.Require("ceps:start")).
			Post("/ceps/sessions", api.StartSessionHandler(mgr))
		pr.With(rbac.Require("ceps:view-own")).
			Get("/ceps/sessions/me", api.GetSessionHandler(mgr))
		pr.With(rbac.Require("ceps:answer")).
			Post("/ceps/sessions/me/answers", api.SaveAnswerHandler(mgr))
		pr.With(rbac.Require("ceps:navigate")).
			Post("/ceps/sessions/me/navigate", api.NavigateHandler(mgr))
		pr.With(rbac.Require("ceps:view-own")).
			Get("/ceps/sessions/me/preview", api.PreviewHandler(mgr))
		pr.With(rbac.Require("ceps:view-own")).
			Get("/ceps/recommendations", api.RecommendationsHandler())
		pr.With(rbac.Require("ceps:complete")).
			Post("/ceps/sessions/me/complete", api.CompleteHandler(mgr, bs))

		// Route level: the role must hold some report permission at all.
		// Object level: own report, or report:view-company for others'.
		pr.With(
			rbac.RequireAny("report:view-own", "report:view-company"),
			rbac.RequireOwnerOr("report:view-company", func(r *http.Request) bool {
				return authmw.SubjectFromContext(r.Context()) == chi.URLParam(r, "userID")
			}),
		).Get("/reports/{userID}", api.GetReportHandler(bs))

		pr.With(rbac.Require("user:change_password")).
			Post("/users/change-password", api.ChangePasswordHandler(dbh))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func getenvOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
