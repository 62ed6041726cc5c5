package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/triviet-energy/kpi-gateway/internal/api/http"
	"github.com/triviet-energy/kpi-gateway/internal/auth"
	authmw "github.com/triviet-energy/kpi-gateway/internal/auth/middleware"
	"github.com/triviet-energy/kpi-gateway/internal/config"
	"github.com/triviet-energy/kpi-gateway/internal/db"
	"github.com/triviet-energy/kpi-gateway/internal/evaluation"
	"github.com/triviet-energy/kpi-gateway/internal/importer"
	"github.com/triviet-energy/kpi-gateway/internal/rbac"
	"github.com/triviet-energy/kpi-gateway/internal/storage"
	syncx "github.com/triviet-energy/kpi-gateway/internal/sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB (user accounts + audit log; evaluation state stays in memory) ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	sessions := evaluation.NewInMemoryStore()
	events := syncx.NewEventRepo(dbh, cfg.SiteID)
	imports := importer.NewService(importer.PDFSource{})

	authSvc := authmw.NewAuthService(cfg.AuthSecret)

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	if cfg.Mode == config.ModeOnline {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOriginsOnline,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	} else {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOriginsOffline,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Local login (offline/LAN deployments; registration can be disabled once
	// the evaluator accounts exist)
	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))
		if cfg.EnableRegister {
			r.Post("/auth/register", auth.RegisterHandler(authSvc, dbh))
		}
	}

	// assets routes (protected)
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))
		pr.Route("/assets", func(ar chi.Router) {
			ar.Use(rbac.Require("assets:upload"))
			api.MountAssets(ar, bs)
		})
	})

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))

		pr.Post("/auth/logout", auth.LogoutHandler(sessions))

		// Rubric catalog
		pr.With(rbac.Require("rubric:view")).
			Get("/roles", api.ListRolesHandler())
		pr.With(rbac.Require("rubric:view")).
			Get("/rubrics/{role}", api.GetRubricHandler())

		// Evaluation session
		pr.With(rbac.Require("evaluation:view")).
			Get("/evaluation", api.GetSessionHandler(sessions))
		pr.With(rbac.Require("evaluation:edit")).
			Post("/evaluation/role", api.SelectRoleHandler(sessions, events))
		pr.With(rbac.Require("evaluation:edit")).
			Post("/evaluation/ratings", api.RateItemHandler(sessions))
		pr.With(rbac.Require("evaluation:edit")).
			Post("/evaluation/notes", api.SetNoteHandler(sessions))
		pr.With(rbac.Require("evaluation:edit")).
			Put("/evaluation/info", api.SetInfoHandler(sessions))
		pr.With(rbac.Require("evaluation:edit")).
			Put("/evaluation/month", api.SetMonthHandler(sessions))
		pr.With(rbac.Require("evaluation:view")).
			Get("/evaluation/summary", api.GetSummaryHandler(sessions))
		pr.With(rbac.Require("evaluation:edit")).
			Delete("/evaluation", api.ResetSessionHandler(sessions))

		// Printable report + PDF re-import
		pr.With(rbac.Require("report:view")).
			Get("/report", api.GetReportHandler(sessions, bs, events))
		pr.With(rbac.Require("report:import")).
			Post("/report/import", api.UploadReportHandler(sessions, imports))
		pr.With(rbac.Require("report:import")).
			Post("/report/import/confirm", api.ConfirmImportHandler(sessions, events))
		pr.With(rbac.Require("report:import")).
			Post("/report/import/discard", api.DiscardImportHandler(sessions))

		// Accounts
		pr.With(rbac.Require("users:list")).
			Get("/users", api.ListUsersHandler(dbh))
		pr.With(rbac.Require("user:change_password")).
			Post("/users/change-password", api.ChangePasswordHandler(dbh))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s, site=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, cfg.SiteID)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
