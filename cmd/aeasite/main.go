// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/aea-eng/aea-site/internal/config"
	"github.com/aea-eng/aea-site/internal/gateway"
	"github.com/aea-eng/aea-site/internal/handler"
	"github.com/aea-eng/aea-site/internal/middleware"
	"github.com/aea-eng/aea-site/internal/render"
	"github.com/aea-eng/aea-site/internal/session"
	"github.com/aea-eng/aea-site/internal/store"
	"github.com/aea-eng/aea-site/internal/version"
	"github.com/aea-eng/aea-site/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "aeasite - AEA marketing site and admin panel\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AEA_BACKEND_URL        Content API base URL (required)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AEA_SESSION_SECRET     Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AEA_DB_PATH            SQLite session database path (default: ./data/aea-site.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AEA_SERVER_PORT        Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AEA_ENV                Environment: development|production (default: development)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("aeasite %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("starting aeasite", "version", versionInfo.Version, "backend", cfg.BackendURL)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Initialize session database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Initialize session manager
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Initialize backend gateway
	gw := gateway.New(cfg.BackendURL)

	// Initialize template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}

	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	// Handlers
	publicHandler := handler.NewPublicHandler(gw, renderer)
	authHandler := handler.NewAuthHandler(gw, sessionManager, renderer)
	adminHandler := handler.NewAdminHandler(gw, sessionManager, renderer)

	// Create router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))

	r.Use(sessionManager.LoadAndSave)

	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())
	csrfMiddleware := middleware.CSRF(csrfConfig)
	slog.Info("CSRF protection initialized", "secure", !cfg.IsDevelopment())

	formRateLimiter := middleware.NewRateLimiter(cfg.PublicRateLimit, cfg.PublicRateBurst)

	// Static assets
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Public pages
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Get(handler.RouteRoot, publicHandler.Home)
		r.Get(handler.RouteServices, publicHandler.Services)
		r.Get(handler.RouteProjects, publicHandler.Projects)
		r.Get(handler.RouteStaff, publicHandler.Staff)
		r.Get(handler.RouteAbout, publicHandler.About)
		r.Get(handler.RouteContact, publicHandler.Contact)

		r.With(formRateLimiter.Middleware()).Post(handler.RouteContact, publicHandler.SubmitContact)
	})

	// Admin routes (protected with CSRF); login/logout live in the same
	// subtree but skip the auth guard.
	r.Route("/admin", func(r chi.Router) {
		r.Use(csrfMiddleware)

		// Auth routes (public, with rate limiting)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireGuest(sessionManager, "/admin"))
			r.Get("/login", authHandler.LoginForm)
			r.With(formRateLimiter.Middleware()).Post("/login", authHandler.Login)
		})
		r.Post("/logout", authHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(sessionManager))

			r.Get("/", adminHandler.Dashboard)

			r.Get("/pages", adminHandler.Pages)
			r.Get("/pages"+handler.RouteParamPageName, adminHandler.EditPage)
			r.Post("/pages"+handler.RouteParamPageName, adminHandler.UpdatePage)

			r.Get("/staff", adminHandler.StaffList)
			r.Get("/staff/new", adminHandler.StaffNewForm)
			r.Post("/staff/new", adminHandler.StaffCreate)
			r.Get("/staff"+handler.RouteParamID+"/edit", adminHandler.StaffEditForm)
			r.Post("/staff"+handler.RouteParamID+"/edit", adminHandler.StaffUpdate)
			r.Post("/staff"+handler.RouteParamID+"/delete", adminHandler.StaffDelete)

			r.Get("/projects", adminHandler.ProjectList)
			r.Get("/projects/new", adminHandler.ProjectNewForm)
			r.Post("/projects/new", adminHandler.ProjectCreate)
			r.Get("/projects"+handler.RouteParamID+"/edit", adminHandler.ProjectEditForm)
			r.Post("/projects"+handler.RouteParamID+"/edit", adminHandler.ProjectUpdate)
			r.Post("/projects"+handler.RouteParamID+"/delete", adminHandler.ProjectDelete)

			r.Get("/settings", adminHandler.SettingsForm)
			r.Post("/settings", adminHandler.SettingsUpdate)

			r.Get("/messages", adminHandler.MessageList)
			r.Get("/messages"+handler.RouteParamID, adminHandler.MessageDetail)
			r.Post("/messages"+handler.RouteParamID+"/delete", adminHandler.MessageDelete)
		})
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
