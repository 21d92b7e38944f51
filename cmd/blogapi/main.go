// Package main is the entry point for the blog API server.
// It loads configuration, connects to PostgreSQL, wires the stores,
// services and handlers, and starts the HTTP server with graceful
// shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vasei-me/Architecture-Blog-API/internal/config"
	"github.com/vasei-me/Architecture-Blog-API/internal/database"
	"github.com/vasei-me/Architecture-Blog-API/internal/handlers"
	"github.com/vasei-me/Architecture-Blog-API/internal/router"
	"github.com/vasei-me/Architecture-Blog-API/internal/service"
	"github.com/vasei-me/Architecture-Blog-API/internal/slug"
	"github.com/vasei-me/Architecture-Blog-API/internal/store"
	"github.com/vasei-me/Architecture-Blog-API/internal/token"
)

func main() {
	// Structured logger — text output, debug level everywhere for now.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Slug generator — the extra alphabet is configurable so non-Latin
	// titles keep their script.
	slugs, err := slug.New(cfg.SlugExtraAlphabet)
	if err != nil {
		slog.Error("failed to build slug generator", "error", err)
		os.Exit(1)
	}

	// Bearer token manager.
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	postStore := store.NewPostStore(db)
	categoryStore := store.NewCategoryStore(db)
	commentStore := store.NewCommentStore(db)

	// Resource services.
	authService := service.NewAuthService(userStore, tokens)
	postService := service.NewPostService(postStore, slugs)
	categoryService := service.NewCategoryService(categoryStore, postStore, slugs)
	commentService := service.NewCommentService(commentStore, postStore)

	// Create handler groups with their dependencies.
	dev := cfg.IsDev()
	authHandlers := handlers.NewAuth(authService, dev)
	postHandlers := handlers.NewPosts(postService, dev)
	categoryHandlers := handlers.NewCategories(categoryService, dev)
	commentHandlers := handlers.NewComments(commentService, dev)

	// Set up the Chi router with all middleware and routes.
	r := router.New(tokens, authHandlers, postHandlers, categoryHandlers, commentHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
