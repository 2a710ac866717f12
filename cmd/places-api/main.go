package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"

	"github.com/dimitrije/places-api/internal/config"
	"github.com/dimitrije/places-api/internal/handlers"
	"github.com/dimitrije/places-api/internal/logging"
	authmw "github.com/dimitrije/places-api/internal/middleware"
	"github.com/dimitrije/places-api/internal/scheduler"
	"github.com/dimitrije/places-api/internal/services"
	"github.com/dimitrije/places-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New("places-api", cfg.Env)

	store := storage.NewStore(cfg.DataDir, logging.New("storage", cfg.Env))
	backups := store.Backups()

	placeService := services.NewPlaceService(store)
	sessionService := services.NewSessionService(
		cfg.SessionSecret, cfg.SessionLifetime, cfg.AdminUser, cfg.AdminPass)
	mediaService := services.NewMediaService(cfg.ImagesDir, logging.New("media", cfg.Env))

	authHandler := handlers.NewAuthHandler(sessionService, cfg.AdminUser)
	placeHandler := handlers.NewPlaceHandler(placeService)
	backupHandler := handlers.NewBackupHandler(backups)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	pagesHandler := handlers.NewPagesHandler(cfg.PublicDir, cfg.ImagesDir)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(driftmw.Recovery())
	app.Use(driftmw.CORSWithConfig(driftmw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       86400,
	}))
	app.Use(driftmw.BodyParser())

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/check", authHandler.Check)
	auth.Post("/logout", authHandler.Logout)

	api.Get("/places", placeHandler.List)

	protected := api.Group("")
	protected.Use(authmw.RequireAuth(sessionService, cfg.AdminUser))

	protected.Post("/places/cleanup-backups", backupHandler.Cleanup)
	protected.Get("/places/backups", backupHandler.List)
	protected.Get("/places/backups/:filename", backupHandler.Content)
	protected.Post("/places/backups/:filename/restore", backupHandler.Restore)
	protected.Delete("/places/backups/:filename", backupHandler.Delete)

	protected.Post("/places", placeHandler.Create)
	protected.Put("/places/:id", placeHandler.Update)
	protected.Delete("/places/:id", placeHandler.Delete)

	protected.Get("/media/gallery", mediaHandler.Gallery)
	protected.Post("/upload", mediaHandler.Upload)
	protected.Delete("/upload/:filename", mediaHandler.Delete)

	app.Get("/", pagesHandler.Index)
	app.Get("/auth", pagesHandler.AdminLogin)
	app.Get("/admin-login", pagesHandler.AdminLogin)
	app.Get("/login", pagesHandler.AdminLogin)
	app.Get("/public/:filename", pagesHandler.PublicAsset)
	app.Get("/images/:filename", pagesHandler.Image)

	adminPages := app.Group("")
	adminPages.Use(authmw.RequirePageAuth(sessionService, cfg.AdminUser))
	adminPages.Get("/admin", pagesHandler.Admin)
	adminPages.Get("/dashboard", pagesHandler.Admin)
	adminPages.Get("/media-library", pagesHandler.MediaLibrary)

	// Initial sweep at startup, then recurring sweeps and session purges.
	if _, err := backups.Cleanup(); err != nil {
		logger.Error().Err(err).Msg("initial backup sweep failed")
	}
	sched := scheduler.New()
	stopSweep := sched.ScheduleRecurring(storage.SweepInterval, func() {
		if _, err := backups.Cleanup(); err != nil {
			logger.Error().Err(err).Msg("backup sweep failed")
		}
	})
	defer stopSweep()
	stopPurge := sched.ScheduleRecurring(1*time.Hour, func() {
		sessionService.PurgeExpired()
	})
	defer stopPurge()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info().Str("addr", addr).Str("admin", cfg.AdminUser).Msg("server starting")
		if err := app.Run(addr); err != nil {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
}
