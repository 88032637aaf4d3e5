package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"certmaster/config"
	controllers "certmaster/controllers/document"
	"certmaster/database"
	"certmaster/document"
	"certmaster/export"
	"certmaster/persistence"
	"certmaster/render"
	documentRoutes "certmaster/routers/documentRoutes"
	"certmaster/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	// Remote store: Supabase REST when configured, Postgres otherwise.
	var remote persistence.RemoteStore
	if config.AppConfig.SupabaseURL != "" {
		remote = persistence.NewSupabaseStore(config.AppConfig.SupabaseURL, config.AppConfig.SupabaseKey)
		log.Println("Using Supabase REST remote store")
	} else {
		database.ConnectDb()
		remote = persistence.NewGormStore(database.Database.Db)
	}

	local, err := persistence.NewLocalStore(config.AppConfig.LocalStorePath)
	if err != nil {
		log.Printf("Warning: local fallback store unavailable: %v", err)
		local = nil
	}

	bridge := persistence.NewBridge(
		remote,
		local,
		config.AppConfig.TenantID,
		time.Duration(config.AppConfig.QuietWindowMS)*time.Millisecond,
	)
	defer bridge.Close()

	hydrateCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	initial := bridge.Hydrate(hydrateCtx)
	cancel()

	controllers.Session = document.NewSession(initial, bridge)
	controllers.Exporter = export.New(
		render.NewRaster(config.AppConfig.ExportScale),
		time.Duration(config.AppConfig.SettleDelayMS)*time.Millisecond,
		config.AppConfig.ExportJPEGQuality,
	)

	syncCron := utils.StartSyncScheduler(bridge)
	defer syncCron.Stop()

	app := fiber.New(fiber.Config{
		// Inline image payloads make document bodies large.
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	documentRoutes.SetupDocumentRoutes(app)

	// Flush unsaved edits before the process exits.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		syncCron.Stop()
		bridge.Close()
		_ = app.Shutdown()
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal(err)
	}
}
