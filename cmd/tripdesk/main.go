package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"

	"github.com/TripDeskHQ/TripDesk/app/repository"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/cache"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/database"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/env"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/portalstore"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/router"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/s3backup"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/telemetry"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	cache.SetupCache()

	// The local backend persists through the snapshot store; the remote
	// backend needs the relational database instead.
	var store *portalstore.Store
	var db *gorm.DB
	if repository.Backend() == repository.BACKEND_REMOTE {
		database.SetupDatabase()
		db = database.GetDB()
	} else {
		snapshotPath := env.GetEnv("SNAPSHOT_PATH", "./data/portal.json")
		store = portalstore.New(portalstore.NewFileStorage(snapshotPath))
		store.Hydrate()
	}
	repository.InitializeFactory(store, db)
	repository.GetGlobalRepositories()

	telemetry.StartFlusher()

	// Snapshot backups only apply to the local backend
	if store != nil {
		if cfg, err := s3backup.LoadConfig(); err == nil && cfg.IsEnabled() {
			if client, err := s3backup.NewClient(cfg); err != nil {
				log.Printf("[S3Backup] Disabled: %v", err)
			} else {
				s3backup.StartSnapshotBackups(client, store, 6*time.Hour)
			}
		}
	}

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/tripdesk to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:       html.New(basePath+"views", ".html"),
		ViewsLayout: "layouts/main",
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "admin"),
		},
	}), monitor.New())

	// static files
	app.Static("/static", basePath+"public", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}
