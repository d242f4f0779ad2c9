package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"storage-assistant/core/config"
	"storage-assistant/core/database"
	"storage-assistant/core/llm"
	"storage-assistant/core/loader"
	"storage-assistant/core/logger"
	"storage-assistant/core/middleware/auth"
	"storage-assistant/core/middleware/rayid"
	"storage-assistant/core/storage"
	"storage-assistant/feature/assistant"
	"storage-assistant/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Storage Assistant API
// @version 1.0
// @description Natural-language interface to object storage.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the assistant HTTP server",
	Long:  `Starts the HTTP server exposing the chat endpoint and, when a database is configured, the exchange history.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		// Only dialed when explicitly enabled, so a bare deployment does
		// not stall on the connection timeout at startup.
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed, history disabled", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to history database")
			}
		} else {
			logg.Info("History database not enabled")
		}

		// 4. Initialize Storage and Model Gateways
		// Both are constructed exactly once and fail fast without credentials.
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		model, err := llm.NewClient(cfg.Model)
		if err != nil {
			logg.Fatal("Failed to create model client", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 6. Register Features
		mgr := loader.NewManager()

		historyFeature := history.NewFeature(db, logg)
		var recorder assistant.Recorder
		if historyFeature.IsEnabled() {
			recorder = historyFeature.Service()
		}

		assistantFeature, err := assistant.NewFeature(model, store, recorder, logg)
		if err != nil {
			logg.Fatal("Failed to initialize assistant", zap.Error(err))
		}

		mgr.Register(assistantFeature)
		mgr.Register(historyFeature)

		// 7. Middleware
		// RayID first so every later log line can be correlated.
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})
		if cfg.Server.RequiresAuth() {
			app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		} else {
			logg.Warn("No API key configured, endpoints are unprotected")
		}

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
