package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"order-reconciler/core/config"
	"order-reconciler/core/credentials"
	"order-reconciler/core/database"
	"order-reconciler/core/loader"
	"order-reconciler/core/logger"
	"order-reconciler/core/middleware/auth"
	"order-reconciler/core/middleware/rayid"
	"order-reconciler/core/orderapi"
	"order-reconciler/core/sheets"
	"order-reconciler/core/storage"

	"order-reconciler/feature/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "order-reconciler/docs/swagger"
)

// @title Order Reconciler API
// @version 1.0
// @description API for reconciling orders across the local store, the spreadsheet ledger and the order-management API.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the order reconciler server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Connect to the Order Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to order database", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Initialize Ledger and Order API Clients
		cache := credentials.NewCache(credentials.NewGoogleProvider(cfg.Credentials))
		ledger := sheets.NewClient(cfg.Sheets, cfg.Credentials, cache)
		orderAPI := orderapi.NewClient(cfg.OrderAPI)

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		ordersFeature, err := orders.NewFeature(db, ledger, cfg.Sheets, orderAPI, store, cfg.Storage.Bucket, logg)
		if err != nil {
			logg.Fatal("Failed to initialize orders feature", zap.Error(err))
		}
		mgr.Register(ordersFeature)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

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
	RootCmd.AddCommand(startCmd)
}
