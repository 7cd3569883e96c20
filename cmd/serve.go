package cmd

import (
	"fmt"

	"type-extractor/core/loader"
	"type-extractor/core/logger"
	"type-extractor/core/metrics"
	"type-extractor/core/middleware/auth"
	"type-extractor/core/middleware/rayid"
	"type-extractor/core/server"
	"type-extractor/core/storage"
	"type-extractor/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "type-extractor/docs/swagger"
)

var (
	servePort string
	serveFile string
)

// @title Type Extractor Catalog API
// @version 1.0
// @description Read-only lookups over the extracted EVE type data.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dump output over HTTP",
	Long:  `Starts a read-only HTTP server answering type lookups from the dump output file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap("serve")
		if err != nil {
			return err
		}
		defer logg.Sync()

		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		if cmd.Flags().Changed("file") {
			cfg.Server.File = serveFile
			cfg.Server.Source = server.SourceFile
		}
		if !cfg.Server.IsValidSource() {
			return fmt.Errorf("unsupported catalog source %q", cfg.Server.Source)
		}

		var src catalog.Source
		if cfg.Server.Source == server.SourceStorage {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			src = catalog.NewObjectSource(client, cfg.Storage.Bucket, cfg.Storage.ObjectName)
		} else {
			src = catalog.NewFileSource(cfg.Server.File)
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(src, logg))

		// RayID must be first to trace everything
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

		// Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("source", src.Name()),
				zap.Strings("features", mgr.Enabled()),
			)
			errCh <- app.Listen(":" + cfg.Server.Port)
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-cmd.Context().Done():
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from config)")
	serveCmd.Flags().StringVar(&serveFile, "file", "", "Output file to serve (default from config)")
	RootCmd.AddCommand(serveCmd)
}
