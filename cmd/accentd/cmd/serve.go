package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/accentd/internal/database"
	internalhttp "github.com/jmylchreest/accentd/internal/http"
	"github.com/jmylchreest/accentd/internal/http/handlers"
	"github.com/jmylchreest/accentd/internal/observability"
	"github.com/jmylchreest/accentd/internal/repository"
	"github.com/jmylchreest/accentd/internal/service"
	"github.com/jmylchreest/accentd/internal/service/logs"
	"github.com/jmylchreest/accentd/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the accentd server",
	Long: `Start the accentd HTTP server.

The server provides:
- REST API for presets, palettes and per-user preferences
- Per-user initial-paint stylesheets and the shared chrome stylesheet
- A live preview page at /preview/{userId}
- Health probes, recent logs and OpenAPI documentation at /docs`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to")
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("database-driver", "sqlite", "Database driver (sqlite, postgres, mysql)")
	serveCmd.Flags().String("dsn", "accentd.db", "Database DSN or SQLite file path")
	serveCmd.Flags().String("native-accent", "#2271b1", "Host application's own accent color")

	mustBindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	mustBindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	mustBindPFlag("database.driver", serveCmd.Flags().Lookup("database-driver"))
	mustBindPFlag("database.dsn", serveCmd.Flags().Lookup("dsn"))
	mustBindPFlag("accent.native_accent", serveCmd.Flags().Lookup("native-accent"))
}

func runServe(_ *cobra.Command, _ []string) error {
	logsService := logs.New(logs.WithRedactor(observability.Redactor()))
	slog.SetDefault(slog.New(logsService.WrapHandler(slog.Default().Handler())))
	logger := slog.Default()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.Database, observability.WithComponent(logger, "database"), nil)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("closing database", slog.String("error", err.Error()))
		}
	}()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	prefRepo := repository.NewPreferenceRepository(db.DB)

	prefService := service.NewPreferenceService(prefRepo).
		WithLogger(observability.WithComponent(logger, "preferences")).
		WithDefaultPreset(cfg.Accent.DefaultPreset)

	accentService, err := service.NewAccentService(prefService, cfg.Accent)
	if err != nil {
		return fmt.Errorf("initializing accent service: %w", err)
	}
	accentService.WithLogger(observability.WithComponent(logger, "accent"))
	swatchService := service.NewSwatchService(accentService)

	serverConfig := internalhttp.DefaultServerConfig()
	serverConfig.Host = cfg.Server.Host
	serverConfig.Port = cfg.Server.Port
	serverConfig.ReadTimeout = cfg.Server.ReadTimeout
	serverConfig.WriteTimeout = cfg.Server.WriteTimeout
	serverConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	serverConfig.CORSOrigins = cfg.Server.CORSOrigins
	server := internalhttp.NewServer(serverConfig, logger, version.Version)

	docsHandler := handlers.NewDocsHandler("accentd API", "/openapi.yaml", cfg.Accent.Native())
	server.Router().Get("/docs", docsHandler.ServeHTTP)

	healthHandler := handlers.NewHealthHandler(version.Version).
		WithDB(db.DB, db.Driver()).
		WithPreferences(prefRepo)
	healthHandler.Register(server.API())

	accentHandler := handlers.NewAccentHandler(accentService, swatchService, cfg.Accent.CSSMaxAge)
	accentHandler.Register(server.API())
	accentHandler.RegisterChiRoutes(server.Router())

	preferenceHandler := handlers.NewPreferenceHandler(prefService, accentService, cfg.Accent.CSSMaxAge)
	preferenceHandler.Register(server.API())
	preferenceHandler.RegisterChiRoutes(server.Router())

	settingsHandler := handlers.NewSettingsHandler()
	settingsHandler.Register(server.API())

	logsHandler := handlers.NewLogsHandler(logsService)
	logsHandler.Register(server.API())

	pageHandler, err := handlers.NewPreviewPageHandler(prefService, accentService)
	if err != nil {
		return fmt.Errorf("initializing preview page: %w", err)
	}
	pageHandler.RegisterChiRoutes(server.Router())

	handlers.NewStaticHandler().RegisterChiRoutes(server.Router())

	logger.Info("starting accentd server",
		slog.String("version", version.Version),
		slog.String("address", cfg.Server.Address()),
		slog.String("database_driver", db.Driver()),
		slog.String("native_accent", string(cfg.Accent.Native())),
		slog.String("default_preset", cfg.Accent.DefaultPreset),
	)

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("server shutdown complete")
	return nil
}
