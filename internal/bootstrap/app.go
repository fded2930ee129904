package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvo/sqlexport/internal/config"
	"github.com/locvo/sqlexport/internal/database"
	"github.com/locvo/sqlexport/internal/domain"
	"github.com/locvo/sqlexport/internal/handler"
	"github.com/locvo/sqlexport/internal/logger"
	"github.com/locvo/sqlexport/internal/queryfile"
	"github.com/locvo/sqlexport/internal/repository"
	"github.com/locvo/sqlexport/internal/service"
)

type App struct {
	Echo *echo.Echo
	DB   *sql.DB
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Load the queries directory before touching the database, so a bad
	// queries setup cannot leave an open connection pool behind. Every .sql
	// file becomes a route set below.
	defs, err := queryfile.Load(config.DefaultEnvConfig.QUERIES_DIR)
	if err != nil {
		return fmt.Errorf("failed to load queries: %w", err)
	}
	logger.InfoLog(ctx, "Loaded %d query definitions from %s", len(defs), config.DefaultEnvConfig.QUERIES_DIR)

	// Initialize database connection
	dbConfig := database.Config{
		Host:            config.DefaultEnvConfig.DB_HOST,
		Port:            config.DefaultEnvConfig.DB_PORT,
		User:            config.DefaultEnvConfig.DB_USER,
		Password:        config.DefaultEnvConfig.DB_PASSWORD,
		DBName:          config.DefaultEnvConfig.DB_NAME,
		SSLMode:         config.DefaultEnvConfig.DB_SSL_MODE,
		MaxOpenConns:    config.DefaultEnvConfig.DB_MAX_OPEN_CONNS,
		MaxIdleConns:    config.DefaultEnvConfig.DB_MAX_IDLE_CONNS,
		ConnMaxLifetime: config.DefaultEnvConfig.DB_CONN_MAX_LIFETIME,
	}

	db, err := database.NewPostgresDB(ctx, dbConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = db

	// Initialize dependencies
	queryRepo := repository.NewQueryRepository(db)
	exportSvc := service.NewExportService(queryRepo, defs)
	exportHandler := handler.NewExportHandler(exportSvc)

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(exportHandler, defs)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(exportHandler *handler.ExportHandler, defs []domain.QueryDefinition) {
	a.Echo.GET("/healthz", a.healthHandler)
	a.Echo.GET("/queries", exportHandler.ListQueriesHandler)

	queryGroup := a.Echo.Group("/query")
	exportGroup := a.Echo.Group("/export")
	exportGroupV2 := a.Echo.Group("/export/v2")

	for _, def := range defs {
		queryGroup.GET("/"+def.Name, exportHandler.QueryJSONHandler(def.Name))
		exportGroup.GET("/"+def.Name+".xlsx", exportHandler.ExportExcelHandler(def.Name))
		exportGroupV2.GET("/"+def.Name+".xlsx", exportHandler.ExportConfiguredHandler(def.Name))
	}
}

func (a *App) healthHandler(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := a.DB.PingContext(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "down", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) Run() error {
	defer a.DB.Close()
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
