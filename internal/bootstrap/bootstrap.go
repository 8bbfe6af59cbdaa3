package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/studentportal/internal/app/controllers"
	appMigrations "github.com/yigit/studentportal/internal/app/migrations"
	appRepos "github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/app/repositories/memory"
	"github.com/yigit/studentportal/internal/app/repositories/mongodb"
	"github.com/yigit/studentportal/internal/app/repositories/postgres"
	appRoutes "github.com/yigit/studentportal/internal/app/routes"
	appServices "github.com/yigit/studentportal/internal/app/services"
	"github.com/yigit/studentportal/internal/config"
	"github.com/yigit/studentportal/internal/db"
	appMiddleware "github.com/yigit/studentportal/internal/middleware"
	pkgAuth "github.com/yigit/studentportal/internal/pkg/auth"
	"github.com/yigit/studentportal/internal/pkg/filestorage"
	"github.com/yigit/studentportal/internal/pkg/helpers"
	"github.com/yigit/studentportal/internal/pkg/logger"
	"github.com/yigit/studentportal/internal/seed"
)

// DefaultConfigPath is read relative to the working directory
const DefaultConfigPath = "configs/config.yaml"

// Store is an open storage backend connection
type Store interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Store          Store
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: logger.ParseFormat(cfg.Logging.Format),
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage connects the configured backend and prepares its schema
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, Store, error) {
	driver := strings.ToLower(cfg.Database.Driver)
	lgr.Info().Str("driver", driver).Msg("Establishing database connection...")

	switch driver {
	case config.DriverMemory:
		store := memory.NewDB()
		lgr.Warn().Msg("Using the in-memory backend, data is lost on restart")
		return memory.NewRepositories(store), store, nil

	case config.DriverPostgres:
		store, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		if err := runMigrations(ctx, cfg, store, lgr); err != nil {
			_ = store.Close(ctx)
			return nil, nil, err
		}
		return postgres.NewRepositories(store.Pool), store, nil

	default:
		store, err := db.NewMongoDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, store.Database); err != nil {
			lgr.Error().Err(err).Msg("Failed to create indexes")
			_ = store.Close(ctx)
			return nil, nil, fmt.Errorf("failed to create indexes: %w", err)
		}
		lgr.Info().Msg("Database connection successfully established.")
		return mongodb.NewRepositories(store.Database), store, nil
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, store *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(store.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes services, middleware and controllers on top of repos.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, store Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Repos:  repos,
		Store:  store,
		Logger: lgr,
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 7*24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	locator := filestorage.NewPublicLocator(cfg.Server.UploadsURL)
	deps.Services = appServices.NewServices(repos, deps.JWTService, locator, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.AuthService, cfg.Auth.CookieName)

	deps.Controllers = appRoutes.Controllers{
		Auth: appControllers.NewAuthController(deps.Services.AuthService, appControllers.CookieSettings{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.SecureCookie || cfg.IsProduction(),
		}, lgr),
		Student:     appControllers.NewStudentController(deps.Services.StudentService),
		Certificate: appControllers.NewCertificateController(deps.Services.CertificateService),
		Course:      appControllers.NewCourseController(deps.Services.CourseService),
		Health:      appControllers.NewHealthController(store),
	}

	return deps
}

// SeedDefaults installs the admin account and course catalog. Errors are logged, not returned.
func SeedDefaults(ctx context.Context, cfg *config.Config, deps *Dependencies) {
	if err := seed.CreateDefaultData(ctx, cfg, deps.Repos, deps.Services, deps.Logger); err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.Recovery(),
	)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)
	return router
}
