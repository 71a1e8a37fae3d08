// Package bootstrap wires configuration, database, repositories, services,
// controllers and routes together.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/unitycircles/backend/docs" // generated swagger docs
	appControllers "github.com/unitycircles/backend/internal/app/controllers"
	appMigrations "github.com/unitycircles/backend/internal/app/migrations"
	appRepos "github.com/unitycircles/backend/internal/app/repositories"
	appRoutes "github.com/unitycircles/backend/internal/app/routes"
	appServices "github.com/unitycircles/backend/internal/app/services"
	"github.com/unitycircles/backend/internal/config"
	"github.com/unitycircles/backend/internal/db"
	appMiddleware "github.com/unitycircles/backend/internal/middleware"
	pkgAuth "github.com/unitycircles/backend/internal/pkg/auth"
	"github.com/unitycircles/backend/internal/pkg/filestorage"
	"github.com/unitycircles/backend/internal/pkg/helpers"
	"github.com/unitycircles/backend/internal/pkg/logger"
	"github.com/unitycircles/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	UserService       appServices.UserService
	CommunityService  appServices.CommunityService
	PostService       appServices.PostService
	MessageService    appServices.MessageService
	MeetingService    appServices.MeetingService
	OnboardingService appServices.OnboardingService
	MentorService     appServices.MentorService
	DashboardService  appServices.DashboardService

	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	CommunityController  *appControllers.CommunityController
	PostController       *appControllers.PostController
	MessageController    *appControllers.MessageController
	MeetingController    *appControllers.MeetingController
	OnboardingController *appControllers.OnboardingController
	MentorController     *appControllers.MentorController
	DashboardController  *appControllers.DashboardController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads .env and configuration, then initializes
// the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// a missing .env is fine; real deployments use environment variables
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env")
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.FileRepository,
		deps.FileStorage,
		lgr,
	)
	deps.CommunityService = appServices.NewCommunityService(
		deps.Repos.CommunityRepository,
		deps.Repos.MemberRepository,
		deps.Repos.FileRepository,
		deps.FileStorage,
		lgr,
	)
	deps.PostService = appServices.NewPostService(
		deps.Repos.PostRepository,
		deps.Repos.CommunityRepository,
		deps.Repos.MemberRepository,
		deps.Repos.UserRepository,
		deps.Repos.FileRepository,
		lgr,
	)
	deps.MessageService = appServices.NewMessageService(
		deps.Repos.MessageRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.MeetingService = appServices.NewMeetingService(
		deps.Repos.MeetingRepository,
		deps.Repos.MemberRepository,
		lgr,
	)
	deps.OnboardingService = appServices.NewOnboardingService(deps.Repos.OnboardingRepository, lgr)
	deps.MentorService = appServices.NewMentorService(
		deps.Repos.MentorRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.MentorRepository,
		deps.Repos.MemberRepository,
		deps.Repos.MessageRepository,
		deps.Repos.MeetingRepository,
		deps.Repos.PostRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.CommunityController = appControllers.NewCommunityController(deps.CommunityService, lgr)
	deps.PostController = appControllers.NewPostController(deps.PostService, lgr)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService, lgr)
	deps.MeetingController = appControllers.NewMeetingController(deps.MeetingService, lgr)
	deps.OnboardingController = appControllers.NewOnboardingController(deps.OnboardingService, lgr)
	deps.MentorController = appControllers.NewMentorController(deps.MentorService, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CommunityController,
		deps.PostController,
		deps.MessageController,
		deps.MeetingController,
		deps.OnboardingController,
		deps.MentorController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
