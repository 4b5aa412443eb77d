package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/nasibcs/uniadmin/internal/app/controllers"
	appRepos "github.com/nasibcs/uniadmin/internal/app/repositories"
	appRoutes "github.com/nasibcs/uniadmin/internal/app/routes"
	appServices "github.com/nasibcs/uniadmin/internal/app/services"
	"github.com/nasibcs/uniadmin/internal/config"
	"github.com/nasibcs/uniadmin/internal/events"
	"github.com/nasibcs/uniadmin/internal/kvstore"
	appMiddleware "github.com/nasibcs/uniadmin/internal/middleware"
	pkgAuth "github.com/nasibcs/uniadmin/internal/pkg/auth"
	"github.com/nasibcs/uniadmin/internal/pkg/logger"
	"github.com/nasibcs/uniadmin/internal/pkg/websocket"
	"github.com/nasibcs/uniadmin/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	FacultyService       appServices.FacultyService
	DepartmentService    appServices.DepartmentService
	TeacherService       appServices.TeacherService
	SemesterService      appServices.SemesterService
	BookService          appServices.BookService
	SettingsService      appServices.SettingsService
	DashboardService     appServices.DashboardService
	AuthController       *appControllers.AuthController
	FacultyController    *appControllers.FacultyController
	DepartmentController *appControllers.DepartmentController
	TeacherController    *appControllers.TeacherController
	SemesterController   *appControllers.SemesterController
	BookController       *appControllers.BookController
	SettingsController   *appControllers.SettingsController
	DashboardController  *appControllers.DashboardController
	WSHandler            *websocket.Handler
	Hub                  *websocket.Hub
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Bus                  *events.Bus
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// Load a .env file if present; real env vars still win
	_ = godotenv.Load()

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

// SetupStore opens the persistent store and seeds default data.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*kvstore.Store, error) {
	lgr.Info().Str("path", cfg.Store.Path).Msg("Opening store...")
	store, err := kvstore.Open(cfg.Store.Path)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open store")
		return nil, err
	}

	repos := appRepos.NewRepositories(store)
	if err := seed.CreateDefaultData(context.Background(), repos, lgr); err != nil {
		// Seeding is best effort; the app works on an empty store too
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return store, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store *kvstore.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store)
	deps.Bus = events.NewBus()

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	var err error
	deps.AuthService, err = appServices.NewAuthService(cfg.Admin.Username, cfg.Admin.Password, deps.JWTService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	deps.FacultyService = appServices.NewFacultyService(
		deps.Repos.FacultyRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.SemesterRepository,
		deps.Repos.BookRepository,
		deps.Bus,
	)
	deps.DepartmentService = appServices.NewDepartmentService(
		deps.Repos.DepartmentRepository,
		deps.Repos.FacultyRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.SemesterRepository,
		deps.Repos.BookRepository,
		deps.Bus,
	)
	deps.TeacherService = appServices.NewTeacherService(
		deps.Repos.TeacherRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.FacultyRepository,
		deps.Bus,
	)
	deps.SemesterService = appServices.NewSemesterService(
		deps.Repos.SemesterRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.FacultyRepository,
		deps.Repos.BookRepository,
		deps.Bus,
	)
	deps.BookService = appServices.NewBookService(
		deps.Repos.BookRepository,
		deps.Repos.SemesterRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.FacultyRepository,
		deps.Bus,
	)
	deps.SettingsService = appServices.NewSettingsService(deps.Repos.SettingsRepository, deps.Bus)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Hub = websocket.NewHub(deps.Bus, lgr)
	deps.WSHandler = websocket.NewHandler(deps.Hub, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.SemesterController = appControllers.NewSemesterController(deps.SemesterService)
	deps.BookController = appControllers.NewBookController(deps.BookService)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.FacultyController,
		deps.DepartmentController,
		deps.TeacherController,
		deps.SemesterController,
		deps.BookController,
		deps.SettingsController,
		deps.DashboardController,
		deps.WSHandler,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
