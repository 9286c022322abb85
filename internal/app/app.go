package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"physician_assessment_backend/internal/catalog"
	"physician_assessment_backend/internal/config"
	"physician_assessment_backend/internal/controller"
	"physician_assessment_backend/internal/repository"
	"physician_assessment_backend/internal/service"
	"physician_assessment_backend/pkg/logger"
	"physician_assessment_backend/pkg/monitoring"
	"physician_assessment_backend/pkg/security"
	"physician_assessment_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Catalog *catalog.Catalog

	repos    *repositories
	services *services
}

type repositories struct {
	session *repository.SessionRepository
}

type services struct {
	scoring        *service.ScoringService
	recommendation *service.RecommendationService
	assessment     *service.AssessmentService
	export         *service.ExportService
	chart          *service.ChartService
}

type controllers struct {
	assessment *controller.AssessmentController
	export     *controller.ExportController
	chart      *controller.ChartController
	health     *controller.HealthController
}

func (a *App) initRepositories(cfg *config.Config) *repositories {
	return &repositories{
		session: repository.NewSessionRepository(time.Duration(cfg.Session.TTLMinutes) * time.Minute),
	}
}

func (a *App) initServices(repos *repositories, cat *catalog.Catalog) *services {
	s := &services{}

	s.scoring = service.NewScoringService(cat)
	s.recommendation = service.NewRecommendationService(cat)
	s.assessment = service.NewAssessmentService(repos.session, s.scoring, s.recommendation, cat)
	s.export = service.NewExportService(s.scoring, s.recommendation, cat)
	s.chart = service.NewChartService(cat)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, cat *catalog.Catalog) *controllers {
	return &controllers{
		assessment: controller.NewAssessmentController(s.assessment, cat),
		export:     controller.NewExportController(s.export),
		chart:      controller.NewChartController(s.chart, s.assessment),
		health:     controller.NewHealthController(repos.session),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks runs the session TTL sweep and keeps the active
// session gauge current.
func (a *App) startBackgroundTasks(repos *repositories, cfg *config.Config) {
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Session.SweepMinutes) * time.Minute)
		for range ticker.C {
			if removed := repos.session.Sweep(); removed > 0 {
				logger.Log.Info("Swept expired sessions", zap.Int("removed", removed))
			}
			monitoring.ActiveSessions.Set(float64(repos.session.Count()))
		}
	}()
}

// ApplyConfig picks up hot-reloadable settings from a freshly loaded config.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.repos.session.SetTTL(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	logger.Log.Info("Config reloaded", zap.Int("sessionTTLMinutes", cfg.Session.TTLMinutes))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{
		Config:  cfg,
		Catalog: catalog.Default(),
	}

	repos := app.initRepositories(cfg)
	app.repos = repos
	services := app.initServices(repos, app.Catalog)
	app.services = services
	controllers := app.initControllers(services, repos, app.Catalog)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("physician-assessment", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos)

	app.startBackgroundTasks(repos, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
