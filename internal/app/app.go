package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartexam_backend/internal/config"
	"smartexam_backend/internal/controller"
	"smartexam_backend/internal/repository"
	"smartexam_backend/internal/service"
	"smartexam_backend/pkg/database"
	"smartexam_backend/pkg/logger"
	"smartexam_backend/pkg/monitoring"
	"smartexam_backend/pkg/security"
	"smartexam_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *mongo.Database
}

type repositories struct {
	question     *repository.QuestionRepository
	pack         *repository.PackRepository
	user         *repository.UserRepository
	verification *repository.VerificationLogRepository
	revenue      *repository.RevenueRepository
}

type services struct {
	question     *service.QuestionService
	pack         *service.PackService
	ai           *service.AIService
	stats        *service.StatsService
	verification *service.VerificationService
	user         *service.UserService
	webhook      *service.WebhookService
	storage      *service.StorageService
}

type controllers struct {
	question     *controller.QuestionController
	pack         *controller.PackController
	ai           *controller.AIController
	stats        *controller.StatsController
	verification *controller.VerificationController
	user         *controller.UserController
	webhook      *controller.WebhookController
	upload       *controller.UploadController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *mongo.Database) *repositories {
	return &repositories{
		question:     repository.NewQuestionRepository(db),
		pack:         repository.NewPackRepository(db),
		user:         repository.NewUserRepository(db),
		verification: repository.NewVerificationLogRepository(db),
		revenue:      repository.NewRevenueRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.question = service.NewQuestionService(repos.question)
	s.pack = service.NewPackService(repos.pack, repos.question)
	s.ai = service.NewAIService(cfg.AI)
	s.stats = service.NewStatsService(repos.question, repos.pack, repos.user, repos.revenue)
	s.verification = service.NewVerificationService(repos.verification)
	s.user = service.NewUserService(repos.user)
	s.webhook = service.NewWebhookService(repos.user, repos.revenue)

	return s
}

func (a *App) initControllers(s *services, db *mongo.Database) *controllers {
	return &controllers{
		question:     controller.NewQuestionController(s.question),
		pack:         controller.NewPackController(s.pack),
		ai:           controller.NewAIController(s.ai),
		stats:        controller.NewStatsController(s.stats),
		verification: controller.NewVerificationController(s.verification),
		user:         controller.NewUserController(s.user),
		webhook:      controller.NewWebhookController(s.webhook),
		upload:       controller.NewUploadController(s.storage),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitMongo(&cfg.Mongo)
	if err != nil {
		logger.Log.Fatal("Failed to initialize document store", zap.Error(err))
	}
	if db == nil {
		logger.Log.Warn("Document store not configured; store-backed endpoints will answer 503")
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("smartexam-admin", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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
