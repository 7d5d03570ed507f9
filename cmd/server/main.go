package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadilmartias/careerlens/internal/config"
	"github.com/fadilmartias/careerlens/internal/domain/fiber/handler"
	"github.com/fadilmartias/careerlens/internal/middleware"
	"github.com/fadilmartias/careerlens/internal/model"
	"github.com/fadilmartias/careerlens/internal/repository"
	"github.com/fadilmartias/careerlens/internal/service"
	"github.com/fadilmartias/careerlens/internal/session"
	"github.com/fadilmartias/careerlens/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	ctx := context.Background()
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	setupLogger(appConfig)

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: handler.MaxRequestBodySize,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" || code >= fiber.StatusInternalServerError {
				slog.Error("unhandled error", "path", ctx.Path(), "error", err)
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     appOrigins(appConfig),
		AllowCredentials: appConfig.BaseURL != "",
	}))
	// Use middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	db := ConnectDB(appConfig)

	redisConfig := config.LoadRedisConfig()
	revoker := session.NewRedisRevoker(redisConfig.Addr, redisConfig.Password, redisConfig.DB)
	defer revoker.Close()
	if err := revoker.Ping(ctx); err != nil {
		log.Fatalf("Could not connect to redis: %v", err)
	}

	sessionConfig := config.LoadSessionConfig()
	sessions, err := session.NewJWTProvider(sessionConfig.Secret, sessionConfig.Issuer, sessionConfig.CookieName, revoker)
	if err != nil {
		log.Fatal(err)
	}

	completionConfig := config.LoadCompletionConfig()
	completion, err := newCompletionService(ctx, completionConfig)
	if err != nil {
		log.Fatal(err)
	}

	resumeRepo := repository.NewResumeAnalysisRepository(db)
	portfolioRepo := repository.NewPortfolioEvaluationRepository(db)

	auth := middleware.RequireSession(sessions)
	api := app.Group("/api")
	handler.NewResumeHandler(usecase.NewResumeUsecase(resumeRepo, completion, completionConfig.Model)).RegisterRoutes(api, auth)
	handler.NewPortfolioHandler(usecase.NewPortfolioUsecase(portfolioRepo, completion, completionConfig.Model)).RegisterRoutes(api, auth)
	handler.NewHistoryHandler(usecase.NewHistoryUsecase(resumeRepo, portfolioRepo)).RegisterRoutes(api, auth)
	handler.NewAuthHandler(sessions).RegisterRoutes(api, auth)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Server running on %s (completion provider %s, model %s)", appConfig.Port, completionConfig.Provider, completionConfig.Model)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func newCompletionService(ctx context.Context, cfg *config.CompletionConfig) (service.CompletionServiceInterface, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return service.NewGeminiService(ctx)
	case config.ProviderOpenRouter:
		if config.LoadOpenRouterConfig().APIKey == "" {
			return nil, errors.New("OPENROUTER_API_KEY not set")
		}
		return service.NewOpenRouterService(), nil
	default:
		return nil, errors.New("unknown COMPLETION_PROVIDER " + cfg.Provider)
	}
}

func appOrigins(cfg *config.AppConfig) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	return "*"
}

func setupLogger(cfg *config.AppConfig) {
	var h slog.Handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(h).With("app", cfg.Name))
}

func ConnectDB(appConfig *config.AppConfig) *gorm.DB {
	dbConfig := config.LoadDBConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(&model.ResumeAnalysis{}, &model.PortfolioEvaluation{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
