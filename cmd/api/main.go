package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/db"
	apihttp "career-compass/internal/http"
	"career-compass/internal/llm"
	"career-compass/internal/repository"
	"career-compass/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// La conexión inicial es la única operación con reintentos; si agota los
	// intentos el proceso arranca degradado y los endpoints de auth reportan
	// el store caído en cada request.
	var users repository.UserRepository
	database, err := db.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Warn("mongo unavailable, auth endpoints degraded", zap.Error(err))
	} else {
		userRepo := repository.NewMongoUserRepository(database)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			logger.Warn("ensure indexes failed", zap.Error(err))
		}
		users = userRepo
	}

	var llmClient llm.LLMClient
	if cfg.GeminiAPIKey != "" {
		llmClient = llm.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		logger.Warn("gemini api key not configured, generation degraded to fallback text")
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	userSvc := service.NewUserService(logger, users)
	advisorSvc := service.NewAdvisorService(logger, llmClient)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	advisorHandler := apihttp.NewAdvisorHandler(logger, advisorSvc)
	healthHandler := apihttp.NewHealthHandler(database, cfg.GeminiAPIKey != "")
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, advisorHandler, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
