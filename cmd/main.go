package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SergeyYurch/blogger-auth/config"
	"github.com/SergeyYurch/blogger-auth/db"
	"github.com/SergeyYurch/blogger-auth/internal/auth/handler"
	repo "github.com/SergeyYurch/blogger-auth/internal/auth/repository/postgres"
	"github.com/SergeyYurch/blogger-auth/internal/auth/service"
	"github.com/SergeyYurch/blogger-auth/pkg/email"
	"github.com/SergeyYurch/blogger-auth/pkg/validator"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	mailer, err := email.NewResendMailer(&email.Config{
		APIKey:          cfg.ResendAPIKey,
		FromName:        cfg.EmailFromName,
		FromEmail:       cfg.EmailFrom,
		ConfirmationURL: cfg.ConfirmationURL,
		RecoveryURL:     cfg.RecoveryURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init mailer")
	}

	userRepo := repo.NewUserRepository(pool)
	sessionRepo := repo.NewSessionRepository(pool)
	attemptRepo := repo.NewAttemptRepository(pool)

	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	limiter := service.NewRateLimiter(attemptRepo, cfg)
	authService := service.NewAuthService(userRepo, sessionRepo, tokenService, mailer, cfg)

	authHandler := handler.NewAuthHandler(authService, validator.New())
	securityHandler := handler.NewSecurityHandler(authService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, securityHandler, limiter)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting blogger-auth")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
