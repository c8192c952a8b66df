package main

import (
	"github.com/otaviobrantes/lumen/internal/app"
	"github.com/otaviobrantes/lumen/pkg/config"
	"github.com/otaviobrantes/lumen/pkg/logger"

	_ "github.com/otaviobrantes/lumen/docs" // Swagger docs
)

// @title           Lumen API
// @version         1.0
// @description     Subscription video catalog for the Lumen streaming platform

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	if err := app.Run(cfg, log); err != nil {
		panic(err)
	}
}
