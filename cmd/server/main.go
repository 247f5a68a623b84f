package main

import (
	"context"
	"log"
	"net/http"

	"userhub/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"userhub/internal/auth"
	"userhub/internal/cache"
	"userhub/internal/config"
	"userhub/internal/db"
	"userhub/internal/handler"
	"userhub/internal/repository"
	"userhub/internal/router"
	"userhub/internal/seed"
	"userhub/internal/service"
)

// @title User Hub API
// @version 1.0
// @description User account service with registration, login and token-protected mutations.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the login token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	// Pick the store backend. Memory is the default; mysql keeps the
	// same contract behind GORM.
	var repo repository.UserRepository
	switch cfg.StoreBackend {
	case "mysql":
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}
		if err := db.Migrate(gormDB); err != nil {
			log.Fatalf("database migrate: %v", err)
		}
		repo = repository.NewUserRepository(gormDB)
	default:
		repo = repository.NewMemoryUserRepository()
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize auth components
	tokenStore := auth.NewMemoryTokenStore()
	issuer := auth.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL, tokenStore)

	// Initialize services
	userService := service.NewUserService(repo, cacheClient)
	authService := service.NewAuthService(repo, issuer, cacheClient)

	if cfg.SeedDemo {
		seeded, err := seed.Apply(context.Background(), userService)
		if err != nil {
			log.Fatalf("seed demo users: %v", err)
		}
		log.Printf("seeded %d demo users", seeded)
	}

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	seedHandler := handler.NewSeedHandler(userService)

	// Register routes
	router.Register(e, issuer, userHandler, authHandler, seedHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
