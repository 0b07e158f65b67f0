package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"affiliate_portal/internal/api"
	"affiliate_portal/internal/middleware"
	"affiliate_portal/internal/repository"
	"affiliate_portal/internal/service"
	"affiliate_portal/internal/storage"
	"affiliate_portal/pkg/auth"
	"affiliate_portal/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	store, err := storage.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		zapLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	repo := repository.New(store, cfg.Storage)

	adminCreds := service.AdminCredentials{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}
	accountService := service.NewAccountService(repo, repo, repo, repo, adminCreds)
	affiliateService := service.NewAffiliateService(repo, repo, repo)
	adminService := service.NewAdminService(repo, repo, repo, repo)

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	if sessionTTL <= 0 {
		sessionTTL = auth.DefaultSessionTTL
	}
	sessions := auth.NewSessionManager(cfg.Session.Secret, sessionTTL)
	authz := middleware.NewAuthorization(sessions)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api/v1")
	api.NewAuthRoutes(a, accountService, sessions)
	api.NewUserRoutes(a, accountService, affiliateService, authz)
	api.NewAdminRoutes(a, adminService, authz)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
