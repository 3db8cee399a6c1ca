package app

import (
	"errors"
	"fmt"

	"inventory_backend/database"
	"inventory_backend/internal/auth"
	"inventory_backend/internal/config"
	"inventory_backend/internal/handlers"
	"inventory_backend/internal/logger"
	"inventory_backend/internal/middleware"
	"inventory_backend/internal/models"
	"inventory_backend/internal/repositories"
	"inventory_backend/internal/routes"
	"inventory_backend/internal/services"
	"inventory_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	repos := repositories.NewRepositories(gormDB)

	tokenService := auth.NewTokenService(auth.TokenConfig{
		AccessTTL:  cfg.Auth.AccessTTL,
		RefreshTTL: cfg.Auth.RefreshTTL,
		Algorithm:  cfg.Auth.Algorithm,
	})

	customValidator := validator.New()
	serviceContainer := services.NewServiceContainer(repos, tokenService, customValidator, cfg.Auth.BcryptCost)

	authGate := middleware.AuthMiddleware(tokenService, repos.User)
	appHandlers := initializeHandlers(serviceContainer, authGate)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, authGate)

	return ginRouter
}

func initializeHandlers(sc *services.ServiceContainer, authGate gin.HandlerFunc) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler()

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, sc.Auth, authGate),
		StockHandler:    handlers.NewStockHandler(baseHandler, sc.Stock, sc.Category),
		CustomerHandler: handlers.NewCustomerHandler(baseHandler, sc.Customer),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin создает первого SUPER_ADMIN, если его еще нет
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ? AND document_status = ?", adminEmail, models.DocumentStatusActive).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	passwordHash, err := auth.HashPassword(adminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	accessPair, err := auth.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("failed to generate access keypair: %w", err)
	}
	refreshPair, err := auth.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("failed to generate refresh keypair: %w", err)
	}

	admin := &models.User{
		Email:             adminEmail,
		Name:              "Administrator",
		PasswordHash:      passwordHash,
		Role:              models.UserRoleSuperAdmin,
		Status:            models.DocumentStatusActive,
		AccessPrivateKey:  accessPair.PrivateKey,
		AccessPublicKey:   accessPair.PublicKey,
		RefreshPrivateKey: refreshPair.PrivateKey,
		RefreshPublicKey:  refreshPair.PublicKey,
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
