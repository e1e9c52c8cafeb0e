package main

import (
	"log"
	"os"

	"github.com/chc-hub/api/internal/application/service"
	"github.com/chc-hub/api/internal/config"
	"github.com/chc-hub/api/internal/infrastructure/database"
	"github.com/chc-hub/api/internal/infrastructure/repository"
	"github.com/chc-hub/api/internal/infrastructure/storage"
	"github.com/chc-hub/api/internal/presentation/http/handler"
	"github.com/chc-hub/api/internal/presentation/http/routes"
	"github.com/chc-hub/api/pkg/email"
	"github.com/chc-hub/api/pkg/llm"
	"github.com/chc-hub/api/pkg/oauth"
	"github.com/chc-hub/api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	quoteLineItemRepo := repository.NewQuoteLineItemRepository(db)
	pricingItemRepo := repository.NewPricingItemRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	aftercareRepo := repository.NewAftercareRepository(db)
	consentFormRepo := repository.NewConsentFormRepository(db)
	educationTopicRepo := repository.NewEducationTopicRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromAddress,
		FrontendURL:  cfg.App.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize object storage
	objectStorage, err := storage.NewS3Storage(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Initialize LLM client for content drafting
	llmClient := llm.NewClient(llm.Config{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	quoteService := service.NewQuoteService(quoteRepo, quoteLineItemRepo, discountRepo, locationRepo, emailService)
	pricingItemService := service.NewPricingItemService(pricingItemRepo)
	discountService := service.NewDiscountService(discountRepo)
	locationService := service.NewLocationService(locationRepo)
	aftercareService := service.NewAftercareService(aftercareRepo)
	consentFormService := service.NewConsentFormService(consentFormRepo)
	educationTopicService := service.NewEducationTopicService(educationTopicRepo)
	contentDraftService := service.NewContentDraftService(llmClient)
	inventoryService := service.NewInventoryService(inventoryRepo, locationRepo)
	referralService := service.NewReferralService(referralRepo)
	documentService := service.NewDocumentService(documentRepo, objectStorage, cfg.Storage.UploadMaxSize)
	dashboardService := service.NewDashboardService(quoteRepo, referralRepo, inventoryRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:           handler.NewAuthHandler(authService),
		Quote:          handler.NewQuoteHandler(quoteService),
		PricingItem:    handler.NewPricingItemHandler(pricingItemService),
		Discount:       handler.NewDiscountHandler(discountService),
		Location:       handler.NewLocationHandler(locationService),
		Aftercare:      handler.NewAftercareHandler(aftercareService),
		ConsentForm:    handler.NewConsentFormHandler(consentFormService),
		EducationTopic: handler.NewEducationTopicHandler(educationTopicService),
		ContentDraft:   handler.NewContentDraftHandler(contentDraftService),
		Inventory:      handler.NewInventoryHandler(inventoryService),
		Referral:       handler.NewReferralHandler(referralService),
		Document:       handler.NewDocumentHandler(documentService),
		Dashboard:      handler.NewDashboardHandler(dashboardService),
		User:           handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
