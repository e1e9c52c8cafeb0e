package routes

import (
	"time"

	"github.com/chc-hub/api/internal/config"
	domainRepo "github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/internal/presentation/http/handler"
	"github.com/chc-hub/api/internal/presentation/http/middleware"
	"github.com/chc-hub/api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth           *handler.AuthHandler
	Quote          *handler.QuoteHandler
	PricingItem    *handler.PricingItemHandler
	Discount       *handler.DiscountHandler
	Location       *handler.LocationHandler
	Aftercare      *handler.AftercareHandler
	ConsentForm    *handler.ConsentFormHandler
	EducationTopic *handler.EducationTopicHandler
	ContentDraft   *handler.ContentDraftHandler
	Inventory      *handler.InventoryHandler
	Referral       *handler.ReferralHandler
	Document       *handler.DocumentHandler
	Dashboard      *handler.DashboardHandler
	User           *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Patient-facing quote view, keyed by reference only
		v1.GET("/public/quotes/:reference", h.Quote.GetByReference)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	registerDashboardRoutes(protected, h)

	// Quotes
	registerQuoteRoutes(protected, h, deps)

	// Pricing catalog
	registerPricingItemRoutes(protected, h)

	// Discounts
	registerDiscountRoutes(protected, h)

	// Clinic locations
	registerLocationRoutes(protected, h)

	// Content (aftercare, consent forms, education, drafts)
	registerContentRoutes(protected, h)

	// Inventory usage
	registerInventoryRoutes(protected, h)

	// Referrals
	registerReferralRoutes(protected, h)

	// Documents
	registerDocumentRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("/stats", h.Dashboard.Stats)
	}
}

func registerQuoteRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	quotes := protected.Group("/quotes")
	quotes.Use(middleware.RequirePermission("manage-quotes"))
	{
		quotes.GET("", h.Quote.List)
		// Quote creation uses idempotency middleware to prevent duplicates
		quotes.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Quote.Create)
		quotes.GET("/:id", h.Quote.Get)
		quotes.PUT("/:id", h.Quote.Update)
		quotes.DELETE("/:id", h.Quote.Delete)
		quotes.PUT("/:id/status", h.Quote.UpdateStatus)
		quotes.POST("/:id/duplicate", h.Quote.Duplicate)
		quotes.POST("/:id/send", h.Quote.Send)
	}
}

func registerPricingItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/pricing-items")
	items.Use(middleware.RequirePermission("manage-pricing"))
	{
		items.GET("", h.PricingItem.List)
		items.POST("", h.PricingItem.Create)
		items.GET("/categories", h.PricingItem.ListCategories)
		items.GET("/:id", h.PricingItem.Get)
		items.PUT("/:id", h.PricingItem.Update)
		items.DELETE("/:id", h.PricingItem.Delete)
	}
}

func registerDiscountRoutes(protected *gin.RouterGroup, h *Handlers) {
	discounts := protected.Group("/discounts")
	discounts.Use(middleware.RequirePermission("manage-discounts"))
	{
		discounts.GET("", h.Discount.List)
		discounts.POST("", h.Discount.Create)
		discounts.GET("/:id", h.Discount.Get)
		discounts.PUT("/:id", h.Discount.Update)
		discounts.DELETE("/:id", h.Discount.Delete)
	}
}

func registerLocationRoutes(protected *gin.RouterGroup, h *Handlers) {
	locations := protected.Group("/locations")
	locations.Use(middleware.RequirePermission("manage-locations"))
	{
		locations.GET("", h.Location.List)
		locations.POST("", h.Location.Create)
		locations.GET("/:id", h.Location.Get)
		locations.PUT("/:id", h.Location.Update)
		locations.DELETE("/:id", h.Location.Delete)
	}
}

func registerContentRoutes(protected *gin.RouterGroup, h *Handlers) {
	content := protected.Group("")
	content.Use(middleware.RequirePermission("manage-content"))
	{
		aftercare := content.Group("/aftercare")
		{
			aftercare.GET("", h.Aftercare.List)
			aftercare.POST("", h.Aftercare.Create)
			aftercare.GET("/:id", h.Aftercare.Get)
			aftercare.PUT("/:id", h.Aftercare.Update)
			aftercare.DELETE("/:id", h.Aftercare.Delete)
		}

		consentForms := content.Group("/consent-forms")
		{
			consentForms.GET("", h.ConsentForm.List)
			consentForms.POST("", h.ConsentForm.Create)
			consentForms.GET("/:id", h.ConsentForm.Get)
			consentForms.PUT("/:id", h.ConsentForm.Update)
			consentForms.DELETE("/:id", h.ConsentForm.Delete)
		}

		topics := content.Group("/education-topics")
		{
			topics.GET("", h.EducationTopic.List)
			topics.POST("", h.EducationTopic.Create)
			topics.GET("/:id", h.EducationTopic.Get)
			topics.PUT("/:id", h.EducationTopic.Update)
			topics.DELETE("/:id", h.EducationTopic.Delete)
		}

		content.POST("/content/draft", h.ContentDraft.Draft)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory-usage")
	inventory.Use(middleware.RequirePermission("manage-inventory"))
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("", h.Inventory.Create)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.DELETE("/:id", h.Inventory.Delete)
	}
}

func registerReferralRoutes(protected *gin.RouterGroup, h *Handlers) {
	referrals := protected.Group("/referrals")
	referrals.Use(middleware.RequirePermission("manage-referrals"))
	{
		referrals.GET("", h.Referral.List)
		referrals.POST("", h.Referral.Create)
		referrals.GET("/:id", h.Referral.Get)
		referrals.PUT("/:id", h.Referral.Update)
		referrals.PUT("/:id/status", h.Referral.UpdateStatus)
		referrals.DELETE("/:id", h.Referral.Delete)
	}
}

func registerDocumentRoutes(protected *gin.RouterGroup, h *Handlers) {
	documents := protected.Group("/documents")
	documents.Use(middleware.RequirePermission("manage-documents"))
	{
		documents.GET("", h.Document.List)
		documents.POST("", h.Document.Upload)
		documents.GET("/:id/download", h.Document.Download)
		documents.DELETE("/:id", h.Document.Delete)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}

	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}

	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}
