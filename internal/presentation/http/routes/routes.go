package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/platemate/platemate-api/internal/config"
	domainRepo "github.com/platemate/platemate-api/internal/domain/repository"
	"github.com/platemate/platemate-api/internal/presentation/http/handler"
	"github.com/platemate/platemate-api/internal/presentation/http/middleware"
	"github.com/platemate/platemate-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Tenant      *handler.TenantHandler
	Branch      *handler.BranchHandler
	Menu        *handler.MenuHandler
	Deal        *handler.DealHandler
	Discount    *handler.DiscountHandler
	Order       *handler.OrderHandler
	Inventory   *handler.InventoryHandler
	Purchase    *handler.PurchaseHandler
	Recipe      *handler.RecipeHandler
	Reservation *handler.ReservationHandler
	Dashboard   *handler.DashboardHandler
	User        *handler.UserHandler
	Printer     *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	TenantRepo      domainRepo.TenantRepository
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

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.TenantMiddleware(deps.TenantRepo))

		// Per-tenant rate limiter
		rateLimiter := middleware.NewTenantRateLimiter(middleware.RateLimiterConfig{
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

	// Tenants
	registerTenantRoutes(protected, h)

	// Branches
	registerBranchRoutes(protected, h)

	// Menu catalog
	registerMenuRoutes(protected, h)

	// Deals
	registerDealRoutes(protected, h)

	// Discounts
	registerDiscountRoutes(protected, h)

	// Orders
	registerOrderRoutes(protected, h, deps)

	// Inventory and suppliers
	registerInventoryRoutes(protected, h)

	// Purchases
	registerPurchaseRoutes(protected, h)

	// Recipes
	registerRecipeRoutes(protected, h)

	// Reservations
	registerReservationRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)

	// Permissions (Admin)
	registerPermissionRoutes(protected, h)

	// Super Admin routes
	registerAdminRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerTenantRoutes(protected *gin.RouterGroup, h *Handlers) {
	tenants := protected.Group("/tenants")
	{
		tenants.GET("", h.Tenant.ListTenants)
		tenants.POST("", h.Tenant.Create)
		tenants.GET("/current", h.Tenant.GetCurrentTenant)
		tenants.PUT("/current", h.Tenant.UpdateTenant)
		tenants.GET("/current/members", h.Tenant.ListMembers)
		tenants.POST("/current/members", h.Tenant.InviteMember)
		tenants.PUT("/current/members/:user_id", h.Tenant.UpdateMemberRole)
		tenants.DELETE("/current/members/:user_id", h.Tenant.RemoveMember)
	}
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("", h.Dashboard.GetBranchStats)
	}
}

func registerBranchRoutes(protected *gin.RouterGroup, h *Handlers) {
	branches := protected.Group("/branches")
	branches.Use(middleware.RequirePermission("manage-branches"))
	{
		branches.GET("", h.Branch.List)
		branches.POST("", h.Branch.Create)
		branches.GET("/:id", h.Branch.Get)
		branches.PUT("/:id", h.Branch.Update)
		branches.PUT("/:id/configuration", h.Branch.UpdateConfiguration)
		branches.DELETE("/:id", h.Branch.Delete)
	}
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/menu-categories")
	categories.Use(middleware.RequirePermission("manage-menu"))
	{
		categories.GET("", h.Menu.ListCategories)
		categories.POST("", h.Menu.CreateCategory)
		categories.PUT("/:id", h.Menu.UpdateCategory)
		categories.DELETE("/:id", h.Menu.DeleteCategory)
	}

	items := protected.Group("/menu-items")
	items.Use(middleware.RequirePermission("manage-menu"))
	{
		items.GET("", h.Menu.ListItems)
		items.POST("", h.Menu.CreateItem)
		items.GET("/:id", h.Menu.GetItem)
		items.PUT("/:id", h.Menu.UpdateItem)
		items.DELETE("/:id", h.Menu.DeleteItem)
		items.POST("/:id/variants", h.Menu.AddVariant)
		items.POST("/:id/modifiers", h.Menu.AddModifier)
		items.POST("/:id/customizations", h.Menu.AddCustomization)
		items.GET("/:id/variants/:variantId/recipe", h.Recipe.GetVariantRecipe)
		items.PUT("/:id/variants/:variantId/recipe", h.Recipe.SetVariantRecipe)
	}

	variants := protected.Group("/variants")
	variants.Use(middleware.RequirePermission("manage-menu"))
	{
		variants.PUT("/:id", h.Menu.UpdateVariant)
		variants.DELETE("/:id", h.Menu.DeleteVariant)
	}

	modifiers := protected.Group("/modifiers")
	modifiers.Use(middleware.RequirePermission("manage-menu"))
	{
		modifiers.DELETE("/:id", h.Menu.DeleteModifier)
	}

	customizations := protected.Group("/customizations")
	customizations.Use(middleware.RequirePermission("manage-menu"))
	{
		customizations.POST("/:id/options", h.Menu.AddCustomizationOption)
		customizations.DELETE("/:id", h.Menu.DeleteCustomization)
	}

	options := protected.Group("/customization-options")
	options.Use(middleware.RequirePermission("manage-menu"))
	{
		options.DELETE("/:id", h.Menu.RemoveCustomizationOption)
	}

	subItems := protected.Group("/sub-menu-items")
	subItems.Use(middleware.RequirePermission("manage-menu"))
	{
		subItems.GET("", h.Menu.ListSubMenuItems)
		subItems.POST("", h.Menu.CreateSubMenuItem)
		subItems.PUT("/:id", h.Menu.UpdateSubMenuItem)
		subItems.DELETE("/:id", h.Menu.DeleteSubMenuItem)
		subItems.GET("/:id/recipe", h.Recipe.GetSubMenuItemRecipe)
		subItems.PUT("/:id/recipe", h.Recipe.SetSubMenuItemRecipe)
	}
}

func registerDealRoutes(protected *gin.RouterGroup, h *Handlers) {
	deals := protected.Group("/deals")
	deals.Use(middleware.RequirePermission("manage-deals"))
	{
		deals.GET("", h.Deal.List)
		deals.POST("", h.Deal.Create)
		deals.GET("/:id", h.Deal.Get)
		deals.PUT("/:id", h.Deal.Update)
		deals.DELETE("/:id", h.Deal.Delete)
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

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	orders.Use(middleware.RequirePermission("manage-orders"))
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/cancel", h.Order.Cancel)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	inventory.Use(middleware.RequirePermission("manage-inventory"))
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("", h.Inventory.Create)
		inventory.GET("/low-stock", h.Inventory.GetLowStock)
		inventory.POST("/low-stock/notify", h.Inventory.NotifyLowStock)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.DELETE("/:id", h.Inventory.Delete)
	}

	suppliers := protected.Group("/suppliers")
	suppliers.Use(middleware.RequirePermission("manage-inventory"))
	{
		suppliers.GET("", h.Inventory.ListSuppliers)
		suppliers.POST("", h.Inventory.CreateSupplier)
		suppliers.GET("/:id", h.Inventory.GetSupplier)
		suppliers.PUT("/:id", h.Inventory.UpdateSupplier)
		suppliers.DELETE("/:id", h.Inventory.DeleteSupplier)
	}
}

func registerPurchaseRoutes(protected *gin.RouterGroup, h *Handlers) {
	purchases := protected.Group("/purchases")
	purchases.Use(middleware.RequirePermission("manage-purchases"))
	{
		purchases.GET("", h.Purchase.List)
		purchases.POST("", h.Purchase.Create)
		purchases.GET("/:id", h.Purchase.Get)
		purchases.POST("/:id/approve", h.Purchase.Approve)
		purchases.POST("/:id/cancel", h.Purchase.Cancel)
		purchases.DELETE("/:id", h.Purchase.Delete)
	}
}

func registerRecipeRoutes(protected *gin.RouterGroup, h *Handlers) {
	recipes := protected.Group("/recipes")
	recipes.Use(middleware.RequirePermission("manage-recipes"))
	{
		recipes.GET("", h.Recipe.List)
		recipes.GET("/per-order-quantity", h.Recipe.PerOrderQuantity)
		recipes.DELETE("/:id", h.Recipe.DeleteLine)
	}
}

func registerReservationRoutes(protected *gin.RouterGroup, h *Handlers) {
	reservations := protected.Group("/reservations")
	reservations.Use(middleware.RequirePermission("manage-reservations"))
	{
		reservations.GET("", h.Reservation.List)
		reservations.POST("", h.Reservation.Create)
		reservations.GET("/upcoming", h.Reservation.GetUpcoming)
		reservations.GET("/:id", h.Reservation.Get)
		reservations.PUT("/:id", h.Reservation.Update)
		reservations.PUT("/:id/status", h.Reservation.UpdateStatus)
		reservations.DELETE("/:id", h.Reservation.Delete)
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
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}

func registerPermissionRoutes(protected *gin.RouterGroup, h *Handlers) {
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole("super-admin"))
	{
		admin.POST("/tenants/assign-user", h.Tenant.AssignUserToTenant)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/receipt", h.Printer.PrintReceipt)
	}
}
