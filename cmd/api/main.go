package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/platemate/platemate-api/internal/application/service"
	"github.com/platemate/platemate-api/internal/config"
	"github.com/platemate/platemate-api/internal/infrastructure/database"
	"github.com/platemate/platemate-api/internal/infrastructure/repository"
	"github.com/platemate/platemate-api/internal/presentation/http/handler"
	"github.com/platemate/platemate-api/internal/presentation/http/routes"
	"github.com/platemate/platemate-api/pkg/email"
	"github.com/platemate/platemate-api/pkg/oauth"
	"github.com/platemate/platemate-api/pkg/printer"
	"github.com/platemate/platemate-api/pkg/utils"
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
	tenantRepo := repository.NewTenantRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	categoryRepo := repository.NewMenuCategoryRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	variantRepo := repository.NewVariantRepository(db)
	modifierRepo := repository.NewModifierRepository(db)
	customizationRepo := repository.NewCustomizationRepository(db)
	subMenuItemRepo := repository.NewSubMenuItemRepository(db)
	dealRepo := repository.NewDealRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	purchaseRepo := repository.NewPurchaseOrderRepository(db)
	purchaseDetailRepo := repository.NewPurchaseOrderDetailRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderLineRepo := repository.NewOrderLineRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	tenantService := service.NewTenantService(tenantRepo)
	branchService := service.NewBranchService(branchRepo)
	menuService := service.NewMenuService(categoryRepo, menuItemRepo, variantRepo, modifierRepo, customizationRepo, subMenuItemRepo, branchRepo)
	dealService := service.NewDealService(dealRepo, menuItemRepo, subMenuItemRepo, branchRepo)
	discountService := service.NewDiscountService(discountRepo, branchRepo)
	orderService := service.NewOrderService(orderRepo, orderLineRepo, branchRepo, menuItemRepo, dealRepo, recipeRepo, inventoryRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, supplierRepo, branchRepo, emailService)
	purchaseService := service.NewPurchaseService(purchaseRepo, purchaseDetailRepo, inventoryRepo, supplierRepo, branchRepo)
	recipeService := service.NewRecipeService(recipeRepo, menuItemRepo, subMenuItemRepo, inventoryRepo)
	reservationService := service.NewReservationService(reservationRepo, branchRepo, emailService)
	dashboardService := service.NewDashboardService(orderRepo, inventoryRepo, reservationRepo, branchRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, orderRepo, branchRepo, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Tenant:      handler.NewTenantHandler(tenantService),
		Branch:      handler.NewBranchHandler(branchService),
		Menu:        handler.NewMenuHandler(menuService),
		Deal:        handler.NewDealHandler(dealService),
		Discount:    handler.NewDiscountHandler(discountService),
		Order:       handler.NewOrderHandler(orderService),
		Inventory:   handler.NewInventoryHandler(inventoryService),
		Purchase:    handler.NewPurchaseHandler(purchaseService),
		Recipe:      handler.NewRecipeHandler(recipeService),
		Reservation: handler.NewReservationHandler(reservationService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		User:        handler.NewUserHandler(userService),
		Printer:     handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		TenantRepo:      tenantRepo,
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
