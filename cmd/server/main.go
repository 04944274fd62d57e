package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/gemba/backend/internal/application/identity"
	partnerapp "github.com/gemba/backend/internal/application/partner"
	reportapp "github.com/gemba/backend/internal/application/report"
	settingsapp "github.com/gemba/backend/internal/application/settings"
	worksapp "github.com/gemba/backend/internal/application/works"
	"github.com/gemba/backend/internal/infrastructure/auth"
	"github.com/gemba/backend/internal/infrastructure/config"
	"github.com/gemba/backend/internal/infrastructure/logger"
	"github.com/gemba/backend/internal/infrastructure/persistence"
	"github.com/gemba/backend/internal/infrastructure/telemetry"
	"github.com/gemba/backend/internal/interfaces/http/handler"
	"github.com/gemba/backend/internal/interfaces/http/middleware"
	"github.com/gemba/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Gemba Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Initialize database connection with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), 200*time.Millisecond)
	db, err := persistence.NewDatabase(&cfg.Database, persistence.Options{
		Logger:       gormLog,
		TraceEnabled: cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
	})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist backed by Redis, with an in-memory fallback so a
	// Redis outage does not keep the API from starting
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing redis connection", zap.Error(err))
			}
		}()
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected", zap.String("addr", cfg.Redis.Addr()))
	}

	// Initialize repositories
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	costRepo := persistence.NewGormCostRepository(db.DB)
	categoryRepo := persistence.NewGormCostCategoryRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	fiscalRepo := persistence.NewGormFiscalSettingsRepository(db.DB)
	systemSettingRepo := persistence.NewGormSystemSettingRepository(db.DB)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(companyRepo, userRepo, jwtService, blacklist)
	companyService := identityapp.NewCompanyService(companyRepo, userRepo, fiscalRepo, categoryRepo, projectRepo)
	userService := identityapp.NewUserService(userRepo, companyRepo)
	projectService := worksapp.NewProjectService(projectRepo, costRepo, userRepo, companyRepo, fiscalRepo)
	costService := worksapp.NewCostService(costRepo, projectRepo)
	categoryService := worksapp.NewCategoryService(categoryRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	vendorService := partnerapp.NewVendorService(vendorRepo)
	settingsService := settingsapp.NewSettingsService(fiscalRepo, systemSettingRepo)
	dashboardService := reportapp.NewDashboardService(projectRepo, costRepo, userRepo, fiscalRepo, settingsService)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	companyHandler := handler.NewCompanyHandler(companyService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	costHandler := handler.NewCostHandler(costService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	customerHandler := handler.NewCustomerHandler(customerService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	systemHandler := handler.NewSystemHandler(db.DB)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. Tracing - Record spans (if enabled)
	// 8. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
	}

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/companies/register",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	admin := middleware.RequireAdmin()

	// Auth domain (login, token refresh, session)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.RateLimit(authLimiter))
	}
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)
	authRoutes.POST("/change-password", authHandler.ChangePassword)

	// Company domain (registration, profile, plan)
	companyRoutes := router.NewDomainGroup("companies", "/companies")
	companyRoutes.POST("/register", companyHandler.Register)
	companyRoutes.GET("", companyHandler.Get)
	companyRoutes.GET("/stats", companyHandler.Stats)
	companyRoutes.PUT("", admin, companyHandler.Update)
	companyRoutes.PATCH("/plan", admin, companyHandler.ChangePlan)

	// Identity domain (staff accounts)
	identityRoutes := router.NewDomainGroup("identity", "/identity")
	identityRoutes.POST("/users", admin, userHandler.Create)
	identityRoutes.GET("/users", userHandler.List)
	identityRoutes.GET("/users/:id", userHandler.Get)
	identityRoutes.PUT("/users/:id", admin, userHandler.Update)
	identityRoutes.POST("/users/:id/reset-password", admin, userHandler.ResetPassword)
	identityRoutes.POST("/users/:id/deactivate", admin, userHandler.Deactivate)
	identityRoutes.POST("/users/:id/activate", admin, userHandler.Activate)
	identityRoutes.DELETE("/users/:id", admin, userHandler.Delete)

	// Works domain (projects, costs, cost categories)
	worksRoutes := router.NewDomainGroup("works", "/works")
	worksRoutes.POST("/projects", projectHandler.Create)
	worksRoutes.GET("/projects", projectHandler.List)
	worksRoutes.GET("/projects/:id", projectHandler.Get)
	worksRoutes.PUT("/projects/:id", projectHandler.Update)
	worksRoutes.PATCH("/projects/:id/status", projectHandler.ChangeStatus)
	worksRoutes.PATCH("/projects/:id/billing-dates", projectHandler.SetBillingDates)
	worksRoutes.DELETE("/projects/:id", projectHandler.Delete)
	worksRoutes.POST("/costs", costHandler.Create)
	worksRoutes.GET("/costs", costHandler.List)
	worksRoutes.GET("/costs/:id", costHandler.Get)
	worksRoutes.PUT("/costs/:id", costHandler.Update)
	worksRoutes.PATCH("/costs/:id/paid", costHandler.MarkPaid)
	worksRoutes.PATCH("/costs/:id/unpaid", costHandler.MarkUnpaid)
	worksRoutes.DELETE("/costs/:id", costHandler.Delete)
	worksRoutes.POST("/categories", admin, categoryHandler.Create)
	worksRoutes.GET("/categories", categoryHandler.List)
	worksRoutes.PUT("/categories/:id", admin, categoryHandler.Update)
	worksRoutes.DELETE("/categories/:id", admin, categoryHandler.Delete)

	// Partner domain (customers, vendors)
	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/customers", customerHandler.Create)
	partnerRoutes.GET("/customers", customerHandler.List)
	partnerRoutes.GET("/customers/:id", customerHandler.Get)
	partnerRoutes.PUT("/customers/:id", customerHandler.Update)
	partnerRoutes.POST("/customers/:id/deactivate", customerHandler.Deactivate)
	partnerRoutes.POST("/customers/:id/activate", customerHandler.Activate)
	partnerRoutes.DELETE("/customers/:id", customerHandler.Delete)
	partnerRoutes.POST("/vendors", vendorHandler.Create)
	partnerRoutes.GET("/vendors", vendorHandler.List)
	partnerRoutes.GET("/vendors/favorites", vendorHandler.ListFavorites)
	partnerRoutes.GET("/vendors/:id", vendorHandler.Get)
	partnerRoutes.PUT("/vendors/:id", vendorHandler.Update)
	partnerRoutes.PATCH("/vendors/:id/favorite", vendorHandler.ToggleFavorite)
	partnerRoutes.POST("/vendors/:id/deactivate", vendorHandler.Deactivate)
	partnerRoutes.POST("/vendors/:id/activate", vendorHandler.Activate)
	partnerRoutes.DELETE("/vendors/:id", vendorHandler.Delete)

	// Settings domain (fiscal scheme, per-tenant system settings)
	settingsRoutes := router.NewDomainGroup("settings", "/settings")
	settingsRoutes.GET("/fiscal", settingsHandler.GetFiscal)
	settingsRoutes.PUT("/fiscal", admin, settingsHandler.UpdateFiscal)
	settingsRoutes.GET("/system", settingsHandler.ListSystem)
	settingsRoutes.GET("/system/:key", settingsHandler.GetSystem)
	settingsRoutes.PUT("/system/:key", admin, settingsHandler.PutSystem)
	settingsRoutes.DELETE("/system/:key", admin, settingsHandler.DeleteSystem)

	// Report domain (fiscal-period dashboard)
	dashboardRoutes := router.NewDomainGroup("dashboard", "/dashboard")
	dashboardRoutes.GET("", dashboardHandler.Get)
	dashboardRoutes.GET("/periods", dashboardHandler.ListPeriods)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.Info)
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/health", systemHandler.Health)

	r.Register(authRoutes).
		Register(companyRoutes).
		Register(identityRoutes).
		Register(worksRoutes).
		Register(partnerRoutes).
		Register(settingsRoutes).
		Register(dashboardRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
