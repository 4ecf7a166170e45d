package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	accountingapp "github.com/clubpanel/backend/internal/application/accounting"
	identityapp "github.com/clubpanel/backend/internal/application/identity"
	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/clubpanel/backend/internal/infrastructure/auth"
	"github.com/clubpanel/backend/internal/infrastructure/config"
	"github.com/clubpanel/backend/internal/infrastructure/logger"
	"github.com/clubpanel/backend/internal/infrastructure/persistence"
	"github.com/clubpanel/backend/internal/infrastructure/telemetry"
	"github.com/clubpanel/backend/internal/interfaces/http/handler"
	"github.com/clubpanel/backend/internal/interfaces/http/middleware"
	"github.com/clubpanel/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			Club Panel API
//	@version		1.0
//	@description	Back-office accounting panel for sports and social clubs

//	@contact.name	API Support
//	@contact.email	support@clubpanel.example.com

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Club Panel backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize telemetry
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection
	db, err := persistence.NewDatabaseWithOptions(&cfg.Database, persistence.Options{
		Logger:       gormLog,
		TraceQueries: cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
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
	// missing Redis never blocks startup in development
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		log.Info("Redis token blacklist connected")
	}

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	clubRepo := persistence.NewGormClubRepository(db.DB)
	membershipRepo := persistence.NewGormMembershipRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	entryRepo := persistence.NewGormEntryRepository(db.DB)
	bankRepo := persistence.NewGormBankMovementRepository(db.DB)
	matchRepo := persistence.NewGormMatchRepository(db.DB)
	suggestionRepo := persistence.NewGormSuggestionRepository(db.DB)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	clubService := identityapp.NewClubService(clubRepo, membershipRepo, log)
	memberService := identityapp.NewMemberService(membershipRepo, userRepo, log)
	supplierService := accountingapp.NewSupplierService(supplierRepo, log)
	entryService := accountingapp.NewEntryService(entryRepo, supplierRepo, log)
	bankService := accountingapp.NewBankService(bankRepo, log)
	reconciliationService := accountingapp.NewReconciliationService(entryRepo, bankRepo, matchRepo, suggestionRepo, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService, jwtService)
	clubHandler := handler.NewClubHandler(clubService, cfg.Cookie)
	memberHandler := handler.NewMemberHandler(memberService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	entryHandler := handler.NewEntryHandler(entryService)
	bankHandler := handler.NewBankHandler(bankService)
	reconciliationHandler := handler.NewReconciliationHandler(reconciliationService)
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
	// 7. Tracing - Create request spans
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
		engine.Use(middleware.SpanErrorMarker())
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

	// JWT authentication on every API route except the public
	// auth endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))
	if cfg.Telemetry.Enabled {
		r.Use(middleware.TracingAttributeInjector())
	}

	// Club-scoped routes resolve the active club from the club cookie
	// on every request. No skip lists here: the middleware is attached
	// only to groups that require a scope.
	activeClub := middleware.ActiveClubMiddleware(middleware.ActiveClubConfig{
		Memberships: membershipRepo,
		Logger:      log,
	})

	// Auth routes: register/login/refresh are public (JWT skip paths),
	// logout and me require a valid token
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.AuthRateLimit(authLimiter))
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.GetCurrentUser)

	// Club routes: creation, listing and selection need only a valid
	// token; the current-club and member routes additionally need an
	// active club scope
	clubRoutes := router.NewDomainGroup("clubs", "/clubs")
	clubRoutes.POST("", clubHandler.CreateClub)
	clubRoutes.GET("", clubHandler.ListClubs)
	clubRoutes.POST("/select", clubHandler.SelectClub)

	currentClubRoutes := clubRoutes.Group("current-club", "/current")
	currentClubRoutes.Use(activeClub)
	currentClubRoutes.GET("",
		middleware.RequireCapability(identity.CapabilityView),
		clubHandler.GetCurrentClub)
	currentClubRoutes.PUT("",
		middleware.RequireCapability(identity.CapabilityManageMembers),
		clubHandler.UpdateCurrentClub)

	memberRoutes := clubRoutes.Group("members", "/members")
	memberRoutes.Use(activeClub)
	memberRoutes.GET("",
		middleware.RequireCapability(identity.CapabilityView),
		memberHandler.ListMembers)
	memberRoutes.POST("",
		middleware.RequireCapability(identity.CapabilityManageMembers),
		memberHandler.AddMember)
	memberRoutes.PUT("/:id/role",
		middleware.RequireCapability(identity.CapabilityManageMembers),
		memberHandler.ChangeMemberRole)
	memberRoutes.DELETE("/:id",
		middleware.RequireCapability(identity.CapabilityManageMembers),
		memberHandler.RemoveMember)

	// Supplier routes
	supplierRoutes := router.NewDomainGroup("suppliers", "/suppliers")
	supplierRoutes.Use(activeClub)
	supplierRoutes.GET("",
		middleware.RequireCapability(identity.CapabilityView),
		supplierHandler.ListSuppliers)
	supplierRoutes.GET("/:id",
		middleware.RequireCapability(identity.CapabilityView),
		supplierHandler.GetSupplier)
	supplierRoutes.POST("",
		middleware.RequireCapability(identity.CapabilityEditRecords),
		supplierHandler.CreateSupplier)
	supplierRoutes.PUT("/:id",
		middleware.RequireCapability(identity.CapabilityEditRecords),
		supplierHandler.UpdateSupplier)
	supplierRoutes.DELETE("/:id",
		middleware.RequireCapability(identity.CapabilityEditRecords),
		supplierHandler.DeleteSupplier)

	// Accounting entry routes (invoices and payroll)
	entryRoutes := router.NewDomainGroup("entries", "/entries")
	entryRoutes.Use(activeClub)
	entryRoutes.GET("",
		middleware.RequireCapability(identity.CapabilityView),
		entryHandler.ListEntries)
	entryRoutes.GET("/:id",
		middleware.RequireCapability(identity.CapabilityView),
		entryHandler.GetEntry)
	entryRoutes.POST("",
		middleware.RequireCapability(identity.CapabilityEditRecords),
		entryHandler.CreateEntry)
	entryRoutes.PUT("/:id",
		middleware.RequireCapability(identity.CapabilityEditRecords),
		entryHandler.UpdateEntry)
	entryRoutes.DELETE("/:id",
		middleware.RequireCapability(identity.CapabilityEditRecords),
		entryHandler.DeleteEntry)

	// Bank movement routes
	bankRoutes := router.NewDomainGroup("bank", "/bank-movements")
	bankRoutes.Use(activeClub)
	bankRoutes.GET("",
		middleware.RequireCapability(identity.CapabilityView),
		bankHandler.ListMovements)
	bankRoutes.GET("/:id",
		middleware.RequireCapability(identity.CapabilityView),
		bankHandler.GetMovement)
	bankRoutes.POST("",
		middleware.RequireCapability(identity.CapabilityEditRecords),
		bankHandler.CreateMovement)

	// Reconciliation routes, gated as a whole behind the
	// reconciliation capability
	reconciliationRoutes := router.NewDomainGroup("reconciliation", "/reconciliation")
	reconciliationRoutes.Use(activeClub,
		middleware.RequireCapability(identity.CapabilityAccessReconciliation))
	reconciliationRoutes.POST("/matches", reconciliationHandler.RecordMatch)
	reconciliationRoutes.GET("/matches", reconciliationHandler.ListMatches)
	reconciliationRoutes.GET("/suggestions", reconciliationHandler.ListSuggestions)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)

	r.Register(authRoutes).
		Register(clubRoutes).
		Register(supplierRoutes).
		Register(entryRoutes).
		Register(bankRoutes).
		Register(reconciliationRoutes).
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
