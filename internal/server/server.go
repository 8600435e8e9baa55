package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dogtorvet/dogtorvet-api/internal/auth"
	"github.com/dogtorvet/dogtorvet-api/internal/config"
	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/handlers"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/dogtorvet/dogtorvet-api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Server wires the database pool, middleware and route handlers together.
type Server struct {
	cfg    config.Config
	pool   *pgxpool.Pool
	router *gin.Engine
}

// New connects to the database and builds the router. The database connect
// is retried with exponential backoff so the API survives a slow Postgres
// startup in local compose setups.
func New(cfg config.Config) (*Server, error) {
	pool, err := connectPool(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	queries := db.New(pool)

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		pool.Close()
		return nil, err
	}

	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		DB:     queries,
		DBPool: pool,
		Tokens: tokens,
		Logger: logger.Log,
	})

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(configureCORS())
	router.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())

	registerRoutes(router, common, tokens, queries)

	return &Server{cfg: cfg, pool: pool, router: router}, nil
}

func connectPool(databaseURL string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	var pool *pgxpool.Pool
	connect := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		p, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return err
		}
		pool = p
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second
	if err := backoff.RetryNotify(connect, policy, func(err error, next time.Duration) {
		logger.Warn("Database not ready, retrying", zap.Error(err), zap.Duration("next_attempt_in", next))
	}); err != nil {
		return nil, err
	}
	return pool, nil
}

func registerRoutes(router *gin.Engine, common *handlers.CommonServices, tokens *auth.TokenManager, queries db.Querier) {
	authHandler := handlers.NewAuthHandler(common)
	userHandler := handlers.NewUserHandler(common)
	clientHandler := handlers.NewClientHandler(common)
	petHandler := handlers.NewPetHandler(common)
	taxonomyHandler := handlers.NewTaxonomyHandler(common)
	medicalHandler := handlers.NewMedicalHandler(common)
	appointmentHandler := handlers.NewAppointmentHandler(common)
	catalogHandler := handlers.NewCatalogHandler(common)
	invoiceHandler := handlers.NewInvoiceHandler(common)
	analyticsHandler := handlers.NewAnalyticsHandler(common)
	auditHandler := handlers.NewAuditHandler(common)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.POST("/auth/login", authHandler.Login)
		v1.POST("/auth/refresh", authHandler.Refresh)

		// Protected routes (valid access token required)
		protected := v1.Group("/")
		protected.Use(auth.RequireAuth(tokens, queries))
		{
			protected.GET("/auth/me", authHandler.Me)
			protected.POST("/auth/logout", authHandler.Logout)
			protected.PUT("/auth/password", authHandler.ChangePassword)

			// Admin-only routes
			admin := protected.Group("/")
			admin.Use(auth.RequireAdmin())
			{
				admin.POST("/auth/register", authHandler.Register)

				admin.GET("/users", userHandler.ListUsers)
				admin.GET("/users/:user_id", userHandler.GetUser)
				admin.PUT("/users/:user_id", userHandler.UpdateUser)
				admin.DELETE("/users/:user_id", userHandler.DeactivateUser)
				admin.POST("/users/:user_id/restore", userHandler.RestoreUser)

				admin.GET("/audit-logs", auditHandler.ListAuditLogs)
			}

			// Clients
			protected.GET("/clients", clientHandler.ListClients)
			protected.POST("/clients", clientHandler.CreateClient)
			protected.GET("/clients/:client_id", clientHandler.GetClient)
			protected.PUT("/clients/:client_id", clientHandler.UpdateClient)
			protected.DELETE("/clients/:client_id", clientHandler.DeleteClient)
			protected.POST("/clients/:client_id/restore", clientHandler.RestoreClient)

			// Pets
			protected.GET("/pets", petHandler.ListPets)
			protected.POST("/pets", petHandler.CreatePet)
			protected.GET("/pets/:pet_id", petHandler.GetPet)
			protected.PUT("/pets/:pet_id", petHandler.UpdatePet)
			protected.DELETE("/pets/:pet_id", petHandler.DeletePet)
			protected.POST("/pets/:pet_id/restore", petHandler.RestorePet)

			// Taxonomy
			protected.GET("/species", taxonomyHandler.ListSpecies)
			protected.POST("/species", taxonomyHandler.CreateSpecies)
			protected.GET("/species/:species_id", taxonomyHandler.GetSpecies)
			protected.PUT("/species/:species_id", taxonomyHandler.UpdateSpecies)
			protected.DELETE("/species/:species_id", taxonomyHandler.DeleteSpecies)

			protected.GET("/breeds", taxonomyHandler.ListBreeds)
			protected.POST("/breeds", taxonomyHandler.CreateBreed)
			protected.GET("/breeds/:breed_id", taxonomyHandler.GetBreed)
			protected.PUT("/breeds/:breed_id", taxonomyHandler.UpdateBreed)
			protected.DELETE("/breeds/:breed_id", taxonomyHandler.DeleteBreed)

			// Medical reference data
			protected.GET("/allergies", medicalHandler.ListAllergies)
			protected.POST("/allergies", medicalHandler.CreateAllergy)
			protected.GET("/allergies/:allergy_id", medicalHandler.GetAllergy)
			protected.PUT("/allergies/:allergy_id", medicalHandler.UpdateAllergy)
			protected.DELETE("/allergies/:allergy_id", medicalHandler.DeleteAllergy)

			protected.GET("/vaccinations", medicalHandler.ListVaccinations)
			protected.POST("/vaccinations", medicalHandler.CreateVaccination)
			protected.GET("/vaccinations/:vaccination_id", medicalHandler.GetVaccination)
			protected.PUT("/vaccinations/:vaccination_id", medicalHandler.UpdateVaccination)
			protected.DELETE("/vaccinations/:vaccination_id", medicalHandler.DeleteVaccination)

			// Appointments
			protected.GET("/appointments", appointmentHandler.ListAppointments)
			protected.GET("/appointments/upcoming", appointmentHandler.ListUpcomingAppointments)
			protected.POST("/appointments", appointmentHandler.CreateAppointment)
			protected.GET("/appointments/:appointment_id", appointmentHandler.GetAppointment)
			protected.PUT("/appointments/:appointment_id", appointmentHandler.UpdateAppointment)
			protected.POST("/appointments/:appointment_id/cancel", appointmentHandler.CancelAppointment)
			protected.DELETE("/appointments/:appointment_id", appointmentHandler.DeleteAppointment)

			// Catalog
			protected.GET("/services", catalogHandler.ListServices)
			protected.POST("/services", catalogHandler.CreateService)
			protected.GET("/services/:service_id", catalogHandler.GetService)
			protected.PUT("/services/:service_id", catalogHandler.UpdateService)
			protected.DELETE("/services/:service_id", catalogHandler.DeleteService)

			protected.GET("/products", catalogHandler.ListProducts)
			protected.GET("/products/low-stock", catalogHandler.ListLowStockProducts)
			protected.POST("/products", catalogHandler.CreateProduct)
			protected.GET("/products/:product_id", catalogHandler.GetProduct)
			protected.PUT("/products/:product_id", catalogHandler.UpdateProduct)
			protected.POST("/products/:product_id/stock", catalogHandler.AdjustProductStock)
			protected.DELETE("/products/:product_id", catalogHandler.DeleteProduct)

			// Invoices
			protected.GET("/invoices", invoiceHandler.ListInvoices)
			protected.POST("/invoices", invoiceHandler.CreateInvoice)
			protected.GET("/invoices/:invoice_id", invoiceHandler.GetInvoice)
			protected.GET("/invoices/:invoice_id/pdf", invoiceHandler.DownloadInvoicePDF)
			protected.PUT("/invoices/:invoice_id", invoiceHandler.UpdateInvoice)
			protected.POST("/invoices/:invoice_id/pay", invoiceHandler.MarkInvoicePaid)
			protected.DELETE("/invoices/:invoice_id", invoiceHandler.DeleteInvoice)
			protected.POST("/invoices/:invoice_id/restore", invoiceHandler.RestoreInvoice)
			protected.POST("/invoices/:invoice_id/items", invoiceHandler.AddInvoiceItem)

			// Invoice items (addressed by their own id)
			protected.PUT("/invoice-items/:item_id", invoiceHandler.UpdateInvoiceItem)
			protected.DELETE("/invoice-items/:item_id", invoiceHandler.RemoveInvoiceItem)

			// Analytics
			protected.GET("/analytics/dashboard", analyticsHandler.GetDashboard)
		}
	}
}

// Run serves HTTP until SIGINT/SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API listening", zap.String("port", s.cfg.Port), zap.String("stage", s.cfg.Stage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.pool.Close()
		return err
	case sig := <-quit:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	err := srv.Shutdown(ctx)
	s.pool.Close()
	return err
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"}
	corsConfig.ExposeHeaders = []string{"X-Correlation-ID", "Content-Disposition"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
