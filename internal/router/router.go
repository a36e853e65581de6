package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/omicronventa13-glitch/omicron-backend/internal/config"
	"github.com/omicronventa13-glitch/omicron-backend/internal/handler"
	"github.com/omicronventa13-glitch/omicron-backend/internal/infra"
	"github.com/omicronventa13-glitch/omicron-backend/internal/middleware"
	"github.com/omicronventa13-glitch/omicron-backend/internal/repository"
	"github.com/omicronventa13-glitch/omicron-backend/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Mongo
func New(cfg *config.Config, db *mongo.Database, storage *infra.Storage) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler(cfg.Env))
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	repairRepo := repository.NewRepairRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo, storage)
	ticketSvc := service.NewTicketService(ticketRepo, productRepo)
	repairSvc := service.NewRepairService(repairRepo, storage)
	backupSvc := service.NewBackupService(userRepo, productRepo, ticketRepo, repairRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	ticketsH := handler.NewTicketsHandler(ticketSvc)
	repairsH := handler.NewRepairsHandler(repairSvc)
	backupH := handler.NewBackupHandler(backupSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/", handler.Root())
	r.GET("/health", handler.Health(db))
	r.Static("/uploads", storage.Root())

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authH.Logout)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		// Tickets — any authenticated role can sell and consult
		api.POST("/tickets", ticketsH.Create)
		api.GET("/tickets", ticketsH.List)
		api.GET("/tickets/:id", ticketsH.Get)
		api.PUT("/tickets/:id/cancel", ticketsH.Cancel)

		// Products — reads for everyone, writes for admin/super
		api.GET("/products", productsH.List)
		api.GET("/products/:id", productsH.Get)
		adminProducts := api.Group("/products", middleware.RequireRole("admin", "super"))
		{
			adminProducts.POST("", productsH.Create)
			adminProducts.PUT("/:id", productsH.Update)
			adminProducts.DELETE("/:id", productsH.Delete)
		}

		// Repairs — intake and updates available to every role
		api.POST("/repairs", repairsH.Create)
		api.GET("/repairs", repairsH.List)
		api.PUT("/repairs/:id", repairsH.Update)
		api.DELETE("/repairs/:id", middleware.RequireRole("admin", "super"), repairsH.Delete)
		api.GET("/repairs/:id/pdf", repairsH.PDF)

		// User administration — admin/super only
		users := api.Group("/users", middleware.RequireRole("admin", "super"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}

		api.GET("/backup/download", middleware.RequireRole("admin", "super"), backupH.Download)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
