package routes

import (
	"time"

	"github.com/featherduino/optionsScreener/client"
	"github.com/featherduino/optionsScreener/config"
	"github.com/featherduino/optionsScreener/controller"
	"github.com/featherduino/optionsScreener/middleware"
	"github.com/featherduino/optionsScreener/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cfg *config.SystemConfigs) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.RateLimiter(cfg.Config.RateLimiter))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// --- 1. Clients ---
	trueDataClient := client.NewTrueDataClient(cfg.Config)
	screenerClient := client.NewScreenerClient(cfg.Config.ScreenerBaseURL)

	// --- 2. Services (Dependency Injection) ---
	chainSvc := service.NewOptionChainService(trueDataClient, cfg.Config.CacheEnabled)
	screenerSvc := service.NewScreenerService(screenerClient)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- 3. Routes & Controllers ---
	controller.NewHealthController(chainSvc).RegisterRoutes(r)
	controller.NewOptionChainController(chainSvc).RegisterRoutes(r)
	controller.NewScreenerController(screenerSvc).RegisterRoutes(r)

	return r
}
