package http

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sm8ta/webike_maintenance_tracker/internal/config"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	handler *Handler,
	metricsHandler http.Handler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
	}
	if cfg.AllowedOrigins == "" || cfg.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	}
	router.Use(cors.New(corsConfig))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	router.GET("/metrics", gin.WrapH(metricsHandler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	fleet := router.Group("/fleet")
	{
		fleet.GET("", handler.GetFleet)
		fleet.GET("/stats", handler.FleetStats)
		fleet.GET("/urgent", handler.UrgentItems)
		fleet.PUT("/current", handler.SelectBike)
		fleet.GET("/export", handler.Export)
		fleet.POST("/import", handler.Import)
		fleet.GET("/backup", handler.Backup)
	}

	bikes := router.Group("/bikes")
	{
		bikes.POST("", handler.CreateBike)
		bikes.GET("", handler.ListBikes)
		bikes.GET("/:id", handler.GetBike)
		bikes.PUT("/:id", handler.UpdateBike)
		bikes.DELETE("/:id", handler.DeleteBike)

		bikes.GET("/:id/maintenance", handler.ListItems)
		bikes.POST("/:id/maintenance/:itemId/cycle", handler.CycleItemStatus)
		bikes.PUT("/:id/maintenance/:itemId/last-performed", handler.SetLastPerformed)

		bikes.GET("/:id/configuration", handler.GetConfiguration)
		bikes.PUT("/:id/configuration", handler.UpdateConfiguration)

		bikes.GET("/:id/links", handler.ListLinks)
		bikes.POST("/:id/links", handler.AddLink)
		bikes.DELETE("/:id/links/:linkId", handler.RemoveLink)

		bikes.POST("/:id/recommendations", handler.GenerateRecommendations)
	}
	return &Router{router: router}, nil
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
