package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"apexdrive/handlers"
	"apexdrive/services/intelligence"
	"apexdrive/utils"
)

// RegisterCatalogRoutes registers the static catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/catalog")
	{
		api.GET("/vehicles", handlers.GetVehiclesHandler)
		api.GET("/vehicles/:id", handlers.GetVehicleByIDHandler)
		api.GET("/centers", handlers.GetCentersHandler)
		api.GET("/centers/:id", handlers.GetCenterByIDHandler)
		api.GET("/quiz", handlers.GetQuizHandler)
		api.GET("/concierge", handlers.GetConciergeHandler)
	}
}

// RegisterRecommendRoutes registers the recommendation endpoints.
func RegisterRecommendRoutes(r *gin.Engine, narrator intelligence.Narrator) {
	api := r.Group("/api/recommend")
	{
		api.POST("", handlers.RecommendHandler)
		api.POST("/narrate", handlers.NarrateHandler(narrator))
	}
}

// RegisterHealthRoutes registers the health endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}
