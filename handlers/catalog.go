package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"apexdrive/catalog"
	"apexdrive/config"
)

// GetVehiclesHandler returns the static vehicle catalog.
func GetVehiclesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vehicles": catalog.Vehicles})
}

// GetVehicleByIDHandler returns one catalog entry.
func GetVehicleByIDHandler(c *gin.Context) {
	v := catalog.VehicleByID(c.Param("id"))
	if v == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": v})
}

// GetCentersHandler returns all test-drive centers with their availability.
func GetCentersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"centers": catalog.Centers})
}

// GetCenterByIDHandler returns one center.
func GetCenterByIDHandler(c *gin.Context) {
	center := catalog.CenterByID(c.Param("id"))
	if center == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "center not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"center": center})
}

// GetQuizHandler returns the concierge interview questions.
func GetQuizHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": catalog.Questions})
}

// GetConciergeHandler returns the delivery service description, with pricing
// resolved from configuration.
func GetConciergeHandler(c *gin.Context) {
	svc := catalog.Concierge(
		config.AppConfig.ConciergeDeposit,
		config.AppConfig.ConciergeServiceFee,
		config.AppConfig.Currency,
	)
	c.JSON(http.StatusOK, gin.H{"concierge": svc})
}
