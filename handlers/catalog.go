package handlers

import (
	"net/http"

	"nutribook/catalog"

	"github.com/gin-gonic/gin"
)

// ListNutritionistsHandler handles GET /api/nutritionists.
func ListNutritionistsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.All())
}

// GetNutritionistHandler handles GET /api/nutritionists/:id.
func GetNutritionistHandler(c *gin.Context) {
	id := c.Param("id")
	nutritionist, ok := catalog.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nutritionist not found"})
		return
	}
	c.JSON(http.StatusOK, nutritionist)
}
