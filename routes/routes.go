package routes

import (
	"net/http"

	"github.com/SABYA648/Mood-Bite/controllers"
	"github.com/SABYA648/Mood-Bite/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"message": "Mood-Bite API is running",
			})
		})

		api.GET("/food-items", controllers.GetFoodItems)
		api.GET("/food-items/:id", controllers.GetFoodItemByID)
		api.GET("/food-image", controllers.GetFoodImage)
		api.GET("/image-sources", controllers.GetImageSources)

		api.POST("/analyze-mood", controllers.AnalyzeMood)
		api.POST("/advanced-food-request", controllers.AdvancedFoodRequest)
	}

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	user := r.Group("/api/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/preferences", controllers.GetPreferences)
		user.PUT("/preferences", controllers.UpdatePreferences)
	}

	admin := r.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.POST("/seed-database", controllers.SeedDatabase)
		admin.POST("/generate-food-items", controllers.GenerateFoodItems)
	}

	return r
}
