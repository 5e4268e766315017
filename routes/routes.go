package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/scmlewis/eatwise-ai-sub000/controllers"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	nutrition := r.Group("/nutrition")
	{
		nutrition.POST("/analyze", controllers.AnalyzeNutrition)
		nutrition.POST("/coverage", controllers.GetCoverage)
	}

	food := r.Group("/food")
	{
		food.GET("/known", controllers.CheckFood)
		food.GET("/search", controllers.SearchFoods)
	}

	r.GET("/metrics/bmi", controllers.GetBMI)

	meals := r.Group("/meals")
	{
		meals.POST("/log", controllers.LogMealText)
		meals.POST("/photo", controllers.LogMealPhoto)
	}

	return r
}
