package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scmlewis/eatwise-ai-sub000/models"
	"github.com/scmlewis/eatwise-ai-sub000/services"
	"github.com/scmlewis/eatwise-ai-sub000/utils"
)

type analyzeRequest struct {
	Ingredients   []models.Ingredient `json:"ingredients" binding:"required"`
	MealName      string              `json:"meal_name"`
	AgeYears      int                 `json:"age_years"`
	CalorieTarget float64             `json:"calorie_target"`
}

// analysisResponse is the full engine output for one ingredient list.
type analysisResponse struct {
	AnalysisID  string                    `json:"analysis_id"`
	Total       models.NutrientVector     `json:"total"`
	Items       []models.IngredientSource `json:"items"`
	Coverage    models.CoverageReport     `json:"coverage"`
	Warnings    []utils.Warning           `json:"warnings"`
	HealthScore int                       `json:"health_score"`
	Formatted   string                    `json:"formatted"`
}

func buildAnalysis(req analyzeRequest) analysisResponse {
	meal := services.AggregateMeal(req.Ingredients)

	var totalGrams float64
	for _, it := range meal.Items {
		totalGrams += it.Grams
	}

	warnings := utils.AssessMeal(req.MealName, meal.Total, totalGrams, utils.AssessmentContext{
		AgeYears:      req.AgeYears,
		CalorieTarget: req.CalorieTarget,
	})

	return analysisResponse{
		AnalysisID:  uuid.NewString(),
		Total:       meal.Total,
		Items:       meal.Items,
		Coverage:    services.Coverage(req.Ingredients),
		Warnings:    warnings,
		HealthScore: utils.HealthScore(warnings),
		Formatted:   utils.FormatNutrition(meal.Total),
	}
}

// POST /nutrition/analyze  {"ingredients":[{"name":"chicken breast","quantity":150,"unit":"g"}]}
func AnalyzeNutrition(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, buildAnalysis(req))
}

// POST /nutrition/coverage  {"ingredients":[...]}
func GetCoverage(c *gin.Context) {
	var req struct {
		Ingredients []models.Ingredient `json:"ingredients" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.Coverage(req.Ingredients))
}

// GET /food/known?name=rice
func CheckFood(c *gin.Context) {
	name := c.Query("name")
	c.JSON(http.StatusOK, gin.H{
		"name":  name,
		"known": services.IsKnown(name),
	})
}

// GET /metrics/bmi?height_cm=180&weight_kg=75
func GetBMI(c *gin.Context) {
	var query struct {
		HeightCm float64 `form:"height_cm" binding:"required"`
		WeightKg float64 `form:"weight_kg" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bmi, err := utils.CalculateBMI(query.HeightCm, query.WeightKg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bmi":      bmi,
		"category": utils.BMICategory(bmi),
	})
}

// GET /food/search?q=rice
func SearchFoods(c *gin.Context) {
	matches := services.FindMatches(c.Query("q"))
	if matches == nil {
		matches = []models.FoodMatch{}
	}
	c.JSON(http.StatusOK, matches)
}
