package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scmlewis/eatwise-ai-sub000/services"
)

// POST /meals/log  {"description":"grilled chicken with rice and a salad"}
// Free text goes through the extraction collaborator, the structured
// guesses go through the engine. Nothing is stored; persistence belongs
// to the caller.
func LogMealText(c *gin.Context) {
	var body struct {
		Description   string  `json:"description" binding:"required"`
		MealName      string  `json:"meal_name"`
		AgeYears      int     `json:"age_years"`
		CalorieTarget float64 `json:"calorie_target"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ext := services.NewExtractionService()
	ingredients, err := ext.ExtractIngredients(body.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	mealName := body.MealName
	if mealName == "" {
		mealName = body.Description
	}
	resp := buildAnalysis(analyzeRequest{
		Ingredients:   ingredients,
		MealName:      mealName,
		AgeYears:      body.AgeYears,
		CalorieTarget: body.CalorieTarget,
	})
	c.JSON(http.StatusCreated, gin.H{
		"ingredients": ingredients,
		"analysis":    resp,
	})
}

// POST /meals/photo  {"image_base64":"data:image/jpeg;base64,..."}
func LogMealPhoto(c *gin.Context) {
	var body struct {
		ImageBase64   string  `json:"image_base64" binding:"required"`
		AgeYears      int     `json:"age_years"`
		CalorieTarget float64 `json:"calorie_target"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	rek, err := services.NewRekognitionService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ingredients, err := rek.RecognizeIngredients(body.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	resp := buildAnalysis(analyzeRequest{
		Ingredients:   ingredients,
		AgeYears:      body.AgeYears,
		CalorieTarget: body.CalorieTarget,
	})
	c.JSON(http.StatusCreated, gin.H{
		"ingredients": ingredients,
		"analysis":    resp,
	})
}
