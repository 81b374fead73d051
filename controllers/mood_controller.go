package controllers

import (
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/SABYA648/Mood-Bite/services"

	"github.com/gin-gonic/gin"
)

type moodRequest struct {
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// POST /api/analyze-mood
func AnalyzeMood(c *gin.Context) {
	var req moodRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text input is required"})
		return
	}

	ai := services.NewOpenAIService()
	analysis := ai.AnalyzeMood(req.Text)

	items, err := services.GetAllFoodItems()
	if err != nil {
		log.Printf("error fetching food items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze mood"})
		return
	}

	filtered := services.FilterByDietary(items, analysis.Dietary)

	// Sort preference applies before the relevance randomization.
	switch analysis.SortPreference {
	case "Rating":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case "DeliveryTime":
		sort.SliceStable(filtered, func(i, j int) bool {
			a, _ := strconv.Atoi(filtered[i].ETA)
			b, _ := strconv.Atoi(filtered[j].ETA)
			return a < b
		})
	}

	ranked := services.RankByMood(filtered, analysis, req.Timestamp)

	log.Printf("analyzed mood %q for input %q, suggestions: %s",
		analysis.Mood, req.Text, strings.Join(analysis.FoodSuggestions, ", "))

	c.JSON(http.StatusOK, gin.H{
		"mood":            analysis.Mood,
		"foodSuggestions": analysis.FoodSuggestions,
		"dietary":         analysis.Dietary,
		"sortPreference":  analysis.SortPreference,
		"filteredItems":   ranked,
	})
}

// POST /api/advanced-food-request
func AdvancedFoodRequest(c *gin.Context) {
	var req moodRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text input is required"})
		return
	}

	ai := services.NewOpenAIService()
	moodAnalysis := ai.AnalyzeMood(req.Text)
	complexAnalysis := ai.AnalyzeAdvancedRequest(req.Text)

	items, err := services.GetAllFoodItems()
	if err != nil {
		log.Printf("error fetching food items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process food request"})
		return
	}

	filtered := services.FilterByDietary(items, moodAnalysis.Dietary)
	ranked := services.RankByAdvancedRequest(filtered, complexAnalysis, req.Timestamp)

	log.Printf("advanced request %q, mood: %s, keywords: %s",
		req.Text, moodAnalysis.Mood, strings.Join(complexAnalysis.Keywords, ", "))

	c.JSON(http.StatusOK, gin.H{
		"mood":            moodAnalysis.Mood,
		"foodSuggestions": moodAnalysis.FoodSuggestions,
		"complexAnalysis": complexAnalysis,
		"filteredItems":   ranked,
	})
}
