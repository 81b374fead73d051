package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/SABYA648/Mood-Bite/services"

	"github.com/gin-gonic/gin"
)

// GET /api/food-image?query=<terms>&count=<n>
//
// Image cascade: the curated local collection first (category-matched when
// the query names a dish type), the Unsplash API when configured, then the
// static fallback list. The response always carries at least one image.
func GetFoodImage(c *gin.Context) {
	setNoCacheHeaders(c)

	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	count, err := strconv.Atoi(c.Query("count"))
	if err != nil || count < 1 {
		count = 1
	}

	// A dish type buried in the first few words routes the local lookup.
	mainDishType := ""
	for i, word := range strings.FieldsFunc(query, func(r rune) bool { return r == ' ' || r == ',' }) {
		if i >= 3 {
			break
		}
		if len(word) > 3 {
			mainDishType = word
			break
		}
	}

	images := make([]string, 0, count)
	for i := 0; i < count; i++ {
		var imageURL string
		if mainDishType != "" {
			imageURL = services.LocalFoodImageByCategory(mainDishType)
		} else {
			imageURL = services.RandomLocalFoodImage()
		}
		if imageURL != "" {
			images = append(images, imageURL)
		}
	}

	if len(images) == count {
		c.JSON(http.StatusOK, gin.H{"images": images, "source": "foodish"})
		return
	}

	unsplash := services.NewUnsplashService()
	if unsplash.Configured() {
		if more, err := unsplash.SearchImageURLs(query, count-len(images)); err == nil && len(more) > 0 {
			images = append(images, more...)
			c.JSON(http.StatusOK, gin.H{"images": images, "source": "mixed"})
			return
		}
	}

	if len(images) == 0 {
		images = append(images, services.LastResortFoodImage())
	}
	c.JSON(http.StatusOK, gin.H{"images": images, "source": "fallback"})
}

// GET /api/image-sources
func GetImageSources(c *gin.Context) {
	unsplashStatus := "not configured"
	if services.NewUnsplashService().Configured() {
		unsplashStatus = "configured"
	}

	c.JSON(http.StatusOK, []gin.H{
		{
			"name":        "Foodish",
			"description": "Curated food images with various categories",
			"status":      "available",
			"rateLimit":   "unlimited",
			"isPrimary":   true,
			"categories":  services.AvailableFoodCategories(),
		},
		{
			"name":        "Unsplash",
			"url":         "https://unsplash.com",
			"description": "High-quality free photos from professional photographers",
			"status":      unsplashStatus,
			"rateLimit":   "50 requests per hour",
			"isPrimary":   false,
		},
	})
}
