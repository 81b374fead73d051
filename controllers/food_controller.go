package controllers

import (
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"sync"

	"github.com/SABYA648/Mood-Bite/models"
	"github.com/SABYA648/Mood-Bite/services"

	"github.com/gin-gonic/gin"
)

// maxImageRefreshCount bounds the concurrent Unsplash calls per request so a
// single listing cannot burn the rate limit.
const maxImageRefreshCount = 5

func setNoCacheHeaders(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}

// GET /api/food-items?t=<timestamp>&r=<random>&refresh_images=true
func GetFoodItems(c *gin.Context) {
	setNoCacheHeaders(c)

	items, err := services.GetAllFoodItems()
	if err != nil {
		log.Printf("error fetching food items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch food items"})
		return
	}

	for i := range items {
		items[i] = services.EnrichFoodItemWithNutrition(items[i])
	}

	// Shuffle so repeated listings vary; a timestamp pins the order for a
	// given request.
	if ts, err := strconv.ParseInt(c.Query("t"), 10, 64); err == nil {
		r, _ := strconv.ParseInt(c.Query("r"), 10, 64)
		seeded := rand.New(rand.NewSource(ts + r))
		seeded.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	} else {
		rand.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	}

	unsplash := services.NewUnsplashService()
	if c.Query("refresh_images") == "true" && unsplash.Configured() {
		refreshItemImages(items, unsplash)
	}

	c.JSON(http.StatusOK, items)
}

// refreshItemImages fetches fresh photos for the first few items in
// parallel. A failed fetch leaves that item's image untouched.
func refreshItemImages(items []models.FoodItem, unsplash *services.UnsplashService) {
	n := len(items)
	if n > maxImageRefreshCount {
		n = maxImageRefreshCount
	}
	log.Printf("refreshing images for %d food items", n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			query := services.BuildFoodSearchQuery(items[idx].DishName, items[idx].Restaurant)
			if imageURL := unsplash.RandomFoodImage(query); imageURL != "" {
				items[idx].Image = imageURL
			}
		}(i)
	}
	wg.Wait()
}

// GET /api/food-items/:id?refresh=true
func GetFoodItemByID(c *gin.Context) {
	setNoCacheHeaders(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	item, err := services.GetFoodItemByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}

	enriched := services.EnrichFoodItemWithNutrition(*item)

	unsplash := services.NewUnsplashService()
	if c.Query("refresh") == "true" && unsplash.Configured() {
		query := services.BuildFoodSearchQuery(enriched.DishName, enriched.Restaurant)
		if imageURL := unsplash.RandomFoodImage(query); imageURL != "" {
			enriched.Image = imageURL
		}
	}

	c.JSON(http.StatusOK, enriched)
}
