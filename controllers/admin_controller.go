package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/SABYA648/Mood-Bite/services"

	"github.com/gin-gonic/gin"
)

// SeedDatabase loads the starter catalog. It is a no-op when food items
// already exist.
func SeedDatabase(c *gin.Context) {
	seeded, count, err := services.SeedDatabase()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !seeded {
		c.JSON(http.StatusOK, gin.H{
			"message": "Database already contains food items",
			"count":   count,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Database seeded successfully",
		"count":   count,
	})
}

type generateFoodItemsInput struct {
	Count int `json:"count"`
}

// parseGenerateCount reads the requested catalog size from the JSON body,
// with the count query parameter as a fallback. Zero means the generator
// picks its default size.
func parseGenerateCount(c *gin.Context) (int, error) {
	var input generateFoodItemsInput
	if c.Request.Body != nil {
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
	}

	count := input.Count
	if count == 0 {
		if raw := c.Query("count"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return 0, errors.New("count must be an integer")
			}
			count = parsed
		}
	}
	if count < 0 {
		return 0, errors.New("count must be positive")
	}
	return count, nil
}

// GenerateFoodItems replaces the catalog with randomly generated items.
func GenerateFoodItems(c *gin.Context) {
	count, err := parseGenerateCount(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := services.GenerateFoodItems(count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Food items generated",
		"count":   created,
	})
}
