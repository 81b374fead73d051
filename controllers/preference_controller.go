package controllers

import (
	"net/http"

	"github.com/SABYA648/Mood-Bite/services"

	"github.com/gin-gonic/gin"
)

func GetPreferences(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	prefs, err := services.GetUserPreferences(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func UpdatePreferences(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input services.PreferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := services.UpdateUserPreferences(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}
