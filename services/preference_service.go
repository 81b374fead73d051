package services

import (
	"errors"

	"github.com/SABYA648/Mood-Bite/config"
	"github.com/SABYA648/Mood-Bite/models"

	"gorm.io/gorm"
)

type PreferenceInput struct {
	VegFilter      *bool  `json:"vegFilter"`
	EggFilter      *bool  `json:"eggFilter"`
	NonVegFilter   *bool  `json:"nonVegFilter"`
	SortPreference string `json:"sortPreference"`
	LastMood       string `json:"lastMood"`
	LastMoodText   string `json:"lastMoodText"`
}

// GetUserPreferences returns the stored preference row for a user, creating
// a default row on first access.
func GetUserPreferences(userID uint) (*models.UserPreference, error) {
	var prefs models.UserPreference
	err := config.DB.Where("user_id = ?", userID).First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs = models.UserPreference{
			UserID:         userID,
			SortPreference: "Relevance",
			LastMoodText:   "What are you craving?",
		}
		if err := config.DB.Create(&prefs).Error; err != nil {
			return nil, err
		}
		return &prefs, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// UpdateUserPreferences applies the non-nil fields of the input.
func UpdateUserPreferences(userID uint, input PreferenceInput) (*models.UserPreference, error) {
	prefs, err := GetUserPreferences(userID)
	if err != nil {
		return nil, err
	}

	if input.VegFilter != nil {
		prefs.VegFilter = *input.VegFilter
	}
	if input.EggFilter != nil {
		prefs.EggFilter = *input.EggFilter
	}
	if input.NonVegFilter != nil {
		prefs.NonVegFilter = *input.NonVegFilter
	}
	if input.SortPreference != "" {
		prefs.SortPreference = input.SortPreference
	}
	if input.LastMood != "" {
		prefs.LastMood = input.LastMood
	}
	if input.LastMoodText != "" {
		prefs.LastMoodText = input.LastMoodText
	}

	if err := config.DB.Save(prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}
