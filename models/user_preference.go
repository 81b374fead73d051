package models

import (
	"gorm.io/gorm"
)

// UserPreference keeps the filter and sort state the client restores between
// sessions, plus the last detected mood for the greeting banner.
type UserPreference struct {
	gorm.Model
	UserID         uint   `gorm:"uniqueIndex;not null" json:"userId"`
	VegFilter      bool   `gorm:"default:false" json:"vegFilter"`
	EggFilter      bool   `gorm:"default:false" json:"eggFilter"`
	NonVegFilter   bool   `gorm:"default:false" json:"nonVegFilter"`
	SortPreference string `gorm:"default:Relevance" json:"sortPreference"`
	LastMood       string `json:"lastMood"`
	LastMoodText   string `json:"lastMoodText"`
}
