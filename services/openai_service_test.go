package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToStandardMood(t *testing.T) {
	assert.Equal(t, "happy", mapToStandardMood("Happy"))
	assert.Equal(t, "stressed", mapToStandardMood("totally stressed out"))
	assert.Equal(t, "hungry", mapToStandardMood("zzz"))
	assert.Equal(t, "hungry", mapToStandardMood(""))
}

func TestFoodSuggestionsForMood(t *testing.T) {
	suggestions := foodSuggestionsForMood("happy")

	require.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), 4)
	for _, s := range suggestions {
		assert.Contains(t, moodFoodPairings["happy"], s)
	}
}

func TestFoodSuggestionsForUnpairedMood(t *testing.T) {
	// "cheerful" is in the vocabulary but has no pairing entry of its own.
	suggestions := foodSuggestionsForMood("cheerful")
	assert.NotEmpty(t, suggestions)
}

func TestNormalizeAdvancedRequest(t *testing.T) {
	req := normalizeAdvancedRequest(AdvancedFoodRequest{})

	assert.NotNil(t, req.Keywords)
	assert.NotNil(t, req.CuisineTypes)
	assert.NotNil(t, req.Flavors)
	assert.NotNil(t, req.DietaryRestrictions)
	assert.NotNil(t, req.PreparationMethod)
	assert.NotNil(t, req.Ingredients.Include)
	assert.NotNil(t, req.Ingredients.Exclude)
	assert.NotNil(t, req.HealthFocus)
	assert.Equal(t, "taste", req.Priority)

	keep := normalizeAdvancedRequest(AdvancedFoodRequest{Priority: "speed"})
	assert.Equal(t, "speed", keep.Priority)
}

func TestFallbackMoodAnalysis(t *testing.T) {
	analysis := fallbackMoodAnalysis()

	assert.Contains(t, availableMoods, analysis.Mood)
	assert.NotEmpty(t, analysis.FoodSuggestions)
	assert.Equal(t, "Relevance", analysis.SortPreference)
}

func TestAnalyzeMoodWithoutAPIKey(t *testing.T) {
	s := &OpenAIService{}

	analysis := s.AnalyzeMood("I want something comforting")

	assert.NotEmpty(t, analysis.Mood)
	assert.NotEmpty(t, analysis.FoodSuggestions)
	assert.Equal(t, "Relevance", analysis.SortPreference)
}

func TestAnalyzeAdvancedRequestWithoutAPIKey(t *testing.T) {
	s := &OpenAIService{}

	req := s.AnalyzeAdvancedRequest("spicy indian curry without onions")

	assert.Equal(t, "taste", req.Priority)
	assert.NotNil(t, req.Keywords)
	assert.NotNil(t, req.Ingredients.Exclude)
}
