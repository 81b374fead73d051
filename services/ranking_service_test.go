package services

import (
	"math/rand"
	"testing"

	"github.com/SABYA648/Mood-Bite/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []models.FoodItem {
	return []models.FoodItem{
		{ID: 1, DishName: "Margherita Pizza", Restaurant: "Slice House", ETA: "25", Rating: 4.4, Price: "₹299", Category: models.CategoryVeg},
		{ID: 2, DishName: "Paneer Tikka Bowl", Restaurant: "Spice Villa", ETA: "35", Rating: 4.1, Price: "₹349", Category: models.CategoryVeg},
		{ID: 3, DishName: "Egg Fried Rice", Restaurant: "Wok This Way", ETA: "20", Rating: 4.0, Price: "₹249", Category: models.CategoryEgg},
		{ID: 4, DishName: "Chicken Biryani", Restaurant: "Biryani Blues", ETA: "40", Rating: 4.6, Price: "₹399", Category: models.CategoryNonVeg},
		{ID: 5, DishName: "Onion Rings", Restaurant: "Crunch Corner", ETA: "15", Rating: 3.8, Price: "₹149", Category: models.CategoryVeg},
	}
}

func itemIDs(items []models.FoodItem) []uint {
	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func zeroNoise() float64 { return 0 }

func TestFilterByDietaryVegOnly(t *testing.T) {
	out := FilterByDietary(sampleCatalog(), DietaryPreference{IsVeg: true})

	require.Len(t, out, 3)
	for _, item := range out {
		assert.Equal(t, models.CategoryVeg, item.Category)
	}
}

func TestFilterByDietaryPriorityNeverUnions(t *testing.T) {
	// veg wins over every other flag
	out := FilterByDietary(sampleCatalog(), DietaryPreference{IsVeg: true, IsNonVeg: true})
	require.Len(t, out, 3)
	for _, item := range out {
		assert.Equal(t, models.CategoryVeg, item.Category)
	}

	// egg wins over non-veg
	out = FilterByDietary(sampleCatalog(), DietaryPreference{IsEgg: true, IsNonVeg: true})
	require.Len(t, out, 1)
	assert.Equal(t, "Egg Fried Rice", out[0].DishName)
}

func TestFilterByDietaryNoFlagsReturnsCopy(t *testing.T) {
	items := sampleCatalog()
	out := FilterByDietary(items, DietaryPreference{})

	require.Len(t, out, len(items))
	out[0].DishName = "mutated"
	assert.Equal(t, "Margherita Pizza", items[0].DishName)
}

func TestRankKeepsEveryItem(t *testing.T) {
	items := sampleCatalog()
	out := rank(items, rankConfig{
		seed:       42,
		preShuffle: true,
		score:      moodScore(MoodAnalysis{Mood: "happy"}, charCodeSum("happy")),
		noise:      zeroNoise,
		rng:        rand.New(rand.NewSource(1)),
	})

	assert.ElementsMatch(t, itemIDs(items), itemIDs(out))
}

func TestRankDeterministicWithZeroNoise(t *testing.T) {
	items := sampleCatalog()
	analysis := MoodAnalysis{Mood: "stressed", FoodSuggestions: []string{"pizza", "soup"}}

	run := func() []models.FoodItem {
		return rank(items, rankConfig{
			seed:       7,
			preShuffle: true,
			score:      moodScore(analysis, charCodeSum("stressed")),
			noise:      zeroNoise,
			rng:        rand.New(rand.NewSource(99)),
		})
	}

	assert.Equal(t, run(), run())
}

func TestRankDropsNegativeScores(t *testing.T) {
	items := []models.FoodItem{
		{ID: 1, DishName: "Onion Rings", Price: "₹149"},
		{ID: 2, DishName: "Margherita Pizza", Price: "₹299"},
	}
	req := AdvancedFoodRequest{Ingredients: IngredientFilters{Exclude: []string{"onion"}}}

	out := rank(items, rankConfig{
		dropNegative: true,
		score:        advancedScore(req, 0),
		noise:        zeroNoise,
		rng:          rand.New(rand.NewSource(3)),
	})

	require.Len(t, out, 1)
	assert.Equal(t, "Margherita Pizza", out[0].DishName)
}

func TestRankByMoodPreservesItemSet(t *testing.T) {
	items := sampleCatalog()
	analysis := MoodAnalysis{Mood: "happy", FoodSuggestions: []string{"pizza"}}

	out := RankByMood(items, analysis, 1717171717000)

	assert.ElementsMatch(t, itemIDs(items), itemIDs(out))
}

func TestMoodScoreHappyBoostsRating(t *testing.T) {
	moodSeed := charCodeSum("happy")
	f := moodScore(MoodAnalysis{Mood: "happy"}, moodSeed)

	item := models.FoodItem{DishName: "Plain Bowl", Rating: 4.5}
	base := float64(1) * float64(moodSeed%5)

	assert.InDelta(t, base+4.5*2, f(item, 0, 1), 1e-9)
}

func TestMoodScoreStressedFavorsFastDelivery(t *testing.T) {
	f := moodScore(MoodAnalysis{Mood: "stressed"}, charCodeSum("stressed"))

	fast := models.FoodItem{DishName: "Quick Wrap", ETA: "10"}
	slow := models.FoodItem{DishName: "Slow Roast", ETA: "40"}

	assert.Greater(t, f(fast, 0, 2), f(slow, 0, 2))
}

func TestMoodScoreSuggestionBoost(t *testing.T) {
	analysis := MoodAnalysis{Mood: "calm", FoodSuggestions: []string{"pizza"}}
	f := moodScore(analysis, charCodeSum("calm"))

	pizza := models.FoodItem{DishName: "Margherita Pizza", Restaurant: "Slice House"}
	other := models.FoodItem{DishName: "Chicken Biryani", Restaurant: "Biryani Blues"}

	// +10 for the name match plus +8 for the category synonym
	assert.InDelta(t, 18, f(pizza, 0, 2)-f(other, 0, 2), 1e-9)
}

func TestAdvancedScoreContributions(t *testing.T) {
	req := AdvancedFoodRequest{
		Keywords:     []string{"biryani"},
		CuisineTypes: []string{"italian", "indian"},
		Flavors:      []string{"spicy"},
		MealType:     "dinner",
		Ingredients:  IngredientFilters{Include: []string{"chicken", "rice"}},
	}
	f := advancedScore(req, 0)

	item := models.FoodItem{DishName: "Indian Spicy Chicken Rice Biryani Dinner"}

	// cuisine +5, flavor +3, includes 2x2, meal type +4, keyword +2
	assert.InDelta(t, 18, f(item, 0, 1), 1e-9)
}

func TestAdvancedScoreExcludePenalty(t *testing.T) {
	req := AdvancedFoodRequest{Ingredients: IngredientFilters{Exclude: []string{"onion", "garlic"}}}
	f := advancedScore(req, 0)

	item := models.FoodItem{DishName: "Onion Garlic Naan"}

	assert.InDelta(t, -20, f(item, 0, 1), 1e-9)
}

func TestShuffleTieGroupsRespectsBoundaries(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		scored := []ScoredItem{
			{Item: models.FoodItem{ID: 1}, Score: 100},
			{Item: models.FoodItem{ID: 2}, Score: 97},
			{Item: models.FoodItem{ID: 3}, Score: 50},
		}

		shuffleTieGroups(scored, rand.New(rand.NewSource(seed)))

		assert.Equal(t, uint(3), scored[2].Item.ID, "seed %d moved an item across a group boundary", seed)
		assert.ElementsMatch(t, []uint{1, 2}, []uint{scored[0].Item.ID, scored[1].Item.ID})
	}
}

func TestParsePrice(t *testing.T) {
	assert.InDelta(t, 15.99, parsePrice("$15.99"), 1e-9)
	assert.InDelta(t, 299, parsePrice("₹299"), 1e-9)
	assert.InDelta(t, 0, parsePrice("Free"), 1e-9)
}

func TestParseETA(t *testing.T) {
	assert.Equal(t, 25, parseETA("25"))
	assert.Equal(t, 25, parseETA(" 25 "))
	assert.Equal(t, 30, parseETA("soon"))
}

func TestCharCodeSum(t *testing.T) {
	assert.Equal(t, int64(294), charCodeSum("abc"))
	assert.Equal(t, int64(0), charCodeSum(""))
}
