package services

import (
	"math"
	"math/rand"
	"regexp"
	"strings"

	"github.com/SABYA648/Mood-Bite/models"
)

// NutritionInfo is the synthesized set of nutrition facts for one dish.
type NutritionInfo struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
	HealthScore float64 `json:"healthScore"`
}

type nutrientProfile struct {
	calories, protein, carbs, fat, fiber, sugar, sodium float64
}

type profileEntry struct {
	term    string
	profile nutrientProfile
}

// nutritionProfiles maps dish-name terms to per-nutrient deltas. Order
// matters: the first entry matching a word wins, so dish bases come before
// ingredients, methods, cuisines, and descriptors.
var nutritionProfiles = []profileEntry{
	// General food types
	{"burger", nutrientProfile{650, 30, 40, 35, 2, 9, 980}},
	{"pizza", nutrientProfile{300, 12, 35, 12, 2, 3, 600}},
	{"salad", nutrientProfile{320, 5, 20, 22, 4, 6, 360}},
	{"pasta", nutrientProfile{380, 12, 62, 10, 3, 4, 500}},
	{"sandwich", nutrientProfile{450, 22, 45, 16, 3, 6, 750}},
	{"soup", nutrientProfile{220, 10, 24, 8, 2, 6, 850}},
	{"rice_dish", nutrientProfile{350, 8, 55, 10, 2, 1, 420}},
	{"steak", nutrientProfile{420, 35, 0, 28, 0, 0, 120}},
	{"chicken", nutrientProfile{280, 26, 0, 16, 0, 0, 90}},
	{"fish", nutrientProfile{200, 22, 0, 12, 0, 0, 60}},
	{"dessert", nutrientProfile{380, 4, 65, 14, 1, 50, 150}},
	{"vegetable", nutrientProfile{120, 4, 10, 7, 5, 4, 40}},

	// Dish-specific types
	{"burrito", nutrientProfile{550, 20, 70, 22, 6, 4, 1200}},
	{"curry", nutrientProfile{450, 15, 35, 25, 5, 8, 820}},
	{"sushi", nutrientProfile{350, 15, 60, 5, 2, 10, 740}},
	{"noodles", nutrientProfile{410, 12, 65, 12, 2, 3, 950}},
	{"wrap", nutrientProfile{420, 15, 40, 18, 3, 4, 680}},
	{"bowl", nutrientProfile{480, 18, 68, 14, 6, 6, 580}},
	{"stir_fry", nutrientProfile{380, 20, 30, 18, 4, 6, 1100}},
	{"taco", nutrientProfile{210, 9, 20, 10, 3, 2, 400}},
	{"omelette", nutrientProfile{320, 18, 6, 24, 1, 2, 580}},
	{"pie", nutrientProfile{450, 8, 50, 24, 2, 22, 540}},

	// Ingredient specific
	{"mushroom", nutrientProfile{-50, 3, -5, -2, 2, -1, -20}},
	{"cheese", nutrientProfile{80, 6, 1, 6, 0, 0, 170}},
	{"beans", nutrientProfile{50, 7, 20, 0, 7, 0, 0}},
	{"rice_ingredient", nutrientProfile{120, 2, 25, 1, 0, 0, 0}},
	{"chickpeas", nutrientProfile{70, 5, 13, 2, 4, 2, 5}},
	{"tofu", nutrientProfile{-30, 8, 2, 5, 1, 0, 10}},

	// Dietary categories
	{"veg", nutrientProfile{-50, -5, 5, -5, 3, 0, -100}},
	{"nonVeg", nutrientProfile{50, 8, -5, 8, -1, 0, 100}},
	{"egg", nutrientProfile{20, 6, 0, 5, 0, 0, 70}},

	// Cooking methods
	{"fried", nutrientProfile{150, 0, 10, 15, -1, 0, 200}},
	{"grilled", nutrientProfile{-50, 2, -2, -5, 0, 0, -50}},
	{"baked", nutrientProfile{-20, 0, 0, -3, 0, 0, -30}},
	{"roasted", nutrientProfile{30, 1, 0, 3, 0, 0, 50}},
	{"steamed", nutrientProfile{-80, 0, 0, -8, 0, 0, -100}},
	{"braised", nutrientProfile{-30, 2, 0, -3, 0, 0, 80}},

	// Cuisine types
	{"italian", nutrientProfile{40, 2, 10, 5, 2, 2, 150}},
	{"mexican", nutrientProfile{60, 4, 15, 8, 4, 2, 300}},
	{"indian", nutrientProfile{50, 3, 12, 10, 3, 4, 250}},
	{"chinese", nutrientProfile{30, 2, 20, 6, 2, 8, 700}},
	{"japanese", nutrientProfile{-30, 5, 10, -5, 2, 5, 400}},
	{"mediterranean", nutrientProfile{-20, 3, 8, 10, 4, -1, -50}},
	{"vietnamese", nutrientProfile{-40, 4, 15, -7, 3, 4, 500}},
	{"korean", nutrientProfile{20, 5, 15, 3, 3, 6, 600}},
	{"french", nutrientProfile{80, 4, 10, 15, 1, 5, 200}},
	{"lebanese", nutrientProfile{-10, 3, 12, 8, 3, 2, 150}},
	{"caribbean", nutrientProfile{40, 3, 18, 7, 3, 8, 180}},
	{"greek", nutrientProfile{30, 4, 8, 12, 2, 3, 250}},
	{"ethiopian", nutrientProfile{20, 3, 25, 5, 4, 2, 70}},
	{"brazilian", nutrientProfile{70, 6, 15, 10, 2, 3, 220}},
	{"peruvian", nutrientProfile{40, 5, 20, 6, 3, 4, 160}},

	// Descriptors
	{"spicy", nutrientProfile{20, 0, 0, 2, 1, 0, 150}},
	{"sweet", nutrientProfile{60, -1, 15, 0, -1, 12, -20}},
	{"rich", nutrientProfile{100, 2, 5, 12, 0, 4, 100}},
	{"fresh", nutrientProfile{-40, 0, -5, -5, 2, -2, -100}},
	{"creamy", nutrientProfile{80, 2, 3, 10, 0, 2, 60}},
	{"crunchy", nutrientProfile{30, 1, 8, 2, 1, 0, 50}},
	{"tangy", nutrientProfile{10, 0, 5, 0, 0, 3, 30}},
	{"savory", nutrientProfile{30, 2, 0, 5, 0, -1, 120}},
	{"bitter", nutrientProfile{-10, 0, -2, 0, 1, -3, 0}},
	{"gourmet", nutrientProfile{40, 3, 5, 6, 1, 2, 80}},
	{"homemade", nutrientProfile{-20, 1, -3, -2, 1, -2, -150}},
}

var defaultProfile = nutrientProfile{350, 12, 40, 14, 2, 6, 400}

var categoryProfiles = map[string]nutrientProfile{
	models.CategoryVeg:    {-50, -5, 5, -5, 3, 0, -100},
	models.CategoryNonVeg: {50, 8, -5, 8, -1, 0, 100},
	models.CategoryEgg:    {20, 6, 0, 5, 0, 0, 70},
}

// Health score impact weights, applied against daily-value denominators.
const (
	proteinImpact = 1.0
	fiberImpact   = 1.2
	carbsImpact   = 0.2
	fatImpact     = 0.8
	sodiumImpact  = 0.5
	sugarImpact   = 1.0
)

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// nutritionJitter applies the ±10% per-nutrient randomization. Tests replace
// it with the identity to pin values.
var nutritionJitter = func(v float64) float64 {
	factor := 0.9 + rand.Float64()*0.2
	return math.Round(v * factor)
}

// GenerateNutritionInfo synthesizes plausible nutrition facts for a dish from
// its name and category. This is a generative heuristic, not a lookup against
// a real nutrition database: the output is plausible and always present, not
// accurate.
func GenerateNutritionInfo(dishName, category string) NutritionInfo {
	lowerName := strings.ToLower(dishName)

	var n nutrientProfile
	termsFound := 0

	cleaned := strings.ReplaceAll(lowerName, "&", " ")
	cleaned = strings.ReplaceAll(cleaned, "-", " ")
	cleaned = nonWordChars.ReplaceAllString(cleaned, " ")

	for _, word := range strings.Fields(cleaned) {
		if len(word) < 3 {
			continue
		}
		for _, entry := range nutritionProfiles {
			if strings.Contains(word, entry.term) || strings.Contains(entry.term, word) {
				n.calories += entry.profile.calories
				n.protein += entry.profile.protein
				n.carbs += entry.profile.carbs
				n.fat += entry.profile.fat
				n.fiber += entry.profile.fiber
				n.sugar += entry.profile.sugar
				n.sodium += entry.profile.sodium
				termsFound++
				break
			}
		}
	}

	if termsFound == 0 {
		return NutritionInfo{
			Calories:    defaultProfile.calories,
			Protein:     defaultProfile.protein,
			Carbs:       defaultProfile.carbs,
			Fat:         defaultProfile.fat,
			Fiber:       defaultProfile.fiber,
			Sugar:       defaultProfile.sugar,
			Sodium:      defaultProfile.sodium,
			HealthScore: 50,
		}
	}

	if cp, ok := categoryProfiles[category]; ok {
		n.calories += cp.calories
		n.protein += cp.protein
		n.carbs += cp.carbs
		n.fat += cp.fat
		n.fiber += cp.fiber
		n.sugar += cp.sugar
		n.sodium += cp.sodium
	}

	// Per-nutrient floors, then jitter.
	info := NutritionInfo{
		Calories: nutritionJitter(math.Max(150, n.calories)),
		Protein:  nutritionJitter(math.Max(2, n.protein)),
		Carbs:    nutritionJitter(math.Max(5, n.carbs)),
		Fat:      nutritionJitter(math.Max(2, n.fat)),
		Fiber:    nutritionJitter(math.Max(0, n.fiber)),
		Sugar:    nutritionJitter(math.Max(0, n.sugar)),
		Sodium:   nutritionJitter(math.Max(20, n.sodium)),
	}

	info.HealthScore = healthScore(info, lowerName, category)
	return info
}

// healthScore weighs protein and fiber up, the rest down, normalized against
// daily-value denominators, with small keyword and category adjustments.
func healthScore(n NutritionInfo, lowerName, category string) float64 {
	score := 50.0

	score += (n.Protein / 50) * 20 * proteinImpact
	score += (n.Fiber / 30) * 15 * fiberImpact
	score -= (n.Fat / 80) * 15 * fatImpact
	score -= (n.Sugar / 50) * 20 * sugarImpact
	score -= (n.Sodium / 2300) * 15 * sodiumImpact
	score -= (n.Carbs / 275) * 10 * carbsImpact

	if category == models.CategoryVeg {
		score += 5
	}
	if strings.Contains(lowerName, "salad") || strings.Contains(lowerName, "vegetable") ||
		strings.Contains(lowerName, "steamed") || strings.Contains(lowerName, "grilled") {
		score += 5
	}
	if strings.Contains(lowerName, "fried") || strings.Contains(lowerName, "cream") ||
		strings.Contains(lowerName, "sweet") || strings.Contains(lowerName, "rich") {
		score -= 5
	}

	return math.Max(0, math.Min(100, math.Round(score)))
}

// EnrichFoodItemWithNutrition fills the nutrition fields of an item that does
// not carry them yet. Items seeded with real values pass through unchanged.
func EnrichFoodItemWithNutrition(item models.FoodItem) models.FoodItem {
	if item.Calories > 0 {
		return item
	}

	info := GenerateNutritionInfo(item.DishName, item.Category)
	item.Calories = info.Calories
	item.Protein = info.Protein
	item.Carbs = info.Carbs
	item.Fat = info.Fat
	item.Fiber = info.Fiber
	item.Sugar = info.Sugar
	item.Sodium = info.Sodium
	item.HealthScore = info.HealthScore
	return item
}
