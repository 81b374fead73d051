package services

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/SABYA648/Mood-Bite/models"
)

// ScoredItem pairs a catalog item with its ephemeral relevance score. The
// score only exists while ranking; responses carry plain FoodItems.
type ScoredItem struct {
	Item  models.FoodItem
	Score float64
}

// tieGroupThreshold is the score distance within which two ranked items are
// considered interchangeable for display ordering.
const tieGroupThreshold = 5.0

// noiseSpread is the upper bound of the uniform per-item noise term.
const noiseSpread = 35.0

type scoreFunc func(item models.FoodItem, pos, total int) float64

// rankConfig parameterizes the shared ranking pipeline. The two request paths
// differ only in their score contribution and in whether negative totals are
// dropped; noise and the tie-group RNG are injectable so tests can pin them.
type rankConfig struct {
	seed         int64
	timestamp    int64
	preShuffle   bool
	dropNegative bool
	score        scoreFunc
	noise        func() float64
	rng          *rand.Rand
}

// FilterByDietary applies at most one categorical filter, first-match-wins:
// veg takes precedence over egg over non-veg. Simultaneous flags never union.
func FilterByDietary(items []models.FoodItem, dietary DietaryPreference) []models.FoodItem {
	category := ""
	switch {
	case dietary.IsVeg:
		category = models.CategoryVeg
	case dietary.IsEgg:
		category = models.CategoryEgg
	case dietary.IsNonVeg:
		category = models.CategoryNonVeg
	default:
		out := make([]models.FoodItem, len(items))
		copy(out, items)
		return out
	}

	out := make([]models.FoodItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// RankByMood orders the (already dietary-filtered) items for a basic mood
// request. The same text and timestamp reproduce the same pre-shuffle, while
// the noise terms keep repeated queries from looking identical.
func RankByMood(items []models.FoodItem, analysis MoodAnalysis, timestamp int64) []models.FoodItem {
	moodSeed := charCodeSum(strings.ToLower(analysis.Mood))

	shuffleFactor := moodSeed
	if timestamp != 0 {
		shuffleFactor = timestamp % 10000
	}

	return rank(items, rankConfig{
		seed:       shuffleFactor * (moodSeed + 1),
		timestamp:  timestamp,
		preShuffle: true,
		score:      moodScore(analysis, moodSeed),
		noise:      uniformNoise,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	})
}

// RankByAdvancedRequest orders items for an advanced food request. Items
// whose total score goes negative (excluded-ingredient penalties outweighing
// every positive signal) are dropped.
func RankByAdvancedRequest(items []models.FoodItem, req AdvancedFoodRequest, timestamp int64) []models.FoodItem {
	analysisSeed := charCodeSum(strings.Join(append(append(append(
		[]string{}, req.Keywords...), req.CuisineTypes...), req.Flavors...), "") + req.MealType)

	return rank(items, rankConfig{
		seed:         timestamp%10000 + analysisSeed,
		timestamp:    timestamp,
		preShuffle:   timestamp != 0,
		dropNegative: true,
		score:        advancedScore(req, timestamp),
		noise:        uniformNoise,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	})
}

// rank is the shared pipeline: seeded pre-shuffle, per-item scoring with two
// noise layers, descending sort, then a shuffle within tie groups.
func rank(items []models.FoodItem, cfg rankConfig) []models.FoodItem {
	ordered := make([]models.FoodItem, len(items))
	copy(ordered, items)

	if cfg.preShuffle {
		pre := rand.New(rand.NewSource(cfg.seed))
		pre.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	}

	scored := make([]ScoredItem, 0, len(ordered))
	for i, item := range ordered {
		score := cfg.score(item, i, len(ordered))
		if cfg.noise != nil {
			score += cfg.noise()
		}
		if cfg.timestamp != 0 {
			score += compositeFactor(item, cfg.timestamp)
		}
		if cfg.dropNegative && score < 0 {
			continue
		}
		scored = append(scored, ScoredItem{Item: item, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	shuffleTieGroups(scored, cfg.rng)

	out := make([]models.FoodItem, len(scored))
	for i, s := range scored {
		out[i] = s.Item
	}
	return out
}

// moodScore builds the basic-path contribution: position-weighted base,
// mood-conditional bonuses, and flat boosts per matching food suggestion.
func moodScore(analysis MoodAnalysis, moodSeed int64) scoreFunc {
	moodLower := strings.ToLower(analysis.Mood)
	suggestions := make([]string, len(analysis.FoodSuggestions))
	for i, s := range analysis.FoodSuggestions {
		suggestions[i] = strings.ToLower(s)
	}

	return func(item models.FoodItem, pos, total int) float64 {
		nameLower := strings.ToLower(item.DishName)
		restaurantLower := strings.ToLower(item.Restaurant)

		// Base score from the post-shuffle position keeps different moods on
		// visibly different base orderings.
		score := float64(total-pos) * float64(moodSeed%5)

		switch {
		case strings.Contains(moodLower, "happy") || strings.Contains(moodLower, "excited"):
			score += item.Rating * 2
		case strings.Contains(moodLower, "sad") || strings.Contains(moodLower, "depressed"):
			score += parsePrice(item.Price) * 2
		case strings.Contains(moodLower, "stressed") || strings.Contains(moodLower, "busy") || strings.Contains(moodLower, "hurry"):
			score += float64(30-parseETA(item.ETA)) * 3
		}

		for _, suggestion := range suggestions {
			if strings.Contains(nameLower, suggestion) || strings.Contains(restaurantLower, suggestion) {
				score += 10
			}
			if matchesCategorySynonym(suggestion, nameLower, item.Category) {
				score += 8
			}
		}
		return score
	}
}

// categorySynonyms are the food types a suggestion can name indirectly.
var categorySynonyms = []string{
	"spicy", "sweet", "pizza", "burger", "salad", "soup",
	"noodle", "pasta", "rice", "sandwich",
}

func matchesCategorySynonym(suggestion, nameLower, category string) bool {
	for _, syn := range categorySynonyms {
		if strings.Contains(suggestion, syn) && strings.Contains(nameLower, syn) {
			return true
		}
	}
	// Desserts also match by category or the usual dessert dishes.
	if strings.Contains(suggestion, "dessert") {
		if category == "dessert" || strings.Contains(nameLower, "cake") || strings.Contains(nameLower, "ice cream") {
			return true
		}
	}
	return false
}

// advancedScore builds the advanced-path contribution from the structured
// analysis. Excluded ingredients are a strong penalty rather than a veto; the
// negative-score drop in rank() is what actually removes an item.
func advancedScore(req AdvancedFoodRequest, timestamp int64) scoreFunc {
	return func(item models.FoodItem, pos, total int) float64 {
		nameLower := strings.ToLower(item.DishName)
		var score float64

		if timestamp != 0 {
			score += float64(total-pos) / 10
		}

		if anyContained(nameLower, req.CuisineTypes) {
			score += 5
		}
		if anyContained(nameLower, req.Flavors) {
			score += 3
		}
		score += float64(countContained(nameLower, req.Ingredients.Include)) * 2
		score -= float64(countContained(nameLower, req.Ingredients.Exclude)) * 10
		if req.MealType != "" && strings.Contains(nameLower, strings.ToLower(req.MealType)) {
			score += 4
		}
		if anyContained(nameLower, req.PreparationMethod) {
			score += 3
		}
		if anyContained(nameLower, req.HealthFocus) {
			score += 2
		}
		score += float64(countContained(nameLower, req.Keywords)) * 2

		return score
	}
}

// shuffleTieGroups walks the score-sorted list and shuffles every maximal run
// of items whose scores sit within the threshold of the run's first item.
// Items never cross a group boundary.
func shuffleTieGroups(scored []ScoredItem, rng *rand.Rand) {
	start := 0
	for i := 1; i <= len(scored); i++ {
		if i < len(scored) && abs(scored[i].Score-scored[start].Score) <= tieGroupThreshold {
			continue
		}
		group := scored[start:i]
		rng.Shuffle(len(group), func(a, b int) {
			group[a], group[b] = group[b], group[a]
		})
		start = i
	}
}

// compositeFactor is the second noise layer: a per-item term mixing item
// identity, price, and the request timestamp, scaled to matter.
func compositeFactor(item models.FoodItem, timestamp int64) float64 {
	idFactor := float64(item.ID%100) / 100
	priceFactor := parsePrice(item.Price) / 10
	timestampFactor := float64(timestamp%10000) / 10000
	return (idFactor + priceFactor + timestampFactor) * 25
}

func uniformNoise() float64 {
	return rand.Float64() * noiseSpread
}

// charCodeSum derives a seed from a string as the sum of its code points.
// The value is only ever used as an opaque seed.
func charCodeSum(s string) int64 {
	var sum int64
	for _, r := range s {
		sum += int64(r)
	}
	return sum
}

// parsePrice extracts the numeric value from a currency-formatted price
// string like "$15.99" or "₹299".
func parsePrice(price string) float64 {
	start := -1
	end := len(price)
	for i, r := range price {
		if unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}
	for i := start; i < len(price); i++ {
		c := price[i]
		if (c < '0' || c > '9') && c != '.' {
			end = i
			break
		}
	}
	v, err := strconv.ParseFloat(price[start:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// parseETA reads the string-encoded delivery minutes; unparseable values
// count as 30 so the urgency bonus stays neutral.
func parseETA(eta string) int {
	v, err := strconv.Atoi(strings.TrimSpace(eta))
	if err != nil {
		return 30
	}
	return v
}

func anyContained(haystack string, terms []string) bool {
	for _, t := range terms {
		if t != "" && strings.Contains(haystack, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

func countContained(haystack string, terms []string) int {
	n := 0
	for _, t := range terms {
		if t != "" && strings.Contains(haystack, strings.ToLower(t)) {
			n++
		}
	}
	return n
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
