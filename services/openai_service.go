package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"
)

// DietaryPreference carries the three independent dietary flags detected in
// the user's request. They are not mutually exclusive by construction; the
// filter resolves conflicts by priority (veg > egg > nonVeg).
type DietaryPreference struct {
	IsVeg    bool `json:"isVeg"`
	IsEgg    bool `json:"isEgg"`
	IsNonVeg bool `json:"isNonVeg"`
}

// MoodAnalysis is the basic classification of a free-text food request.
type MoodAnalysis struct {
	Mood            string            `json:"mood"`
	FoodSuggestions []string          `json:"foodSuggestions"`
	Dietary         DietaryPreference `json:"dietary"`
	SortPreference  string            `json:"sortPreference"`
}

type IngredientFilters struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// AdvancedFoodRequest is the richer classification used by the advanced
// request path.
type AdvancedFoodRequest struct {
	Keywords            []string          `json:"keywords"`
	CuisineTypes        []string          `json:"cuisineTypes"`
	Flavors             []string          `json:"flavors"`
	DietaryRestrictions []string          `json:"dietaryRestrictions"`
	MealType            string            `json:"mealType"`
	PreparationMethod   []string          `json:"preparationMethod"`
	Ingredients         IngredientFilters `json:"ingredients"`
	HealthFocus         []string          `json:"healthFocus"`
	Occasion            string            `json:"occasion"`
	Priority            string            `json:"priority"`
}

type OpenAIService struct {
	client *http.Client
	apiKey string
	model  string
}

func NewOpenAIService() *OpenAIService {
	return &OpenAIService{
		client: &http.Client{Timeout: 15 * time.Second},
		apiKey: os.Getenv("OPENAI_API_KEY"),
		model:  "gpt-4o",
	}
}

// availableMoods is the vocabulary the classifier is asked to choose from.
var availableMoods = []string{
	"happy", "joyful", "excited", "cheerful", "elated", "thrilled", "optimistic", "content",
	"sad", "melancholic", "gloomy", "depressed", "down", "blue", "heartbroken", "disappointed",
	"angry", "irritated", "furious", "enraged", "annoyed", "frustrated", "indignant", "bitter",
	"anxious", "nervous", "worried", "stressed", "overwhelmed", "tense", "uneasy", "apprehensive",
	"tired", "exhausted", "lethargic", "fatigued", "drained", "sleepy", "weary", "worn-out",
	"hungry", "starving", "ravenous", "peckish", "famished", "empty", "appetite", "craving",
	"romantic", "passionate", "affectionate", "loving", "tender", "intimate", "amorous", "sentimental",
	"bored", "disinterested", "indifferent", "apathetic", "unimpressed", "monotonous", "uninspired", "dull",
	"adventurous", "daring", "bold", "explorative", "curious", "brave", "venturesome", "spontaneous",
	"peaceful", "calm", "tranquil", "serene", "relaxed", "composed", "centered", "balanced",
	"energetic", "lively", "vibrant", "dynamic", "spirited", "animated", "enthusiastic", "zealous",
}

// moodFoodPairings supplies food suggestions when the classifier returns none.
var moodFoodPairings = map[string][]string{
	"happy":       {"desserts", "ice cream", "pizza", "burgers", "chocolate", "cake", "pastries", "favorite foods"},
	"joyful":      {"colorful foods", "fresh fruit", "smoothies", "sweet pastries", "celebration dishes", "party platters"},
	"excited":     {"fancy dishes", "gourmet foods", "international cuisine", "special occasion meals", "deluxe versions"},
	"sad":         {"comfort food", "warm soup", "mac and cheese", "chocolate", "ice cream", "pasta", "mashed potatoes"},
	"melancholic": {"warm stews", "hearty soups", "fresh bread", "tea with honey", "childhood favorites"},
	"angry":       {"spicy food", "bold flavors", "crunchy textures", "satisfying meals", "grilled meats", "intense dishes"},
	"irritated":   {"simple foods", "easy-to-eat items", "finger foods", "nutrient-dense options", "energy-boosting snacks"},
	"anxious":     {"calming teas", "nuts and seeds", "avocado toast", "banana", "dark chocolate", "whole grains"},
	"stressed":    {"green leafy vegetables", "herbal teas", "dark chocolate", "blueberries", "complex carbohydrates"},
	"tired":       {"energy-boosting foods", "protein-rich meals", "nuts", "coffee", "green tea", "wholesome breakfast items"},
	"exhausted":   {"nutrient-dense meals", "iron-rich foods", "quick energy snacks", "hydrating foods", "superfood bowls"},
	"hungry":      {"filling meals", "protein-rich dishes", "hearty portions", "satisfying comfort foods", "all-you-can-eat options"},
	"starving":    {"fast delivery options", "substantial meals", "loaded dishes", "buffet-style foods", "hearty platters"},
	"romantic":    {"aphrodisiac foods", "shared plates", "fondue", "chocolate-covered strawberries", "fine dining"},
	"bored":       {"exotic cuisines", "novel food combinations", "fusion dishes", "food challenges", "unexpected pairings"},
	"adventurous": {"exotic cuisines", "unusual ingredients", "international street food", "rare delicacies", "bold combinations"},
	"peaceful":    {"light salads", "simple dishes", "fresh ingredients", "balanced meals", "mindful eating options"},
	"energetic":   {"superfoods", "protein bowls", "fresh juices", "energy-boosting ingredients", "colorful salads"},
}

// mapToStandardMood snaps a free-form mood label onto the vocabulary,
// defaulting to "hungry".
func mapToStandardMood(detected string) string {
	detected = strings.ToLower(detected)
	for _, m := range availableMoods {
		if detected == m {
			return m
		}
	}
	for _, m := range availableMoods {
		if strings.Contains(detected, m) {
			return m
		}
	}
	return "hungry"
}

// foodSuggestionsForMood returns up to four shuffled suggestions for a mood.
func foodSuggestionsForMood(mood string) []string {
	standard := mapToStandardMood(mood)

	category := "hungry"
	for pairing := range moodFoodPairings {
		if pairing == standard || strings.HasPrefix(pairing, standard) || strings.HasPrefix(standard, pairing) {
			category = pairing
			break
		}
	}

	source, ok := moodFoodPairings[category]
	if !ok {
		source = moodFoodPairings["hungry"]
	}

	suggestions := make([]string, len(source))
	copy(suggestions, source)
	rand.Shuffle(len(suggestions), func(i, j int) {
		suggestions[i], suggestions[j] = suggestions[j], suggestions[i]
	})
	if len(suggestions) > 4 {
		suggestions = suggestions[:4]
	}
	return suggestions
}

// AnalyzeMood classifies the user's text into a mood, food suggestions,
// dietary flags, and a sort preference. It never fails: any classifier error
// degrades to a randomized fallback so the UI stays functional.
func (s *OpenAIService) AnalyzeMood(text string) MoodAnalysis {
	prompt := fmt.Sprintf(`Analyze the following text from a user looking for food recommendations:

"%s"

Return a JSON object with the following fields:
1. mood: The primary emotion/mood expressed. Choose from these moods: %s
2. foodSuggestions: Array of 3-5 food types or cuisines that would match this specific mood and request
3. dietary: Object with boolean fields isVeg, isEgg, isNonVeg based on any dietary preferences mentioned
4. sortPreference: Either "Rating" if user wants best food, "DeliveryTime" if they want quick delivery, or "Relevance" as default

Only include explicitly mentioned preferences. Default to false for dietary preferences if not mentioned.`,
		text, strings.Join(availableMoods, ", "))

	system := "You are a food recommendation assistant that understands people's moods and food preferences. Detect specific and nuanced moods, not just general categories."

	body, err := s.chatJSON(system, prompt, 0.9)
	if err != nil {
		log.Printf("mood analysis failed, using fallback: %v", err)
		return fallbackMoodAnalysis()
	}

	var analysis MoodAnalysis
	if err := json.Unmarshal(body, &analysis); err != nil {
		log.Printf("mood analysis returned invalid JSON, using fallback: %v", err)
		return fallbackMoodAnalysis()
	}

	if analysis.Mood == "" || analysis.Mood == "neutral" {
		analysis.Mood = availableMoods[rand.Intn(len(availableMoods))]
	}
	if len(analysis.FoodSuggestions) == 0 {
		analysis.FoodSuggestions = foodSuggestionsForMood(analysis.Mood)
	}
	if analysis.SortPreference == "" {
		analysis.SortPreference = "Relevance"
	}
	return analysis
}

// AnalyzeAdvancedRequest extracts a structured food request from free text.
// Failures degrade to a neutral request with the default priority.
func (s *OpenAIService) AnalyzeAdvancedRequest(text string) AdvancedFoodRequest {
	system := `You are a specialized AI trained to analyze food requests. Extract structured information from users' food preferences and return a JSON object with fields: keywords, cuisineTypes, flavors, dietaryRestrictions, mealType, preparationMethod, ingredients {include, exclude}, healthFocus, occasion, and priority (taste, speed, price, healthiness, or variety).`

	body, err := s.chatJSON(system, text, 0.1)
	if err != nil {
		log.Printf("advanced request analysis failed, using defaults: %v", err)
		return defaultAdvancedRequest()
	}

	var req AdvancedFoodRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Printf("advanced request analysis returned invalid JSON, using defaults: %v", err)
		return defaultAdvancedRequest()
	}
	return normalizeAdvancedRequest(req)
}

// chatJSON calls the chat completions API with JSON response formatting and
// returns the raw content of the first choice.
func (s *OpenAIService) chatJSON(system, user string, temperature float64) ([]byte, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}

	payload := map[string]any{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     temperature,
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read completion response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("openai api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("openai api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, fmt.Errorf("decode completion response error: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return nil, fmt.Errorf("empty completion from openai")
	}
	return []byte(out.Choices[0].Message.Content), nil
}

func fallbackMoodAnalysis() MoodAnalysis {
	mood := availableMoods[rand.Intn(len(availableMoods))]
	return MoodAnalysis{
		Mood:            mood,
		FoodSuggestions: foodSuggestionsForMood(mood),
		SortPreference:  "Relevance",
	}
}

func defaultAdvancedRequest() AdvancedFoodRequest {
	return normalizeAdvancedRequest(AdvancedFoodRequest{})
}

// normalizeAdvancedRequest fills nil slices and the default priority so the
// scoring engine never sees missing fields.
func normalizeAdvancedRequest(req AdvancedFoodRequest) AdvancedFoodRequest {
	if req.Keywords == nil {
		req.Keywords = []string{}
	}
	if req.CuisineTypes == nil {
		req.CuisineTypes = []string{}
	}
	if req.Flavors == nil {
		req.Flavors = []string{}
	}
	if req.DietaryRestrictions == nil {
		req.DietaryRestrictions = []string{}
	}
	if req.PreparationMethod == nil {
		req.PreparationMethod = []string{}
	}
	if req.Ingredients.Include == nil {
		req.Ingredients.Include = []string{}
	}
	if req.Ingredients.Exclude == nil {
		req.Ingredients.Exclude = []string{}
	}
	if req.HealthFocus == nil {
		req.HealthFocus = []string{}
	}
	if req.Priority == "" {
		req.Priority = "taste"
	}
	return req
}
