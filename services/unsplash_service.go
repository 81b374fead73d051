package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// rateLimitCooldown is how long the service stops calling the API after the
// remaining-quota header hits zero.
const rateLimitCooldown = time.Hour

// UnsplashService searches Unsplash for food photos. The rate-limit flag is
// advisory shared state owned here: it is set when the API reports zero
// remaining requests and cleared after the cool-down.
type UnsplashService struct {
	client      *http.Client
	accessKey   string
	rateLimited atomic.Bool
}

func NewUnsplashService() *UnsplashService {
	return &UnsplashService{
		client:    &http.Client{Timeout: 10 * time.Second},
		accessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
	}
}

// Configured reports whether an API key is available.
func (s *UnsplashService) Configured() bool {
	return s.accessKey != ""
}

// RateLimited reports the advisory rate-limit state.
func (s *UnsplashService) RateLimited() bool {
	return s.rateLimited.Load()
}

// staticFallbackImages always work when the API does not.
var staticFallbackImages = []string{
	"https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
	"https://images.unsplash.com/photo-1555939594-58d7cb561ad1",
	"https://images.unsplash.com/photo-1565299624946-b28f40a0ae38",
	"https://images.unsplash.com/photo-1540189549336-e6e99c3679fe",
	"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445",
	"https://images.unsplash.com/photo-1504674900247-0877df9cc836",
	"https://images.unsplash.com/photo-1473093295043-cdd812d0e601",
	"https://images.unsplash.com/photo-1563379926898-05f4575a45d8",
	"https://images.unsplash.com/photo-1562436302-4a28868bdb8f",
	"https://images.unsplash.com/photo-1583033974607-323724061347",
	"https://images.unsplash.com/photo-1476224203421-9ac39bcb3327",
}

// lastResortImage is the single hardcoded URL returned when every other tier
// fails.
const lastResortImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c"

// LastResortFoodImage returns the guaranteed fallback URL with a
// cache-busting parameter.
func LastResortFoodImage() string {
	return cacheBust(lastResortImage, time.Now().UnixMilli())
}

// SearchImageURLs queries the search endpoint and returns up to count image
// URLs with cache-busting parameters. Failures and rate limiting fall back to
// the static collection.
func (s *UnsplashService) SearchImageURLs(query string, count int) ([]string, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("UNSPLASH_ACCESS_KEY not set")
	}
	if count < 1 {
		count = 1
	}

	timestamp := time.Now().UnixMilli()

	// Long queries get rejected; keep the first few keywords.
	if len(query) > 80 {
		words := strings.Fields(query)
		if len(words) > 4 {
			words = words[:4]
		}
		query = strings.Join(words, " ")
	}
	mealTerms := []string{"dish", "meal", "food", "cuisine", "recipe", "plate"}
	query = query + " " + mealTerms[timestamp%int64(len(mealTerms))]

	if s.rateLimited.Load() {
		log.Println("unsplash rate limit exceeded, using fallback images")
		return s.fallbackURLs(query, count, timestamp), nil
	}

	perPage := 10
	if count > 5 {
		perPage = 15
	}
	orderBy := "relevant"
	if rand.Intn(2) == 0 {
		orderBy = "latest"
	}

	u := fmt.Sprintf(
		"https://api.unsplash.com/search/photos?query=%s&per_page=%d&order_by=%s&orientation=landscape",
		url.QueryEscape(query), perPage, orderBy,
	)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create unsplash request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("unsplash search error: %v", err)
		return s.fallbackURLs(query, count, timestamp), nil
	}
	defer resp.Body.Close()

	s.trackRateLimit(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		log.Printf("unsplash search failed (status %d)", resp.StatusCode)
		return s.fallbackURLs(query, count, timestamp), nil
	}

	var sr struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &sr); err != nil || len(sr.Results) == 0 {
		return s.fallbackURLs(query, count, timestamp), nil
	}

	// Pick randomly from the results so repeated queries vary.
	rand.Shuffle(len(sr.Results), func(i, j int) {
		sr.Results[i], sr.Results[j] = sr.Results[j], sr.Results[i]
	})
	if len(sr.Results) > count {
		sr.Results = sr.Results[:count]
	}

	images := make([]string, 0, len(sr.Results))
	for _, r := range sr.Results {
		images = append(images, cacheBust(r.URLs.Regular, timestamp))
	}
	return images, nil
}

// RandomFoodImage fetches one fresh image for the given keywords, used when
// refreshing a catalog item's photo. Never returns an empty string.
func (s *UnsplashService) RandomFoodImage(keywords string) string {
	timestamp := time.Now().UnixMilli()

	if len(keywords) > 80 {
		words := strings.Fields(keywords)
		if len(words) > 3 {
			words = words[:3]
		}
		keywords = strings.Join(words, " ")
	}
	if !strings.Contains(keywords, "food") {
		keywords += " food"
	}

	if s.Configured() && !s.rateLimited.Load() {
		if images, err := s.SearchImageURLs(keywords, 1); err == nil && len(images) > 0 {
			return images[0]
		}
	}

	// Same keywords map to the same fallback within a time window.
	hash := charCodeSum(keywords)
	index := (hash + timestamp%1000) % int64(len(staticFallbackImages))
	return cacheBust(staticFallbackImages[index], timestamp)
}

// trackRateLimit watches the remaining-quota header. Zero remaining sets the
// advisory flag and schedules the cool-down reset; a healthy response clears
// it immediately.
func (s *UnsplashService) trackRateLimit(resp *http.Response) {
	remaining := resp.Header.Get("X-Ratelimit-Remaining")
	if remaining == "" {
		return
	}
	if remaining == "0" {
		log.Println("unsplash rate limit reached, pausing API calls")
		s.rateLimited.Store(true)
		time.AfterFunc(rateLimitCooldown, func() {
			log.Println("unsplash rate limit flag reset after cooling period")
			s.rateLimited.Store(false)
		})
		return
	}
	if n, err := strconv.Atoi(remaining); err == nil {
		if n < 10 {
			log.Printf("unsplash rate limit running low: %d requests remaining", n)
		} else {
			s.rateLimited.Store(false)
		}
	}
}

func (s *UnsplashService) fallbackURLs(query string, count int, timestamp int64) []string {
	hash := charCodeSum(query)
	images := make([]string, 0, count)
	for i := 0; i < count; i++ {
		index := (hash + int64(i) + timestamp%1000) % int64(len(staticFallbackImages))
		images = append(images, cacheBust(staticFallbackImages[index], timestamp))
	}
	return images
}

func cacheBust(imageURL string, timestamp int64) string {
	return fmt.Sprintf("%s?t=%d-%d", imageURL, timestamp, rand.Intn(10000))
}

// BuildFoodSearchQuery composes an image search query from dish
// characteristics, mirroring what the client renders.
func BuildFoodSearchQuery(dishName, restaurant string) string {
	lowerDish := strings.ToLower(dishName)
	lowerRestaurant := strings.ToLower(restaurant)

	terms := []string{strings.ReplaceAll(dishName, "&", "and")}

	if restaurant != "" && !strings.Contains(lowerDish, lowerRestaurant) {
		words := strings.Fields(restaurant)
		if len(words) > 2 {
			terms = append(terms, words[0])
		} else {
			terms = append(terms, restaurant)
		}
	}

	dishPhrases := []struct{ key, phrase string }{
		{"salad", "fresh salad plate"},
		{"pizza", "gourmet pizza"},
		{"pasta", "italian pasta dish"},
		{"burger", "gourmet burger"},
		{"cake", "dessert"},
		{"dessert", "dessert"},
		{"rice", "rice dish"},
		{"soup", "soup bowl"},
		{"curry", "curry dish"},
		{"sandwich", "gourmet sandwich"},
		{"steak", "steak dish"},
		{"chicken", "chicken dish"},
		{"fish", "seafood dish"},
		{"seafood", "seafood dish"},
		{"breakfast", "breakfast plate"},
		{"noodle", "noodle dish"},
	}
	for _, p := range dishPhrases {
		if strings.Contains(lowerDish, p.key) {
			terms = append(terms, p.phrase)
			break
		}
	}

	terms = append(terms, "food")

	cuisines := []string{"italian", "mexican", "indian", "chinese", "japanese", "thai"}
	for _, c := range cuisines {
		if strings.Contains(lowerDish, c) || strings.Contains(lowerRestaurant, c) {
			terms = append(terms, c+" cuisine")
			break
		}
	}

	terms = append(terms, "food photography")
	return strings.TrimSpace(strings.Join(terms, " "))
}
