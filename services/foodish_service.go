package services

import (
	"math/rand"
	"strings"
	"time"
)

// foodImageCollection is the curated local image set, keyed by coarse food
// category. It stands in for the retired Foodish API and never fails.
var foodImageCollection = map[string][]string{
	"pizza": {
		"https://images.unsplash.com/photo-1513104890138-7c749659a591",
		"https://images.unsplash.com/photo-1604382354936-07c5d9983bd3",
		"https://images.unsplash.com/photo-1593560708920-61dd98c46a4e",
		"https://images.unsplash.com/photo-1565299624946-b28f40a0ae38",
	},
	"burger": {
		"https://images.unsplash.com/photo-1568901346375-23c9450c58cd",
		"https://images.unsplash.com/photo-1571091718767-18b5b1457add",
		"https://images.unsplash.com/photo-1586190848861-99aa4a171e90",
		"https://images.unsplash.com/photo-1550317138-10000687a72b",
	},
	"pasta": {
		"https://images.unsplash.com/photo-1563379926898-05f4575a45d8",
		"https://images.unsplash.com/photo-1548234979-f5d264ee89a5",
		"https://images.unsplash.com/photo-1556761223-4c4282c73f77",
		"https://images.unsplash.com/photo-1622973536968-3ead9e780960",
	},
	"rice": {
		"https://images.unsplash.com/photo-1536304993881-ff6e9eefa2a6",
		"https://images.unsplash.com/photo-1512058564366-18510be2db19",
		"https://images.unsplash.com/photo-1603133872878-684f208fb84b",
		"https://images.unsplash.com/photo-1607118750353-75a320737c3a",
	},
	"dessert": {
		"https://images.unsplash.com/photo-1563805042-7684c019e1cb",
		"https://images.unsplash.com/photo-1551024506-0bccd828d307",
		"https://images.unsplash.com/photo-1574085733277-851d9d856a3a",
		"https://images.unsplash.com/photo-1542124948-dc391252a940",
	},
	"salad": {
		"https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
		"https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
		"https://images.unsplash.com/photo-1540420828642-fca2c5c18abe",
		"https://images.unsplash.com/photo-1607532941433-304659e8198a",
	},
	"curry": {
		"https://images.unsplash.com/photo-1585937421612-70a008356fbe",
		"https://images.unsplash.com/photo-1617692855027-33b14f061079",
		"https://images.unsplash.com/photo-1604152135912-04a022e23696",
		"https://images.unsplash.com/photo-1565557623262-b51c2513a641",
	},
	"soup": {
		"https://images.unsplash.com/photo-1547592166-23ac45744acd",
		"https://images.unsplash.com/photo-1603105037880-880cd4edfb0d",
		"https://images.unsplash.com/photo-1605709303005-0acc95476660",
		"https://images.unsplash.com/photo-1616501268912-adb687bba81e",
	},
	"chicken": {
		"https://images.unsplash.com/photo-1580554530778-ca36943938b2",
		"https://images.unsplash.com/photo-1598103442097-8b74394b95c6",
		"https://images.unsplash.com/photo-1604908176997-125f25cc6f3d",
		"https://images.unsplash.com/photo-1527477396000-e27163b481c2",
	},
	"general": {
		"https://images.unsplash.com/photo-1504674900247-0877df9cc836",
		"https://images.unsplash.com/photo-1540189549336-e6e99c3679fe",
		"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445",
		"https://images.unsplash.com/photo-1565299624946-b28f40a0ae38",
		"https://images.unsplash.com/photo-1565958011703-44f9829ba187",
		"https://images.unsplash.com/photo-1484980972926-edee96e0960d",
		"https://images.unsplash.com/photo-1467003909585-2f8a72700288",
		"https://images.unsplash.com/photo-1476224203421-9ac39bcb3327",
		"https://images.unsplash.com/photo-1432139509613-5c4255815697",
	},
}

// RandomLocalFoodImage picks any image from the local collection.
func RandomLocalFoodImage() string {
	var all []string
	for _, urls := range foodImageCollection {
		all = append(all, urls...)
	}
	return cacheBust(all[rand.Intn(len(all))], time.Now().UnixMilli())
}

// LocalFoodImageByCategory picks an image matching the given food term,
// falling back to the general collection when nothing matches.
func LocalFoodImageByCategory(category string) string {
	key := normalizeFoodCategory(category)
	urls, ok := foodImageCollection[key]
	if !ok {
		urls = foodImageCollection["general"]
	}
	return cacheBust(urls[rand.Intn(len(urls))], time.Now().UnixMilli())
}

// AvailableFoodCategories lists the categories the local collection covers.
func AvailableFoodCategories() []string {
	return []string{"pizza", "burger", "pasta", "rice", "dessert", "salad", "curry", "soup", "chicken", "general"}
}

// normalizeFoodCategory routes a free-form food term onto a collection key,
// including common synonyms.
func normalizeFoodCategory(term string) string {
	t := strings.ToLower(term)

	if _, ok := foodImageCollection[t]; ok {
		return t
	}

	switch {
	case strings.Contains(t, "pizza") || strings.Contains(t, "pie"):
		return "pizza"
	case strings.Contains(t, "burger") || strings.Contains(t, "sandwich"):
		return "burger"
	case strings.Contains(t, "pasta") || strings.Contains(t, "noodle") || strings.Contains(t, "spaghetti"):
		return "pasta"
	case strings.Contains(t, "rice") || strings.Contains(t, "risotto") || strings.Contains(t, "paella"):
		return "rice"
	case strings.Contains(t, "dessert") || strings.Contains(t, "cake") || strings.Contains(t, "sweet") ||
		strings.Contains(t, "ice cream") || strings.Contains(t, "chocolate"):
		return "dessert"
	case strings.Contains(t, "salad") || strings.Contains(t, "vegetable") || strings.Contains(t, "greens"):
		return "salad"
	case strings.Contains(t, "curry") || strings.Contains(t, "indian") || strings.Contains(t, "spicy"):
		return "curry"
	case strings.Contains(t, "soup") || strings.Contains(t, "stew") || strings.Contains(t, "broth"):
		return "soup"
	case strings.Contains(t, "chicken") || strings.Contains(t, "poultry"):
		return "chicken"
	}
	return "general"
}
