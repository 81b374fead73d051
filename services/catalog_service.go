package services

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	"github.com/SABYA648/Mood-Bite/config"
	"github.com/SABYA648/Mood-Bite/models"
)

// GetAllFoodItems reads the full catalog.
func GetAllFoodItems() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := config.DB.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("db error fetching food items: %w", err)
	}
	return items, nil
}

// GetFoodItemByID reads a single catalog entry.
func GetFoodItemByID(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := config.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// starterFoodItems are the curated rows inserted by the seed endpoint.
var starterFoodItems = []models.FoodItem{
	{DishName: "Vegetable Biryani", Restaurant: "Spice Garden", ETA: "25", Rating: 4.8, Price: "$15.99", Category: models.CategoryVeg,
		Image: "https://images.unsplash.com/photo-1589301760014-d929f3979dbc"},
	{DishName: "Butter Chicken", Restaurant: "Punjab Grill", ETA: "30", Rating: 4.7, Price: "$18.99", Category: models.CategoryNonVeg,
		Image: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398"},
	{DishName: "Margherita Pizza", Restaurant: "Italian House", ETA: "20", Rating: 4.5, Price: "$14.99", Category: models.CategoryVeg,
		Image: "https://images.unsplash.com/photo-1574071318508-1cdbab80d002"},
	{DishName: "Chicken Alfredo Pasta", Restaurant: "Pasta Paradise", ETA: "25", Rating: 4.6, Price: "$16.99", Category: models.CategoryNonVeg,
		Image: "https://images.unsplash.com/photo-1555949258-eb67b1ef0ceb"},
	{DishName: "Egg Fried Rice", Restaurant: "Dragon Wok", ETA: "15", Rating: 4.3, Price: "$12.99", Category: models.CategoryEgg,
		Image: "https://images.unsplash.com/photo-1603133872878-684f208fb84b"},
	{DishName: "Paneer Tikka", Restaurant: "Taj Mahal", ETA: "20", Rating: 4.4, Price: "$14.50", Category: models.CategoryVeg,
		Image: "https://images.unsplash.com/photo-1567188040759-fb8a252b8eee"},
}

// SeedDatabase inserts the starter catalog when the table is empty. Returns
// whether anything was inserted and the row count afterwards.
func SeedDatabase() (bool, int64, error) {
	var count int64
	if err := config.DB.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return false, 0, fmt.Errorf("db error counting food items: %w", err)
	}
	if count > 0 {
		return false, count, nil
	}
	if err := config.DB.Create(&starterFoodItems).Error; err != nil {
		return false, 0, fmt.Errorf("db error seeding food items: %w", err)
	}
	return true, int64(len(starterFoodItems)), nil
}

// Building blocks for the catalog generator.
var (
	generatorCuisines = []string{
		"Italian", "Chinese", "Mexican", "Indian", "Thai", "Japanese", "Greek", "French",
		"American", "Mediterranean", "Korean", "Vietnamese", "Turkish", "Lebanese", "Spanish",
		"Brazilian", "Peruvian", "Moroccan", "Ethiopian", "Caribbean",
	}
	generatorPrefixes = []string{
		"Spicy", "Creamy", "Grilled", "Roasted", "Fried", "Steamed", "Baked", "Fresh", "Smoked",
		"Stir-fried", "Slow-cooked", "Pan-fried", "Broiled", "Stewed", "Braised", "Poached",
		"Sautéed", "Traditional", "Homemade", "Gourmet",
	}
	generatorDishTypes = []string{
		"Pizza", "Pasta", "Burger", "Curry", "Salad", "Soup", "Sandwich", "Bowl", "Wrap",
		"Steak", "Noodles", "Rice", "Tacos", "Burritos", "Dumplings", "Sushi", "Roll",
		"Biryani", "Kebab", "Ramen", "Lasagna", "Risotto", "Falafel", "Quesadilla",
		"Ice Cream", "Cake", "Pie", "Cookies", "Brownies", "Pastry", "Donut", "Pudding",
		"Mochi", "Cheesecake", "Tiramisu", "Custard", "Mousse", "Tart", "Parfait", "Gelato",
	}
	generatorFlavors = []string{
		"Sweet", "Spicy", "Tangy", "Savory", "Rich", "Mild", "Hot", "Zesty", "Bitter",
		"Smoky", "Sour", "Garlicky", "Herbal", "Citrusy", "Earthy", "Buttery", "Crispy",
		"Cheesy", "Fruity", "Chocolatey",
	}
	generatorProteins = []string{
		"Chicken", "Beef", "Pork", "Fish", "Lamb", "Shrimp", "Turkey", "Duck", "Tofu",
		"Beans", "Lentils", "Chickpeas", "Egg", "Paneer", "Tempeh", "Seitan",
		"Quinoa", "Mushroom", "Falafel", "Cheese",
	}
	generatorMeats = []string{"Chicken", "Beef", "Pork", "Fish", "Lamb", "Shrimp", "Turkey", "Duck"}

	restaurantPrefixes = []string{
		"Golden", "Royal", "Blue", "Green", "Red", "Silver", "Jade", "Ruby", "Emerald",
		"Sunshine", "Happy", "Lucky", "Star", "Moon", "Ocean", "Mountain", "Garden",
		"Village", "City", "Metro",
	}
	restaurantTypes = []string{
		"Kitchen", "Bistro", "Café", "Grill", "Diner", "Restaurant", "Eatery", "Bar",
		"Tavern", "House", "Palace", "Garden", "Corner", "Express", "Delight",
		"Bites", "Feast", "Treats", "Flavors", "Table",
	}

	generatorETAs   = []string{"15", "20", "25", "30", "35", "40", "45", "50"}
	generatorPrices = []string{
		"₹150", "₹199", "₹249", "₹299", "₹349", "₹399", "₹449", "₹499",
		"₹549", "₹599", "₹649", "₹699", "₹749", "₹799", "₹849",
	}
	// Skewed toward the 4.x range, like real delivery catalogs look.
	generatorRatings = []float64{
		3.0, 3.1, 3.2, 3.3, 3.4, 3.5, 3.6, 3.7, 3.8, 3.9,
		4.0, 4.0, 4.1, 4.1, 4.2, 4.2, 4.2, 4.3, 4.3, 4.3, 4.4, 4.4, 4.4, 4.5, 4.5, 4.5, 4.5,
		4.6, 4.6, 4.6, 4.7, 4.7, 4.7, 4.8, 4.8, 4.9, 4.9, 5.0,
	}
)

func pickString(options []string) string {
	return options[rand.Intn(len(options))]
}

// generateFoodItem builds one randomized catalog row. The image is a
// placeholder search URL; real images come from the refresh endpoints.
func generateFoodItem() models.FoodItem {
	cuisine := pickString(generatorCuisines)
	prefix := pickString(generatorPrefixes)
	dishType := pickString(generatorDishTypes)
	protein := pickString(generatorProteins)
	flavor := pickString(generatorFlavors)

	var dishName string
	switch rand.Intn(5) {
	case 0:
		dishName = fmt.Sprintf("%s %s %s", prefix, protein, dishType)
	case 1:
		dishName = fmt.Sprintf("%s %s with %s", cuisine, dishType, protein)
	case 2:
		dishName = fmt.Sprintf("%s %s %s", prefix, cuisine, dishType)
	case 3:
		dishName = fmt.Sprintf("%s & %s %s", protein, flavor, dishType)
	default:
		dishName = fmt.Sprintf("%s-style %s %s", cuisine, protein, dishType)
	}

	return models.FoodItem{
		DishName:   dishName,
		Restaurant: fmt.Sprintf("%s %s", pickString(restaurantPrefixes), pickString(restaurantTypes)),
		Category:   inferCategory(dishName),
		ETA:        pickString(generatorETAs),
		Rating:     generatorRatings[rand.Intn(len(generatorRatings))],
		Price:      pickString(generatorPrices),
		Image:      placeholderImageURL(dishName, cuisine),
	}
}

// inferCategory assigns veg/egg/nonVeg from dish-name signals, falling back
// to a random category when nothing matches.
func inferCategory(dishName string) string {
	lower := strings.ToLower(dishName)
	switch {
	case strings.Contains(lower, "tofu") || strings.Contains(lower, "vegan") ||
		strings.Contains(lower, "vegetable") || strings.Contains(lower, "salad"):
		return models.CategoryVeg
	case strings.Contains(lower, "egg") || strings.Contains(lower, "omelet"):
		return models.CategoryEgg
	}
	for _, meat := range generatorMeats {
		if strings.Contains(dishName, meat) {
			return models.CategoryNonVeg
		}
	}
	categories := []string{models.CategoryVeg, models.CategoryNonVeg, models.CategoryEgg}
	return categories[rand.Intn(len(categories))]
}

func placeholderImageURL(dishName, cuisine string) string {
	query := url.QueryEscape(strings.ReplaceAll(dishName, "&", "and"))
	return fmt.Sprintf("https://source.unsplash.com/featured/?%s,%s,food", query, url.QueryEscape(cuisine))
}

// GenerateFoodItems replaces the catalog with count randomized items,
// inserting in batches.
func GenerateFoodItems(count int) (int, error) {
	if count <= 0 {
		count = 300
	}

	if err := config.DB.Where("1 = 1").Delete(&models.FoodItem{}).Error; err != nil {
		return 0, fmt.Errorf("db error clearing food items: %w", err)
	}

	items := make([]models.FoodItem, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, generateFoodItem())
	}

	const batchSize = 50
	if err := config.DB.CreateInBatches(items, batchSize).Error; err != nil {
		return 0, fmt.Errorf("db error inserting food items: %w", err)
	}
	return count, nil
}
