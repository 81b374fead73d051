package services

import (
	"strings"
	"testing"

	"github.com/SABYA648/Mood-Bite/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferCategory(t *testing.T) {
	assert.Equal(t, models.CategoryVeg, inferCategory("Grilled Tofu Bowl"))
	assert.Equal(t, models.CategoryVeg, inferCategory("Fresh Vegetable Salad"))
	assert.Equal(t, models.CategoryEgg, inferCategory("Spanish Omelette"))
	assert.Equal(t, models.CategoryNonVeg, inferCategory("Thai Chicken Curry"))
	assert.Equal(t, models.CategoryNonVeg, inferCategory("Smoked Beef Brisket"))
}

func TestGenerateFoodItemIsComplete(t *testing.T) {
	valid := map[string]bool{
		models.CategoryVeg:    true,
		models.CategoryEgg:    true,
		models.CategoryNonVeg: true,
	}

	for i := 0; i < 100; i++ {
		item := generateFoodItem()

		require.NotEmpty(t, item.DishName)
		require.NotEmpty(t, item.Restaurant)
		assert.True(t, valid[item.Category], "unexpected category %q", item.Category)
		assert.GreaterOrEqual(t, item.Rating, 3.0)
		assert.LessOrEqual(t, item.Rating, 5.0)
		assert.True(t, strings.HasPrefix(item.Price, "₹"))
		assert.NotEmpty(t, item.ETA)
		assert.True(t, strings.HasPrefix(item.Image, "https://"))
	}
}

func TestPlaceholderImageURLEscapesQuery(t *testing.T) {
	u := placeholderImageURL("Paneer & Spicy Wrap", "Indian")

	assert.NotContains(t, u, " ")
	assert.NotContains(t, u, "&")
	assert.Contains(t, u, "Paneer")
	assert.Contains(t, u, "Indian")
	assert.True(t, strings.HasSuffix(u, ",food"))
}

func TestStarterFoodItemsCoverEveryCategory(t *testing.T) {
	seen := map[string]bool{}
	for _, item := range starterFoodItems {
		seen[item.Category] = true
		assert.NotEmpty(t, item.DishName)
		assert.NotEmpty(t, item.Image)
	}

	assert.True(t, seen[models.CategoryVeg])
	assert.True(t, seen[models.CategoryEgg])
	assert.True(t, seen[models.CategoryNonVeg])
}
