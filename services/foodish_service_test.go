package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFoodCategory(t *testing.T) {
	cases := map[string]string{
		"Pizza":               "pizza",
		"pepperoni pizza":     "pizza",
		"Spaghetti Carbonara": "pasta",
		"chocolate cake":      "dessert",
		"chicken broth":       "soup",
		"poultry":             "chicken",
		"veggie greens":       "salad",
		"paneer tikka":        "general",
		"":                    "general",
	}

	for input, want := range cases {
		assert.Equal(t, want, normalizeFoodCategory(input), "input %q", input)
	}
}

func TestLocalFoodImageByCategory(t *testing.T) {
	img := LocalFoodImageByCategory("pizza")

	require.NotEmpty(t, img)
	assert.Contains(t, img, "?t=")

	matched := false
	for _, base := range foodImageCollection["pizza"] {
		if strings.HasPrefix(img, base) {
			matched = true
			break
		}
	}
	assert.True(t, matched, "image %q is not from the pizza collection", img)
}

func TestLocalFoodImageByCategoryUnknownFallsBackToGeneral(t *testing.T) {
	img := LocalFoodImageByCategory("zxqvw")

	require.NotEmpty(t, img)
	matched := false
	for _, base := range foodImageCollection["general"] {
		if strings.HasPrefix(img, base) {
			matched = true
			break
		}
	}
	assert.True(t, matched, "image %q is not from the general collection", img)
}

func TestRandomLocalFoodImage(t *testing.T) {
	for i := 0; i < 10; i++ {
		img := RandomLocalFoodImage()
		assert.True(t, strings.HasPrefix(img, "https://images.unsplash.com/"))
		assert.Contains(t, img, "?t=")
	}
}

func TestAvailableFoodCategoriesMatchCollection(t *testing.T) {
	categories := AvailableFoodCategories()

	require.Len(t, categories, len(foodImageCollection))
	for _, c := range categories {
		assert.Contains(t, foodImageCollection, c)
	}
}
