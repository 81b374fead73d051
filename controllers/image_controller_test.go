package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/food-image", GetFoodImage)
	r.GET("/api/image-sources", GetImageSources)
	return r
}

func TestGetFoodImageRequiresQuery(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/food-image", nil)

	imageRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Query parameter is required")
}

func TestGetFoodImageReturnsLocalImages(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/food-image?query=margherita+pizza&count=2", nil)

	imageRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Images []string `json:"images"`
		Source string   `json:"source"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Images, 2)
	assert.Equal(t, "foodish", body.Source)
	for _, img := range body.Images {
		assert.NotEmpty(t, img)
	}
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
}

func TestGetFoodImageDefaultsToOneImage(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/food-image?query=soup", nil)

	imageRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Images []string `json:"images"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Images, 1)
}

func TestGetImageSources(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/image-sources", nil)

	imageRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var sources []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sources))
	require.Len(t, sources, 2)
	assert.Equal(t, "Foodish", sources[0]["name"])
	assert.Equal(t, "Unsplash", sources[1]["name"])
}
