package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateContext(t *testing.T, target, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Request = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestParseGenerateCountFromBody(t *testing.T) {
	c := generateContext(t, "/api/admin/generate-food-items", `{"count": 42}`)

	count, err := parseGenerateCount(c)
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestParseGenerateCountEmptyBodyMeansDefault(t *testing.T) {
	c := generateContext(t, "/api/admin/generate-food-items", "")

	count, err := parseGenerateCount(c)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestParseGenerateCountQueryFallback(t *testing.T) {
	c := generateContext(t, "/api/admin/generate-food-items?count=25", "")

	count, err := parseGenerateCount(c)
	require.NoError(t, err)
	assert.Equal(t, 25, count)
}

func TestParseGenerateCountBodyWinsOverQuery(t *testing.T) {
	c := generateContext(t, "/api/admin/generate-food-items?count=25", `{"count": 7}`)

	count, err := parseGenerateCount(c)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestParseGenerateCountRejectsBadInput(t *testing.T) {
	_, err := parseGenerateCount(generateContext(t, "/api/admin/generate-food-items", `{"count": "lots"}`))
	assert.Error(t, err)

	_, err = parseGenerateCount(generateContext(t, "/api/admin/generate-food-items", `{"count": -5}`))
	assert.Error(t, err)

	_, err = parseGenerateCount(generateContext(t, "/api/admin/generate-food-items?count=abc", ""))
	assert.Error(t, err)
}

func TestGenerateFoodItemsRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/generate-food-items", GenerateFoodItems)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/generate-food-items",
		strings.NewReader(`{"count": "lots"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
