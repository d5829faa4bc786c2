package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartexam_backend/internal/config"
	"smartexam_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAIRouter(cfg config.AIConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	c := NewAIController(service.NewAIService(cfg))
	router := gin.New()
	router.POST("/api/ai/generate", c.Generate)
	return router
}

func postGenerate(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpointNotConfigured(t *testing.T) {
	router := newAIRouter(config.AIConfig{})

	w := postGenerate(router, `{"topic":"Algebra","grade":9,"subject":"Mathematics"}`)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AI API key not configured. Please set environment variables.", resp["error"])
}

func TestGenerateEndpointMissingFields(t *testing.T) {
	router := newAIRouter(config.AIConfig{APIKey: "test-key", BaseURL: "http://unused"})

	w := postGenerate(router, `{"topic":"Algebra"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp["error"])
}

func TestGenerateEndpointRateLimitPassthrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Rate limit exceeded. Please retry in 10 seconds."}}`))
	}))
	defer upstream.Close()

	router := newAIRouter(config.AIConfig{APIKey: "test-key", BaseURL: upstream.URL})

	w := postGenerate(router, `{"topic":"Algebra","grade":9,"subject":"Mathematics"}`)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Rate limit exceeded. Please retry in 10 seconds.", resp["error"])
	assert.Equal(t, float64(10), resp["retryAfterSeconds"])
}

func TestGenerateEndpointReturnsBareArray(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"questions\":[{\"marks\":2}]}"}}]}`))
	}))
	defer upstream.Close()

	router := newAIRouter(config.AIConfig{APIKey: "test-key", BaseURL: upstream.URL})

	w := postGenerate(router, `{"topic":"Algebra","grade":9,"subject":"Mathematics"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var drafts []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &drafts))
	require.Len(t, drafts, 1)
	assert.Equal(t, float64(2), drafts[0]["marks"])
}
