package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartexam_backend/internal/config"
	"smartexam_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDraftPayload(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		drafts, err := NormalizeDraftPayload(`[{"marks":2},{"marks":3}]`)
		require.NoError(t, err)
		assert.Len(t, drafts, 2)
	})

	t.Run("fenced array", func(t *testing.T) {
		drafts, err := NormalizeDraftPayload("```json\n[{\"marks\":2}]\n```")
		require.NoError(t, err)
		assert.Len(t, drafts, 1)
	})

	t.Run("questions envelope", func(t *testing.T) {
		drafts, err := NormalizeDraftPayload(`{"questions":[{"marks":2},{"marks":3},{"marks":1}]}`)
		require.NoError(t, err)
		assert.Len(t, drafts, 3)
	})

	t.Run("fenced envelope", func(t *testing.T) {
		drafts, err := NormalizeDraftPayload("```json\n{\"questions\":[{\"marks\":2}]}\n```")
		require.NoError(t, err)
		assert.Len(t, drafts, 1)
	})

	t.Run("object without questions", func(t *testing.T) {
		_, err := NormalizeDraftPayload(`{"answer":42}`)
		assert.ErrorIs(t, err, ErrNotAnArray)
	})

	t.Run("plain prose", func(t *testing.T) {
		_, err := NormalizeDraftPayload("I cannot generate questions right now.")
		assert.ErrorIs(t, err, ErrNotAnArray)
	})
}

func TestParseRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 30, ParseRetryAfterSeconds("Rate limit exceeded. Please retry in 30 seconds."))
	assert.Equal(t, 5, ParseRetryAfterSeconds("try again in 5s"))
	assert.Equal(t, 12, ParseRetryAfterSeconds("Retry after 12 sec"))
	assert.Equal(t, 0, ParseRetryAfterSeconds("Rate limit exceeded."))
	assert.Equal(t, 0, ParseRetryAfterSeconds(""))
}

func TestGenerateDraftsNotConfigured(t *testing.T) {
	svc := NewAIService(config.AIConfig{})

	_, err := svc.GenerateDrafts(context.Background(), &GenerateRequest{
		Topic: "Algebra", Grade: 9, Subject: "Mathematics",
	})
	assert.ErrorIs(t, err, util.ErrNotConfigured)
}

func TestGenerateDraftsRequiredFields(t *testing.T) {
	svc := NewAIService(config.AIConfig{APIKey: "test-key", BaseURL: "http://unused"})

	for _, req := range []*GenerateRequest{
		{Grade: 9, Subject: "Mathematics"},
		{Topic: "Algebra", Subject: "Mathematics"},
		{Topic: "Algebra", Grade: 9},
	} {
		_, err := svc.GenerateDrafts(context.Background(), req)
		require.Error(t, err)
		assert.True(t, util.IsValidationError(err))
		assert.Equal(t, "Missing required fields", err.Error())
	}
}

func completionReply(t *testing.T, content string) []byte {
	t.Helper()
	reply, err := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	require.NoError(t, err)
	return reply
}

func TestGenerateDraftsHappyPath(t *testing.T) {
	var captured chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write(completionReply(t, "```json\n[{\"marks\":2},{\"marks\":3}]\n```"))
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{APIKey: "test-key", BaseURL: server.URL, Model: "default-model"})

	drafts, err := svc.GenerateDrafts(context.Background(), &GenerateRequest{
		Topic: "Algebra", Grade: 9, Subject: "Mathematics", Count: 2,
	})
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
	assert.Equal(t, "default-model", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[1].Content, "Generate 2 unique exam questions")
}

func TestGenerateDraftsModelOverride(t *testing.T) {
	var captured chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write(completionReply(t, "[]"))
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{APIKey: "test-key", BaseURL: server.URL, Model: "default-model"})

	_, err := svc.GenerateDrafts(context.Background(), &GenerateRequest{
		Topic: "Algebra", Grade: 9, Subject: "Mathematics", Model: "other-model",
	})
	require.NoError(t, err)
	assert.Equal(t, "other-model", captured.Model)
}

func TestGenerateDraftsUpstreamRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Rate limit exceeded. Please retry in 30 seconds.","metadata":{"provider":"upstream"}}}`))
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{APIKey: "test-key", BaseURL: server.URL})

	_, err := svc.GenerateDrafts(context.Background(), &GenerateRequest{
		Topic: "Algebra", Grade: 9, Subject: "Mathematics",
	})
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
	assert.Equal(t, "Rate limit exceeded. Please retry in 30 seconds.", upstream.Message)
	assert.Equal(t, 30, upstream.RetryAfterSeconds)
	assert.JSONEq(t, `{"provider":"upstream"}`, string(upstream.Details))
}

func TestGenerateDraftsUpstreamPlainError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{APIKey: "test-key", BaseURL: server.URL})

	_, err := svc.GenerateDrafts(context.Background(), &GenerateRequest{
		Topic: "Algebra", Grade: 9, Subject: "Mathematics",
	})
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusBadGateway, upstream.Status)
	assert.Equal(t, "upstream exploded", upstream.Message)
	assert.Zero(t, upstream.RetryAfterSeconds)
}

func TestGenerateDraftsNonArrayReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionReply(t, "Sorry, I can only answer questions about cooking."))
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{APIKey: "test-key", BaseURL: server.URL})

	_, err := svc.GenerateDrafts(context.Background(), &GenerateRequest{
		Topic: "Algebra", Grade: 9, Subject: "Mathematics",
	})
	assert.ErrorIs(t, err, ErrNotAnArray)
}
