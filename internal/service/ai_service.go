package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"smartexam_backend/internal/config"
	"smartexam_backend/internal/util"
)

// AIService drafts exam questions through an OpenAI-compatible completion
// endpoint. It never persists anything; accepted drafts are saved by the
// caller one question at a time.
type AIService struct {
	cfg    config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{cfg: cfg, client: &http.Client{}}
}

type GenerateRequest struct {
	Topic      string `json:"topic"`
	Grade      int    `json:"grade"`
	Subject    string `json:"subject"`
	Count      int    `json:"count"`
	Difficulty string `json:"difficulty"`
	Model      string `json:"model"`
}

type aiChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []aiChatMessage `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message aiChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// UpstreamError carries the completion endpoint's own status and details
// through to the caller verbatim.
type UpstreamError struct {
	Status            int
	Message           string
	Details           json.RawMessage
	RetryAfterSeconds int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("AI API error (status %d): %s", e.Status, e.Message)
}

var ErrNotAnArray = errors.New("AI did not return an array of questions")

// GenerateDrafts builds the CAPS prompt pair, calls the completion endpoint
// and normalizes the reply into a bare array of draft question objects. The
// element shape is not validated here; downstream consumers catch malformed
// items when saving.
func (s *AIService) GenerateDrafts(ctx context.Context, req *GenerateRequest) ([]json.RawMessage, error) {
	if !s.cfg.Configured() {
		return nil, util.ErrNotConfigured
	}

	if req.Topic == "" || req.Grade == 0 || req.Subject == "" {
		return nil, util.NewValidationError("Missing required fields")
	}

	model := req.Model
	if model == "" {
		model = s.cfg.Model
	}

	body := chatCompletionRequest{
		Model: model,
		Messages: []aiChatMessage{
			{Role: "system", Content: buildSystemPrompt(req)},
			{Role: "user", Content: buildUserPrompt(req)},
		},
		// Some providers honor this, others ignore it; we parse regardless.
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, newUpstreamError(resp.StatusCode, raw)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("AI returned no choices")
	}

	return NormalizeDraftPayload(completion.Choices[0].Message.Content)
}

// NormalizeDraftPayload strips markdown fencing, parses the text as JSON and
// unwraps a {"questions":[...]} envelope to the bare array. Anything that is
// still not an array is a generation error.
func NormalizeDraftPayload(text string) ([]json.RawMessage, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var drafts []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &drafts); err == nil {
		return drafts, nil
	}

	var wrapped struct {
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err == nil && wrapped.Questions != nil {
		return wrapped.Questions, nil
	}

	return nil, ErrNotAnArray
}

func buildSystemPrompt(req *GenerateRequest) string {
	return fmt.Sprintf(`You are an expert South African teacher creating CAPS-aligned exam questions.
Return ONLY a valid JSON array of objects. Do not wrap in markdown code blocks.

Structure for each question:
{
    "capsTopicId": %q,
    "subject": %q,
    "grade": %d,
    "term": 1,
    "type": "MULTIPLE_CHOICE",
    "cognitiveLevel": "UNDERSTANDING",
    "marks": 2,
    "questionText": "The actual question text?",
    "content": {
        "options": ["Option A", "Option B", "Option C", "Option D"],
        "correctAnswer": "Option A"
    },
    "version": 1,
    "createdAt": 0
}`, req.Topic, req.Subject, req.Grade)
}

func buildUserPrompt(req *GenerateRequest) string {
	count := req.Count
	if count <= 0 {
		count = 5
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "Mixed"
	}

	return fmt.Sprintf(`Generate %d unique exam questions for:
Subject: %s
Grade: %d
Topic: %s
Difficulty: %s

Vary the "cognitiveLevel" between "RECALL", "UNDERSTANDING", "APPLICATION", "EVALUATION".
Vary the "marks" appropriate to the question difficulty.
Make the questions challenging and relevant to the South African curriculum.`,
		count, req.Subject, req.Grade, req.Topic, difficulty)
}

func newUpstreamError(status int, body []byte) *UpstreamError {
	e := &UpstreamError{Status: status, Message: strings.TrimSpace(string(body))}

	var parsed struct {
		Error *struct {
			Message  string          `json:"message"`
			Metadata json.RawMessage `json:"metadata"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != nil {
		if parsed.Error.Message != "" {
			e.Message = parsed.Error.Message
		}
		e.Details = parsed.Error.Metadata
	}

	if status == http.StatusTooManyRequests {
		e.RetryAfterSeconds = ParseRetryAfterSeconds(e.Message)
	}
	return e
}

var retryHintRe = regexp.MustCompile(`(?i)(?:retry|try again)\s+(?:in|after)\s+(\d+)\s*(?:s|sec|secs|second|seconds)?`)

// ParseRetryAfterSeconds pulls the "retry in N seconds" hint out of a rate
// limit error message. Returns 0 when no hint is present.
func ParseRetryAfterSeconds(message string) int {
	m := retryHintRe.FindStringSubmatch(message)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
