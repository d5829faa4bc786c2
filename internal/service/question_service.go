package service

import (
	"context"
	"encoding/json"
	"time"

	"smartexam_backend/internal/model"
	"smartexam_backend/internal/util"
)

// QuestionStore is the slice of the questions collection the service needs.
type QuestionStore interface {
	Insert(ctx context.Context, q *model.Question) (string, error)
	FindByID(ctx context.Context, id string) (*model.Question, error)
	FindRecent(ctx context.Context, limit int64) ([]model.Question, error)
}

type QuestionService struct {
	store QuestionStore
}

func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{store: store}
}

// CreateQuestionRequest is the candidate question payload. Version and
// CreatedAt may be supplied by the caller; CreatedAt is always discarded.
type CreateQuestionRequest struct {
	CapsTopicID    string               `json:"capsTopicId"`
	Subject        string               `json:"subject"`
	Grade          int                  `json:"grade"`
	Term           int                  `json:"term"`
	Type           model.QuestionType   `json:"type"`
	CognitiveLevel model.CognitiveLevel `json:"cognitiveLevel"`
	Marks          int                  `json:"marks"`
	QuestionText   string               `json:"questionText"`
	Content        json.RawMessage      `json:"content"`
	ImagePath      string               `json:"imagePath"`
	Tags           []string             `json:"tags"`
	Version        int                  `json:"version"`
	CreatedAt      int64                `json:"createdAt"`
}

// Create validates the CAPS invariants, stamps version and createdAt and
// persists the question. No write is attempted on a validation failure.
func (s *QuestionService) Create(ctx context.Context, req *CreateQuestionRequest) (*model.Question, error) {
	if req.Marks <= 0 {
		return nil, util.NewValidationError("Mark allocation is required and must be > 0")
	}

	if !req.CognitiveLevel.IsValid() {
		return nil, util.NewValidationError("Invalid or missing CAPS cognitive level")
	}

	if req.CapsTopicID == "" {
		return nil, util.NewValidationError("CAPS Topic ID is required")
	}

	if !req.Type.IsValid() {
		return nil, util.NewValidationError("Invalid or missing question type")
	}

	content, err := model.DecodeContent(req.Type, req.Content)
	if err != nil {
		return nil, util.NewValidationError(err.Error())
	}

	question := &model.Question{
		CapsTopicID:    req.CapsTopicID,
		Subject:        req.Subject,
		Grade:          req.Grade,
		Term:           req.Term,
		Type:           req.Type,
		CognitiveLevel: req.CognitiveLevel,
		Marks:          req.Marks,
		QuestionText:   req.QuestionText,
		Content:        content,
		ImagePath:      req.ImagePath,
		Tags:           req.Tags,
		Version:        req.Version + 1,
		CreatedAt:      time.Now().UnixMilli(),
	}

	if _, err := s.store.Insert(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

const maxQuestionPage = 100

// ListRecent returns the most recent questions, capped at 100.
func (s *QuestionService) ListRecent(ctx context.Context, limit int64) ([]model.Question, error) {
	if limit <= 0 || limit > maxQuestionPage {
		limit = maxQuestionPage
	}
	return s.store.FindRecent(ctx, limit)
}
