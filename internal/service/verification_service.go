package service

import (
	"context"
	"time"

	"smartexam_backend/internal/model"
	"smartexam_backend/internal/repository"
	"smartexam_backend/internal/util"
)

type VerificationLogStore interface {
	Insert(ctx context.Context, l *model.VerificationLog) (string, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	List(ctx context.Context, q repository.LogQuery) ([]model.VerificationLog, error)
}

type VerificationService struct {
	store VerificationLogStore
}

func NewVerificationService(store VerificationLogStore) *VerificationService {
	return &VerificationService{store: store}
}

type CreateLogRequest struct {
	Type        model.VerificationType     `json:"type"`
	Status      model.VerificationStatus   `json:"status"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	SubmittedBy string                     `json:"submittedBy"`
	Priority    model.VerificationPriority `json:"priority"`
}

func (s *VerificationService) Create(ctx context.Context, req *CreateLogRequest) (*model.VerificationLog, error) {
	if req.Type == "" || req.Title == "" || req.SubmittedBy == "" {
		return nil, util.NewValidationError("Missing required fields: type, title, submittedBy")
	}

	now := time.Now().UnixMilli()

	entry := &model.VerificationLog{
		Type:        req.Type,
		Status:      req.Status,
		Title:       req.Title,
		Description: req.Description,
		SubmittedBy: req.SubmittedBy,
		Priority:    req.Priority,
		SubmittedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if entry.Status == "" {
		entry.Status = model.StatusPending
	}
	if entry.Priority == "" {
		entry.Priority = model.PriorityMedium
	}

	if _, err := s.store.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update applies a partial update and unconditionally refreshes updatedAt.
func (s *VerificationService) Update(ctx context.Context, id string, updates map[string]interface{}) (map[string]interface{}, error) {
	if id == "" {
		return nil, util.NewValidationError("Log ID is required")
	}

	delete(updates, "id")
	delete(updates, "_id")
	updates["updatedAt"] = time.Now().UnixMilli()

	if err := s.store.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}
	return updates, nil
}

type LogPagination struct {
	HasMore   bool    `json:"hasMore"`
	LastDocID *string `json:"lastDocId"`
}

type LogPage struct {
	Logs       []model.VerificationLog `json:"logs"`
	Pagination LogPagination           `json:"pagination"`
}

const defaultLogPage = 50

// List returns one cursor page. hasMore uses the full-page heuristic: a page
// shorter than the limit is the last one.
func (s *VerificationService) List(ctx context.Context, q repository.LogQuery) (*LogPage, error) {
	if q.Limit <= 0 {
		q.Limit = defaultLogPage
	}

	logs, err := s.store.List(ctx, q)
	if err != nil {
		return nil, err
	}

	page := &LogPage{Logs: logs}
	page.Pagination.HasMore = int64(len(logs)) == q.Limit
	if len(logs) > 0 {
		last := logs[len(logs)-1].ID.Hex()
		page.Pagination.LastDocID = &last
	}
	return page, nil
}
