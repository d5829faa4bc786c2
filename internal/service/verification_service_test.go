package service

import (
	"context"
	"testing"

	"smartexam_backend/internal/model"
	"smartexam_backend/internal/repository"
	"smartexam_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeLogStore struct {
	inserted  []*model.VerificationLog
	updates   map[string]map[string]interface{}
	page      []model.VerificationLog
	lastQuery repository.LogQuery
}

func newFakeLogStore() *fakeLogStore {
	return &fakeLogStore{updates: map[string]map[string]interface{}{}}
}

func (f *fakeLogStore) Insert(ctx context.Context, l *model.VerificationLog) (string, error) {
	l.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, l)
	return l.ID.Hex(), nil
}

func (f *fakeLogStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	f.updates[id] = fields
	return nil
}

func (f *fakeLogStore) List(ctx context.Context, q repository.LogQuery) ([]model.VerificationLog, error) {
	f.lastQuery = q
	return f.page, nil
}

func TestVerificationCreateDefaults(t *testing.T) {
	store := newFakeLogStore()
	svc := NewVerificationService(store)

	entry, err := svc.Create(context.Background(), &CreateLogRequest{
		Type:        model.PackVerification,
		Title:       "New pack awaiting review",
		SubmittedBy: "creator-7",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, entry.Status)
	assert.Equal(t, model.PriorityMedium, entry.Priority)
	assert.NotZero(t, entry.SubmittedAt)
	assert.Equal(t, entry.SubmittedAt, entry.CreatedAt)
	assert.Equal(t, entry.SubmittedAt, entry.UpdatedAt)
	require.Len(t, store.inserted, 1)
}

func TestVerificationCreateKeepsExplicitValues(t *testing.T) {
	svc := NewVerificationService(newFakeLogStore())

	entry, err := svc.Create(context.Background(), &CreateLogRequest{
		Type:        model.ContentFlag,
		Status:      model.StatusFlagged,
		Title:       "Reported question",
		SubmittedBy: "learner-3",
		Priority:    model.PriorityUrgent,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusFlagged, entry.Status)
	assert.Equal(t, model.PriorityUrgent, entry.Priority)
}

func TestVerificationCreateRequiredFields(t *testing.T) {
	store := newFakeLogStore()
	svc := NewVerificationService(store)

	for _, req := range []*CreateLogRequest{
		{Title: "x", SubmittedBy: "y"},
		{Type: model.QuestionReview, SubmittedBy: "y"},
		{Type: model.QuestionReview, Title: "x"},
	} {
		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.True(t, util.IsValidationError(err))
		assert.Equal(t, "Missing required fields: type, title, submittedBy", err.Error())
	}
	assert.Empty(t, store.inserted)
}

func TestVerificationUpdateRefreshesTimestamp(t *testing.T) {
	store := newFakeLogStore()
	svc := NewVerificationService(store)

	updates, err := svc.Update(context.Background(), "log-1", map[string]interface{}{
		"id":     "spoofed",
		"status": "approved",
	})
	require.NoError(t, err)

	applied := store.updates["log-1"]
	assert.Equal(t, "approved", applied["status"])
	assert.NotContains(t, applied, "id")
	assert.NotZero(t, applied["updatedAt"])
	assert.Equal(t, applied, updates)
}

func TestVerificationUpdateMissingID(t *testing.T) {
	svc := NewVerificationService(newFakeLogStore())

	_, err := svc.Update(context.Background(), "", map[string]interface{}{"status": "approved"})
	require.Error(t, err)
	assert.True(t, util.IsValidationError(err))
}

func TestVerificationListPagination(t *testing.T) {
	store := newFakeLogStore()
	svc := NewVerificationService(store)

	full := make([]model.VerificationLog, 2)
	for i := range full {
		full[i].ID = primitive.NewObjectID()
	}
	store.page = full

	page, err := svc.List(context.Background(), repository.LogQuery{Limit: 2})
	require.NoError(t, err)
	assert.True(t, page.Pagination.HasMore, "full page implies more")
	require.NotNil(t, page.Pagination.LastDocID)
	assert.Equal(t, full[1].ID.Hex(), *page.Pagination.LastDocID)

	store.page = full[:1]
	page, err = svc.List(context.Background(), repository.LogQuery{Limit: 2})
	require.NoError(t, err)
	assert.False(t, page.Pagination.HasMore)

	store.page = nil
	page, err = svc.List(context.Background(), repository.LogQuery{Limit: 2})
	require.NoError(t, err)
	assert.False(t, page.Pagination.HasMore)
	assert.Nil(t, page.Pagination.LastDocID)
}

func TestVerificationListDefaultLimit(t *testing.T) {
	store := newFakeLogStore()
	svc := NewVerificationService(store)

	_, err := svc.List(context.Background(), repository.LogQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(50), store.lastQuery.Limit)
}
