package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartexam_backend/internal/model"
	"smartexam_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPackStore struct {
	packs   []model.QuestionPack
	updates map[string]map[string]interface{}
}

func (m *memPackStore) Insert(ctx context.Context, p *model.QuestionPack) (string, error) {
	m.packs = append(m.packs, *p)
	return "pack-1", nil
}

func (m *memPackStore) FindAll(ctx context.Context) ([]model.QuestionPack, error) {
	return m.packs, nil
}

func (m *memPackStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if m.updates == nil {
		m.updates = map[string]map[string]interface{}{}
	}
	// Snapshot: the real store serializes the fields at call time.
	applied := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		applied[k] = v
	}
	m.updates[id] = applied
	return nil
}

func (m *memPackStore) Delete(ctx context.Context, id string) error { return nil }

type memQuestionFinder struct {
	marks map[string]int
}

func (m *memQuestionFinder) FindByID(ctx context.Context, id string) (*model.Question, error) {
	marks, ok := m.marks[id]
	if !ok {
		return nil, nil
	}
	return &model.Question{Marks: marks}, nil
}

func newPackRouter(store *memPackStore, finder *memQuestionFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewPackController(service.NewPackService(store, finder))

	router := gin.New()
	router.GET("/api/packs", c.List)
	router.POST("/api/packs", c.Create)
	router.PATCH("/api/packs/:id", c.Update)
	router.POST("/api/packs/:id/publish", c.Publish)
	return router
}

func TestPackCreateEndpoint(t *testing.T) {
	store := &memPackStore{}
	router := newPackRouter(store, &memQuestionFinder{marks: map[string]int{"qa": 2, "qb": 3}})

	body := `{
		"title": "Term 1 Algebra",
		"subject": "Mathematics",
		"grade": 9,
		"term": 1,
		"priceCents": 4900,
		"questionIds": ["qa", "qb"],
		"totalMarks": 5
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/packs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created model.QuestionPack
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.IsPublished)
	assert.Equal(t, 2, created.QuestionCount)
	require.Len(t, store.packs, 1)
}

func TestPackCreateEndpointMarkMismatch(t *testing.T) {
	store := &memPackStore{}
	router := newPackRouter(store, &memQuestionFinder{marks: map[string]int{"qa": 2, "qb": 3}})

	body := `{"subject":"Mathematics","grade":9,"term":1,"questionIds":["qa","qb"],"totalMarks":9}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/packs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Total marks mismatch. Expected sum: 5, Given: 9", resp["error"])
	assert.Empty(t, store.packs)
}

func TestPackUpdateEndpoint(t *testing.T) {
	store := &memPackStore{}
	router := newPackRouter(store, &memQuestionFinder{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/packs/pack-1", strings.NewReader(`{"title":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Renamed", resp["title"])
	assert.Equal(t, "pack-1", resp["id"])
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, map[string]interface{}{"title": "Renamed"}, map[string]interface{}(store.updates["pack-1"]))
}

func TestPackPublishEndpoint(t *testing.T) {
	store := &memPackStore{}
	router := newPackRouter(store, &memQuestionFinder{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/packs/pack-1/publish", strings.NewReader(`{"isPublished":true}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"isPublished": true}, map[string]interface{}(store.updates["pack-1"]))

	// Missing isPublished is a bind failure, not an unpublish.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/packs/pack-1/publish", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
