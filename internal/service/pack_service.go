package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"smartexam_backend/internal/model"
	"smartexam_backend/internal/util"
)

type PackStore interface {
	Insert(ctx context.Context, p *model.QuestionPack) (string, error)
	FindAll(ctx context.Context) ([]model.QuestionPack, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// QuestionFinder is the single read the mark-sum validation needs.
type QuestionFinder interface {
	FindByID(ctx context.Context, id string) (*model.Question, error)
}

type PackService struct {
	packs     PackStore
	questions QuestionFinder
}

func NewPackService(packs PackStore, questions QuestionFinder) *PackService {
	return &PackService{packs: packs, questions: questions}
}

type CreatePackRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subject     string   `json:"subject"`
	Grade       int      `json:"grade"`
	Term        int      `json:"term"`
	CapsStrand  string   `json:"capsStrand"`
	PriceCents  int64    `json:"priceCents"`
	QuestionIDs []string `json:"questionIds"`
	TotalMarks  int      `json:"totalMarks"`
}

// Create enforces the mark-sum and CAPS-completeness invariants, then
// persists the pack with server-forced lifecycle fields. The referenced
// questions are read concurrently; only their commutative sum matters, so
// no ordering is needed. A missing question contributes 0 to the sum.
func (s *PackService) Create(ctx context.Context, req *CreatePackRequest) (*model.QuestionPack, error) {
	calculated, err := s.sumMarks(ctx, req.QuestionIDs)
	if err != nil {
		return nil, err
	}

	if calculated != req.TotalMarks {
		return nil, util.NewValidationError(fmt.Sprintf(
			"Total marks mismatch. Expected sum: %d, Given: %d", calculated, req.TotalMarks))
	}

	if req.Subject == "" || req.Grade == 0 || req.Term == 0 {
		return nil, util.NewValidationError("Subject, Grade, and Term are required for CAPS compliance")
	}

	pack := &model.QuestionPack{
		Title:         req.Title,
		Description:   req.Description,
		Subject:       req.Subject,
		Grade:         req.Grade,
		Term:          req.Term,
		CapsStrand:    req.CapsStrand,
		PriceCents:    req.PriceCents,
		QuestionIDs:   req.QuestionIDs,
		QuestionCount: len(req.QuestionIDs),
		TotalMarks:    req.TotalMarks,
		IsPublished:   false,
		Version:       1,
		CreatedAt:     time.Now().UnixMilli(),
	}

	if _, err := s.packs.Insert(ctx, pack); err != nil {
		return nil, err
	}
	return pack, nil
}

// sumMarks fetches every referenced question with one read per id and sums
// the marks of the documents that exist. Any fetch failure fails the whole
// validation; there is no retry or partial success.
func (s *PackService) sumMarks(ctx context.Context, questionIDs []string) (int, error) {
	marks := make([]int, len(questionIDs))
	errs := make([]error, len(questionIDs))

	var wg sync.WaitGroup
	for i, id := range questionIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			q, err := s.questions.FindByID(ctx, id)
			if err != nil {
				errs[i] = err
				return
			}
			if q != nil {
				marks[i] = q.Marks
			}
		}(i, id)
	}
	wg.Wait()

	total := 0
	for i := range questionIDs {
		if errs[i] != nil {
			return 0, errs[i]
		}
		total += marks[i]
	}
	return total, nil
}

func (s *PackService) List(ctx context.Context) ([]model.QuestionPack, error) {
	return s.packs.FindAll(ctx)
}

// Update applies a blind partial update. The mark-sum and CAPS invariants
// are not re-checked here, so edits can desynchronize totalMarks from the
// true sum.
func (s *PackService) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "_id")
	if len(updates) == 0 {
		return util.NewValidationError("no fields to update")
	}
	return s.packs.UpdateFields(ctx, id, updates)
}

// Delete removes the pack with no referential cleanup of revenue logs or
// purchaser records.
func (s *PackService) Delete(ctx context.Context, id string) error {
	return s.packs.Delete(ctx, id)
}

// SetPublished flips only isPublished. Creation-time invariants are not
// re-validated; a pack whose question set changed since creation publishes
// regardless.
func (s *PackService) SetPublished(ctx context.Context, id string, published bool) error {
	return s.packs.UpdateFields(ctx, id, map[string]interface{}{"isPublished": published})
}
