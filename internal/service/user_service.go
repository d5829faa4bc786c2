package service

import (
	"context"
	"time"

	"smartexam_backend/internal/model"
)

type UserStore interface {
	Find(ctx context.Context, role string, sortBy string, sortOrder string, limit int64) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
	CountActiveSince(ctx context.Context, thresholdMillis int64) (int64, error)
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

type UserQuery struct {
	Role      string
	SortBy    string
	SortOrder string
	Limit     int64
}

const defaultUserPage = 50

func (s *UserService) List(ctx context.Context, q UserQuery) ([]model.User, error) {
	if q.Limit <= 0 {
		q.Limit = defaultUserPage
	}
	return s.store.Find(ctx, q.Role, q.SortBy, q.SortOrder, q.Limit)
}

type UserStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	ActiveUsers   int64 `json:"activeUsers"`
	TotalInstalls int64 `json:"totalInstalls"`
	LastUpdated   int64 `json:"lastUpdated"`
}

func (s *UserService) Stats(ctx context.Context) (*UserStats, error) {
	now := time.Now().UnixMilli()

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.store.CountActiveSince(ctx, now-activeUserWindow.Milliseconds())
	if err != nil {
		return nil, err
	}

	return &UserStats{
		TotalUsers:    total,
		ActiveUsers:   active,
		TotalInstalls: total,
		LastUpdated:   now,
	}, nil
}
