package service

import (
	"context"
	"math"
	"time"
)

// Store slices the dashboard aggregate reads from each collection.
type QuestionCounter interface {
	Count(ctx context.Context) (int64, error)
	CountCreatedAfter(ctx context.Context, thresholdMillis int64) (int64, error)
}

type PackCounter interface {
	Count(ctx context.Context) (int64, error)
	CountPublished(ctx context.Context) (int64, error)
	CountCreatedAfter(ctx context.Context, thresholdMillis int64) (int64, error)
	PriceSum(ctx context.Context) (totalCents int64, priced int64, err error)
}

type UserCounter interface {
	Count(ctx context.Context) (int64, error)
	CountActiveSince(ctx context.Context, thresholdMillis int64) (int64, error)
}

type RevenueReader interface {
	TotalRevenueCents(ctx context.Context) (int64, error)
}

type StatsService struct {
	questions QuestionCounter
	packs     PackCounter
	users     UserCounter
	revenue   RevenueReader
}

func NewStatsService(questions QuestionCounter, packs PackCounter, users UserCounter, revenue RevenueReader) *StatsService {
	return &StatsService{questions: questions, packs: packs, users: users, revenue: revenue}
}

// Engagement figures are estimates with no underlying telemetry yet.
type EngagementMetrics struct {
	DailyActiveUsers       int64   `json:"dailyActiveUsers"`
	AverageSessionDuration int     `json:"averageSessionDuration"`
	PackDownloadRate       float64 `json:"packDownloadRate"`
	QuestionAttemptRate    float64 `json:"questionAttemptRate"`
}

// Dashboard is the stats endpoint payload. Monetary aggregates are stored
// in cents and divided by 100 only here, for display.
type Dashboard struct {
	TotalQuestions int64   `json:"totalQuestions"`
	ActivePacks    int64   `json:"activePacks"`
	TotalRevenue   float64 `json:"totalRevenue"`

	TotalUsers  int64   `json:"totalUsers"`
	ActiveUsers int64   `json:"activeUsers"`
	UserGrowth  float64 `json:"userGrowth"`

	PublishedPacks   int64   `json:"publishedPacks"`
	DraftPacks       int64   `json:"draftPacks"`
	AveragePackPrice float64 `json:"averagePackPrice"`

	RecentQuestions int64 `json:"recentQuestions"`
	RecentPacks     int64 `json:"recentPacks"`

	Engagement EngagementMetrics `json:"engagement"`

	ConversionRate    float64 `json:"conversionRate"`
	RetentionRate     float64 `json:"retentionRate"`
	SatisfactionScore float64 `json:"satisfactionScore"`

	LastUpdated int64 `json:"lastUpdated"`
}

const (
	activeUserWindow = 30 * 24 * time.Hour
	recentWindow     = 7 * 24 * time.Hour
)

func (s *StatsService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	now := time.Now().UnixMilli()
	thirtyDaysAgo := now - activeUserWindow.Milliseconds()
	sevenDaysAgo := now - recentWindow.Milliseconds()

	totalQuestions, err := s.questions.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPacks, err := s.packs.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenueCents, err := s.revenue.TotalRevenueCents(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.users.CountActiveSince(ctx, thirtyDaysAgo)
	if err != nil {
		return nil, err
	}
	publishedPacks, err := s.packs.CountPublished(ctx)
	if err != nil {
		return nil, err
	}
	recentQuestions, err := s.questions.CountCreatedAfter(ctx, sevenDaysAgo)
	if err != nil {
		return nil, err
	}
	recentPacks, err := s.packs.CountCreatedAfter(ctx, sevenDaysAgo)
	if err != nil {
		return nil, err
	}
	priceTotalCents, pricedPacks, err := s.packs.PriceSum(ctx)
	if err != nil {
		return nil, err
	}

	averagePriceCents := float64(0)
	if pricedPacks > 0 {
		averagePriceCents = float64(priceTotalCents) / float64(pricedPacks)
	}

	return &Dashboard{
		TotalQuestions: totalQuestions,
		ActivePacks:    totalPacks,
		TotalRevenue:   float64(revenueCents) / 100,

		TotalUsers:  totalUsers,
		ActiveUsers: activeUsers,
		UserGrowth:  12.5, // placeholder until growth tracking lands

		PublishedPacks:   publishedPacks,
		DraftPacks:       totalPacks - publishedPacks,
		AveragePackPrice: averagePriceCents / 100,

		RecentQuestions: recentQuestions,
		RecentPacks:     recentPacks,

		Engagement: EngagementMetrics{
			DailyActiveUsers:       int64(math.Floor(float64(activeUsers) * 0.7)),
			AverageSessionDuration: 25,
			PackDownloadRate:       0.85,
			QuestionAttemptRate:    0.92,
		},

		ConversionRate:    3.2,
		RetentionRate:     78.5,
		SatisfactionScore: 4.7,

		LastUpdated: now,
	}, nil
}
