package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsStores struct {
	questions       int64
	recentQuestions int64
	packs           int64
	published       int64
	recentPacks     int64
	priceTotalCents int64
	pricedPacks     int64
	users           int64
	activeUsers     int64
	revenueCents    int64
}

func (f *fakeStatsStores) Count(ctx context.Context) (int64, error) { return f.questions, nil }
func (f *fakeStatsStores) CountCreatedAfter(ctx context.Context, threshold int64) (int64, error) {
	return f.recentQuestions, nil
}

type fakePackCounter struct{ *fakeStatsStores }

func (f fakePackCounter) Count(ctx context.Context) (int64, error) { return f.packs, nil }
func (f fakePackCounter) CountPublished(ctx context.Context) (int64, error) {
	return f.published, nil
}
func (f fakePackCounter) CountCreatedAfter(ctx context.Context, threshold int64) (int64, error) {
	return f.recentPacks, nil
}
func (f fakePackCounter) PriceSum(ctx context.Context) (int64, int64, error) {
	return f.priceTotalCents, f.pricedPacks, nil
}

type fakeUserCounter struct{ *fakeStatsStores }

func (f fakeUserCounter) Count(ctx context.Context) (int64, error) { return f.users, nil }
func (f fakeUserCounter) CountActiveSince(ctx context.Context, threshold int64) (int64, error) {
	return f.activeUsers, nil
}

type fakeRevenueReader struct{ *fakeStatsStores }

func (f fakeRevenueReader) TotalRevenueCents(ctx context.Context) (int64, error) {
	return f.revenueCents, nil
}

func TestDashboard(t *testing.T) {
	stores := &fakeStatsStores{
		questions:       120,
		recentQuestions: 7,
		packs:           10,
		published:       6,
		recentPacks:     2,
		priceTotalCents: 14700, // three priced packs averaging R49
		pricedPacks:     3,
		users:           200,
		activeUsers:     50,
		revenueCents:    98000,
	}

	svc := NewStatsService(stores, fakePackCounter{stores}, fakeUserCounter{stores}, fakeRevenueReader{stores})

	d, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(120), d.TotalQuestions)
	assert.Equal(t, int64(10), d.ActivePacks)
	assert.Equal(t, 980.0, d.TotalRevenue)
	assert.Equal(t, int64(4), d.DraftPacks)
	assert.Equal(t, 49.0, d.AveragePackPrice)
	assert.Equal(t, int64(50), d.ActiveUsers)
	assert.Equal(t, int64(35), d.Engagement.DailyActiveUsers)
	assert.Equal(t, int64(7), d.RecentQuestions)
	assert.Equal(t, int64(2), d.RecentPacks)
	assert.NotZero(t, d.LastUpdated)
}

func TestDashboardNoPricedPacks(t *testing.T) {
	stores := &fakeStatsStores{packs: 3}
	svc := NewStatsService(stores, fakePackCounter{stores}, fakeUserCounter{stores}, fakeRevenueReader{stores})

	d, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, d.AveragePackPrice)
	assert.Zero(t, d.TotalRevenue)
	assert.Zero(t, d.Engagement.DailyActiveUsers)
}
