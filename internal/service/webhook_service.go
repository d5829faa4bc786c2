package service

import (
	"context"
	"time"

	"smartexam_backend/internal/model"
	"smartexam_backend/internal/util"
)

type PackGranter interface {
	GrantPack(ctx context.Context, userID, packID string) error
}

type RevenueLogger interface {
	InsertLog(ctx context.Context, l *model.RevenueLog) error
}

// WebhookService handles the payment provider's checkout completion.
// Provider signature verification is not implemented yet.
type WebhookService struct {
	users   PackGranter
	revenue RevenueLogger
}

func NewWebhookService(users PackGranter, revenue RevenueLogger) *WebhookService {
	return &WebhookService{users: users, revenue: revenue}
}

type PurchaseNotification struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	PackID    string `json:"packId"`
}

// GrantPurchase unions the pack into the user's purchasedPacks (idempotent
// by construction of the store primitive) and appends a revenue row.
func (s *WebhookService) GrantPurchase(ctx context.Context, n *PurchaseNotification) error {
	if n.UserID == "" || n.PackID == "" {
		return util.NewValidationError("userId and packId are required")
	}

	if err := s.users.GrantPack(ctx, n.UserID, n.PackID); err != nil {
		return err
	}

	return s.revenue.InsertLog(ctx, &model.RevenueLog{
		PackID:      n.PackID,
		UserID:      n.UserID,
		AmountCents: 4900, // TODO: derive from the pack's actual priceCents
		CreatedAt:   time.Now().UnixMilli(),
	})
}
