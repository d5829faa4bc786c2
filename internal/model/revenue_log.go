package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RevenueLog is one row per granted purchase, in minor currency units.
type RevenueLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PackID      string             `bson:"packId" json:"packId"`
	UserID      string             `bson:"userId" json:"userId"`
	AmountCents int64              `bson:"amountCents" json:"amountCents"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
}

// PlatformStats is the singleton platform_stats/summary document holding
// lifetime revenue, maintained outside this service.
type PlatformStats struct {
	TotalRevenueCents int64 `bson:"totalRevenueCents" json:"totalRevenueCents"`
}
