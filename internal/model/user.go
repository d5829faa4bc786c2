package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleLearner UserRole = "learner"
	RoleCreator UserRole = "creator"
	RoleAdmin   UserRole = "admin"
)

// User is read-mostly here; the purchase webhook is the only writer, and it
// mutates purchasedPacks via the store's set-union primitive.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DisplayName    string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Role           UserRole           `bson:"role,omitempty" json:"role,omitempty"`
	LastLoginAt    int64              `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	PurchasedPacks []string           `bson:"purchasedPacks,omitempty" json:"purchasedPacks,omitempty"`
	CreatedAt      int64              `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
