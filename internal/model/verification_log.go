package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VerificationType string

const (
	PackVerification    VerificationType = "pack_verification"
	QuestionReview      VerificationType = "question_review"
	CreatorVerification VerificationType = "creator_verification"
	ContentFlag         VerificationType = "content_flag"
)

func (t VerificationType) IsValid() bool {
	switch t {
	case PackVerification, QuestionReview, CreatorVerification, ContentFlag:
		return true
	}
	return false
}

type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusApproved VerificationStatus = "approved"
	StatusRejected VerificationStatus = "rejected"
	StatusFlagged  VerificationStatus = "flagged"
)

type VerificationPriority string

const (
	PriorityLow    VerificationPriority = "low"
	PriorityMedium VerificationPriority = "medium"
	PriorityHigh   VerificationPriority = "high"
	PriorityUrgent VerificationPriority = "urgent"
)

// VerificationLog is a moderation/audit record. Entries are never deleted.
type VerificationLog struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Type        VerificationType     `bson:"type" json:"type"`
	Status      VerificationStatus   `bson:"status" json:"status"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	SubmittedBy string               `bson:"submittedBy" json:"submittedBy"`
	SubmittedAt int64                `bson:"submittedAt" json:"submittedAt"`
	Priority    VerificationPriority `bson:"priority" json:"priority"`
	ReviewedBy  string               `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewedAt  int64                `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	Notes       string               `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   int64                `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64                `bson:"updatedAt" json:"updatedAt"`
}
