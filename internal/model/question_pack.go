package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionPack is a priced, gradeable bundle of questions publishable to the
// marketplace. totalMarks and questionCount are derived from questionIds at
// creation time and are not re-derived on later writes.
type QuestionPack struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Subject       string             `bson:"subject" json:"subject"`
	Grade         int                `bson:"grade" json:"grade"`
	Term          int                `bson:"term" json:"term"`
	CapsStrand    string             `bson:"capsStrand" json:"capsStrand"`
	PriceCents    int64              `bson:"priceCents" json:"priceCents"`
	QuestionIDs   []string           `bson:"questionIds" json:"questionIds"`
	QuestionCount int                `bson:"questionCount" json:"questionCount"`
	TotalMarks    int                `bson:"totalMarks" json:"totalMarks"`
	IsPublished   bool               `bson:"isPublished" json:"isPublished"`
	Version       int                `bson:"version" json:"version"`
	CreatedAt     int64              `bson:"createdAt" json:"createdAt"`
}
