package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CognitiveLevel string

const (
	Recall        CognitiveLevel = "RECALL"
	Understanding CognitiveLevel = "UNDERSTANDING"
	Application   CognitiveLevel = "APPLICATION"
	Evaluation    CognitiveLevel = "EVALUATION"
)

func (l CognitiveLevel) IsValid() bool {
	switch l {
	case Recall, Understanding, Application, Evaluation:
		return true
	}
	return false
}

type QuestionType string

const (
	MultipleChoice  QuestionType = "MULTIPLE_CHOICE"
	TrueFalse       QuestionType = "TRUE_FALSE"
	MatchColumns    QuestionType = "MATCH_COLUMNS"
	FillInBlanks    QuestionType = "FILL_IN_BLANKS"
	ChooseFromTable QuestionType = "CHOOSE_FROM_TABLE"
	ImageLabeling   QuestionType = "IMAGE_LABELING"
	ImageBased      QuestionType = "IMAGE_BASED"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case MultipleChoice, TrueFalse, MatchColumns, FillInBlanks,
		ChooseFromTable, ImageLabeling, ImageBased:
		return true
	}
	return false
}

// Question is a single assessable item aligned to a CAPS topic.
// Timestamps are epoch milliseconds, matching the store documents.
type Question struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CapsTopicID    string             `bson:"capsTopicId" json:"capsTopicId"`
	Subject        string             `bson:"subject" json:"subject"`
	Grade          int                `bson:"grade" json:"grade"`
	Term           int                `bson:"term" json:"term"`
	Type           QuestionType       `bson:"type" json:"type"`
	CognitiveLevel CognitiveLevel     `bson:"cognitiveLevel" json:"cognitiveLevel"`
	Marks          int                `bson:"marks" json:"marks"`
	QuestionText   string             `bson:"questionText" json:"questionText"`
	Content        interface{}        `bson:"content" json:"content"`
	ImagePath      string             `bson:"imagePath,omitempty" json:"imagePath,omitempty"`
	Tags           []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Version        int                `bson:"version" json:"version"`
	CreatedAt      int64              `bson:"createdAt" json:"createdAt"`
}
