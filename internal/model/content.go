package model

import (
	"encoding/json"
	"fmt"
)

// Per-type question content variants. The wire field is a union keyed by the
// question's type; DecodeContent picks and validates the variant.

type MultipleChoiceContent struct {
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer string   `bson:"correctAnswer" json:"correctAnswer"`
}

type TrueFalseContent struct {
	Answer *bool `bson:"answer" json:"answer"`
}

type FillInBlanksContent struct {
	// Blank answers in the order they appear in the question text.
	Blanks []string `bson:"blanks" json:"blanks"`
}

type ColumnPair struct {
	Left  string `bson:"left" json:"left"`
	Right string `bson:"right" json:"right"`
}

type MatchColumnsContent struct {
	Pairs []ColumnPair `bson:"pairs" json:"pairs"`
}

type ChooseFromTableContent struct {
	Rows        [][]string `bson:"rows" json:"rows"`
	CorrectCell string     `bson:"correctCell" json:"correctCell"`
}

type ImageContent struct {
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	ImagePath   string `bson:"imagePath,omitempty" json:"imagePath,omitempty"`
}

// DecodeContent parses raw content for the declared question type and checks
// the variant's required fields. Unknown extra keys are tolerated.
func DecodeContent(t QuestionType, raw json.RawMessage) (interface{}, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("content is required for question type %s", t)
	}

	switch t {
	case MultipleChoice:
		var c MultipleChoiceContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid %s content: %w", t, err)
		}
		if len(c.Options) < 2 {
			return nil, fmt.Errorf("%s content requires at least 2 options", t)
		}
		if c.CorrectAnswer == "" {
			return nil, fmt.Errorf("%s content requires a correctAnswer", t)
		}
		return c, nil

	case TrueFalse:
		var c TrueFalseContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid %s content: %w", t, err)
		}
		if c.Answer == nil {
			return nil, fmt.Errorf("%s content requires an answer", t)
		}
		return c, nil

	case FillInBlanks:
		var c FillInBlanksContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid %s content: %w", t, err)
		}
		if len(c.Blanks) == 0 {
			return nil, fmt.Errorf("%s content requires at least one blank", t)
		}
		return c, nil

	case MatchColumns:
		var c MatchColumnsContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid %s content: %w", t, err)
		}
		if len(c.Pairs) == 0 {
			return nil, fmt.Errorf("%s content requires at least one column pair", t)
		}
		return c, nil

	case ChooseFromTable:
		var c ChooseFromTableContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid %s content: %w", t, err)
		}
		if len(c.Rows) == 0 {
			return nil, fmt.Errorf("%s content requires table rows", t)
		}
		return c, nil

	case ImageLabeling, ImageBased:
		var c ImageContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid %s content: %w", t, err)
		}
		if c.Description == "" && c.ImagePath == "" {
			return nil, fmt.Errorf("%s content requires a description or imagePath", t)
		}
		return c, nil
	}

	return nil, fmt.Errorf("unknown question type %q", t)
}
