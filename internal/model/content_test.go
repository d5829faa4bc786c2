package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name    string
		qType   QuestionType
		raw     string
		wantErr bool
	}{
		{"multiple choice", MultipleChoice, `{"options":["A","B","C"],"correctAnswer":"B"}`, false},
		{"multiple choice one option", MultipleChoice, `{"options":["A"],"correctAnswer":"A"}`, true},
		{"multiple choice no answer", MultipleChoice, `{"options":["A","B"]}`, true},
		{"true false", TrueFalse, `{"answer":false}`, false},
		{"true false missing answer", TrueFalse, `{}`, true},
		{"fill in blanks", FillInBlanks, `{"blanks":["photosynthesis"]}`, false},
		{"fill in blanks empty", FillInBlanks, `{"blanks":[]}`, true},
		{"match columns", MatchColumns, `{"pairs":[{"left":"H2O","right":"Water"}]}`, false},
		{"match columns empty", MatchColumns, `{"pairs":[]}`, true},
		{"choose from table", ChooseFromTable, `{"rows":[["a","b"],["c","d"]],"correctCell":"c"}`, false},
		{"choose from table no rows", ChooseFromTable, `{"correctCell":"c"}`, true},
		{"image labeling", ImageLabeling, `{"description":"Label the heart chambers"}`, false},
		{"image based", ImageBased, `{"imagePath":"/uploads/questions/x.png"}`, false},
		{"image based empty", ImageBased, `{}`, true},
		{"extra keys tolerated", TrueFalse, `{"answer":true,"hint":"think"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeContent(tt.qType, json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestDecodeContentFalseAnswerSurvives(t *testing.T) {
	got, err := DecodeContent(TrueFalse, json.RawMessage(`{"answer":false}`))
	require.NoError(t, err)

	c, ok := got.(TrueFalseContent)
	require.True(t, ok)
	require.NotNil(t, c.Answer)
	assert.False(t, *c.Answer)
}

func TestDecodeContentMissing(t *testing.T) {
	_, err := DecodeContent(MultipleChoice, nil)
	assert.Error(t, err)
}

func TestDecodeContentUnknownType(t *testing.T) {
	_, err := DecodeContent("ESSAY", json.RawMessage(`{}`))
	assert.Error(t, err)
}
