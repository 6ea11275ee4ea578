package service_test

import (
	"course_studio_backend/internal/model"
	"course_studio_backend/internal/service"
	"course_studio_backend/internal/util"
	"encoding/json"
	"testing"
)

func rawAnswers(t *testing.T, answers []model.QuizAnswer) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(answers)
	if err != nil {
		t.Fatalf("marshal answers: %v", err)
	}
	return raw
}

func TestValidateQuizQuestion(t *testing.T) {
	tests := []struct {
		name    string
		answers []model.QuizAnswer
		wantErr error
	}{
		{
			"valid question",
			[]model.QuizAnswer{{Text: "a"}, {Text: "b", IsCorrect: true}},
			nil,
		},
		{
			"single answer",
			[]model.QuizAnswer{{Text: "a", IsCorrect: true}},
			util.ErrQuizNotPublishable,
		},
		{
			"no correct answer",
			[]model.QuizAnswer{{Text: "a"}, {Text: "b"}},
			util.ErrQuizNotPublishable,
		},
		{
			"two correct answers",
			[]model.QuizAnswer{{Text: "a", IsCorrect: true}, {Text: "b", IsCorrect: true}},
			util.ErrQuizNotPublishable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &model.QuizQuestion{Text: "q", Answers: rawAnswers(t, tt.answers)}
			if err := service.ValidateQuizQuestion(q); err != tt.wantErr {
				t.Errorf("ValidateQuizQuestion() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuizQuestionMalformedColumn(t *testing.T) {
	q := &model.QuizQuestion{Text: "q", Answers: json.RawMessage(`{broken`)}
	if err := service.ValidateQuizQuestion(q); err != util.ErrQuizNotPublishable {
		t.Errorf("ValidateQuizQuestion() on malformed answers error = %v, want ErrQuizNotPublishable", err)
	}
}
