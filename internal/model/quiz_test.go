package model_test

import (
	"course_studio_backend/internal/model"
	"encoding/json"
	"testing"
)

func question(t *testing.T, answers []model.QuizAnswer) model.QuizQuestion {
	t.Helper()
	raw, err := json.Marshal(answers)
	if err != nil {
		t.Fatalf("marshal answers: %v", err)
	}
	return model.QuizQuestion{Text: "q", Answers: raw}
}

func TestQuizQuestionCorrectIndex(t *testing.T) {
	q := question(t, []model.QuizAnswer{
		{Text: "a"},
		{Text: "b", IsCorrect: true},
		{Text: "c"},
	})
	if got := q.CorrectIndex(); got != 1 {
		t.Errorf("CorrectIndex() = %d, want 1", got)
	}

	none := question(t, []model.QuizAnswer{{Text: "a"}, {Text: "b"}})
	if got := none.CorrectIndex(); got != -1 {
		t.Errorf("CorrectIndex() with no correct answer = %d, want -1", got)
	}
}

func TestQuizQuestionParsedAnswers(t *testing.T) {
	q := question(t, []model.QuizAnswer{
		{Text: "a", Explanation: "why not"},
		{Text: "b", IsCorrect: true},
	})
	answers, err := q.ParsedAnswers()
	if err != nil {
		t.Fatalf("ParsedAnswers() error = %v", err)
	}
	if len(answers) != 2 || answers[0].Explanation != "why not" {
		t.Errorf("ParsedAnswers() = %+v", answers)
	}

	empty := model.QuizQuestion{}
	answers, err = empty.ParsedAnswers()
	if err != nil || answers != nil {
		t.Errorf("ParsedAnswers() on empty column = %v, %v, want nil, nil", answers, err)
	}

	bad := model.QuizQuestion{Answers: json.RawMessage(`{not json`)}
	if _, err := bad.ParsedAnswers(); err == nil {
		t.Error("ParsedAnswers() on malformed column should fail")
	}
}

func TestQuizAttemptStateClone(t *testing.T) {
	s := model.NewQuizAttemptState("quiz-1", 3)
	s.SelectedAnswers[0] = 2
	s.CorrectlyAnswered[0] = true
	s.DisabledAnswers[1] = map[int]bool{0: true}

	c := s.Clone()
	c.SelectedAnswers[1] = 1
	c.CorrectlyAnswered[1] = true
	c.DisabledAnswers[1][3] = true

	if len(s.SelectedAnswers) != 1 || len(s.CorrectlyAnswered) != 1 {
		t.Error("Clone() shares top-level maps with the original")
	}
	if s.DisabledAnswers[1][3] {
		t.Error("Clone() shares nested disabled-answer sets with the original")
	}
}
