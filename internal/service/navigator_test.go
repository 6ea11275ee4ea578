package service_test

import (
	"course_studio_backend/internal/model"
	"course_studio_backend/internal/service"
	"testing"
)

func sampleSections() []model.Section {
	s1 := model.Section{Name: "Basics"}
	s1.ID = "sec-1"
	s1.Lectures = []model.Lecture{
		{UUIDBase: model.UUIDBase{ID: "lec-1"}, SectionID: "sec-1", Name: "Intro", VideoURL: "http://cdn/intro.mp4"},
		{UUIDBase: model.UUIDBase{ID: "lec-2"}, SectionID: "sec-1", Name: "Reading", ArticleText: "<p>hello</p>"},
	}
	s1.Quizzes = []model.Quiz{
		{UUIDBase: model.UUIDBase{ID: "quiz-1"}, SectionID: "sec-1", Name: "Checkpoint"},
	}

	s2 := model.Section{Name: "Practice"}
	s2.ID = "sec-2"
	s2.Assignments = []model.Assignment{
		{UUIDBase: model.UUIDBase{ID: "asg-1"}, SectionID: "sec-2", Name: "Homework"},
	}
	s2.CodingExercises = []model.CodingExercise{
		{UUIDBase: model.UUIDBase{ID: "ex-1"}, SectionID: "sec-2", Name: "FizzBuzz"},
	}

	return []model.Section{s1, s2}
}

func TestFlattenSectionsOrder(t *testing.T) {
	items := service.FlattenSections(sampleSections())

	wantIDs := []string{"lec-1", "lec-2", "quiz-1", "asg-1", "ex-1"}
	if len(items) != len(wantIDs) {
		t.Fatalf("FlattenSections() returned %d items, want %d", len(items), len(wantIDs))
	}
	for i, id := range wantIDs {
		if items[i].ItemID != id {
			t.Errorf("items[%d].ItemID = %q, want %q", i, items[i].ItemID, id)
		}
	}

	wantTypes := []model.ContentType{
		model.ContentVideo,
		model.ContentArticle,
		model.ContentQuiz,
		model.ContentAssignment,
		model.ContentCodingExercise,
	}
	for i, typ := range wantTypes {
		if items[i].ItemType != typ {
			t.Errorf("items[%d].ItemType = %q, want %q", i, items[i].ItemType, typ)
		}
	}
}

func TestNextPrevBoundaries(t *testing.T) {
	items := service.FlattenSections(sampleSections())

	if _, ok := service.PrevItem(items, "lec-1"); ok {
		t.Error("PrevItem at first item should return ok=false")
	}
	if _, ok := service.NextItem(items, "ex-1"); ok {
		t.Error("NextItem at last item should return ok=false")
	}
	if _, ok := service.NextItem(items, "missing"); ok {
		t.Error("NextItem for unknown item should return ok=false")
	}

	next, ok := service.NextItem(items, "quiz-1")
	if !ok || next.ItemID != "asg-1" {
		t.Errorf("NextItem(quiz-1) = %q, %v, want asg-1, true", next.ItemID, ok)
	}
	prev, ok := service.PrevItem(items, "quiz-1")
	if !ok || prev.ItemID != "lec-2" {
		t.Errorf("PrevItem(quiz-1) = %q, %v, want lec-2, true", prev.ItemID, ok)
	}
}

func TestNextThenPrevRoundTrip(t *testing.T) {
	items := service.FlattenSections(sampleSections())

	next, ok := service.NextItem(items, "lec-1")
	if !ok {
		t.Fatal("NextItem(lec-1) ok = false")
	}
	back, ok := service.PrevItem(items, next.ItemID)
	if !ok || back.ItemID != "lec-1" {
		t.Errorf("PrevItem(%q) = %q, want lec-1", next.ItemID, back.ItemID)
	}
}

func TestIsLastInSection(t *testing.T) {
	items := service.FlattenSections(sampleSections())

	tests := []struct {
		itemID string
		want   bool
	}{
		{"lec-1", false},
		{"quiz-1", true}, // sec-1 的末项
		{"asg-1", false},
		{"ex-1", true}, // 全列表末项
		{"missing", false},
	}
	for _, tt := range tests {
		if got := service.IsLastInSection(items, tt.itemID); got != tt.want {
			t.Errorf("IsLastInSection(%q) = %v, want %v", tt.itemID, got, tt.want)
		}
	}
}
