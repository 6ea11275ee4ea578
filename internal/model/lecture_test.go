package model_test

import (
	"course_studio_backend/internal/model"
	"testing"
)

func TestLectureHasArticle(t *testing.T) {
	tests := []struct {
		name    string
		lecture model.Lecture
		want    bool
	}{
		{"article text present", model.Lecture{ArticleText: "<p>x</p>"}, true},
		{"description only, no video", model.Lecture{Description: "rich text"}, true},
		{"description alongside video is not article", model.Lecture{VideoURL: "u", Description: "plain"}, false},
		{"nothing", model.Lecture{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lecture.HasArticle(); got != tt.want {
				t.Errorf("HasArticle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLectureArticleHTML(t *testing.T) {
	l := model.Lecture{ArticleText: "<p>body</p>", Description: "fallback"}
	if got := l.ArticleHTML(); got != "<p>body</p>" {
		t.Errorf("ArticleHTML() = %q, want article text to win", got)
	}

	l = model.Lecture{Description: "fallback"}
	if got := l.ArticleHTML(); got != "fallback" {
		t.Errorf("ArticleHTML() = %q, want description fallback", got)
	}
}
