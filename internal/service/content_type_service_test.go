package service_test

import (
	"course_studio_backend/internal/model"
	"course_studio_backend/internal/service"
	"testing"
)

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name       string
		explicit   string
		hasVideo   bool
		hasArticle bool
		want       model.ContentType
	}{
		{"video only", "", true, false, model.ContentVideo},
		{"article only", "", false, true, model.ContentArticle},
		{"explicit video no payload", "video", false, false, model.ContentVideo},
		{"explicit article no payload", "article", false, false, model.ContentArticle},
		{"explicit quiz no payload", "quiz", false, false, model.ContentQuiz},
		{"nothing at all defaults to video", "", false, false, model.ContentVideo},

		// 冲突裁决：显式 video 胜出，其余一律 article
		{"conflict explicit video", "video", true, true, model.ContentVideo},
		{"conflict explicit article", "article", true, true, model.ContentArticle},
		{"conflict no explicit", "", true, true, model.ContentArticle},
		{"conflict explicit quiz", "quiz", true, true, model.ContentArticle},

		// 显式类型与实际内容不符时以内容为准
		{"explicit article but video payload", "article", true, false, model.ContentVideo},
		{"explicit video but article payload", "video", false, true, model.ContentArticle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.DetectContentType(tt.explicit, tt.hasVideo, tt.hasArticle)
			if got != tt.want {
				t.Errorf("DetectContentType(%q, %v, %v) = %q, want %q",
					tt.explicit, tt.hasVideo, tt.hasArticle, got, tt.want)
			}
		})
	}
}

func TestDetectContentTypeDeterministic(t *testing.T) {
	// 同样的输入重复检测必须得到同样的结果
	for i := 0; i < 100; i++ {
		if got := service.DetectContentType("", true, true); got != model.ContentArticle {
			t.Fatalf("DetectContentType conflict resolution changed on run %d: %q", i, got)
		}
	}
}
