package service

import (
	"course_studio_backend/internal/model"
	"course_studio_backend/pkg/logger"
	"testing"

	"go.uber.org/zap"
)

func previewService() *PreviewService {
	logger.Log = zap.NewNop()
	return &PreviewService{ContentType: NewContentTypeService()}
}

func TestLectureSpecVideo(t *testing.T) {
	s := previewService()
	lecture := &model.Lecture{
		Name:          "Intro",
		VideoURL:      "http://cdn/intro.mp4",
		VideoDuration: 93.5,
		VideoFormat:   "mp4",
	}
	lecture.ID = "lec-1"

	spec, itemType := s.lectureSpec(lecture)
	if itemType != model.ContentVideo {
		t.Fatalf("lectureSpec() type = %q, want video", itemType)
	}
	payload, ok := spec.Payload.(model.VideoPayload)
	if !ok {
		t.Fatalf("payload type = %T, want VideoPayload", spec.Payload)
	}
	if payload.URL != lecture.VideoURL || payload.Duration != 93.5 {
		t.Errorf("payload = %+v", payload)
	}
}

// 显式标成 video 但没有视频地址：渲染显式占位而不是失败
func TestLectureSpecVideoWithoutURL(t *testing.T) {
	s := previewService()
	lecture := &model.Lecture{Name: "Broken", ContentType: "video"}
	lecture.ID = "lec-2"

	spec, _ := s.lectureSpec(lecture)
	if spec.Type != model.RenderEmpty {
		t.Fatalf("spec.Type = %q, want empty placeholder", spec.Type)
	}
	if spec.Message != msgNoContent {
		t.Errorf("spec.Message = %q, want %q", spec.Message, msgNoContent)
	}
}

// 没有视频、没有正文、只有富文本简介的小节按图文渲染简介
func TestLectureSpecDescriptionFallsBackToArticle(t *testing.T) {
	s := previewService()
	lecture := &model.Lecture{Name: "Notes", Description: "<p>summary</p>"}
	lecture.ID = "lec-3"

	spec, itemType := s.lectureSpec(lecture)
	if itemType != model.ContentArticle {
		t.Fatalf("lectureSpec() type = %q, want article", itemType)
	}
	payload, ok := spec.Payload.(model.ArticlePayload)
	if !ok || payload.HTML != "<p>summary</p>" {
		t.Errorf("payload = %+v", spec.Payload)
	}
}

// 显式类型指向小节拿不出的载荷（如 quiz）时降级为占位
func TestLectureSpecUnrenderableExplicitType(t *testing.T) {
	s := previewService()
	lecture := &model.Lecture{Name: "Odd", ContentType: "quiz"}
	lecture.ID = "lec-4"

	spec, itemType := s.lectureSpec(lecture)
	if itemType != model.ContentQuiz {
		t.Fatalf("lectureSpec() type = %q, want quiz passthrough", itemType)
	}
	if spec.Type != model.RenderEmpty {
		t.Errorf("spec.Type = %q, want empty placeholder", spec.Type)
	}
}

func TestAssignmentSpec(t *testing.T) {
	assignment := &model.Assignment{
		Name:              "Homework",
		Instructions:      "do it",
		EstimatedDuration: 30,
	}
	assignment.ID = "asg-1"

	spec := assignmentSpec(assignment)
	if spec.Type != string(model.ContentAssignment) {
		t.Fatalf("spec.Type = %q", spec.Type)
	}

	blank := &model.Assignment{Name: "Empty"}
	blank.ID = "asg-2"
	if got := assignmentSpec(blank); got.Type != model.RenderEmpty {
		t.Errorf("blank assignment spec.Type = %q, want empty placeholder", got.Type)
	}
}

func TestCodingExerciseSpecOmitsSolution(t *testing.T) {
	exercise := &model.CodingExercise{
		Name:         "FizzBuzz",
		Language:     "go",
		Instructions: "write it",
		StarterCode:  "package main",
		SolutionCode: "secret",
	}
	exercise.ID = "ex-1"

	spec := codingExerciseSpec(exercise)
	payload, ok := spec.Payload.(model.CodingExercisePayload)
	if !ok {
		t.Fatalf("payload type = %T", spec.Payload)
	}
	if payload.StarterCode != "package main" || payload.Language != "go" {
		t.Errorf("payload = %+v", payload)
	}
	// CodingExercisePayload 根本没有答案字段，这里只验证起始代码被下发
}
