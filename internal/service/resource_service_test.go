package service_test

import (
	"course_studio_backend/internal/model"
	"course_studio_backend/internal/service"
	"testing"
)

func res(id, lectureID, title string, kind model.ResourceKind) model.Resource {
	r := model.Resource{LectureID: lectureID, Kind: kind, Title: title}
	r.ID = id
	return r
}

func TestGroupByLecture(t *testing.T) {
	known := map[string]bool{"lec-1": true, "lec-2": true}

	files := []model.Resource{
		res("f1", "lec-1", "slides.pdf", model.ResourceDownloadableFile),
		res("f2", "lec-2", "notes.pdf", model.ResourceDownloadableFile),
		res("f3", "lec-1", "extra.zip", model.ResourceDownloadableFile),
	}
	sourceCode := []model.Resource{
		res("s1", "lec-1", "main.go", model.ResourceSourceCode),
	}
	links := []model.Resource{
		res("l1", "lec-2", "docs", model.ResourceExternalLink),
	}

	grouped := service.GroupByLecture(files, sourceCode, links, known)

	if len(grouped) != 2 {
		t.Fatalf("GroupByLecture() returned %d lectures, want 2", len(grouped))
	}

	lec1 := grouped["lec-1"]
	if lec1 == nil {
		t.Fatal("lec-1 missing from grouped result")
	}
	if len(lec1.Files) != 2 || len(lec1.SourceCode) != 1 || len(lec1.Links) != 0 {
		t.Errorf("lec-1 buckets = %d/%d/%d files/source/links, want 2/1/0",
			len(lec1.Files), len(lec1.SourceCode), len(lec1.Links))
	}
	// 展示顺序即插入顺序
	if lec1.Files[0].ID != "f1" || lec1.Files[1].ID != "f3" {
		t.Errorf("lec-1 files order = [%s %s], want [f1 f3]", lec1.Files[0].ID, lec1.Files[1].ID)
	}

	lec2 := grouped["lec-2"]
	if lec2 == nil {
		t.Fatal("lec-2 missing from grouped result")
	}
	if len(lec2.Files) != 1 || len(lec2.Links) != 1 {
		t.Errorf("lec-2 buckets = %d files %d links, want 1/1", len(lec2.Files), len(lec2.Links))
	}
}

func TestGroupByLectureDropsOrphans(t *testing.T) {
	known := map[string]bool{"lec-1": true}

	files := []model.Resource{
		res("f1", "", "no-owner.pdf", model.ResourceDownloadableFile),
		res("f2", "lec-gone", "orphan.pdf", model.ResourceDownloadableFile),
		res("f3", "lec-1", "kept.pdf", model.ResourceDownloadableFile),
	}

	grouped := service.GroupByLecture(files, nil, nil, known)

	if len(grouped) != 1 {
		t.Fatalf("GroupByLecture() returned %d lectures, want 1", len(grouped))
	}
	if got := grouped["lec-1"]; got == nil || len(got.Files) != 1 || got.Files[0].ID != "f3" {
		t.Error("only the resource attached to a known lecture should survive")
	}
	if _, ok := grouped["lec-gone"]; ok {
		t.Error("orphan lecture id must not appear in the result")
	}
	if _, ok := grouped[""]; ok {
		t.Error("empty lecture id must not appear in the result")
	}
}

func TestGroupByLectureKeepsDuplicates(t *testing.T) {
	known := map[string]bool{"lec-1": true}

	// 同名资源上传两次：不去重，按插入顺序保留两条
	files := []model.Resource{
		res("f1", "lec-1", "slides.pdf", model.ResourceDownloadableFile),
		res("f2", "lec-1", "slides.pdf", model.ResourceDownloadableFile),
	}

	grouped := service.GroupByLecture(files, nil, nil, known)
	lec1 := grouped["lec-1"]
	if lec1 == nil || len(lec1.Files) != 2 {
		t.Fatalf("duplicate titles must both be kept, got %+v", lec1)
	}
	if lec1.Files[0].ID != "f1" || lec1.Files[1].ID != "f2" {
		t.Errorf("duplicates out of order: [%s %s]", lec1.Files[0].ID, lec1.Files[1].ID)
	}
}

func TestGroupByLectureEmptyInput(t *testing.T) {
	grouped := service.GroupByLecture(nil, nil, nil, map[string]bool{"lec-1": true})
	if len(grouped) != 0 {
		t.Errorf("GroupByLecture() with no resources = %d entries, want 0", len(grouped))
	}
}
