package service_test

import (
	"context"
	"course_studio_backend/internal/model"
	"course_studio_backend/internal/service"
	"course_studio_backend/internal/util"
	"course_studio_backend/pkg/logger"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type fakeCourseCatalog struct {
	course *model.Course
}

func (f *fakeCourseCatalog) FindByIDWithCurriculum(id string) (*model.Course, error) {
	if f.course == nil || f.course.ID != id {
		return nil, errors.New("record not found")
	}
	return f.course, nil
}

type fakeStateStore struct {
	selections map[string]*model.PreviewSelection
	attempts   map[string]*model.QuizAttemptState
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{
		selections: map[string]*model.PreviewSelection{},
		attempts:   map[string]*model.QuizAttemptState{},
	}
}

func (f *fakeStateStore) SaveSelection(_ context.Context, sel *model.PreviewSelection) error {
	clone := *sel
	f.selections[sel.SessionID] = &clone
	return nil
}

func (f *fakeStateStore) LoadSelection(_ context.Context, sessionID string) (*model.PreviewSelection, error) {
	sel, ok := f.selections[sessionID]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	clone := *sel
	return &clone, nil
}

func (f *fakeStateStore) SaveAttempt(_ context.Context, sessionID string, state *model.QuizAttemptState) error {
	f.attempts[sessionID] = state.Clone()
	return nil
}

func (f *fakeStateStore) DeleteSession(_ context.Context, sessionID string) error {
	delete(f.selections, sessionID)
	delete(f.attempts, sessionID)
	return nil
}

func previewFixture() (*service.PreviewService, *fakeCourseCatalog, *fakeStateStore) {
	logger.Log = zap.NewNop()

	course := &model.Course{Title: "Go from zero"}
	course.ID = "course-1"
	course.Sections = sampleSections()

	catalog := &fakeCourseCatalog{course: course}
	store := newFakeStateStore()
	return service.NewPreviewService(catalog, store, service.NewContentTypeService()), catalog, store
}

func TestOpenSessionBuildsSidebarAndSavesSelection(t *testing.T) {
	svc, _, store := previewFixture()
	ctx := context.Background()

	sess, err := svc.OpenSession(ctx, "course-1")
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	if sess.CourseID != "course-1" || len(sess.Sidebar) != 5 {
		t.Errorf("OpenSession() = %+v, want courseId course-1 and 5 sidebar items", sess)
	}

	sel, ok := store.selections[sess.SessionID]
	if !ok {
		t.Fatal("OpenSession() did not persist a selection")
	}
	if sel.CourseID != "course-1" || sel.ActiveItemID != "" {
		t.Errorf("initial selection = %+v, want empty active item", sel)
	}

	if _, err := svc.OpenSession(ctx, "missing"); err != util.ErrCourseNotFound {
		t.Errorf("OpenSession(missing) error = %v, want ErrCourseNotFound", err)
	}
}

func TestSelectItemPersistsSelection(t *testing.T) {
	svc, _, store := previewFixture()
	ctx := context.Background()
	sess, err := svc.OpenSession(ctx, "course-1")
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}

	spec, err := svc.SelectItem(ctx, sess.SessionID, "lec-1")
	if err != nil {
		t.Fatalf("SelectItem(lec-1) error = %v", err)
	}
	if spec.Type != string(model.ContentVideo) {
		t.Errorf("spec.Type = %q, want video", spec.Type)
	}

	sel := store.selections[sess.SessionID]
	if sel.ActiveItemID != "lec-1" || sel.ActiveItemType != model.ContentVideo || sel.SectionID != "sec-1" {
		t.Errorf("persisted selection = %+v", sel)
	}

	if _, err := svc.SelectItem(ctx, sess.SessionID, "asg-1"); err != nil {
		t.Fatalf("SelectItem(asg-1) error = %v", err)
	}
	if sel = store.selections[sess.SessionID]; sel.ActiveItemID != "asg-1" || sel.SectionID != "sec-2" {
		t.Errorf("selection after second select = %+v", sel)
	}

	// 选不存在的条目不能动已保存的选中状态
	if _, err := svc.SelectItem(ctx, sess.SessionID, "missing"); err != util.ErrItemNotFound {
		t.Errorf("SelectItem(missing) error = %v, want ErrItemNotFound", err)
	}
	if sel = store.selections[sess.SessionID]; sel.ActiveItemID != "asg-1" {
		t.Errorf("selection changed by failed select: %+v", sel)
	}

	if _, err := svc.SelectItem(ctx, "no-such-session", "lec-1"); err != util.ErrSessionNotFound {
		t.Errorf("SelectItem with unknown session error = %v, want ErrSessionNotFound", err)
	}
}

// 类型检测每次选中都重新做，底层内容变化后不会拿到过期类型
func TestSelectItemReclassifiesOnEveryVisit(t *testing.T) {
	svc, catalog, store := previewFixture()
	ctx := context.Background()
	sess, err := svc.OpenSession(ctx, "course-1")
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}

	spec, err := svc.SelectItem(ctx, sess.SessionID, "lec-1")
	if err != nil {
		t.Fatalf("SelectItem() error = %v", err)
	}
	if spec.Type != string(model.ContentVideo) {
		t.Fatalf("first visit spec.Type = %q, want video", spec.Type)
	}

	lec := &catalog.course.Sections[0].Lectures[0]
	lec.VideoURL = ""
	lec.ArticleText = "<p>replaced by text</p>"

	spec, err = svc.SelectItem(ctx, sess.SessionID, "lec-1")
	if err != nil {
		t.Fatalf("SelectItem() after content change error = %v", err)
	}
	if spec.Type != string(model.ContentArticle) {
		t.Errorf("revisit spec.Type = %q, want article", spec.Type)
	}
	if sel := store.selections[sess.SessionID]; sel.ActiveItemType != model.ContentArticle {
		t.Errorf("persisted type = %q, want article", sel.ActiveItemType)
	}
}

func TestNavigateWalksFlattenedList(t *testing.T) {
	svc, _, store := previewFixture()
	ctx := context.Background()
	sess, err := svc.OpenSession(ctx, "course-1")
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	if _, err := svc.SelectItem(ctx, sess.SessionID, "lec-1"); err != nil {
		t.Fatalf("SelectItem() error = %v", err)
	}

	res, err := svc.Navigate(ctx, sess.SessionID, "next")
	if err != nil {
		t.Fatalf("Navigate(next) error = %v", err)
	}
	if res.ItemID != "lec-2" || res.Spec == nil || res.Spec.Type != string(model.ContentArticle) {
		t.Errorf("Navigate(next) = %+v, want lec-2 article", res)
	}
	if sel := store.selections[sess.SessionID]; sel.ActiveItemID != "lec-2" {
		t.Errorf("selection after navigate = %+v", sel)
	}

	if res, err = svc.Navigate(ctx, sess.SessionID, "prev"); err != nil || res.ItemID != "lec-1" {
		t.Fatalf("Navigate(prev) = %+v, %v, want lec-1", res, err)
	}

	// 首项再往前：不回绕，ItemID 为空，选中状态不动
	res, err = svc.Navigate(ctx, sess.SessionID, "prev")
	if err != nil {
		t.Fatalf("Navigate(prev) at boundary error = %v", err)
	}
	if res.ItemID != "" || res.Spec != nil {
		t.Errorf("boundary result = %+v, want empty", res)
	}
	if sel := store.selections[sess.SessionID]; sel.ActiveItemID != "lec-1" {
		t.Errorf("selection moved at boundary: %+v", sel)
	}

	if _, err := svc.Navigate(ctx, sess.SessionID, "sideways"); err != util.ErrItemNotFound {
		t.Errorf("Navigate(sideways) error = %v, want ErrItemNotFound", err)
	}
}

func TestSelectQuizCreatesFreshAttempt(t *testing.T) {
	svc, catalog, store := previewFixture()
	ctx := context.Background()

	catalog.course.Sections[0].Quizzes[0].Questions = []model.QuizQuestion{
		{Text: "q1", Answers: rawAnswers(t, []model.QuizAnswer{{Text: "a"}, {Text: "b", IsCorrect: true}})},
	}

	sess, err := svc.OpenSession(ctx, "course-1")
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}

	spec, err := svc.SelectItem(ctx, sess.SessionID, "quiz-1")
	if err != nil {
		t.Fatalf("SelectItem(quiz-1) error = %v", err)
	}
	if spec.Type != string(model.ContentQuiz) {
		t.Fatalf("spec.Type = %q, want quiz", spec.Type)
	}

	attempt, ok := store.attempts[sess.SessionID]
	if !ok {
		t.Fatal("quiz selection did not persist an attempt state")
	}
	if attempt.Phase != model.QuizPhaseOverview || attempt.TotalQuestions != 1 {
		t.Errorf("attempt = %+v, want fresh overview state", attempt)
	}
}

func TestCloseSessionDropsAllState(t *testing.T) {
	svc, catalog, store := previewFixture()
	ctx := context.Background()

	catalog.course.Sections[0].Quizzes[0].Questions = []model.QuizQuestion{
		{Text: "q1", Answers: rawAnswers(t, []model.QuizAnswer{{Text: "a"}, {Text: "b", IsCorrect: true}})},
	}

	sess, err := svc.OpenSession(ctx, "course-1")
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	if _, err := svc.SelectItem(ctx, sess.SessionID, "quiz-1"); err != nil {
		t.Fatalf("SelectItem() error = %v", err)
	}

	if err := svc.CloseSession(ctx, sess.SessionID); err != nil {
		t.Fatalf("CloseSession() error = %v", err)
	}
	if len(store.selections) != 0 || len(store.attempts) != 0 {
		t.Errorf("state left after close: selections=%d attempts=%d", len(store.selections), len(store.attempts))
	}
	if _, err := svc.Sidebar(ctx, sess.SessionID); err != util.ErrSessionNotFound {
		t.Errorf("Sidebar() after close error = %v, want ErrSessionNotFound", err)
	}
}
