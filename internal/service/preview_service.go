package service

import (
	"context"
	"course_studio_backend/internal/model"
	"course_studio_backend/internal/util"
	"course_studio_backend/pkg/monitoring"

	"github.com/google/uuid"
)

// 预览编排：选中一个课程条目，给出它的渲染说明。
// 每次选中都重新走一遍类型检测，不跨导航缓存检测结果，
// 避免底层内容在两次选择之间变化后拿到过期类型。

const (
	msgNoContent  = "No content available"
	msgNoQuizData = "No quiz data available"
)

// PreviewSession 打开预览会话的返回
type PreviewSession struct {
	SessionID string           `json:"sessionId"`
	CourseID  string           `json:"courseId"`
	Sidebar   []model.FlatItem `json:"sidebar"`
}

// NavigateResult 上一个/下一个的结果；到边界时 ItemID 为空
type NavigateResult struct {
	ItemID string            `json:"itemId,omitempty"`
	Spec   *model.RenderSpec `json:"spec,omitempty"`
}

// CourseCatalog 预览侧对课程树的只读访问
type CourseCatalog interface {
	FindByIDWithCurriculum(id string) (*model.Course, error)
}

// PreviewStateStore 编排器用到的会话临时状态操作
type PreviewStateStore interface {
	SaveSelection(ctx context.Context, sel *model.PreviewSelection) error
	LoadSelection(ctx context.Context, sessionID string) (*model.PreviewSelection, error)
	SaveAttempt(ctx context.Context, sessionID string, state *model.QuizAttemptState) error
	DeleteSession(ctx context.Context, sessionID string) error
}

type PreviewService struct {
	CourseRepo  CourseCatalog
	StateRepo   PreviewStateStore
	ContentType *ContentTypeService
}

func NewPreviewService(
	courseRepo CourseCatalog,
	stateRepo PreviewStateStore,
	contentType *ContentTypeService,
) *PreviewService {
	return &PreviewService{
		CourseRepo:  courseRepo,
		StateRepo:   stateRepo,
		ContentType: contentType,
	}
}

// OpenSession 建立预览会话并返回扁平化侧边栏
func (s *PreviewService) OpenSession(ctx context.Context, courseID string) (*PreviewSession, error) {
	course, err := s.CourseRepo.FindByIDWithCurriculum(courseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}

	session := &PreviewSession{
		SessionID: uuid.New().String(),
		CourseID:  course.ID,
		Sidebar:   FlattenSections(course.Sections),
	}

	selection := &model.PreviewSelection{
		SessionID: session.SessionID,
		CourseID:  course.ID,
	}
	if err := s.StateRepo.SaveSelection(ctx, selection); err != nil {
		return nil, err
	}

	return session, nil
}

// CloseSession 立刻丢弃该会话的全部临时状态
func (s *PreviewService) CloseSession(ctx context.Context, sessionID string) error {
	return s.StateRepo.DeleteSession(ctx, sessionID)
}

// Sidebar 当前会话课程的扁平化条目列表
func (s *PreviewService) Sidebar(ctx context.Context, sessionID string) ([]model.FlatItem, error) {
	selection, err := s.StateRepo.LoadSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.FindByIDWithCurriculum(selection.CourseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	return FlattenSections(course.Sections), nil
}

// SelectItem 选中条目并给出渲染说明，同时更新会话选中状态
func (s *PreviewService) SelectItem(ctx context.Context, sessionID, itemID string) (*model.RenderSpec, error) {
	selection, err := s.StateRepo.LoadSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.FindByIDWithCurriculum(selection.CourseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}

	spec, itemType, sectionID, err := s.buildRenderSpec(ctx, sessionID, course.Sections, itemID)
	if err != nil {
		return nil, err
	}

	selection.ActiveItemID = itemID
	selection.ActiveItemType = itemType
	selection.SectionID = sectionID
	if err := s.StateRepo.SaveSelection(ctx, selection); err != nil {
		return nil, err
	}

	monitoring.PreviewSelections.WithLabelValues(string(itemType)).Inc()
	return spec, nil
}

// Navigate 沿扁平化列表前后移动；到边界不回绕，ItemID 返回空
func (s *PreviewService) Navigate(ctx context.Context, sessionID, direction string) (*NavigateResult, error) {
	selection, err := s.StateRepo.LoadSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.FindByIDWithCurriculum(selection.CourseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}

	items := FlattenSections(course.Sections)

	var target model.FlatItem
	var ok bool
	switch direction {
	case "next":
		target, ok = NextItem(items, selection.ActiveItemID)
	case "prev":
		target, ok = PrevItem(items, selection.ActiveItemID)
	default:
		return nil, util.ErrItemNotFound
	}

	if !ok {
		return &NavigateResult{}, nil
	}

	spec, err := s.SelectItem(ctx, sessionID, target.ItemID)
	if err != nil {
		return nil, err
	}
	return &NavigateResult{ItemID: target.ItemID, Spec: spec}, nil
}

// buildRenderSpec 在课程树里找到条目并按检测出的类型拼渲染说明
func (s *PreviewService) buildRenderSpec(ctx context.Context, sessionID string, sections []model.Section, itemID string) (*model.RenderSpec, model.ContentType, string, error) {
	for si := range sections {
		section := &sections[si]

		for i := range section.Lectures {
			if section.Lectures[i].ID == itemID {
				spec, itemType := s.lectureSpec(&section.Lectures[i])
				return spec, itemType, section.ID, nil
			}
		}
		for i := range section.Quizzes {
			if section.Quizzes[i].ID == itemID {
				spec, err := s.quizSpec(ctx, sessionID, &section.Quizzes[i])
				if err != nil {
					return nil, "", "", err
				}
				return spec, model.ContentQuiz, section.ID, nil
			}
		}
		for i := range section.Assignments {
			if section.Assignments[i].ID == itemID {
				return assignmentSpec(&section.Assignments[i]), model.ContentAssignment, section.ID, nil
			}
		}
		for i := range section.CodingExercises {
			if section.CodingExercises[i].ID == itemID {
				return codingExerciseSpec(&section.CodingExercises[i]), model.ContentCodingExercise, section.ID, nil
			}
		}
	}

	return nil, "", "", util.ErrItemNotFound
}

func (s *PreviewService) lectureSpec(lecture *model.Lecture) (*model.RenderSpec, model.ContentType) {
	itemType := s.ContentType.DetectLecture(lecture)

	switch itemType {
	case model.ContentVideo:
		if lecture.VideoURL == "" {
			return emptySpec(lecture.ID, lecture.Name, msgNoContent), itemType
		}
		return &model.RenderSpec{
			Type:   string(model.ContentVideo),
			ItemID: lecture.ID,
			Title:  lecture.Name,
			Payload: model.VideoPayload{
				URL:      lecture.VideoURL,
				Duration: lecture.VideoDuration,
				Format:   lecture.VideoFormat,
			},
		}, itemType

	case model.ContentArticle:
		html := lecture.ArticleHTML()
		if html == "" {
			return emptySpec(lecture.ID, lecture.Name, msgNoContent), itemType
		}
		return &model.RenderSpec{
			Type:    string(model.ContentArticle),
			ItemID:  lecture.ID,
			Title:   lecture.Name,
			Payload: model.ArticlePayload{HTML: html},
		}, itemType
	}

	// 显式类型指向了小节拿不出的载荷（如 quiz），降级为占位
	return emptySpec(lecture.ID, lecture.Name, msgNoContent), itemType
}

// quizSpec 打开小测预览即建立全新的作答状态
func (s *PreviewService) quizSpec(ctx context.Context, sessionID string, quiz *model.Quiz) (*model.RenderSpec, error) {
	if len(quiz.Questions) == 0 {
		return emptySpec(quiz.ID, quiz.Name, msgNoQuizData), nil
	}

	questions := make([]model.PreviewQuestion, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		answers, err := quiz.Questions[i].ParsedAnswers()
		if err != nil {
			return emptySpec(quiz.ID, quiz.Name, msgNoQuizData), nil
		}
		preview := model.PreviewQuestion{Text: quiz.Questions[i].Text}
		for _, a := range answers {
			preview.Answers = append(preview.Answers, model.PreviewAnswer{Text: a.Text})
		}
		questions = append(questions, preview)
	}

	state := model.NewQuizAttemptState(quiz.ID, len(quiz.Questions))
	if err := s.StateRepo.SaveAttempt(ctx, sessionID, state); err != nil {
		return nil, err
	}

	return &model.RenderSpec{
		Type:   string(model.ContentQuiz),
		ItemID: quiz.ID,
		Title:  quiz.Name,
		Payload: model.QuizPayload{
			QuizID:         quiz.ID,
			Description:    quiz.Description,
			TotalQuestions: len(quiz.Questions),
			Questions:      questions,
			State:          state,
		},
	}, nil
}

func assignmentSpec(assignment *model.Assignment) *model.RenderSpec {
	if assignment.Instructions == "" && assignment.Description == "" {
		return emptySpec(assignment.ID, assignment.Name, msgNoContent)
	}
	return &model.RenderSpec{
		Type:   string(model.ContentAssignment),
		ItemID: assignment.ID,
		Title:  assignment.Name,
		Payload: model.AssignmentPayload{
			Description:       assignment.Description,
			Instructions:      assignment.Instructions,
			EstimatedDuration: assignment.EstimatedDuration,
		},
	}
}

func codingExerciseSpec(exercise *model.CodingExercise) *model.RenderSpec {
	if exercise.Instructions == "" && exercise.StarterCode == "" {
		return emptySpec(exercise.ID, exercise.Name, msgNoContent)
	}
	return &model.RenderSpec{
		Type:   string(model.ContentCodingExercise),
		ItemID: exercise.ID,
		Title:  exercise.Name,
		Payload: model.CodingExercisePayload{
			Language:     exercise.Language,
			Instructions: exercise.Instructions,
			StarterCode:  exercise.StarterCode,
		},
	}
}

// emptySpec 任何可达状态都要渲染出点东西，空内容给显式占位而不是失败
func emptySpec(itemID, title, message string) *model.RenderSpec {
	return &model.RenderSpec{
		Type:    model.RenderEmpty,
		ItemID:  itemID,
		Title:   title,
		Message: message,
	}
}
