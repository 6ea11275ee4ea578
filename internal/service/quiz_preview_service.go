package service

import (
	"context"
	"course_studio_backend/internal/model"
	"course_studio_backend/internal/repository"
	"course_studio_backend/internal/util"
	"course_studio_backend/pkg/logger"
	"course_studio_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// 小测预览状态机：Overview → Questions → Result。
// 题内循环是"答对为止"——答错的选项被永久禁用，不做单次计分。
// 所有迁移都是纯函数：先深拷贝再改，守卫不通过时原状态返回、不产生任何变化。

// StartQuiz Overview --start--> Questions，题号归零
func StartQuiz(s *model.QuizAttemptState) (*model.QuizAttemptState, error) {
	if s.Phase != model.QuizPhaseOverview {
		return s, util.ErrInvalidQuizAction
	}

	next := s.Clone()
	next.Phase = model.QuizPhaseQuestions
	next.CurrentQuestion = 0
	next.IsAnswerChecked = false
	next.LastCheckCorrect = false
	return next, nil
}

// SelectQuizAnswer 单选：覆盖之前的选择；已禁用的选项不可再选。
// 当前题已答对或处于结果回看模式时不允许再选。
func SelectQuizAnswer(s *model.QuizAttemptState, answerIndex, answerCount int) (*model.QuizAttemptState, error) {
	if s.Phase != model.QuizPhaseQuestions || s.FromResult {
		return s, util.ErrInvalidQuizAction
	}
	if answerIndex < 0 || answerIndex >= answerCount {
		return s, util.ErrInvalidQuizAction
	}
	if s.CorrectlyAnswered[s.CurrentQuestion] {
		return s, util.ErrInvalidQuizAction
	}
	if s.IsAnswerDisabled(s.CurrentQuestion, answerIndex) {
		return s, util.ErrInvalidQuizAction
	}

	next := s.Clone()
	next.SelectedAnswers[next.CurrentQuestion] = answerIndex
	// 新的选择清掉上一次判题的反馈横幅
	next.IsAnswerChecked = false
	next.LastCheckCorrect = false
	return next, nil
}

// CheckQuizAnswer 判题。答对进 correctlyAnswered；
// 答错则该选项进禁用集合（重试时不可再选）并标记 needsReview。
func CheckQuizAnswer(s *model.QuizAttemptState, correctIndex int) (*model.QuizAttemptState, error) {
	if s.Phase != model.QuizPhaseQuestions || s.FromResult {
		return s, util.ErrInvalidQuizAction
	}
	if s.CorrectlyAnswered[s.CurrentQuestion] {
		return s, util.ErrInvalidQuizAction
	}
	selected, hasSelection := s.SelectedAnswers[s.CurrentQuestion]
	if !hasSelection {
		return s, util.ErrInvalidQuizAction
	}

	next := s.Clone()
	next.IsAnswerChecked = true

	if selected == correctIndex {
		next.CorrectlyAnswered[next.CurrentQuestion] = true
		next.LastCheckCorrect = true
		return next, nil
	}

	if next.DisabledAnswers[next.CurrentQuestion] == nil {
		next.DisabledAnswers[next.CurrentQuestion] = map[int]bool{}
	}
	next.DisabledAnswers[next.CurrentQuestion][selected] = true
	next.NeedsReview[next.CurrentQuestion] = true
	next.LastCheckCorrect = false
	return next, nil
}

// AdvanceQuiz 只有当前题已答对或已跳过才能前进；末题前进即出结果
func AdvanceQuiz(s *model.QuizAttemptState) (*model.QuizAttemptState, error) {
	if s.Phase != model.QuizPhaseQuestions || s.FromResult {
		return s, util.ErrInvalidQuizAction
	}
	if !s.CorrectlyAnswered[s.CurrentQuestion] && !s.Skipped[s.CurrentQuestion] {
		return s, util.ErrInvalidQuizAction
	}

	next := s.Clone()
	if next.CurrentQuestion >= next.TotalQuestions-1 {
		next.Phase = model.QuizPhaseResult
	} else {
		next.CurrentQuestion++
	}
	next.IsAnswerChecked = false
	next.LastCheckCorrect = false
	return next, nil
}

// SkipQuizQuestion 只在当前题还没判过题时允许跳过，随后与 advance 一致前进。
// 跳过不会永久封锁该题：顺序导航回来仍可作答。
func SkipQuizQuestion(s *model.QuizAttemptState) (*model.QuizAttemptState, error) {
	if s.Phase != model.QuizPhaseQuestions || s.FromResult {
		return s, util.ErrInvalidQuizAction
	}
	if s.IsAnswerChecked || s.CorrectlyAnswered[s.CurrentQuestion] || s.NeedsReview[s.CurrentQuestion] {
		return s, util.ErrInvalidQuizAction
	}

	next := s.Clone()
	next.Skipped[next.CurrentQuestion] = true
	if next.CurrentQuestion >= next.TotalQuestions-1 {
		next.Phase = model.QuizPhaseResult
	} else {
		next.CurrentQuestion++
	}
	next.IsAnswerChecked = false
	next.LastCheckCorrect = false
	return next, nil
}

// ReviewQuizQuestion 从结果页回看某题：只读模式，只展示解析，不允许再判题
func ReviewQuizQuestion(s *model.QuizAttemptState, questionIndex int) (*model.QuizAttemptState, error) {
	if s.Phase != model.QuizPhaseResult {
		return s, util.ErrInvalidQuizAction
	}
	if questionIndex < 0 || questionIndex >= s.TotalQuestions {
		return s, util.ErrInvalidQuizAction
	}

	next := s.Clone()
	next.Phase = model.QuizPhaseQuestions
	next.CurrentQuestion = questionIndex
	next.FromResult = true
	next.IsAnswerChecked = false
	next.LastCheckCorrect = false
	return next, nil
}

// BackToQuizResults 从回看模式回到结果页，各集合保持原样
func BackToQuizResults(s *model.QuizAttemptState) (*model.QuizAttemptState, error) {
	if s.Phase != model.QuizPhaseQuestions || !s.FromResult {
		return s, util.ErrInvalidQuizAction
	}

	next := s.Clone()
	next.Phase = model.QuizPhaseResult
	next.FromResult = false
	return next, nil
}

// RetryQuiz 清空全部作答状态，从第一题重新开始
func RetryQuiz(s *model.QuizAttemptState) (*model.QuizAttemptState, error) {
	if s.Phase != model.QuizPhaseResult {
		return s, util.ErrInvalidQuizAction
	}

	next := model.NewQuizAttemptState(s.QuizID, s.TotalQuestions)
	next.Phase = model.QuizPhaseQuestions
	return next, nil
}

// QuizAction 预览壳层可请求的动作
type QuizAction string

const (
	QuizActionStart            QuizAction = "start"
	QuizActionSkip             QuizAction = "skip"
	QuizActionSelectAnswer     QuizAction = "selectAnswer"
	QuizActionCheck            QuizAction = "check"
	QuizActionAdvance          QuizAction = "advance"
	QuizActionSkipQuestion     QuizAction = "skipQuestion"
	QuizActionReviewFromResult QuizAction = "reviewFromResult"
	QuizActionBackToResults    QuizAction = "backToResults"
	QuizActionRetry            QuizAction = "retry"
)

// QuizActionRequest 动作参数；只有 selectAnswer/reviewFromResult 用得到下标
type QuizActionRequest struct {
	AnswerIndex   *int `json:"answerIndex,omitempty"`
	QuestionIndex *int `json:"questionIndex,omitempty"`
}

// QuizActionResult 动作执行后的状态；Closed 表示 Overview 上跳过了整个小测
type QuizActionResult struct {
	State   *model.QuizAttemptState `json:"state,omitempty"`
	Closed  bool                    `json:"closed"`
	Ignored bool                    `json:"ignored"` // 动作违反守卫被忽略，状态未变
}

type QuizPreviewService struct {
	QuizRepo  *repository.QuizRepository
	StateRepo *repository.PreviewStateRepository
}

func NewQuizPreviewService(quizRepo *repository.QuizRepository, stateRepo *repository.PreviewStateRepository) *QuizPreviewService {
	return &QuizPreviewService{
		QuizRepo:  quizRepo,
		StateRepo: stateRepo,
	}
}

// Apply 加载会话状态，应用一次迁移并写回。
// 违反守卫的动作原样返回当前状态（Ignored=true），绝不破坏已有作答数据。
func (s *QuizPreviewService) Apply(ctx context.Context, sessionID string, action QuizAction, req QuizActionRequest) (*QuizActionResult, error) {
	state, err := s.StateRepo.LoadAttempt(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Overview 上跳过整个小测：会话里的作答状态直接丢弃
	if action == QuizActionSkip {
		if state.Phase != model.QuizPhaseOverview {
			return &QuizActionResult{State: state, Ignored: true}, nil
		}
		if err := s.StateRepo.DeleteAttempt(ctx, sessionID); err != nil {
			return nil, err
		}
		return &QuizActionResult{Closed: true}, nil
	}

	next, transitionErr := s.transition(state, action, req)
	if transitionErr != nil {
		logger.Log.Debug("quiz action ignored",
			zap.String("sessionId", sessionID),
			zap.String("action", string(action)),
			zap.String("phase", string(state.Phase)),
		)
		return &QuizActionResult{State: state, Ignored: true}, nil
	}

	if err := s.StateRepo.SaveAttempt(ctx, sessionID, next); err != nil {
		return nil, err
	}
	return &QuizActionResult{State: next}, nil
}

func (s *QuizPreviewService) transition(state *model.QuizAttemptState, action QuizAction, req QuizActionRequest) (*model.QuizAttemptState, error) {
	switch action {
	case QuizActionStart:
		return StartQuiz(state)

	case QuizActionSelectAnswer:
		if req.AnswerIndex == nil {
			return state, util.ErrInvalidQuizAction
		}
		count, err := s.answerCount(state)
		if err != nil {
			return state, err
		}
		return SelectQuizAnswer(state, *req.AnswerIndex, count)

	case QuizActionCheck:
		correctIndex, err := s.correctIndex(state)
		if err != nil {
			return state, err
		}
		next, err := CheckQuizAnswer(state, correctIndex)
		if err == nil {
			outcome := "incorrect"
			if next.LastCheckCorrect {
				outcome = "correct"
			}
			monitoring.QuizChecks.WithLabelValues(outcome).Inc()
		}
		return next, err

	case QuizActionAdvance:
		return AdvanceQuiz(state)

	case QuizActionSkipQuestion:
		return SkipQuizQuestion(state)

	case QuizActionReviewFromResult:
		if req.QuestionIndex == nil {
			return state, util.ErrInvalidQuizAction
		}
		return ReviewQuizQuestion(state, *req.QuestionIndex)

	case QuizActionBackToResults:
		return BackToQuizResults(state)

	case QuizActionRetry:
		return RetryQuiz(state)
	}

	return state, util.ErrInvalidQuizAction
}

func (s *QuizPreviewService) currentQuestion(state *model.QuizAttemptState) (*model.QuizQuestion, error) {
	quiz, err := s.QuizRepo.FindByIDWithQuestions(state.QuizID)
	if err != nil {
		return nil, err
	}
	if state.CurrentQuestion < 0 || state.CurrentQuestion >= len(quiz.Questions) {
		return nil, util.ErrInvalidQuizAction
	}
	return &quiz.Questions[state.CurrentQuestion], nil
}

func (s *QuizPreviewService) answerCount(state *model.QuizAttemptState) (int, error) {
	question, err := s.currentQuestion(state)
	if err != nil {
		return 0, err
	}
	answers, err := question.ParsedAnswers()
	if err != nil {
		return 0, err
	}
	return len(answers), nil
}

func (s *QuizPreviewService) correctIndex(state *model.QuizAttemptState) (int, error) {
	question, err := s.currentQuestion(state)
	if err != nil {
		return 0, err
	}
	idx := question.CorrectIndex()
	if idx < 0 {
		return 0, util.ErrInvalidQuizAction
	}
	return idx, nil
}
