package service_test

import (
	"course_studio_backend/internal/model"
	"course_studio_backend/internal/service"
	"course_studio_backend/internal/util"
	"testing"
)

func startedQuiz(t *testing.T, total int) *model.QuizAttemptState {
	t.Helper()
	state, err := service.StartQuiz(model.NewQuizAttemptState("quiz-1", total))
	if err != nil {
		t.Fatalf("StartQuiz() error = %v", err)
	}
	return state
}

func answerCorrectly(t *testing.T, state *model.QuizAttemptState, correctIndex int) *model.QuizAttemptState {
	t.Helper()
	state, err := service.SelectQuizAnswer(state, correctIndex, 4)
	if err != nil {
		t.Fatalf("SelectQuizAnswer() error = %v", err)
	}
	state, err = service.CheckQuizAnswer(state, correctIndex)
	if err != nil {
		t.Fatalf("CheckQuizAnswer() error = %v", err)
	}
	if !state.LastCheckCorrect {
		t.Fatal("CheckQuizAnswer() with matching index should set LastCheckCorrect")
	}
	return state
}

func TestStartQuiz(t *testing.T) {
	state := startedQuiz(t, 3)
	if state.Phase != model.QuizPhaseQuestions {
		t.Errorf("Phase = %q, want %q", state.Phase, model.QuizPhaseQuestions)
	}
	if state.CurrentQuestion != 0 {
		t.Errorf("CurrentQuestion = %d, want 0", state.CurrentQuestion)
	}

	// Questions 阶段再 start 是无效动作，状态不变
	same, err := service.StartQuiz(state)
	if err != util.ErrInvalidQuizAction {
		t.Errorf("StartQuiz() on questions phase error = %v, want ErrInvalidQuizAction", err)
	}
	if same != state {
		t.Error("rejected action must return the original state untouched")
	}
}

// 三题小测：第一题直接答对，第二题先答错再答对，第三题跳过。
// 结果页应显示 2 对 1 跳过。
func TestQuizFullAttempt(t *testing.T) {
	state := startedQuiz(t, 3)

	// 第一题
	state = answerCorrectly(t, state, 1)
	state, err := service.AdvanceQuiz(state)
	if err != nil {
		t.Fatalf("AdvanceQuiz() error = %v", err)
	}
	if state.CurrentQuestion != 1 {
		t.Fatalf("CurrentQuestion = %d, want 1", state.CurrentQuestion)
	}

	// 第二题：先错
	state, err = service.SelectQuizAnswer(state, 0, 4)
	if err != nil {
		t.Fatalf("SelectQuizAnswer() error = %v", err)
	}
	state, err = service.CheckQuizAnswer(state, 2)
	if err != nil {
		t.Fatalf("CheckQuizAnswer() error = %v", err)
	}
	if state.LastCheckCorrect {
		t.Fatal("wrong answer must not set LastCheckCorrect")
	}
	if !state.IsAnswerDisabled(1, 0) {
		t.Error("wrong answer must be disabled for retry")
	}
	if !state.NeedsReview[1] {
		t.Error("question answered wrong must be flagged for review")
	}

	// 答错的选项不可再选
	if _, err := service.SelectQuizAnswer(state, 0, 4); err != util.ErrInvalidQuizAction {
		t.Errorf("re-selecting a disabled answer error = %v, want ErrInvalidQuizAction", err)
	}

	// 再对
	state = answerCorrectly(t, state, 2)
	state, err = service.AdvanceQuiz(state)
	if err != nil {
		t.Fatalf("AdvanceQuiz() error = %v", err)
	}

	// 第三题跳过，末题跳过直接出结果
	state, err = service.SkipQuizQuestion(state)
	if err != nil {
		t.Fatalf("SkipQuizQuestion() error = %v", err)
	}
	if state.Phase != model.QuizPhaseResult {
		t.Fatalf("Phase = %q, want %q", state.Phase, model.QuizPhaseResult)
	}

	if state.Score() != 2 {
		t.Errorf("Score() = %d, want 2", state.Score())
	}
	if state.SkippedCount() != 1 {
		t.Errorf("SkippedCount() = %d, want 1", state.SkippedCount())
	}
}

func TestAdvanceRequiresResolvedQuestion(t *testing.T) {
	state := startedQuiz(t, 2)

	// 未答对也未跳过不能前进
	if _, err := service.AdvanceQuiz(state); err != util.ErrInvalidQuizAction {
		t.Errorf("AdvanceQuiz() on unresolved question error = %v, want ErrInvalidQuizAction", err)
	}

	// 只选不判也不能前进
	state, err := service.SelectQuizAnswer(state, 1, 4)
	if err != nil {
		t.Fatalf("SelectQuizAnswer() error = %v", err)
	}
	if _, err := service.AdvanceQuiz(state); err != util.ErrInvalidQuizAction {
		t.Errorf("AdvanceQuiz() after select without check error = %v, want ErrInvalidQuizAction", err)
	}
}

func TestCheckRequiresSelection(t *testing.T) {
	state := startedQuiz(t, 2)
	if _, err := service.CheckQuizAnswer(state, 0); err != util.ErrInvalidQuizAction {
		t.Errorf("CheckQuizAnswer() without selection error = %v, want ErrInvalidQuizAction", err)
	}
}

func TestSkipOnlyBeforeChecking(t *testing.T) {
	state := startedQuiz(t, 2)

	// 判过题（哪怕判错）就不能再跳过
	state, err := service.SelectQuizAnswer(state, 0, 4)
	if err != nil {
		t.Fatalf("SelectQuizAnswer() error = %v", err)
	}
	state, err = service.CheckQuizAnswer(state, 1)
	if err != nil {
		t.Fatalf("CheckQuizAnswer() error = %v", err)
	}
	if _, err := service.SkipQuizQuestion(state); err != util.ErrInvalidQuizAction {
		t.Errorf("SkipQuizQuestion() after check error = %v, want ErrInvalidQuizAction", err)
	}
}

func TestSelectOverwritesPreviousSelection(t *testing.T) {
	state := startedQuiz(t, 1)

	state, err := service.SelectQuizAnswer(state, 0, 4)
	if err != nil {
		t.Fatalf("SelectQuizAnswer() error = %v", err)
	}
	state, err = service.SelectQuizAnswer(state, 3, 4)
	if err != nil {
		t.Fatalf("SelectQuizAnswer() error = %v", err)
	}
	if state.SelectedAnswers[0] != 3 {
		t.Errorf("SelectedAnswers[0] = %d, want 3", state.SelectedAnswers[0])
	}

	// 下标越界被拒绝
	if _, err := service.SelectQuizAnswer(state, 4, 4); err != util.ErrInvalidQuizAction {
		t.Errorf("SelectQuizAnswer() out of range error = %v, want ErrInvalidQuizAction", err)
	}
}

func resultState(t *testing.T) *model.QuizAttemptState {
	t.Helper()
	state := startedQuiz(t, 2)
	state = answerCorrectly(t, state, 0)
	state, err := service.AdvanceQuiz(state)
	if err != nil {
		t.Fatalf("AdvanceQuiz() error = %v", err)
	}
	state, err = service.SkipQuizQuestion(state)
	if err != nil {
		t.Fatalf("SkipQuizQuestion() error = %v", err)
	}
	if state.Phase != model.QuizPhaseResult {
		t.Fatalf("Phase = %q, want result", state.Phase)
	}
	return state
}

func TestReviewAndBackToResults(t *testing.T) {
	state := resultState(t)
	scoreBefore := state.Score()
	skippedBefore := state.SkippedCount()

	reviewed, err := service.ReviewQuizQuestion(state, 1)
	if err != nil {
		t.Fatalf("ReviewQuizQuestion() error = %v", err)
	}
	if reviewed.Phase != model.QuizPhaseQuestions || !reviewed.FromResult {
		t.Fatalf("review state = phase %q fromResult %v, want questions/true", reviewed.Phase, reviewed.FromResult)
	}
	if reviewed.CurrentQuestion != 1 {
		t.Errorf("CurrentQuestion = %d, want 1", reviewed.CurrentQuestion)
	}

	// 回看是只读的：选择与判题都被拒绝
	if _, err := service.SelectQuizAnswer(reviewed, 0, 4); err != util.ErrInvalidQuizAction {
		t.Errorf("SelectQuizAnswer() in review mode error = %v, want ErrInvalidQuizAction", err)
	}
	if _, err := service.CheckQuizAnswer(reviewed, 0); err != util.ErrInvalidQuizAction {
		t.Errorf("CheckQuizAnswer() in review mode error = %v, want ErrInvalidQuizAction", err)
	}

	back, err := service.BackToQuizResults(reviewed)
	if err != nil {
		t.Fatalf("BackToQuizResults() error = %v", err)
	}
	if back.Phase != model.QuizPhaseResult || back.FromResult {
		t.Fatalf("back state = phase %q fromResult %v, want result/false", back.Phase, back.FromResult)
	}
	if back.Score() != scoreBefore || back.SkippedCount() != skippedBefore {
		t.Error("review round trip must leave answer sets unchanged")
	}

	// 越界回看被拒绝
	if _, err := service.ReviewQuizQuestion(state, 5); err != util.ErrInvalidQuizAction {
		t.Errorf("ReviewQuizQuestion() out of range error = %v, want ErrInvalidQuizAction", err)
	}
}

func TestRetryResetsEverything(t *testing.T) {
	state := resultState(t)

	fresh, err := service.RetryQuiz(state)
	if err != nil {
		t.Fatalf("RetryQuiz() error = %v", err)
	}
	if fresh.Phase != model.QuizPhaseQuestions {
		t.Errorf("Phase = %q, want questions", fresh.Phase)
	}
	if fresh.CurrentQuestion != 0 {
		t.Errorf("CurrentQuestion = %d, want 0", fresh.CurrentQuestion)
	}
	if fresh.Score() != 0 || fresh.SkippedCount() != 0 || len(fresh.SelectedAnswers) != 0 {
		t.Error("RetryQuiz() must clear all answer state")
	}
	if len(fresh.DisabledAnswers) != 0 {
		t.Error("RetryQuiz() must clear disabled answers")
	}

	// Questions 阶段不能 retry
	if _, err := service.RetryQuiz(fresh); err != util.ErrInvalidQuizAction {
		t.Errorf("RetryQuiz() on questions phase error = %v, want ErrInvalidQuizAction", err)
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	state := startedQuiz(t, 2)

	next, err := service.SelectQuizAnswer(state, 1, 4)
	if err != nil {
		t.Fatalf("SelectQuizAnswer() error = %v", err)
	}
	if len(state.SelectedAnswers) != 0 {
		t.Error("transition mutated the input state's SelectedAnswers")
	}
	if next == state {
		t.Error("successful transition must return a new state value")
	}

	checked, err := service.CheckQuizAnswer(next, 0)
	if err != nil {
		t.Fatalf("CheckQuizAnswer() error = %v", err)
	}
	if len(next.DisabledAnswers) != 0 {
		t.Error("transition mutated the input state's DisabledAnswers")
	}
	if !checked.IsAnswerDisabled(0, 1) {
		t.Error("wrong answer should be disabled in the new state")
	}
}
