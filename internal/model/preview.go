package model

// 预览会话的全部临时状态。只存 Redis，带 TTL，关闭会话即删除，
// 绝不落库。两个浏览器标签各自持有独立的会话，互不协调。

// QuizPhase 小测预览所处的阶段
type QuizPhase string

const (
	QuizPhaseOverview  QuizPhase = "overview"
	QuizPhaseQuestions QuizPhase = "questions"
	QuizPhaseResult    QuizPhase = "result"
)

// QuizAttemptState 单次小测预览的作答状态。
// 所有集合都用 map[int]bool 表示，便于 JSON 序列化进 Redis。
type QuizAttemptState struct {
	QuizID          string    `json:"quizId"`
	Phase           QuizPhase `json:"phase"`
	CurrentQuestion int       `json:"currentQuestion"`
	TotalQuestions  int       `json:"totalQuestions"`

	// questionIndex -> answerIndex；未作答的题没有键
	SelectedAnswers map[int]int `json:"selectedAnswers"`

	CorrectlyAnswered map[int]bool `json:"correctlyAnswered"`
	Skipped           map[int]bool `json:"skipped"`
	NeedsReview       map[int]bool `json:"needsReview"`

	// questionIndex -> 已答错被禁用的选项集合
	DisabledAnswers map[int]map[int]bool `json:"disabledAnswers"`

	// 当前题的反馈横幅状态
	IsAnswerChecked  bool `json:"isAnswerChecked"`
	LastCheckCorrect bool `json:"lastCheckCorrect"`

	// 从结果页回看时为只读模式
	FromResult bool `json:"fromResult"`
}

// NewQuizAttemptState 打开小测预览时的初始状态
func NewQuizAttemptState(quizID string, totalQuestions int) *QuizAttemptState {
	return &QuizAttemptState{
		QuizID:            quizID,
		Phase:             QuizPhaseOverview,
		TotalQuestions:    totalQuestions,
		SelectedAnswers:   map[int]int{},
		CorrectlyAnswered: map[int]bool{},
		Skipped:           map[int]bool{},
		NeedsReview:       map[int]bool{},
		DisabledAnswers:   map[int]map[int]bool{},
	}
}

// Clone 深拷贝，状态机的每次迁移都在副本上进行
func (s *QuizAttemptState) Clone() *QuizAttemptState {
	c := *s
	c.SelectedAnswers = make(map[int]int, len(s.SelectedAnswers))
	for k, v := range s.SelectedAnswers {
		c.SelectedAnswers[k] = v
	}
	c.CorrectlyAnswered = cloneIntSet(s.CorrectlyAnswered)
	c.Skipped = cloneIntSet(s.Skipped)
	c.NeedsReview = cloneIntSet(s.NeedsReview)
	c.DisabledAnswers = make(map[int]map[int]bool, len(s.DisabledAnswers))
	for k, v := range s.DisabledAnswers {
		c.DisabledAnswers[k] = cloneIntSet(v)
	}
	return &c
}

func cloneIntSet(src map[int]bool) map[int]bool {
	dst := make(map[int]bool, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Score 答对题数，集合基数，无部分得分
func (s *QuizAttemptState) Score() int {
	return len(s.CorrectlyAnswered)
}

// SkippedCount 跳过题数
func (s *QuizAttemptState) SkippedCount() int {
	return len(s.Skipped)
}

// IsAnswerDisabled 选项是否已因答错被禁用
func (s *QuizAttemptState) IsAnswerDisabled(questionIndex, answerIndex int) bool {
	return s.DisabledAnswers[questionIndex][answerIndex]
}

// PreviewSelection 当前预览选中项，随用户导航变化
type PreviewSelection struct {
	SessionID      string      `json:"sessionId"`
	CourseID       string      `json:"courseId"`
	ActiveItemID   string      `json:"activeItemId"`
	ActiveItemType ContentType `json:"activeItemType"`
	SectionID      string      `json:"sectionId"`
}

// FlatItem 侧边栏导航用的扁平化条目
type FlatItem struct {
	ItemID    string      `json:"itemId"`
	ItemType  ContentType `json:"itemType"`
	SectionID string      `json:"sectionId"`
	Name      string      `json:"name"`
}

// 渲染类型在 ContentType 之外多一个显式的占位态
const RenderEmpty = "empty"

// RenderSpec 交给预览壳层的渲染说明，payload 按 type 取用
type RenderSpec struct {
	Type    string      `json:"type"`
	ItemID  string      `json:"itemId,omitempty"`
	Title   string      `json:"title,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
	Message string      `json:"message,omitempty"` // type 为 empty 时的提示语
}

type VideoPayload struct {
	URL      string  `json:"url"`
	Duration float64 `json:"duration"`
	Format   string  `json:"format,omitempty"`
}

type ArticlePayload struct {
	HTML string `json:"html"`
}

// PreviewAnswer 下发给壳层的选项，不暴露正确答案
type PreviewAnswer struct {
	Text string `json:"text"`
}

type PreviewQuestion struct {
	Text    string          `json:"text"`
	Answers []PreviewAnswer `json:"answers"`
}

type QuizPayload struct {
	QuizID         string            `json:"quizId"`
	Description    string            `json:"description,omitempty"`
	TotalQuestions int               `json:"totalQuestions"`
	Questions      []PreviewQuestion `json:"questions"`
	State          *QuizAttemptState `json:"state"`
}

type AssignmentPayload struct {
	Description       string `json:"description,omitempty"`
	Instructions      string `json:"instructions"`
	EstimatedDuration int    `json:"estimatedDuration"`
}

type CodingExercisePayload struct {
	Language     string `json:"language"`
	Instructions string `json:"instructions"`
	StarterCode  string `json:"starterCode"`
}
