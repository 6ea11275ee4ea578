package model

import "encoding/json"

// Quiz 章节内的小测
// swagger:model Quiz
type Quiz struct {
	UUIDBase
	SectionID   string `gorm:"index;type:varchar(36);not null" json:"sectionId"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"default:0" json:"order"`
	IsPublished bool   `gorm:"default:false" json:"isPublished"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizAnswer 单个选项；Answers 列以 JSON 形式存储
type QuizAnswer struct {
	Text        string `json:"text"`
	Explanation string `json:"explanation,omitempty"`
	IsCorrect   bool   `json:"isCorrect"`
}

// swagger:model QuizQuestion
type QuizQuestion struct {
	UUIDBase
	QuizID  string          `gorm:"index;type:varchar(36);not null" json:"quizId"`
	Text    string          `gorm:"type:text;not null" json:"text"`
	Order   int             `gorm:"default:0" json:"order"`
	Answers json.RawMessage `gorm:"type:json" json:"answers"` // JSON: []QuizAnswer
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// ParsedAnswers 解码 Answers 列；列为空时返回空切片
func (q *QuizQuestion) ParsedAnswers() ([]QuizAnswer, error) {
	if len(q.Answers) == 0 {
		return nil, nil
	}
	var answers []QuizAnswer
	if err := json.Unmarshal(q.Answers, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// CorrectIndex 返回正确选项下标，未找到时返回 -1
func (q *QuizQuestion) CorrectIndex() int {
	answers, err := q.ParsedAnswers()
	if err != nil {
		return -1
	}
	for i, a := range answers {
		if a.IsCorrect {
			return i
		}
	}
	return -1
}
