package model

// ContentType 渲染器选择用的封闭分类
type ContentType string

const (
	ContentVideo          ContentType = "video"
	ContentArticle        ContentType = "article"
	ContentQuiz           ContentType = "quiz"
	ContentAssignment     ContentType = "assignment"
	ContentCodingExercise ContentType = "coding-exercise"
)

// Lecture 小节课程，主内容为视频或图文二选一
// swagger:model Lecture
type Lecture struct {
	UUIDBase
	SectionID   string `gorm:"index;type:varchar(36);not null" json:"sectionId"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"default:0" json:"order"`

	// 显式内容类型，可为空；为空时由内容字段推断
	ContentType string `gorm:"size:50" json:"contentType,omitempty"`

	VideoURL      string  `gorm:"size:255" json:"videoUrl,omitempty"`
	VideoDuration float64 `gorm:"default:0" json:"videoDuration"` // 秒
	VideoFormat   string  `gorm:"size:50" json:"videoFormat,omitempty"`
	ArticleText   string  `gorm:"type:text" json:"articleText,omitempty"`

	IsPublished bool `gorm:"default:false" json:"isPublished"`

	Resources []Resource `gorm:"foreignKey:LectureID" json:"resources,omitempty"`
}

func (Lecture) TableName() string {
	return "lectures"
}

// HasVideo 小节是否携带视频内容
func (l *Lecture) HasVideo() bool {
	return l.VideoURL != ""
}

// HasArticle 小节是否携带图文内容。图文正文是主内容；
// 没有任何视频时，富文本简介也当作图文来源（简介不构成视频冲突）
func (l *Lecture) HasArticle() bool {
	return l.ArticleText != "" || (l.VideoURL == "" && l.Description != "")
}

// ArticleHTML 图文渲染用的 HTML，正文优先，其次简介原文
func (l *Lecture) ArticleHTML() string {
	if l.ArticleText != "" {
		return l.ArticleText
	}
	return l.Description
}
