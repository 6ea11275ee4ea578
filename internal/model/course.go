package model

// swagger:model Course
type Course struct {
	UUIDBase
	Title        string `gorm:"size:255;not null" json:"title"`
	Subtitle     string `gorm:"size:255" json:"subtitle"`
	Description  string `gorm:"type:text" json:"description"`
	InstructorID uint   `gorm:"index;type:bigint unsigned" json:"instructorId"`
	Category     string `gorm:"size:100" json:"category"`
	Language     string `gorm:"size:10;default:'en'" json:"language"`
	ThumbnailURL string `gorm:"size:255" json:"thumbnailUrl"`
	IsPublished  bool   `gorm:"default:false" json:"isPublished"`

	Sections []Section `gorm:"foreignKey:CourseID" json:"sections,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Section 课程章节，按 Order 排序，拥有其下的所有课程条目
// swagger:model Section
type Section struct {
	UUIDBase
	CourseID string `gorm:"index;type:varchar(36);not null" json:"courseId"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Order    int    `gorm:"default:0" json:"order"`

	Lectures        []Lecture        `gorm:"foreignKey:SectionID" json:"lectures,omitempty"`
	Quizzes         []Quiz           `gorm:"foreignKey:SectionID" json:"quizzes,omitempty"`
	Assignments     []Assignment     `gorm:"foreignKey:SectionID" json:"assignments,omitempty"`
	CodingExercises []CodingExercise `gorm:"foreignKey:SectionID" json:"codingExercises,omitempty"`
}

func (Section) TableName() string {
	return "sections"
}
