package model

// CodingExercise 章节内的编程练习
// swagger:model CodingExercise
type CodingExercise struct {
	UUIDBase
	SectionID    string `gorm:"index;type:varchar(36);not null" json:"sectionId"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Language     string `gorm:"size:50;default:'c'" json:"language"`
	Instructions string `gorm:"type:text" json:"instructions"`
	StarterCode  string `gorm:"type:text" json:"starterCode"`
	SolutionCode string `gorm:"type:text" json:"-"` // 不随预览下发
	Order        int    `gorm:"default:0" json:"order"`
	IsPublished  bool   `gorm:"default:false" json:"isPublished"`
}

func (CodingExercise) TableName() string {
	return "coding_exercises"
}
