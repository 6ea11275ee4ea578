package model

// Assignment 章节内的作业
// swagger:model Assignment
type Assignment struct {
	UUIDBase
	SectionID         string `gorm:"index;type:varchar(36);not null" json:"sectionId"`
	Name              string `gorm:"size:255;not null" json:"name"`
	Description       string `gorm:"type:text" json:"description"`
	Instructions      string `gorm:"type:text" json:"instructions"`
	EstimatedDuration int    `gorm:"default:0" json:"estimatedDuration"` // 分钟
	Order             int    `gorm:"default:0" json:"order"`
	IsPublished       bool   `gorm:"default:false" json:"isPublished"`
}

func (Assignment) TableName() string {
	return "assignments"
}
