package repository

import (
	"course_studio_backend/internal/model"

	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

func (r *SectionRepository) Create(section *model.Section) error {
	return r.DB.Create(section).Error
}

func (r *SectionRepository) FindByID(id string) (*model.Section, error) {
	var section model.Section
	err := r.DB.First(&section, "id = ?", id).Error
	return &section, err
}

func (r *SectionRepository) FindByCourse(courseID string) ([]model.Section, error) {
	var sections []model.Section
	err := r.DB.Where("course_id = ?", courseID).
		Order("`order` ASC").
		Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) Update(section *model.Section) error {
	return r.DB.Save(section).Error
}

func (r *SectionRepository) Delete(id string) error {
	return r.DB.Delete(&model.Section{}, "id = ?", id).Error
}

// Reorder 按传入的 id 顺序重写 Order 字段，拖拽排序的落库半边
func (r *SectionRepository) Reorder(courseID string, orderedIDs []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&model.Section{}).
				Where("id = ? AND course_id = ?", id, courseID).
				Update("order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
