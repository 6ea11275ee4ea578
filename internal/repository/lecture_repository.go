package repository

import (
	"course_studio_backend/internal/model"

	"gorm.io/gorm"
)

type LectureRepository struct {
	DB *gorm.DB
}

func NewLectureRepository(db *gorm.DB) *LectureRepository {
	return &LectureRepository{DB: db}
}

func (r *LectureRepository) Create(lecture *model.Lecture) error {
	return r.DB.Create(lecture).Error
}

func (r *LectureRepository) FindByID(id string) (*model.Lecture, error) {
	var lecture model.Lecture
	err := r.DB.First(&lecture, "id = ?", id).Error
	return &lecture, err
}

func (r *LectureRepository) FindBySection(sectionID string) ([]model.Lecture, error) {
	var lectures []model.Lecture
	err := r.DB.Where("section_id = ?", sectionID).
		Order("`order` ASC").
		Find(&lectures).Error
	return lectures, err
}

func (r *LectureRepository) Update(lecture *model.Lecture) error {
	return r.DB.Save(lecture).Error
}

func (r *LectureRepository) Delete(id string) error {
	return r.DB.Delete(&model.Lecture{}, "id = ?", id).Error
}

func (r *LectureRepository) Reorder(sectionID string, orderedIDs []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&model.Lecture{}).
				Where("id = ? AND section_id = ?", id, sectionID).
				Update("order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
