package repository

import (
	"course_studio_backend/internal/model"

	"gorm.io/gorm"
)

type CodingExerciseRepository struct {
	DB *gorm.DB
}

func NewCodingExerciseRepository(db *gorm.DB) *CodingExerciseRepository {
	return &CodingExerciseRepository{DB: db}
}

func (r *CodingExerciseRepository) Create(exercise *model.CodingExercise) error {
	return r.DB.Create(exercise).Error
}

func (r *CodingExerciseRepository) FindByID(id string) (*model.CodingExercise, error) {
	var exercise model.CodingExercise
	err := r.DB.First(&exercise, "id = ?", id).Error
	return &exercise, err
}

func (r *CodingExerciseRepository) Update(exercise *model.CodingExercise) error {
	return r.DB.Save(exercise).Error
}

func (r *CodingExerciseRepository) Delete(id string) error {
	return r.DB.Delete(&model.CodingExercise{}, "id = ?", id).Error
}
