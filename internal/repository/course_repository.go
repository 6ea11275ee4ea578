package repository

import (
	"course_studio_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, "id = ?", id).Error
	return &course, err
}

// FindByIDWithCurriculum 预加载全部章节与条目，各层按 Order 排序。
// 预览和导航都建立在这棵有序树上。
func (r *CourseRepository) FindByIDWithCurriculum(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Sections", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sections.`order` ASC")
		}).
		Preload("Sections.Lectures", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("lectures.`order` ASC")
		}).
		Preload("Sections.Lectures.Resources").
		Preload("Sections.Quizzes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("quizzes.`order` ASC")
		}).
		Preload("Sections.Quizzes.Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("quiz_questions.`order` ASC")
		}).
		Preload("Sections.Assignments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("assignments.`order` ASC")
		}).
		Preload("Sections.CodingExercises", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("coding_exercises.`order` ASC")
		}).
		First(&course, "id = ?", id).Error
	return &course, err
}

func (r *CourseRepository) ListByInstructor(instructorID uint, page, limit int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	query := r.DB.Model(&model.Course{}).Where("instructor_id = ?", instructorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id string) error {
	return r.DB.Delete(&model.Course{}, "id = ?", id).Error
}
