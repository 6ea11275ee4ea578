package repository

import (
	"course_studio_backend/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

func (r *ResourceRepository) Create(resource *model.Resource) error {
	return r.DB.Create(resource).Error
}

func (r *ResourceRepository) FindByID(id string) (*model.Resource, error) {
	var resource model.Resource
	err := r.DB.First(&resource, "id = ?", id).Error
	return &resource, err
}

// FindByLecture 按插入顺序返回，展示顺序即插入顺序，不去重
func (r *ResourceRepository) FindByLecture(lectureID string) ([]model.Resource, error) {
	var resources []model.Resource
	err := r.DB.Where("lecture_id = ?", lectureID).
		Order("created_at ASC, id ASC").
		Find(&resources).Error
	return resources, err
}

// FindByLectureIDs 一次取多个小节的资源，给下拉聚合用
func (r *ResourceRepository) FindByLectureIDs(lectureIDs []string) ([]model.Resource, error) {
	if len(lectureIDs) == 0 {
		return nil, nil
	}
	var resources []model.Resource
	err := r.DB.Where("lecture_id IN ?", lectureIDs).
		Order("created_at ASC, id ASC").
		Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) Delete(id string) error {
	return r.DB.Delete(&model.Resource{}, "id = ?", id).Error
}
