package service

import (
	"course_studio_backend/internal/model"
	"course_studio_backend/internal/repository"
	"course_studio_backend/internal/util"
)

type CourseService struct {
	CourseRepo  *repository.CourseRepository
	SectionRepo *repository.SectionRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, sectionRepo *repository.SectionRepository) *CourseService {
	return &CourseService{
		CourseRepo:  courseRepo,
		SectionRepo: sectionRepo,
	}
}

// canEdit 讲师只能改自己的课程，管理员不受限
func (s *CourseService) canEdit(course *model.Course, userID uint, role model.UserRole) bool {
	return role == model.Admin || course.InstructorID == userID
}

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Language    string `json:"language"`
}

func (s *CourseService) Create(instructorID uint, req CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Description:  req.Description,
		Category:     req.Category,
		Language:     req.Language,
		InstructorID: instructorID,
	}
	if course.Language == "" {
		course.Language = "en"
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

// Get 返回课程及其完整有序课程表
func (s *CourseService) Get(id string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByIDWithCurriculum(id)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	return course, nil
}

func (s *CourseService) List(instructorID uint, page, limit int) ([]model.Course, int64, error) {
	return s.CourseRepo.ListByInstructor(instructorID, page, limit)
}

type UpdateCourseRequest struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Language     string `json:"language"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func (s *CourseService) Update(id string, userID uint, role model.UserRole, req UpdateCourseRequest) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	if !s.canEdit(course, userID, role) {
		return nil, util.ErrPermissionDenied
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	course.Subtitle = req.Subtitle
	course.Description = req.Description
	if req.Category != "" {
		course.Category = req.Category
	}
	if req.Language != "" {
		course.Language = req.Language
	}
	if req.ThumbnailURL != "" {
		course.ThumbnailURL = req.ThumbnailURL
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(id string, userID uint, role model.UserRole) error {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return util.ErrCourseNotFound
	}
	if !s.canEdit(course, userID, role) {
		return util.ErrPermissionDenied
	}
	return s.CourseRepo.Delete(id)
}

// Publish 上线前校验：至少一个章节，每个小测的题目都要可发布
func (s *CourseService) Publish(id string, userID uint, role model.UserRole) (*model.Course, error) {
	course, err := s.CourseRepo.FindByIDWithCurriculum(id)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	if !s.canEdit(course, userID, role) {
		return nil, util.ErrPermissionDenied
	}
	if len(course.Sections) == 0 {
		return nil, util.ErrQuizNotPublishable
	}

	for si := range course.Sections {
		for qi := range course.Sections[si].Quizzes {
			quiz := &course.Sections[si].Quizzes[qi]
			for i := range quiz.Questions {
				if err := ValidateQuizQuestion(&quiz.Questions[i]); err != nil {
					return nil, err
				}
			}
		}
	}

	course.IsPublished = true
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

type CreateSectionRequest struct {
	Name  string `json:"name" binding:"required"`
	Order int    `json:"order"`
}

func (s *CourseService) CreateSection(courseID string, userID uint, role model.UserRole, req CreateSectionRequest) (*model.Section, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	if !s.canEdit(course, userID, role) {
		return nil, util.ErrPermissionDenied
	}

	section := &model.Section{
		CourseID: courseID,
		Name:     req.Name,
		Order:    req.Order,
	}
	if err := s.SectionRepo.Create(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *CourseService) UpdateSection(sectionID string, userID uint, role model.UserRole, name string) (*model.Section, error) {
	section, err := s.SectionRepo.FindByID(sectionID)
	if err != nil {
		return nil, util.ErrSectionNotFound
	}
	course, err := s.CourseRepo.FindByID(section.CourseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	if !s.canEdit(course, userID, role) {
		return nil, util.ErrPermissionDenied
	}

	section.Name = name
	if err := s.SectionRepo.Update(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *CourseService) DeleteSection(sectionID string, userID uint, role model.UserRole) error {
	section, err := s.SectionRepo.FindByID(sectionID)
	if err != nil {
		return util.ErrSectionNotFound
	}
	course, err := s.CourseRepo.FindByID(section.CourseID)
	if err != nil {
		return util.ErrCourseNotFound
	}
	if !s.canEdit(course, userID, role) {
		return util.ErrPermissionDenied
	}
	return s.SectionRepo.Delete(sectionID)
}

// ReorderSections 章节拖拽排序落库
func (s *CourseService) ReorderSections(courseID string, userID uint, role model.UserRole, orderedIDs []string) error {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return util.ErrCourseNotFound
	}
	if !s.canEdit(course, userID, role) {
		return util.ErrPermissionDenied
	}
	return s.SectionRepo.Reorder(courseID, orderedIDs)
}
