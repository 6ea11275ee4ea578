package service

import (
	"context"
	"course_studio_backend/internal/model"
	"course_studio_backend/internal/repository"
	"course_studio_backend/internal/util"
	"course_studio_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ValidateQuizQuestion 题目可发布校验：至少两个选项且恰好一个正确答案
func ValidateQuizQuestion(q *model.QuizQuestion) error {
	answers, err := q.ParsedAnswers()
	if err != nil {
		return util.ErrQuizNotPublishable
	}
	if len(answers) < 2 {
		return util.ErrQuizNotPublishable
	}
	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return util.ErrQuizNotPublishable
	}
	return nil
}

// CurriculumService 章节内条目（小节/小测/作业/编程练习）的编辑面
type CurriculumService struct {
	CourseRepo   *repository.CourseRepository
	SectionRepo  *repository.SectionRepository
	LectureRepo  *repository.LectureRepository
	QuizRepo     *repository.QuizRepository
	AssignRepo   *repository.AssignmentRepository
	ExerciseRepo *repository.CodingExerciseRepository
	Storage      *StorageService
}

func NewCurriculumService(
	courseRepo *repository.CourseRepository,
	sectionRepo *repository.SectionRepository,
	lectureRepo *repository.LectureRepository,
	quizRepo *repository.QuizRepository,
	assignRepo *repository.AssignmentRepository,
	exerciseRepo *repository.CodingExerciseRepository,
	storage *StorageService,
) *CurriculumService {
	return &CurriculumService{
		CourseRepo:   courseRepo,
		SectionRepo:  sectionRepo,
		LectureRepo:  lectureRepo,
		QuizRepo:     quizRepo,
		AssignRepo:   assignRepo,
		ExerciseRepo: exerciseRepo,
		Storage:      storage,
	}
}

// checkSectionAccess 沿 section → course 校验编辑权限
func (s *CurriculumService) checkSectionAccess(sectionID string, userID uint, role model.UserRole) (*model.Section, error) {
	section, err := s.SectionRepo.FindByID(sectionID)
	if err != nil {
		return nil, util.ErrSectionNotFound
	}
	course, err := s.CourseRepo.FindByID(section.CourseID)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	if role != model.Admin && course.InstructorID != userID {
		return nil, util.ErrPermissionDenied
	}
	return section, nil
}

type CreateLectureRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ContentType string `json:"contentType"`
	ArticleText string `json:"articleText"`
	Order       int    `json:"order"`
}

func (s *CurriculumService) CreateLecture(sectionID string, userID uint, role model.UserRole, req CreateLectureRequest) (*model.Lecture, error) {
	if _, err := s.checkSectionAccess(sectionID, userID, role); err != nil {
		return nil, err
	}

	lecture := &model.Lecture{
		SectionID:   sectionID,
		Name:        req.Name,
		Description: req.Description,
		ContentType: req.ContentType,
		ArticleText: req.ArticleText,
		Order:       req.Order,
	}
	if err := s.LectureRepo.Create(lecture); err != nil {
		return nil, err
	}
	return lecture, nil
}

type UpdateLectureRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ContentType *string `json:"contentType"`
	ArticleText *string `json:"articleText"`
}

func (s *CurriculumService) UpdateLecture(lectureID string, userID uint, role model.UserRole, req UpdateLectureRequest) (*model.Lecture, error) {
	lecture, err := s.LectureRepo.FindByID(lectureID)
	if err != nil {
		return nil, util.ErrLectureNotFound
	}
	if _, err := s.checkSectionAccess(lecture.SectionID, userID, role); err != nil {
		return nil, err
	}

	if req.Name != "" {
		lecture.Name = req.Name
	}
	if req.Description != nil {
		lecture.Description = *req.Description
	}
	if req.ContentType != nil {
		lecture.ContentType = *req.ContentType
	}
	if req.ArticleText != nil {
		lecture.ArticleText = *req.ArticleText
		// 写入图文正文即切换主内容，视频字段清空
		if *req.ArticleText != "" {
			lecture.VideoURL = ""
			lecture.VideoDuration = 0
			lecture.VideoFormat = ""
		}
	}

	if err := s.LectureRepo.Update(lecture); err != nil {
		return nil, err
	}
	return lecture, nil
}

func (s *CurriculumService) DeleteLecture(lectureID string, userID uint, role model.UserRole) error {
	lecture, err := s.LectureRepo.FindByID(lectureID)
	if err != nil {
		return util.ErrLectureNotFound
	}
	if _, err := s.checkSectionAccess(lecture.SectionID, userID, role); err != nil {
		return err
	}
	return s.LectureRepo.Delete(lectureID)
}

func (s *CurriculumService) ReorderLectures(sectionID string, userID uint, role model.UserRole, orderedIDs []string) error {
	if _, err := s.checkSectionAccess(sectionID, userID, role); err != nil {
		return err
	}
	return s.LectureRepo.Reorder(sectionID, orderedIDs)
}

// UploadLectureVideo 校验并上传视频，随后用 ffprobe 回填时长与格式。
// 上传成功即以视频为主内容，图文正文被清空。
func (s *CurriculumService) UploadLectureVideo(ctx context.Context, lectureID string, userID uint, role model.UserRole, file *multipart.FileHeader) (*model.Lecture, error) {
	lecture, err := s.LectureRepo.FindByID(lectureID)
	if err != nil {
		return nil, util.ErrLectureNotFound
	}
	if _, err := s.checkSectionAccess(lecture.SectionID, userID, role); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{"video/", "application/x-mpegURL", "application/octet-stream"})
	if err != nil || (!util.IsVideo(mimeType) && mimeType != "application/octet-stream") {
		return nil, util.ErrInvalidVideoExt
	}
	if _, err := src.Seek(0, 0); err != nil {
		return nil, err
	}

	// 先落到临时文件，ffprobe 需要路径
	ext := strings.ToLower(filepath.Ext(file.Filename))
	tmp, err := os.CreateTemp("", "lecture-video-*"+ext)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.ReadFrom(src); err != nil {
		return nil, err
	}

	info, err := util.ProbeVideo(tmp.Name())
	if err != nil {
		logger.Log.Warn("video probe failed, storing without metadata",
			zap.String("lectureId", lectureID),
			zap.Error(err),
		)
		info = &util.VideoInfo{Format: strings.TrimPrefix(ext, ".")}
	}

	filename := fmt.Sprintf("videos/%s/%s%s", lectureID, util.GenerateRandomString(16), ext)
	url, err := s.Storage.UploadFile(ctx, filename, tmp.Name(), mimeType)
	if err != nil {
		return nil, err
	}

	lecture.VideoURL = url
	lecture.VideoDuration = info.Duration
	lecture.VideoFormat = info.Format
	lecture.ContentType = string(model.ContentVideo)
	lecture.ArticleText = ""

	if err := s.LectureRepo.Update(lecture); err != nil {
		return nil, err
	}
	return lecture, nil
}

type CreateQuizRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func (s *CurriculumService) CreateQuiz(sectionID string, userID uint, role model.UserRole, req CreateQuizRequest) (*model.Quiz, error) {
	if _, err := s.checkSectionAccess(sectionID, userID, role); err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		SectionID:   sectionID,
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *CurriculumService) GetQuiz(quizID string) (*model.Quiz, error) {
	return s.QuizRepo.FindByIDWithQuestions(quizID)
}

func (s *CurriculumService) UpdateQuiz(quizID string, userID uint, role model.UserRole, name, description string) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, util.ErrItemNotFound
	}
	if _, err := s.checkSectionAccess(quiz.SectionID, userID, role); err != nil {
		return nil, err
	}

	if name != "" {
		quiz.Name = name
	}
	quiz.Description = description
	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *CurriculumService) DeleteQuiz(quizID string, userID uint, role model.UserRole) error {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return util.ErrItemNotFound
	}
	if _, err := s.checkSectionAccess(quiz.SectionID, userID, role); err != nil {
		return err
	}
	return s.QuizRepo.Delete(quizID)
}

type QuizQuestionRequest struct {
	Text    string             `json:"text" binding:"required"`
	Order   int                `json:"order"`
	Answers []model.QuizAnswer `json:"answers" binding:"required"`
}

func (s *CurriculumService) AddQuizQuestion(quizID string, userID uint, role model.UserRole, req QuizQuestionRequest) (*model.QuizQuestion, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, util.ErrItemNotFound
	}
	if _, err := s.checkSectionAccess(quiz.SectionID, userID, role); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, err
	}
	question := &model.QuizQuestion{
		QuizID:  quizID,
		Text:    req.Text,
		Order:   req.Order,
		Answers: raw,
	}
	if err := ValidateQuizQuestion(question); err != nil {
		return nil, err
	}
	if err := s.QuizRepo.CreateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *CurriculumService) UpdateQuizQuestion(questionID string, userID uint, role model.UserRole, req QuizQuestionRequest) (*model.QuizQuestion, error) {
	question, err := s.QuizRepo.FindQuestionByID(questionID)
	if err != nil {
		return nil, util.ErrItemNotFound
	}
	quiz, err := s.QuizRepo.FindByID(question.QuizID)
	if err != nil {
		return nil, util.ErrItemNotFound
	}
	if _, err := s.checkSectionAccess(quiz.SectionID, userID, role); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, err
	}
	question.Text = req.Text
	question.Order = req.Order
	question.Answers = raw
	if err := ValidateQuizQuestion(question); err != nil {
		return nil, err
	}
	if err := s.QuizRepo.UpdateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *CurriculumService) DeleteQuizQuestion(questionID string, userID uint, role model.UserRole) error {
	question, err := s.QuizRepo.FindQuestionByID(questionID)
	if err != nil {
		return util.ErrItemNotFound
	}
	quiz, err := s.QuizRepo.FindByID(question.QuizID)
	if err != nil {
		return util.ErrItemNotFound
	}
	if _, err := s.checkSectionAccess(quiz.SectionID, userID, role); err != nil {
		return err
	}
	return s.QuizRepo.DeleteQuestion(questionID)
}

type AssignmentRequest struct {
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	Instructions      string `json:"instructions"`
	EstimatedDuration int    `json:"estimatedDuration"`
	Order             int    `json:"order"`
}

func (s *CurriculumService) CreateAssignment(sectionID string, userID uint, role model.UserRole, req AssignmentRequest) (*model.Assignment, error) {
	if _, err := s.checkSectionAccess(sectionID, userID, role); err != nil {
		return nil, err
	}

	assignment := &model.Assignment{
		SectionID:         sectionID,
		Name:              req.Name,
		Description:       req.Description,
		Instructions:      req.Instructions,
		EstimatedDuration: req.EstimatedDuration,
		Order:             req.Order,
	}
	if err := s.AssignRepo.Create(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *CurriculumService) UpdateAssignment(id string, userID uint, role model.UserRole, req AssignmentRequest) (*model.Assignment, error) {
	assignment, err := s.AssignRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrItemNotFound
	}
	if _, err := s.checkSectionAccess(assignment.SectionID, userID, role); err != nil {
		return nil, err
	}

	assignment.Name = req.Name
	assignment.Description = req.Description
	assignment.Instructions = req.Instructions
	assignment.EstimatedDuration = req.EstimatedDuration
	if err := s.AssignRepo.Update(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *CurriculumService) DeleteAssignment(id string, userID uint, role model.UserRole) error {
	assignment, err := s.AssignRepo.FindByID(id)
	if err != nil {
		return util.ErrItemNotFound
	}
	if _, err := s.checkSectionAccess(assignment.SectionID, userID, role); err != nil {
		return err
	}
	return s.AssignRepo.Delete(id)
}

type CodingExerciseRequest struct {
	Name         string `json:"name" binding:"required"`
	Language     string `json:"language"`
	Instructions string `json:"instructions"`
	StarterCode  string `json:"starterCode"`
	SolutionCode string `json:"solutionCode"`
	Order        int    `json:"order"`
}

func (s *CurriculumService) CreateCodingExercise(sectionID string, userID uint, role model.UserRole, req CodingExerciseRequest) (*model.CodingExercise, error) {
	if _, err := s.checkSectionAccess(sectionID, userID, role); err != nil {
		return nil, err
	}

	exercise := &model.CodingExercise{
		SectionID:    sectionID,
		Name:         req.Name,
		Language:     req.Language,
		Instructions: req.Instructions,
		StarterCode:  req.StarterCode,
		SolutionCode: req.SolutionCode,
		Order:        req.Order,
	}
	if exercise.Language == "" {
		exercise.Language = "c"
	}
	if err := s.ExerciseRepo.Create(exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *CurriculumService) UpdateCodingExercise(id string, userID uint, role model.UserRole, req CodingExerciseRequest) (*model.CodingExercise, error) {
	exercise, err := s.ExerciseRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrItemNotFound
	}
	if _, err := s.checkSectionAccess(exercise.SectionID, userID, role); err != nil {
		return nil, err
	}

	exercise.Name = req.Name
	if req.Language != "" {
		exercise.Language = req.Language
	}
	exercise.Instructions = req.Instructions
	exercise.StarterCode = req.StarterCode
	exercise.SolutionCode = req.SolutionCode
	if err := s.ExerciseRepo.Update(exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *CurriculumService) DeleteCodingExercise(id string, userID uint, role model.UserRole) error {
	exercise, err := s.ExerciseRepo.FindByID(id)
	if err != nil {
		return util.ErrItemNotFound
	}
	if _, err := s.checkSectionAccess(exercise.SectionID, userID, role); err != nil {
		return err
	}
	return s.ExerciseRepo.Delete(id)
}
