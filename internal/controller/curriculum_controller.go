package controller

import (
	"course_studio_backend/internal/service"
	"course_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CurriculumController struct {
	CurriculumService *service.CurriculumService
}

func NewCurriculumController(curriculumService *service.CurriculumService) *CurriculumController {
	return &CurriculumController{CurriculumService: curriculumService}
}

// CreateLecture 章节下新建小节
// @Summary 新建小节
// @Tags curriculum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "章节 ID"
// @Param request body service.CreateLectureRequest true "小节信息"
// @Success 201 {object} util.Response
// @Router /api/sections/{id}/lectures [post]
func (ctrl *CurriculumController) CreateLecture(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.CreateLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	lecture, err := ctrl.CurriculumService.CreateLecture(c.Param("id"), claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, lecture)
}

// UpdateLecture 更新小节
// @Summary 更新小节内容
// @Tags curriculum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "小节 ID"
// @Param request body service.UpdateLectureRequest true "小节信息"
// @Success 200 {object} util.Response
// @Router /api/lectures/{id} [put]
func (ctrl *CurriculumController) UpdateLecture(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.UpdateLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	lecture, err := ctrl.CurriculumService.UpdateLecture(c.Param("id"), claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, lecture)
}

// DeleteLecture 删除小节
// @Summary 删除小节
// @Tags curriculum
// @Security BearerAuth
// @Param id path string true "小节 ID"
// @Success 200 {object} util.Response
// @Router /api/lectures/{id} [delete]
func (ctrl *CurriculumController) DeleteLecture(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.CurriculumService.DeleteLecture(c.Param("id"), claims.UserID, claims.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// ReorderLectures 小节排序
// @Summary 按给定顺序重排章节内小节
// @Tags curriculum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "章节 ID"
// @Param request body reorderRequest true "有序小节 ID 列表"
// @Success 200 {object} util.Response
// @Router /api/sections/{id}/lectures/reorder [put]
func (ctrl *CurriculumController) ReorderLectures(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.CurriculumService.ReorderLectures(c.Param("id"), claims.UserID, claims.Role, req.OrderedIDs); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// UploadLectureVideo 上传小节视频
// @Summary 上传视频并回填时长与格式
// @Tags curriculum
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "小节 ID"
// @Param video formData file true "视频文件"
// @Success 200 {object} util.Response
// @Router /api/lectures/{id}/video [post]
func (ctrl *CurriculumController) UploadLectureVideo(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	file, err := c.FormFile("video")
	if err != nil {
		util.BadRequest(c, "video file is required")
		return
	}

	lecture, err := ctrl.CurriculumService.UploadLectureVideo(c.Request.Context(), c.Param("id"), claims.UserID, claims.Role, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, lecture)
}

// CreateQuiz 章节下新建小测
// @Summary 新建小测
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "章节 ID"
// @Param request body service.CreateQuizRequest true "小测信息"
// @Success 201 {object} util.Response
// @Router /api/sections/{id}/quizzes [post]
func (ctrl *CurriculumController) CreateQuiz(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	quiz, err := ctrl.CurriculumService.CreateQuiz(c.Param("id"), claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, quiz)
}

// GetQuiz 小测详情（含题目）
// @Summary 获取小测及其题目
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param id path string true "小测 ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (ctrl *CurriculumController) GetQuiz(c *gin.Context) {
	quiz, err := ctrl.CurriculumService.GetQuiz(c.Param("id"))
	if err != nil {
		util.NotFound(c)
		return
	}
	util.Success(c, quiz)
}

type updateQuizRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateQuiz 更新小测
// @Summary 更新小测
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "小测 ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [put]
func (ctrl *CurriculumController) UpdateQuiz(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req updateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	quiz, err := ctrl.CurriculumService.UpdateQuiz(c.Param("id"), claims.UserID, claims.Role, req.Name, req.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, quiz)
}

// DeleteQuiz 删除小测（连同题目）
// @Summary 删除小测
// @Tags quiz
// @Security BearerAuth
// @Param id path string true "小测 ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [delete]
func (ctrl *CurriculumController) DeleteQuiz(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.CurriculumService.DeleteQuiz(c.Param("id"), claims.UserID, claims.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// AddQuizQuestion 新建测试题
// @Summary 创建测试题
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "小测 ID"
// @Param request body service.QuizQuestionRequest true "题目信息"
// @Success 201 {object} util.Response
// @Router /api/quizzes/{id}/questions [post]
func (ctrl *CurriculumController) AddQuizQuestion(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.QuizQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	question, err := ctrl.CurriculumService.AddQuizQuestion(c.Param("id"), claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, question)
}

// UpdateQuizQuestion 更新测试题
// @Summary 更新测试题
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "题目 ID"
// @Param request body service.QuizQuestionRequest true "题目信息"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [put]
func (ctrl *CurriculumController) UpdateQuizQuestion(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.QuizQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	question, err := ctrl.CurriculumService.UpdateQuizQuestion(c.Param("id"), claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, question)
}

// DeleteQuizQuestion 删除测试题
// @Summary 删除测试题
// @Tags quiz
// @Security BearerAuth
// @Param id path string true "题目 ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [delete]
func (ctrl *CurriculumController) DeleteQuizQuestion(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.CurriculumService.DeleteQuizQuestion(c.Param("id"), claims.UserID, claims.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// CreateAssignment 章节下新建作业
// @Summary 新建作业
// @Tags assignment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "章节 ID"
// @Param request body service.AssignmentRequest true "作业信息"
// @Success 201 {object} util.Response
// @Router /api/sections/{id}/assignments [post]
func (ctrl *CurriculumController) CreateAssignment(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	assignment, err := ctrl.CurriculumService.CreateAssignment(c.Param("id"), claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, assignment)
}

// UpdateAssignment 更新作业
// @Summary 更新作业
// @Tags assignment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "作业 ID"
// @Success 200 {object} util.Response
// @Router /api/assignments/{id} [put]
func (ctrl *CurriculumController) UpdateAssignment(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	assignment, err := ctrl.CurriculumService.UpdateAssignment(c.Param("id"), claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, assignment)
}

// DeleteAssignment 删除作业
// @Summary 删除作业
// @Tags assignment
// @Security BearerAuth
// @Param id path string true "作业 ID"
// @Success 200 {object} util.Response
// @Router /api/assignments/{id} [delete]
func (ctrl *CurriculumController) DeleteAssignment(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.CurriculumService.DeleteAssignment(c.Param("id"), claims.UserID, claims.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// CreateCodingExercise 章节下新建编程练习
// @Summary 新建编程练习
// @Tags coding-exercise
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "章节 ID"
// @Param request body service.CodingExerciseRequest true "练习信息"
// @Success 201 {object} util.Response
// @Router /api/sections/{id}/coding-exercises [post]
func (ctrl *CurriculumController) CreateCodingExercise(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.CodingExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	exercise, err := ctrl.CurriculumService.CreateCodingExercise(c.Param("id"), claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, exercise)
}

// UpdateCodingExercise 更新编程练习
// @Summary 更新编程练习
// @Tags coding-exercise
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习 ID"
// @Success 200 {object} util.Response
// @Router /api/coding-exercises/{id} [put]
func (ctrl *CurriculumController) UpdateCodingExercise(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.CodingExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	exercise, err := ctrl.CurriculumService.UpdateCodingExercise(c.Param("id"), claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, exercise)
}

// DeleteCodingExercise 删除编程练习
// @Summary 删除编程练习
// @Tags coding-exercise
// @Security BearerAuth
// @Param id path string true "练习 ID"
// @Success 200 {object} util.Response
// @Router /api/coding-exercises/{id} [delete]
func (ctrl *CurriculumController) DeleteCodingExercise(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.CurriculumService.DeleteCodingExercise(c.Param("id"), claims.UserID, claims.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}
