package controller

import (
	"course_studio_backend/internal/service"
	"course_studio_backend/internal/util"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// CreateCourse 创建课程
// @Summary 创建课程
// @Tags course
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateCourseRequest true "课程信息"
// @Success 201 {object} util.Response
// @Router /api/courses [post]
func (ctrl *CourseController) CreateCourse(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	course, err := ctrl.CourseService.Create(claims.UserID, req)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Created(c, course)
}

// GetCourse 课程详情（含完整课程表）
// @Summary 获取课程及其章节与条目
// @Tags course
// @Produce json
// @Param id path string true "课程 ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Router /api/courses/{id} [get]
func (ctrl *CourseController) GetCourse(c *gin.Context) {
	course, err := ctrl.CourseService.Get(c.Param("id"))
	if err != nil {
		util.NotFound(c)
		return
	}
	util.Success(c, course)
}

// ListCourses 当前讲师的课程列表
// @Summary 讲师课程分页列表
// @Tags course
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/courses [get]
func (ctrl *CourseController) ListCourses(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	courses, total, err := ctrl.CourseService.List(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	util.Success(c, util.PageResponse{
		List:  courses,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// UpdateCourse 更新课程信息
// @Summary 更新课程
// @Tags course
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程 ID"
// @Param request body service.UpdateCourseRequest true "课程信息"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [put]
func (ctrl *CourseController) UpdateCourse(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	course, err := ctrl.CourseService.Update(c.Param("id"), claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, course)
}

// DeleteCourse 删除课程
// @Summary 删除课程
// @Tags course
// @Security BearerAuth
// @Param id path string true "课程 ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [delete]
func (ctrl *CourseController) DeleteCourse(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.CourseService.Delete(c.Param("id"), claims.UserID, claims.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// PublishCourse 发布课程
// @Summary 发布课程（校验章节与小测完整性）
// @Tags course
// @Security BearerAuth
// @Param id path string true "课程 ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/publish [post]
func (ctrl *CourseController) PublishCourse(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	course, err := ctrl.CourseService.Publish(c.Param("id"), claims.UserID, claims.Role)
	if err != nil {
		if err == util.ErrQuizNotPublishable {
			util.Error(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}
	util.Success(c, course)
}

// CreateSection 新建章节
// @Summary 课程下新建章节
// @Tags section
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程 ID"
// @Param request body service.CreateSectionRequest true "章节信息"
// @Success 201 {object} util.Response
// @Router /api/courses/{id}/sections [post]
func (ctrl *CourseController) CreateSection(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	section, err := ctrl.CourseService.CreateSection(c.Param("id"), claims.UserID, claims.Role, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, section)
}

type updateSectionRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateSection 重命名章节
// @Summary 更新章节
// @Tags section
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "章节 ID"
// @Success 200 {object} util.Response
// @Router /api/sections/{id} [put]
func (ctrl *CourseController) UpdateSection(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req updateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	section, err := ctrl.CourseService.UpdateSection(c.Param("id"), claims.UserID, claims.Role, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, section)
}

// DeleteSection 删除章节
// @Summary 删除章节
// @Tags section
// @Security BearerAuth
// @Param id path string true "章节 ID"
// @Success 200 {object} util.Response
// @Router /api/sections/{id} [delete]
func (ctrl *CourseController) DeleteSection(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.CourseService.DeleteSection(c.Param("id"), claims.UserID, claims.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

type reorderRequest struct {
	OrderedIDs []string `json:"orderedIds" binding:"required"`
}

// ReorderSections 章节排序
// @Summary 按给定顺序重排章节
// @Tags section
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程 ID"
// @Param request body reorderRequest true "有序章节 ID 列表"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/sections/reorder [put]
func (ctrl *CourseController) ReorderSections(c *gin.Context) {
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

	if err := ctrl.CourseService.ReorderSections(c.Param("id"), claims.UserID, claims.Role, req.OrderedIDs); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// respondServiceError 服务层错误到 HTTP 状态码的映射
func respondServiceError(c *gin.Context, err error) {
	switch err {
	case util.ErrCourseNotFound, util.ErrSectionNotFound, util.ErrLectureNotFound, util.ErrItemNotFound:
		util.NotFound(c)
	case util.ErrPermissionDenied:
		util.Forbidden(c)
	case util.ErrSessionNotFound:
		util.Error(c, http.StatusNotFound, err.Error())
	case util.ErrQuizNotPublishable, util.ErrInvalidVideoExt, util.ErrInvalidResourceExt:
		util.BadRequest(c, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}
