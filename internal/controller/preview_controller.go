package controller

import (
	"course_studio_backend/internal/service"
	"course_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PreviewController struct {
	PreviewService *service.PreviewService
	QuizPreview    *service.QuizPreviewService
}

func NewPreviewController(previewService *service.PreviewService, quizPreview *service.QuizPreviewService) *PreviewController {
	return &PreviewController{
		PreviewService: previewService,
		QuizPreview:    quizPreview,
	}
}

// OpenSession 打开预览会话
// @Summary 为课程创建预览会话并返回侧边栏
// @Tags preview
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "课程 ID"
// @Success 201 {object} util.Response{data=service.PreviewSession}
// @Router /api/preview/courses/{courseId}/sessions [post]
func (ctrl *PreviewController) OpenSession(c *gin.Context) {
	session, err := ctrl.PreviewService.OpenSession(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, session)
}

// CloseSession 关闭预览会话
// @Summary 关闭会话并丢弃全部临时状态
// @Tags preview
// @Security BearerAuth
// @Param sessionId path string true "会话 ID"
// @Success 200 {object} util.Response
// @Router /api/preview/sessions/{sessionId} [delete]
func (ctrl *PreviewController) CloseSession(c *gin.Context) {
	if err := ctrl.PreviewService.CloseSession(c.Request.Context(), c.Param("sessionId")); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}

// GetSidebar 会话课程的扁平化侧边栏
// @Summary 获取预览侧边栏条目列表
// @Tags preview
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "会话 ID"
// @Success 200 {object} util.Response
// @Router /api/preview/sessions/{sessionId}/sidebar [get]
func (ctrl *PreviewController) GetSidebar(c *gin.Context) {
	items, err := ctrl.PreviewService.Sidebar(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, items)
}

type selectItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// SelectItem 选中条目并取渲染说明
// @Summary 选中课程条目，返回按检测类型生成的渲染说明
// @Tags preview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "会话 ID"
// @Param request body selectItemRequest true "条目 ID"
// @Success 200 {object} util.Response{data=model.RenderSpec}
// @Router /api/preview/sessions/{sessionId}/select [post]
func (ctrl *PreviewController) SelectItem(c *gin.Context) {
	var req selectItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	spec, err := ctrl.PreviewService.SelectItem(c.Request.Context(), c.Param("sessionId"), req.ItemID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, spec)
}

type navigateRequest struct {
	Direction string `json:"direction" binding:"required,oneof=next prev"`
}

// Navigate 上一个/下一个条目
// @Summary 沿课程条目顺序前后导航；到边界返回空 itemId
// @Tags preview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "会话 ID"
// @Param request body navigateRequest true "方向 next/prev"
// @Success 200 {object} util.Response{data=service.NavigateResult}
// @Router /api/preview/sessions/{sessionId}/navigate [post]
func (ctrl *PreviewController) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	result, err := ctrl.PreviewService.Navigate(c.Request.Context(), c.Param("sessionId"), req.Direction)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, result)
}

// QuizAction 小测预览动作
// @Summary 对会话中的小测作答状态应用一次动作
// @Tags preview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "会话 ID"
// @Param action path string true "动作名"
// @Param request body service.QuizActionRequest false "动作参数"
// @Success 200 {object} util.Response{data=service.QuizActionResult}
// @Router /api/preview/sessions/{sessionId}/quiz/{action} [post]
func (ctrl *PreviewController) QuizAction(c *gin.Context) {
	var req service.QuizActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			util.BadRequest(c, err.Error())
			return
		}
	}

	result, err := ctrl.QuizPreview.Apply(
		c.Request.Context(),
		c.Param("sessionId"),
		service.QuizAction(c.Param("action")),
		req,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// 被守卫忽略的动作也是 200，状态原样返回
	if result.Ignored {
		util.SuccessWithMessage(c, "action ignored", result)
		return
	}
	util.Success(c, result)
}
