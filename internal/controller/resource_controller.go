package controller

import (
	"course_studio_backend/internal/service"
	"course_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// GetLectureResources 小节资源下拉数据
// @Summary 获取小节的下载文件、源码与外链
// @Tags resource
// @Produce json
// @Param id path string true "小节 ID"
// @Success 200 {object} util.Response{data=service.LectureResources}
// @Router /api/lectures/{id}/resources [get]
func (ctrl *ResourceController) GetLectureResources(c *gin.Context) {
	resources, err := ctrl.ResourceService.GetForLecture(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, resources)
}

// UploadResourceFile 上传下载类资源
// @Summary 上传资源文件
// @Tags resource
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "小节 ID"
// @Param file formData file true "资源文件"
// @Success 201 {object} util.Response
// @Router /api/lectures/{id}/resources/file [post]
func (ctrl *ResourceController) UploadResourceFile(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "file is required")
		return
	}

	resource, err := ctrl.ResourceService.UploadFile(c.Request.Context(), c.Param("id"), claims.UserID, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, resource)
}

type sourceCodeRequest struct {
	Title string `json:"title" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// AddSourceCode 添加源码资源
// @Summary 添加源码文件
// @Tags resource
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "小节 ID"
// @Param request body sourceCodeRequest true "源码内容"
// @Success 201 {object} util.Response
// @Router /api/lectures/{id}/resources/source-code [post]
func (ctrl *ResourceController) AddSourceCode(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req sourceCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	resource, err := ctrl.ResourceService.AddSourceCode(c.Param("id"), claims.UserID, req.Title, req.Code)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, resource)
}

type externalLinkRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
}

// AddExternalLink 添加外部链接资源
// @Summary 添加外部链接
// @Tags resource
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "小节 ID"
// @Param request body externalLinkRequest true "链接信息"
// @Success 201 {object} util.Response
// @Router /api/lectures/{id}/resources/link [post]
func (ctrl *ResourceController) AddExternalLink(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req externalLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	resource, err := ctrl.ResourceService.AddExternalLink(c.Param("id"), claims.UserID, req.Title, req.URL)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, resource)
}

// DeleteResource 删除资源
// @Summary 删除资源
// @Tags resource
// @Security BearerAuth
// @Param id path string true "资源 ID"
// @Success 200 {object} util.Response
// @Router /api/resources/{id} [delete]
func (ctrl *ResourceController) DeleteResource(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.ResourceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, nil)
}
