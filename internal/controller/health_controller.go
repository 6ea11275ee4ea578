package controller

import (
	"course_studio_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// Health 健康检查
// @Summary 服务健康状态（数据库与 Redis 连通性）
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (ctrl *HealthController) Health(c *gin.Context) {
	status := gin.H{
		"status":   "ok",
		"database": "ok",
		"redis":    "ok",
	}
	healthy := true

	if sqlDB, err := ctrl.DB.DB(); err != nil || sqlDB.Ping() != nil {
		status["database"] = "unreachable"
		healthy = false
	}
	if err := ctrl.Redis.Ping(c.Request.Context()).Err(); err != nil {
		status["redis"] = "unreachable"
		healthy = false
	}

	if !healthy {
		status["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	util.Success(c, status)
}
