package app

import (
	"course_studio_backend/docs"
	"course_studio_backend/internal/config"
	"course_studio_backend/internal/middleware"
	"course_studio_backend/internal/model"
	"course_studio_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/me", c.auth.Me)
		authGroup.GET("/users/profile", c.user.GetProfile)
		authGroup.PUT("/users/profile", c.user.UpdateProfile)

		// 课程条目的资源下拉，登录即可访问
		authGroup.GET("/lectures/:id/resources", c.resource.GetLectureResources)

		a.registerInstructorRoutes(authGroup, c)
		a.registerPreviewRoutes(authGroup, c)
	}
}

// registerInstructorRoutes 课程编辑面，讲师与管理员可用
func (a *App) registerInstructorRoutes(rg *gin.RouterGroup, c *controllers) {
	instructor := rg.Group("/")
	instructor.Use(middleware.RoleMiddleware(model.Instructor, model.Admin))
	{
		// 课程
		instructor.POST("/courses", c.course.CreateCourse)
		instructor.GET("/courses", c.course.ListCourses)
		instructor.GET("/courses/:id", c.course.GetCourse)
		instructor.PUT("/courses/:id", c.course.UpdateCourse)
		instructor.DELETE("/courses/:id", c.course.DeleteCourse)
		instructor.POST("/courses/:id/publish", c.course.PublishCourse)

		// 章节
		instructor.POST("/courses/:id/sections", c.course.CreateSection)
		instructor.PUT("/courses/:id/sections/reorder", c.course.ReorderSections)
		instructor.PUT("/sections/:id", c.course.UpdateSection)
		instructor.DELETE("/sections/:id", c.course.DeleteSection)

		// 小节
		instructor.POST("/sections/:id/lectures", c.curriculum.CreateLecture)
		instructor.PUT("/sections/:id/lectures/reorder", c.curriculum.ReorderLectures)
		instructor.PUT("/lectures/:id", c.curriculum.UpdateLecture)
		instructor.DELETE("/lectures/:id", c.curriculum.DeleteLecture)
		instructor.POST("/lectures/:id/video", c.curriculum.UploadLectureVideo)

		// 小测与题目
		instructor.POST("/sections/:id/quizzes", c.curriculum.CreateQuiz)
		instructor.GET("/quizzes/:id", c.curriculum.GetQuiz)
		instructor.PUT("/quizzes/:id", c.curriculum.UpdateQuiz)
		instructor.DELETE("/quizzes/:id", c.curriculum.DeleteQuiz)
		instructor.POST("/quizzes/:id/questions", c.curriculum.AddQuizQuestion)
		instructor.PUT("/questions/:id", c.curriculum.UpdateQuizQuestion)
		instructor.DELETE("/questions/:id", c.curriculum.DeleteQuizQuestion)

		// 作业
		instructor.POST("/sections/:id/assignments", c.curriculum.CreateAssignment)
		instructor.PUT("/assignments/:id", c.curriculum.UpdateAssignment)
		instructor.DELETE("/assignments/:id", c.curriculum.DeleteAssignment)

		// 编程练习
		instructor.POST("/sections/:id/coding-exercises", c.curriculum.CreateCodingExercise)
		instructor.PUT("/coding-exercises/:id", c.curriculum.UpdateCodingExercise)
		instructor.DELETE("/coding-exercises/:id", c.curriculum.DeleteCodingExercise)

		// 小节资源管理
		instructor.POST("/lectures/:id/resources/file", c.resource.UploadResourceFile)
		instructor.POST("/lectures/:id/resources/source-code", c.resource.AddSourceCode)
		instructor.POST("/lectures/:id/resources/link", c.resource.AddExternalLink)
		instructor.DELETE("/resources/:id", c.resource.DeleteResource)
	}
}

// registerPreviewRoutes 学员视角预览，讲师与管理员可用
func (a *App) registerPreviewRoutes(rg *gin.RouterGroup, c *controllers) {
	preview := rg.Group("/preview")
	preview.Use(middleware.RoleMiddleware(model.Instructor, model.Admin))
	{
		preview.POST("/courses/:courseId/sessions", c.preview.OpenSession)
		preview.DELETE("/sessions/:sessionId", c.preview.CloseSession)
		preview.GET("/sessions/:sessionId/sidebar", c.preview.GetSidebar)
		preview.POST("/sessions/:sessionId/select", c.preview.SelectItem)
		preview.POST("/sessions/:sessionId/navigate", c.preview.Navigate)
		preview.POST("/sessions/:sessionId/quiz/:action", c.preview.QuizAction)
	}
}
