package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrCourseNotFound     = errors.New("course not found")
	ErrSectionNotFound    = errors.New("section not found")
	ErrItemNotFound       = errors.New("curriculum item not found")
	ErrLectureNotFound    = errors.New("lecture not found")
	ErrSessionNotFound    = errors.New("preview session not found or expired")
	ErrInvalidQuizAction  = errors.New("quiz action not allowed in current state")
	ErrQuizNotPublishable = errors.New("quiz has questions that are not valid for publishing")
	ErrInvalidVideoExt    = errors.New("不支持的视频格式")
	ErrInvalidResourceExt = errors.New("不支持的资源文件格式")
)
