package service

import (
	"course_studio_backend/internal/model"
	"course_studio_backend/pkg/logger"
	"course_studio_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// DetectContentType 根据显式类型与内容字段推断小节的渲染类型。
// 纯函数，相同输入永远得到相同输出。优先级：
//  1. 视频与图文同时存在（非法但可达的数据）：显式类型为 video 则取 video，
//     否则取 article。这是确定性的冲突裁决，不是对"正确"数据的猜测。
//  2. 只有一种内容存在：取该类型。
//  3. 都不存在：有显式类型则取显式类型。
//  4. 兜底 video。
func DetectContentType(explicit string, hasVideo, hasArticle bool) model.ContentType {
	if hasVideo && hasArticle {
		if explicit == string(model.ContentVideo) {
			return model.ContentVideo
		}
		return model.ContentArticle
	}
	if hasVideo {
		return model.ContentVideo
	}
	if hasArticle {
		return model.ContentArticle
	}
	if explicit != "" {
		return model.ContentType(explicit)
	}
	return model.ContentVideo
}

// ContentTypeService 是检测规则的唯一入口；渲染侧不允许各自嗅探字段
type ContentTypeService struct{}

func NewContentTypeService() *ContentTypeService {
	return &ContentTypeService{}
}

// DetectLecture 对小节做分类，冲突数据记日志并计数，留给上游修数据
func (s *ContentTypeService) DetectLecture(lecture *model.Lecture) model.ContentType {
	hasVideo := lecture.HasVideo()
	hasArticle := lecture.HasArticle()

	if hasVideo && hasArticle {
		monitoring.ContentTypeConflicts.Inc()
		logger.Log.Warn("lecture carries both video and article payloads",
			zap.String("lectureId", lecture.ID),
			zap.String("explicitType", lecture.ContentType),
		)
	}

	return DetectContentType(lecture.ContentType, hasVideo, hasArticle)
}
