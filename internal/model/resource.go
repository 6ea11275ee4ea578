package model

type ResourceKind string

const (
	ResourceDownloadableFile ResourceKind = "downloadable_file"
	ResourceSourceCode       ResourceKind = "source_code"
	ResourceExternalLink     ResourceKind = "external_link"
)

// Resource 小节的附属资源；LectureID 只是查询用的弱引用，归属以小节为准
// swagger:model Resource
type Resource struct {
	UUIDBase
	LectureID  string       `gorm:"index;type:varchar(36)" json:"lectureId"`
	Kind       ResourceKind `gorm:"type:enum('downloadable_file','source_code','external_link');not null" json:"kind"`
	Title      string       `gorm:"size:255;not null" json:"title"`
	URL        string       `gorm:"size:255" json:"url,omitempty"`  // 下载文件/外链
	Code       string       `gorm:"type:text" json:"code,omitempty"` // 源码文件内容
	Size       int64        `gorm:"default:0" json:"size"`           // 字节
	UploaderID uint         `gorm:"index;type:bigint unsigned" json:"uploaderId"`
}

func (Resource) TableName() string {
	return "resources"
}
