package service

import (
	"context"
	"course_studio_backend/internal/config"
	"course_studio_backend/internal/model"
	"course_studio_backend/internal/repository"
	"course_studio_backend/internal/util"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"
)

// LectureResources 单个小节聚合后的资源，展示顺序即插入顺序，不去重
type LectureResources struct {
	Files      []model.Resource `json:"files"`
	SourceCode []model.Resource `json:"sourceCode"`
	Links      []model.Resource `json:"links"`
}

// GroupByLecture 把三类资源按归属小节分组。
// 没有 lectureId 的条目和指向未加载小节的孤儿条目都被丢弃：
// 资源永远只在它归属的小节下可见，孤儿可能只是最终一致加载的时序问题，不算错误。
func GroupByLecture(files, sourceCode, links []model.Resource, knownLectures map[string]bool) map[string]*LectureResources {
	grouped := make(map[string]*LectureResources)

	bucket := func(lectureID string) *LectureResources {
		if grouped[lectureID] == nil {
			grouped[lectureID] = &LectureResources{}
		}
		return grouped[lectureID]
	}

	keep := func(lectureID string) bool {
		return lectureID != "" && knownLectures[lectureID]
	}

	for _, r := range files {
		if keep(r.LectureID) {
			b := bucket(r.LectureID)
			b.Files = append(b.Files, r)
		}
	}
	for _, r := range sourceCode {
		if keep(r.LectureID) {
			b := bucket(r.LectureID)
			b.SourceCode = append(b.SourceCode, r)
		}
	}
	for _, r := range links {
		if keep(r.LectureID) {
			b := bucket(r.LectureID)
			b.Links = append(b.Links, r)
		}
	}

	return grouped
}

// splitByKind 把一条平铺的资源列表按类别拆开，保持原有顺序
func splitByKind(resources []model.Resource) (files, sourceCode, links []model.Resource) {
	for _, r := range resources {
		switch r.Kind {
		case model.ResourceDownloadableFile:
			files = append(files, r)
		case model.ResourceSourceCode:
			sourceCode = append(sourceCode, r)
		case model.ResourceExternalLink:
			links = append(links, r)
		}
	}
	return
}

type ResourceService struct {
	ResourceRepo   *repository.ResourceRepository
	LectureRepo    *repository.LectureRepository
	SectionRepo    *repository.SectionRepository
	StorageService *StorageService
	Cfg            *config.Config
}

func NewResourceService(
	resourceRepo *repository.ResourceRepository,
	lectureRepo *repository.LectureRepository,
	sectionRepo *repository.SectionRepository,
	storageService *StorageService,
	cfg *config.Config,
) *ResourceService {
	return &ResourceService{
		ResourceRepo:   resourceRepo,
		LectureRepo:    lectureRepo,
		SectionRepo:    sectionRepo,
		StorageService: storageService,
		Cfg:            cfg,
	}
}

// GetForLecture 单个小节的资源下拉数据
func (s *ResourceService) GetForLecture(lectureID string) (*LectureResources, error) {
	if _, err := s.LectureRepo.FindByID(lectureID); err != nil {
		return nil, util.ErrLectureNotFound
	}

	resources, err := s.ResourceRepo.FindByLecture(lectureID)
	if err != nil {
		return nil, err
	}

	files, sourceCode, links := splitByKind(resources)
	return &LectureResources{Files: files, SourceCode: sourceCode, Links: links}, nil
}

// GroupForCourse 整门课的资源映射，侧边栏与下拉填充用
func (s *ResourceService) GroupForCourse(sections []model.Section) (map[string]*LectureResources, error) {
	knownLectures := make(map[string]bool)
	var lectureIDs []string
	for _, section := range sections {
		for _, lecture := range section.Lectures {
			knownLectures[lecture.ID] = true
			lectureIDs = append(lectureIDs, lecture.ID)
		}
	}

	resources, err := s.ResourceRepo.FindByLectureIDs(lectureIDs)
	if err != nil {
		return nil, err
	}

	files, sourceCode, links := splitByKind(resources)
	return GroupByLecture(files, sourceCode, links, knownLectures), nil
}

// UploadFile 上传下载类资源文件并挂到小节下
func (s *ResourceService) UploadFile(ctx context.Context, lectureID string, uploaderID uint, file *multipart.FileHeader) (*model.Resource, error) {
	if _, err := s.LectureRepo.FindByID(lectureID); err != nil {
		return nil, util.ErrLectureNotFound
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// 深度验证 MIME 类型
	allowedTypes := []string{util.MimePDF, util.MimeImage, util.MimeText, util.MimeOctetStream, "application/zip", "application/msword", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"}
	if _, err := util.ValidateMimeType(src, allowedTypes); err != nil {
		return nil, fmt.Errorf("非法的文件内容: %v", err)
	}
	// 重置读取指针
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	ext := filepath.Ext(file.Filename)
	filename := "resources/" + time.Now().Format("20060102150405") + "_" + util.GenerateRandomString(6) + ext

	url, err := s.StorageService.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	resource := &model.Resource{
		LectureID:  lectureID,
		Kind:       model.ResourceDownloadableFile,
		Title:      file.Filename,
		URL:        url,
		Size:       file.Size,
		UploaderID: uploaderID,
	}
	if err := s.ResourceRepo.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// AddSourceCode 源码文件直接存文本内容，预览时内联展示
func (s *ResourceService) AddSourceCode(lectureID string, uploaderID uint, title, code string) (*model.Resource, error) {
	if _, err := s.LectureRepo.FindByID(lectureID); err != nil {
		return nil, util.ErrLectureNotFound
	}

	resource := &model.Resource{
		LectureID:  lectureID,
		Kind:       model.ResourceSourceCode,
		Title:      title,
		Code:       code,
		Size:       int64(len(code)),
		UploaderID: uploaderID,
	}
	if err := s.ResourceRepo.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) AddExternalLink(lectureID string, uploaderID uint, title, url string) (*model.Resource, error) {
	if _, err := s.LectureRepo.FindByID(lectureID); err != nil {
		return nil, util.ErrLectureNotFound
	}

	resource := &model.Resource{
		LectureID:  lectureID,
		Kind:       model.ResourceExternalLink,
		Title:      title,
		URL:        url,
		UploaderID: uploaderID,
	}
	if err := s.ResourceRepo.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) Delete(ctx context.Context, id string) error {
	resource, err := s.ResourceRepo.FindByID(id)
	if err != nil {
		return err
	}

	// 下载类资源连同存储里的文件一起清理，失败不阻塞删除
	if resource.Kind == model.ResourceDownloadableFile && resource.URL != "" {
		s.StorageService.Delete(ctx, resource.URL)
	}

	return s.ResourceRepo.Delete(id)
}
