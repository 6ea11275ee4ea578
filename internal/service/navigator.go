package service

import (
	"course_studio_backend/internal/model"
)

// 侧边栏导航：把整棵课程树压平成一个有序列表，
// 上一个/下一个都是对这张列表的线性扫描，到边界返回 none，不回绕。

// FlattenSections 保持章节顺序，章节内固定子顺序：
// 小节、小测、作业、编程练习。子顺序沿用既有前端行为，保持兼容。
func FlattenSections(sections []model.Section) []model.FlatItem {
	var items []model.FlatItem

	for _, section := range sections {
		for i := range section.Lectures {
			lecture := &section.Lectures[i]
			items = append(items, model.FlatItem{
				ItemID:    lecture.ID,
				ItemType:  DetectContentType(lecture.ContentType, lecture.HasVideo(), lecture.HasArticle()),
				SectionID: section.ID,
				Name:      lecture.Name,
			})
		}
		for i := range section.Quizzes {
			items = append(items, model.FlatItem{
				ItemID:    section.Quizzes[i].ID,
				ItemType:  model.ContentQuiz,
				SectionID: section.ID,
				Name:      section.Quizzes[i].Name,
			})
		}
		for i := range section.Assignments {
			items = append(items, model.FlatItem{
				ItemID:    section.Assignments[i].ID,
				ItemType:  model.ContentAssignment,
				SectionID: section.ID,
				Name:      section.Assignments[i].Name,
			})
		}
		for i := range section.CodingExercises {
			items = append(items, model.FlatItem{
				ItemID:    section.CodingExercises[i].ID,
				ItemType:  model.ContentCodingExercise,
				SectionID: section.ID,
				Name:      section.CodingExercises[i].Name,
			})
		}
	}

	return items
}

func indexOfItem(items []model.FlatItem, itemID string) int {
	for i := range items {
		if items[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// NextItem 返回当前项之后的条目；在末尾或找不到当前项时 ok 为 false
func NextItem(items []model.FlatItem, currentID string) (model.FlatItem, bool) {
	idx := indexOfItem(items, currentID)
	if idx < 0 || idx+1 >= len(items) {
		return model.FlatItem{}, false
	}
	return items[idx+1], true
}

// PrevItem 返回当前项之前的条目；在开头或找不到当前项时 ok 为 false
func PrevItem(items []model.FlatItem, currentID string) (model.FlatItem, bool) {
	idx := indexOfItem(items, currentID)
	if idx <= 0 {
		return model.FlatItem{}, false
	}
	return items[idx-1], true
}

// IsLastInSection 当前项之后没有同章节条目时为 true
func IsLastInSection(items []model.FlatItem, currentID string) bool {
	idx := indexOfItem(items, currentID)
	if idx < 0 {
		return false
	}
	if idx == len(items)-1 {
		return true
	}
	// 同章节条目连续排布，看下一项即可
	return items[idx+1].SectionID != items[idx].SectionID
}
