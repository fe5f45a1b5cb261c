package dao

import (
	"ai-planner-backend/model"
)

// HistoryStore 基于 JSON 文件的对话历史存储，只追加、不截断
type HistoryStore struct {
	path string
}

func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// All 返回全量历史，供前端展示
func (s *HistoryStore) All() []model.HistoryRecord {
	return readJSONFile[model.HistoryRecord](s.path)
}

// Append 追加历史记录
func (s *HistoryStore) Append(records ...model.HistoryRecord) error {
	history := readJSONFile[model.HistoryRecord](s.path)
	history = append(history, records...)
	return writeJSONFile(s.path, history)
}

// Replace 整体覆盖历史记录
func (s *HistoryStore) Replace(records []model.HistoryRecord) error {
	return writeJSONFile(s.path, records)
}

// ContextWindow 返回最近 n 条记录作为模型上下文，
// 只裁剪内存中的窗口，持久化文件保持完整
func (s *HistoryStore) ContextWindow(n int) []model.HistoryRecord {
	history := s.All()
	if len(history) > n {
		history = history[len(history)-n:]
	}
	return history
}
