package dao

import (
	"errors"
	"sort"
	"time"

	"ai-planner-backend/model"

	"github.com/google/uuid"
)

var (
	ErrEmptyPlanField = errors.New("date and item are required")
	ErrPlanNotFound   = errors.New("plan not found")
)

// PlanStore 基于 JSON 文件的规划存储
type PlanStore struct {
	path string
}

func NewPlanStore(path string) *PlanStore {
	return &PlanStore{path: path}
}

// List 返回全部规划，按日期升序，无具体日期的排在最后
func (s *PlanStore) List() []model.PlanEntry {
	plans := readJSONFile[model.PlanEntry](s.path)
	sortPlans(plans)
	return plans
}

// Add 生成新规划并落盘
func (s *PlanStore) Add(date, item string) (model.PlanEntry, error) {
	if date == "" || item == "" {
		return model.PlanEntry{}, ErrEmptyPlanField
	}

	plan := model.PlanEntry{
		ID:        uuid.New().String(),
		Date:      date,
		Item:      item,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	plans := readJSONFile[model.PlanEntry](s.path)
	plans = append(plans, plan)
	if err := writeJSONFile(s.path, plans); err != nil {
		return model.PlanEntry{}, err
	}
	return plan, nil
}

// Delete 按 ID 删除规划，不存在时返回 ErrPlanNotFound
func (s *PlanStore) Delete(id string) error {
	plans := readJSONFile[model.PlanEntry](s.path)

	kept := plans[:0]
	for _, p := range plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(plans) {
		return ErrPlanNotFound
	}

	return writeJSONFile(s.path, kept)
}

// sortPlans 日期可排序的条目按 YYYY-MM-DD 字典序升序（即日期序），
// "待定"等无法解析的日期统一排在末尾
func sortPlans(plans []model.PlanEntry) {
	sort.SliceStable(plans, func(i, j int) bool {
		pi, pj := isPlaceholderDate(plans[i].Date), isPlaceholderDate(plans[j].Date)
		if pi != pj {
			return !pi
		}
		return plans[i].Date < plans[j].Date
	})
}

func isPlaceholderDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err != nil
}
