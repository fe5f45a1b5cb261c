package model

// DateUndetermined 模型无法解析出具体日期时填写的占位日期
const DateUndetermined = "待定"

// PlanEntry 一条日程规划，date 为 YYYY-MM-DD 或 "待定"
type PlanEntry struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Item      string `json:"item"`
	Timestamp string `json:"timestamp"`
}
