package calendar

import (
	"fmt"
	"time"

	"ai-planner-backend/model"
)

var weekdayLabels = [7]string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

// DayCell 周视图中的一天
type DayCell struct {
	Date    string   `json:"date"`
	Weekday string   `json:"weekday"`
	Day     int      `json:"day"`
	IsToday bool     `json:"is_today"`
	Events  []string `json:"events"`
}

// WeekView 周一到周日的 7 天视图
type WeekView struct {
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	WeekNumber int       `json:"week_number"`
	Title      string    `json:"title"`
	Days       []DayCell `json:"days"`
}

// BuildWeekView 构建包含 ref 的那一周的视图。规划按日期字符串精确匹配
// 放入对应日期格，"待定"等不匹配的日期不进入周历。
func BuildWeekView(ref, today time.Time, plans []model.PlanEntry) WeekView {
	monday := MondayOf(ref)
	todayStr := FormatDate(today)

	view := WeekView{
		Year:       monday.Year(),
		Month:      int(monday.Month()),
		WeekNumber: WeekNumberInMonth(monday),
		Days:       make([]DayCell, 0, 7),
	}
	view.Title = fmt.Sprintf("%d年%d月第%d周", view.Year, view.Month, view.WeekNumber)

	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		date := FormatDate(day)

		cell := DayCell{
			Date:    date,
			Weekday: weekdayLabels[i],
			Day:     day.Day(),
			IsToday: date == todayStr,
			Events:  []string{},
		}
		for _, p := range plans {
			if p.Date == date {
				cell.Events = append(cell.Events, p.Item)
			}
		}
		view.Days = append(view.Days, cell)
	}

	return view
}

// FilterStale 展示层过滤：丢弃早于上周一的规划，持久化文件不动。
// 日期无法解析的条目（如"待定"）保留，仍在规划列表中展示。
func FilterStale(plans []model.PlanEntry, today time.Time) []model.PlanEntry {
	lastMonday := FormatDate(MondayOf(today).AddDate(0, 0, -7))

	kept := make([]model.PlanEntry, 0, len(plans))
	for _, p := range plans {
		if _, err := time.Parse(DateLayout, p.Date); err != nil {
			kept = append(kept, p)
			continue
		}
		if p.Date >= lastMonday {
			kept = append(kept, p)
		}
	}
	return kept
}
