package calendar

import (
	"fmt"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

type Bucket string

const (
	BucketToday  Bucket = "today"
	BucketFuture Bucket = "future"
	BucketPast   Bucket = "past"
)

// Countdown 距规划日期的整天数及其分类
type Countdown struct {
	Days   int    `json:"days"`
	Bucket Bucket `json:"bucket"`
}

// CountdownTo 计算从 today 到 planDate 的倒计时。
// 两端都归零到当天零点，与一天中的具体时刻无关。
func CountdownTo(planDate, today time.Time) Countdown {
	from := midnight(today)
	to := midnight(planDate)

	days := int(math.Ceil(to.Sub(from).Hours() / 24))
	switch {
	case days == 0:
		return Countdown{Days: 0, Bucket: BucketToday}
	case days > 0:
		return Countdown{Days: days, Bucket: BucketFuture}
	default:
		return Countdown{Days: days, Bucket: BucketPast}
	}
}

// Text 倒计时的展示文案
func (c Countdown) Text() string {
	switch c.Bucket {
	case BucketToday:
		return "今天"
	case BucketFuture:
		return fmt.Sprintf("还有 %d 天", c.Days)
	default:
		return "已过期"
	}
}

// MondayOf 返回 t 所在周的星期一零点。
// 使用 ISO 周序（周日折算为 6）保证周一恒为一周的起点。
func MondayOf(t time.Time) time.Time {
	return midnight(t).AddDate(0, 0, 1-isoWeekday(t))
}

// WeekNumberInMonth 返回 t 在当月的周序号，从 1 开始。
// 第 1 周是包含当月第一个星期一的那一周；位于第一个星期一
// 之前但仍属当月的日期也算第 1 周。
func WeekNumberInMonth(t time.Time) int {
	d := midnight(t)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())

	firstMonday := first
	if wd := isoWeekday(first); wd != 1 {
		firstMonday = first.AddDate(0, 0, 8-wd)
	}

	if d.Before(firstMonday) {
		return 1
	}

	diffDays := int(math.Floor(d.Sub(firstMonday).Hours() / 24))
	return diffDays/7 + 1
}

// FormatDate 格式化为 YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// isoWeekday 周一=1 ... 周日=7
func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
