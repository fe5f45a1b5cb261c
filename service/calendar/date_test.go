package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCountdownTo(t *testing.T) {
	today := date(2025, time.July, 21)

	t.Run("SameDayIsToday", func(t *testing.T) {
		c := CountdownTo(today, today)
		if c.Bucket != BucketToday || c.Days != 0 {
			t.Errorf("Expected today/0, got %s/%d", c.Bucket, c.Days)
		}
		if c.Text() != "今天" {
			t.Errorf("Expected '今天', got '%s'", c.Text())
		}
	})

	t.Run("IgnoresTimeOfDay", func(t *testing.T) {
		lateToday := time.Date(2025, time.July, 21, 23, 50, 0, 0, time.UTC)
		earlyPlan := time.Date(2025, time.July, 22, 0, 10, 0, 0, time.UTC)
		c := CountdownTo(earlyPlan, lateToday)
		if c.Bucket != BucketFuture || c.Days != 1 {
			t.Errorf("Expected future/1, got %s/%d", c.Bucket, c.Days)
		}
	})

	t.Run("Future", func(t *testing.T) {
		c := CountdownTo(date(2025, time.July, 24), today)
		if c.Bucket != BucketFuture || c.Days != 3 {
			t.Errorf("Expected future/3, got %s/%d", c.Bucket, c.Days)
		}
		if c.Text() != "还有 3 天" {
			t.Errorf("Expected '还有 3 天', got '%s'", c.Text())
		}
	})

	t.Run("Past", func(t *testing.T) {
		c := CountdownTo(date(2025, time.July, 19), today)
		if c.Bucket != BucketPast || c.Days != -2 {
			t.Errorf("Expected past/-2, got %s/%d", c.Bucket, c.Days)
		}
		if c.Text() != "已过期" {
			t.Errorf("Expected '已过期', got '%s'", c.Text())
		}
	})

	t.Run("MonotonicInDayDifference", func(t *testing.T) {
		prev := CountdownTo(date(2025, time.July, 15), today).Days
		for d := 16; d <= 28; d++ {
			cur := CountdownTo(date(2025, time.July, d), today).Days
			if cur != prev+1 {
				t.Errorf("Day %d: expected %d, got %d", d, prev+1, cur)
			}
			prev = cur
		}
	})
}

func TestMondayOf(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"Monday", date(2025, time.July, 21), date(2025, time.July, 21)},
		{"Wednesday", date(2025, time.July, 23), date(2025, time.July, 21)},
		{"SundayMapsToSameWeek", date(2025, time.July, 27), date(2025, time.July, 21)},
		{"AcrossMonthBoundary", date(2025, time.August, 2), date(2025, time.July, 28)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MondayOf(tc.in)
			if !got.Equal(tc.want) {
				t.Errorf("MondayOf(%s) = %s, want %s", FormatDate(tc.in), FormatDate(got), FormatDate(tc.want))
			}
		})
	}

	t.Run("Idempotent", func(t *testing.T) {
		for d := 1; d <= 31; d++ {
			in := date(2025, time.July, d)
			once := MondayOf(in)
			twice := MondayOf(once)
			if !once.Equal(twice) {
				t.Errorf("MondayOf not idempotent for %s: %s vs %s", FormatDate(in), FormatDate(once), FormatDate(twice))
			}
		}
	})
}

func TestWeekNumberInMonth(t *testing.T) {
	// 2025-08-01 是周五，当月第一个星期一是 8 月 4 日
	t.Run("DaysBeforeFirstMondayFoldIntoWeekOne", func(t *testing.T) {
		for d := 1; d <= 3; d++ {
			if got := WeekNumberInMonth(date(2025, time.August, d)); got != 1 {
				t.Errorf("2025-08-%02d: expected week 1, got %d", d, got)
			}
		}
	})

	t.Run("WeekOfFirstMonday", func(t *testing.T) {
		for d := 4; d <= 10; d++ {
			if got := WeekNumberInMonth(date(2025, time.August, d)); got != 1 {
				t.Errorf("2025-08-%02d: expected week 1, got %d", d, got)
			}
		}
	})

	t.Run("SecondWeek", func(t *testing.T) {
		if got := WeekNumberInMonth(date(2025, time.August, 11)); got != 2 {
			t.Errorf("2025-08-11: expected week 2, got %d", got)
		}
		if got := WeekNumberInMonth(date(2025, time.August, 17)); got != 2 {
			t.Errorf("2025-08-17: expected week 2, got %d", got)
		}
	})

	t.Run("MonthStartingOnMonday", func(t *testing.T) {
		// 2025-09-01 是周一
		if got := WeekNumberInMonth(date(2025, time.September, 1)); got != 1 {
			t.Errorf("2025-09-01: expected week 1, got %d", got)
		}
		if got := WeekNumberInMonth(date(2025, time.September, 8)); got != 2 {
			t.Errorf("2025-09-08: expected week 2, got %d", got)
		}
	})
}
