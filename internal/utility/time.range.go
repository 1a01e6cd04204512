package utility

import (
	"fmt"
	"time"
)

// TimeRange là khoảng thời gian nửa-mở [Start, End):
// Start thuộc khoảng, End là mốc đầu của kỳ kế tiếp.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// StartMilli trả về mốc bắt đầu theo Unix milliseconds
func (r TimeRange) StartMilli() int64 {
	return r.Start.UnixMilli()
}

// EndMilli trả về mốc kết thúc (exclusive) theo Unix milliseconds
func (r TimeRange) EndMilli() int64 {
	return r.End.UnixMilli()
}

// ResolveTimeRange tính khoảng thời gian từ cặp (filter, value):
//   - week:    "2024-W01" — tuần ISO-8601, bắt đầu thứ Hai
//   - month:   "2024-01"
//   - quarter: "2024-Q1"
//   - year:    "2024"
//
// Giá trị không hợp lệ trả về nil: caller bỏ qua filter thời gian thay vì báo lỗi.
func ResolveTimeRange(timeFilter, timeValue string) *TimeRange {
	if timeValue == "" {
		return nil
	}

	switch timeFilter {
	case "week":
		return resolveWeek(timeValue)
	case "month":
		return resolveMonth(timeValue)
	case "quarter":
		return resolveQuarter(timeValue)
	case "year":
		return resolveYear(timeValue)
	}
	return nil
}

// resolveWeek tính khoảng của tuần ISO "YYYY-Www"
func resolveWeek(value string) *TimeRange {
	var year, week int
	if _, err := fmt.Sscanf(value, "%d-W%d", &year, &week); err != nil {
		return nil
	}
	if week < 1 || week > 53 {
		return nil
	}

	// Ngày 4/1 luôn thuộc tuần ISO thứ nhất của năm
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7 // Chủ nhật = 7 theo ISO
	}
	week1Monday := jan4.AddDate(0, 0, 1-weekday)

	start := week1Monday.AddDate(0, 0, (week-1)*7)

	// Năm 52 tuần không có tuần 53
	if isoYear, isoWeek := start.ISOWeek(); isoYear != year || isoWeek != week {
		return nil
	}

	return &TimeRange{Start: start, End: start.AddDate(0, 0, 7)}
}

// resolveMonth tính khoảng của tháng "YYYY-MM"
func resolveMonth(value string) *TimeRange {
	var year, month int
	if _, err := fmt.Sscanf(value, "%d-%d", &year, &month); err != nil {
		return nil
	}
	if month < 1 || month > 12 {
		return nil
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return &TimeRange{Start: start, End: start.AddDate(0, 1, 0)}
}

// resolveQuarter tính khoảng của quý "YYYY-Qn"
func resolveQuarter(value string) *TimeRange {
	var year, quarter int
	if _, err := fmt.Sscanf(value, "%d-Q%d", &year, &quarter); err != nil {
		return nil
	}
	if quarter < 1 || quarter > 4 {
		return nil
	}

	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	return &TimeRange{Start: start, End: start.AddDate(0, 3, 0)}
}

// resolveYear tính khoảng của năm "YYYY"
func resolveYear(value string) *TimeRange {
	var year int
	if _, err := fmt.Sscanf(value, "%d", &year); err != nil {
		return nil
	}
	if year < 1970 || year > 9999 {
		return nil
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &TimeRange{Start: start, End: start.AddDate(1, 0, 0)}
}
