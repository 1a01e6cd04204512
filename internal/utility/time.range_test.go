package utility

import (
	"testing"
	"time"
)

// Tuần ISO bắt đầu thứ Hai, khoảng trả về là nửa-mở [start, end)
func TestResolveTimeRangeWeek(t *testing.T) {
	r := ResolveTimeRange("week", "2024-W01")
	if r == nil {
		t.Fatal("Tuần hợp lệ phải resolve được khoảng thời gian")
	}

	// Tuần ISO 1 của 2024 bắt đầu thứ Hai 01/01/2024
	wantStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) {
		t.Errorf("Start sai: got %v, want %v", r.Start, wantStart)
	}
	if r.Start.Weekday() != time.Monday {
		t.Errorf("Tuần ISO phải bắt đầu thứ Hai, got %v", r.Start.Weekday())
	}
	if got := r.End.Sub(r.Start); got != 7*24*time.Hour {
		t.Errorf("Tuần phải dài đúng 7 ngày, got %v", got)
	}
}

// Tuần 1 của năm có ngày đầu năm rơi vào cuối tuần phải bắt đầu từ năm trước
func TestResolveTimeRangeWeekCrossYear(t *testing.T) {
	// 01/01/2023 là Chủ nhật: tuần ISO 1 của 2023 bắt đầu thứ Hai 02/01/2023
	r := ResolveTimeRange("week", "2023-W01")
	if r == nil {
		t.Fatal("Tuần hợp lệ phải resolve được khoảng thời gian")
	}
	wantStart := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) {
		t.Errorf("Start sai: got %v, want %v", r.Start, wantStart)
	}
}

// Năm 52 tuần không có tuần 53
func TestResolveTimeRangeWeek53(t *testing.T) {
	// 2020 có 53 tuần ISO
	if r := ResolveTimeRange("week", "2020-W53"); r == nil {
		t.Error("2020 có tuần 53, phải resolve được")
	}
	// 2023 chỉ có 52 tuần ISO
	if r := ResolveTimeRange("week", "2023-W53"); r != nil {
		t.Error("2023 không có tuần 53, phải trả về nil")
	}
}

func TestResolveTimeRangeMonth(t *testing.T) {
	r := ResolveTimeRange("month", "2024-02")
	if r == nil {
		t.Fatal("Tháng hợp lệ phải resolve được khoảng thời gian")
	}

	wantStart := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) || !r.End.Equal(wantEnd) {
		t.Errorf("Khoảng tháng sai: got [%v, %v), want [%v, %v)", r.Start, r.End, wantStart, wantEnd)
	}
}

// Tháng 12 phải tràn sang tháng 1 năm sau
func TestResolveTimeRangeMonthDecember(t *testing.T) {
	r := ResolveTimeRange("month", "2024-12")
	if r == nil {
		t.Fatal("Tháng hợp lệ phải resolve được khoảng thời gian")
	}
	wantEnd := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !r.End.Equal(wantEnd) {
		t.Errorf("End của tháng 12 sai: got %v, want %v", r.End, wantEnd)
	}
}

func TestResolveTimeRangeQuarter(t *testing.T) {
	r := ResolveTimeRange("quarter", "2024-Q4")
	if r == nil {
		t.Fatal("Quý hợp lệ phải resolve được khoảng thời gian")
	}

	wantStart := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) || !r.End.Equal(wantEnd) {
		t.Errorf("Khoảng quý sai: got [%v, %v), want [%v, %v)", r.Start, r.End, wantStart, wantEnd)
	}
}

func TestResolveTimeRangeYear(t *testing.T) {
	r := ResolveTimeRange("year", "2024")
	if r == nil {
		t.Fatal("Năm hợp lệ phải resolve được khoảng thời gian")
	}

	wantStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) || !r.End.Equal(wantEnd) {
		t.Errorf("Khoảng năm sai: got [%v, %v), want [%v, %v)", r.Start, r.End, wantStart, wantEnd)
	}
}

// Giá trị không hợp lệ trả về nil để caller bỏ qua filter thời gian
func TestResolveTimeRangeInvalid(t *testing.T) {
	cases := []struct {
		filter string
		value  string
	}{
		{"week", "abc"},
		{"week", "2024-W99"},
		{"month", "2024-13"},
		{"month", ""},
		{"quarter", "2024-Q5"},
		{"year", "notayear"},
		{"decade", "2020"},
		{"", "2024"},
	}

	for _, c := range cases {
		if r := ResolveTimeRange(c.filter, c.value); r != nil {
			t.Errorf("(%q, %q) phải trả về nil, got [%v, %v)", c.filter, c.value, r.Start, r.End)
		}
	}
}
