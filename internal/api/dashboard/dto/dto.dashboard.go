// Package dashboarddto - cấu trúc kết quả cho các route phân tích.
package dashboarddto

import (
	crmmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/models"
)

// MonthCount là số tương tác trong một tháng "YYYY-MM"
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// SalesAnalyticsResult là kết quả phân tích của một nhân viên sales
type SalesAnalyticsResult struct {
	SalesID             string                  `json:"sales_id"`
	TotalCustomers      int64                   `json:"total_customers"`
	TotalRevenue        float64                 `json:"total_revenue"`
	StatusDistribution  map[string]int64        `json:"status_distribution"`
	InteractionsByMonth []MonthCount            `json:"interactions_by_month"`
	RecentInteractions  []crmmodels.Interaction `json:"recent_interactions"`
}

// TeamMemberPerformance là hiệu suất tháng hiện tại của một sales so với target
type TeamMemberPerformance struct {
	UserID          string  `json:"user_id"`
	FullName        string  `json:"full_name"`
	TargetMonthly   float64 `json:"target_monthly"`
	MonthRevenue    float64 `json:"month_revenue"`
	AchievedPercent float64 `json:"achieved_percent"`
}

// DashboardResult là kết quả tổng quan dashboard.
// TeamPerformance chỉ có với admin/manager.
type DashboardResult struct {
	TotalCustomers     int64                   `json:"total_customers"`
	TotalRevenue       float64                 `json:"total_revenue"`
	StatusDistribution map[string]int64        `json:"status_distribution"`
	TeamPerformance    []TeamMemberPerformance `json:"team_performance,omitempty"`
}
