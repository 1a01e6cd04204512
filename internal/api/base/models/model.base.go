// Package basemodels chứa các kiểu dữ liệu dùng chung cho tầng service/handler.
package basemodels

// PaginateResult là kết quả phân trang
type PaginateResult[T any] struct {
	Items     []T   `json:"items"`     // Danh sách bản ghi của trang hiện tại
	Page      int64 `json:"page"`      // Trang hiện tại (bắt đầu từ 1)
	Limit     int64 `json:"limit"`     // Số bản ghi mỗi trang
	ItemCount int64 `json:"itemCount"` // Số bản ghi thực tế của trang
	Total     int64 `json:"total"`     // Tổng số bản ghi khớp filter
	TotalPage int64 `json:"totalPage"` // Tổng số trang
}
