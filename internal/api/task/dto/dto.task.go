// Package taskdto - cấu trúc input cho các route công việc.
package taskdto

// TaskCreateInput là input tạo công việc mới.
// Trạng thái khởi tạo luôn là todo, không nhận từ client.
type TaskCreateInput struct {
	Title       string `json:"title" bson:"title" validate:"required,min=1,no_xss"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	AssignedTo  string `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	Priority    string `json:"priority,omitempty" bson:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Deadline    int64  `json:"deadline,omitempty" bson:"deadline,omitempty"`
}

// TaskUpdateInput là input cập nhật partial công việc
type TaskUpdateInput struct {
	Title       string `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,min=1,no_xss"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	AssignedTo  string `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	Priority    string `json:"priority,omitempty" bson:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Status      string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=todo in_progress completed"`
	Deadline    *int64 `json:"deadline,omitempty" bson:"deadline,omitempty"`
}

// TaskBulkDeleteInput là input xóa hàng loạt công việc
type TaskBulkDeleteInput struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// TaskListQuery gom các tham số lọc danh sách công việc
type TaskListQuery struct {
	Status         string // active | completed
	Priority       string
	DeadlineFilter string // today | overdue
}

// CommentCreateInput là input tạo bình luận trên công việc
type CommentCreateInput struct {
	Message string `json:"message" validate:"required,min=1"`
}

// TaskStatisticsResult là kết quả thống kê công việc
type TaskStatisticsResult struct {
	Urgent     int64 `json:"urgent"`
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"inProgress"`
	DueToday   int64 `json:"dueToday"`
	Overdue    int64 `json:"overdue"`
}

// CommentCount là số bình luận của một công việc
type CommentCount struct {
	TaskID string `json:"task_id"`
	Count  int64  `json:"count"`
}
