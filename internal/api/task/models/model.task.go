// Package taskmodels - model công việc và bình luận.
package taskmodels

// TaskPriority là độ ưu tiên công việc
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// TaskStatus là trạng thái công việc
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task định nghĩa mô hình công việc. Công việc tạo mới luôn ở trạng thái todo.
type Task struct {
	ID          string       `json:"id,omitempty" bson:"id,omitempty" index:"unique"`
	Title       string       `json:"title" bson:"title" index:"text"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	AssignedTo  string       `json:"assigned_to,omitempty" bson:"assigned_to,omitempty" index:"single"`
	CreatedBy   string       `json:"created_by" bson:"created_by" index:"single"`
	Priority    TaskPriority `json:"priority" bson:"priority" index:"single"`
	Status      TaskStatus   `json:"status" bson:"status" index:"single"`
	Deadline    int64        `json:"deadline,omitempty" bson:"deadline,omitempty"`
	CompletedAt int64        `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	CreatedAt   int64        `json:"created_at" bson:"created_at"`
	UpdatedAt   int64        `json:"updated_at" bson:"updated_at"`
}

// TaskComment định nghĩa bình luận trên công việc. Append-only:
// chỉ tác giả hoặc admin/manager được xóa, không có cập nhật.
type TaskComment struct {
	ID        string `json:"id,omitempty" bson:"id,omitempty" index:"unique"`
	TaskID    string `json:"task_id" bson:"task_id" index:"single"`
	UserID    string `json:"user_id" bson:"user_id"`
	UserName  string `json:"user_name" bson:"user_name"`
	Message   string `json:"message" bson:"message"`
	CreatedAt int64  `json:"created_at" bson:"created_at"`
	UpdatedAt int64  `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
