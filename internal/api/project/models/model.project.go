// Package projectmodels - model dự án.
package projectmodels

// ProjectProgress là tiến độ dự án
type ProjectProgress string

const (
	ProgressInProgress ProjectProgress = "in_progress"
	ProgressCompleted  ProjectProgress = "completed"
	ProgressAccepted   ProjectProgress = "accepted"
)

// ProjectStatus là trạng thái dự án
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusArchived ProjectStatus = "archived"
)

// Project định nghĩa mô hình dự án.
// Dự án không bao giờ bị xóa vật lý: delete chuyển status sang archived.
type Project struct {
	ID            string          `json:"id,omitempty" bson:"id,omitempty" index:"unique"`
	ClientID      string          `json:"client_id,omitempty" bson:"client_id,omitempty" index:"single"`
	Name          string          `json:"name" bson:"name" index:"text"`
	WorkFileLink  string          `json:"work_file_link,omitempty" bson:"work_file_link,omitempty"`
	StartDate     int64           `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate       int64           `json:"end_date,omitempty" bson:"end_date,omitempty"`
	ContractValue float64         `json:"contract_value" bson:"contract_value"`
	Debt          float64         `json:"debt" bson:"debt"`
	AccountID     string          `json:"account_id,omitempty" bson:"account_id,omitempty" index:"single"`
	ContentID     string          `json:"content_id,omitempty" bson:"content_id,omitempty" index:"single"`
	SeederID      string          `json:"seeder_id,omitempty" bson:"seeder_id,omitempty" index:"single"`
	Progress      ProjectProgress `json:"progress" bson:"progress" index:"single"`
	Status        ProjectStatus   `json:"status" bson:"status" index:"single"`
	CreatedBy     string          `json:"created_by" bson:"created_by" index:"single"`
	Notes         string          `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     int64           `json:"created_at" bson:"created_at"`
	UpdatedAt     int64           `json:"updated_at" bson:"updated_at"`
}
