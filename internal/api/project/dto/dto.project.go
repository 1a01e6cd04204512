// Package projectdto - cấu trúc input cho các route dự án.
package projectdto

// ProjectCreateInput là input tạo dự án mới
type ProjectCreateInput struct {
	ClientID      string  `json:"client_id,omitempty" bson:"client_id,omitempty"`
	Name          string  `json:"name" bson:"name" validate:"required,min=1,no_xss"`
	WorkFileLink  string  `json:"work_file_link,omitempty" bson:"work_file_link,omitempty"`
	StartDate     int64   `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate       int64   `json:"end_date,omitempty" bson:"end_date,omitempty"`
	ContractValue float64 `json:"contract_value,omitempty" bson:"contract_value,omitempty" validate:"omitempty,gte=0"`
	Debt          float64 `json:"debt,omitempty" bson:"debt,omitempty" validate:"omitempty,gte=0"`
	AccountID     string  `json:"account_id,omitempty" bson:"account_id,omitempty"`
	ContentID     string  `json:"content_id,omitempty" bson:"content_id,omitempty"`
	SeederID      string  `json:"seeder_id,omitempty" bson:"seeder_id,omitempty"`
	Progress      string  `json:"progress,omitempty" bson:"progress,omitempty" validate:"omitempty,oneof=in_progress completed accepted"`
	Notes         string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

// ProjectUpdateInput là input cập nhật partial dự án
type ProjectUpdateInput struct {
	ClientID      string   `json:"client_id,omitempty" bson:"client_id,omitempty"`
	Name          string   `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,no_xss"`
	WorkFileLink  string   `json:"work_file_link,omitempty" bson:"work_file_link,omitempty"`
	StartDate     *int64   `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate       *int64   `json:"end_date,omitempty" bson:"end_date,omitempty"`
	ContractValue *float64 `json:"contract_value,omitempty" bson:"contract_value,omitempty" validate:"omitempty,gte=0"`
	Debt          *float64 `json:"debt,omitempty" bson:"debt,omitempty" validate:"omitempty,gte=0"`
	AccountID     string   `json:"account_id,omitempty" bson:"account_id,omitempty"`
	ContentID     string   `json:"content_id,omitempty" bson:"content_id,omitempty"`
	SeederID      string   `json:"seeder_id,omitempty" bson:"seeder_id,omitempty"`
	Progress      string   `json:"progress,omitempty" bson:"progress,omitempty" validate:"omitempty,oneof=in_progress completed accepted"`
	Status        string   `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=active archived"`
	Notes         string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

// ProjectListQuery gom các tham số lọc danh sách dự án
type ProjectListQuery struct {
	TimeFilter string
	TimeValue  string
	Status     string
	Progress   string
	Search     string
}

// ProjectStatisticsResult là kết quả thống kê dự án
type ProjectStatisticsResult struct {
	Total              int64   `json:"total"`
	InProgress         int64   `json:"in_progress"`
	Completed          int64   `json:"completed"`
	TotalContractValue float64 `json:"total_contract_value"`
	TotalDebt          float64 `json:"total_debt"`
}

// Option là một lựa chọn value/label cho dropdown
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
