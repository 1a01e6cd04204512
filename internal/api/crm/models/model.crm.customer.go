// Package crmmodels - model khách hàng tiềm năng và tương tác thuộc domain crm.
package crmmodels

// CustomerStatus là mức độ tiềm năng của khách
type CustomerStatus string

const (
	CustomerStatusHigh   CustomerStatus = "high"
	CustomerStatusNormal CustomerStatus = "normal"
	CustomerStatusLow    CustomerStatus = "low"
)

// CareStatus là trạng thái chăm sóc khách
type CareStatus string

const (
	CareStatusPotentialClose CareStatus = "potential_close"
	CareStatusThinking       CareStatus = "thinking"
	CareStatusWorking        CareStatus = "working"
	CareStatusSilent         CareStatus = "silent"
	CareStatusRejected       CareStatus = "rejected"
)

// SalesResult là kết quả chốt sales
type SalesResult string

const (
	SalesResultSigned        SalesResult = "signed_contract"
	SalesResultNotInterested SalesResult = "not_interested"
)

// Customer định nghĩa mô hình khách hàng tiềm năng (lead).
// Khách bị xóa vật lý (chỉ admin/manager), khác với User và Project.
type Customer struct {
	ID              string         `json:"id,omitempty" bson:"id,omitempty" index:"unique"`
	Name            string         `json:"name" bson:"name" index:"text"`
	Phone           string         `json:"phone,omitempty" bson:"phone,omitempty"`
	Company         string         `json:"company,omitempty" bson:"company,omitempty"`
	Status          CustomerStatus `json:"status" bson:"status" index:"single"`
	CareStatus      CareStatus     `json:"care_status,omitempty" bson:"care_status,omitempty"`
	SalesResult     SalesResult    `json:"sales_result,omitempty" bson:"sales_result,omitempty"`
	AssignedSalesID string         `json:"assigned_sales_id,omitempty" bson:"assigned_sales_id,omitempty" index:"single"`
	TotalRevenue    float64        `json:"total_revenue" bson:"total_revenue"`
	PotentialValue  float64        `json:"potential_value" bson:"potential_value"`
	LastContact     int64          `json:"last_contact,omitempty" bson:"last_contact,omitempty"`
	Notes           string         `json:"notes,omitempty" bson:"notes,omitempty"`
	Source          string         `json:"source,omitempty" bson:"source,omitempty"`
	CreatedAt       int64          `json:"created_at" bson:"created_at"`
	UpdatedAt       int64          `json:"updated_at" bson:"updated_at"`
}
