// Package crmdto - DTO cho domain crm.
package crmdto

// CustomerCreateInput đầu vào tạo khách hàng tiềm năng.
type CustomerCreateInput struct {
	Name            string  `json:"name" bson:"name" validate:"required,no_xss"`
	Phone           string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Company         string  `json:"company,omitempty" bson:"company,omitempty"`
	Status          string  `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=high normal low"`
	CareStatus      string  `json:"care_status,omitempty" bson:"care_status,omitempty" validate:"omitempty,oneof=potential_close thinking working silent rejected"`
	SalesResult     string  `json:"sales_result,omitempty" bson:"sales_result,omitempty" validate:"omitempty,oneof=signed_contract not_interested"`
	AssignedSalesID string  `json:"assigned_sales_id,omitempty" bson:"assigned_sales_id,omitempty"`
	PotentialValue  float64 `json:"potential_value,omitempty" bson:"potential_value,omitempty"`
	Notes           string  `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,no_xss"`
	Source          string  `json:"source,omitempty" bson:"source,omitempty"`
}

// CustomerUpdateInput đầu vào cập nhật khách (partial update).
type CustomerUpdateInput struct {
	Name            string   `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Phone           string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Company         string   `json:"company,omitempty" bson:"company,omitempty"`
	Status          string   `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=high normal low"`
	CareStatus      string   `json:"care_status,omitempty" bson:"care_status,omitempty" validate:"omitempty,oneof=potential_close thinking working silent rejected"`
	SalesResult     string   `json:"sales_result,omitempty" bson:"sales_result,omitempty" validate:"omitempty,oneof=signed_contract not_interested"`
	AssignedSalesID string   `json:"assigned_sales_id,omitempty" bson:"assigned_sales_id,omitempty"`
	PotentialValue  *float64 `json:"potential_value,omitempty" bson:"potential_value,omitempty"`
	Notes           string   `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,no_xss"`
	Source          string   `json:"source,omitempty" bson:"source,omitempty"`
}

// InteractionCreateInput đầu vào ghi nhận tương tác với khách.
type InteractionCreateInput struct {
	CustomerID       string  `json:"customer_id" bson:"customer_id" validate:"required"`
	Type             string  `json:"type" bson:"type" validate:"required,oneof=call email meeting follow_up sale"`
	Title            string  `json:"title" bson:"title" validate:"required,no_xss"`
	Description      string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	Date             int64   `json:"date,omitempty" bson:"date,omitempty"`
	RevenueGenerated float64 `json:"revenue_generated,omitempty" bson:"revenue_generated,omitempty" validate:"omitempty,gte=0"`
	NextAction       string  `json:"next_action,omitempty" bson:"next_action,omitempty"`
	NextActionDate   int64   `json:"next_action_date,omitempty" bson:"next_action_date,omitempty"`
}
