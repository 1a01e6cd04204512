// Package clientdto - cấu trúc input cho các route client và tài liệu.
package clientdto

// ClientCreateInput là input tạo client mới
type ClientCreateInput struct {
	Name            string  `json:"name" bson:"name" validate:"required,min=1,no_xss"`
	Company         string  `json:"company,omitempty" bson:"company,omitempty" validate:"omitempty,no_xss"`
	ContactPerson   string  `json:"contact_person,omitempty" bson:"contact_person,omitempty" validate:"omitempty,no_xss"`
	Email           string  `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone           string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Address         string  `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,no_xss"`
	BusinessType    string  `json:"business_type,omitempty" bson:"business_type,omitempty"`
	ContractValue   float64 `json:"contract_value,omitempty" bson:"contract_value,omitempty" validate:"omitempty,gte=0"`
	ContractLink    string  `json:"contract_link,omitempty" bson:"contract_link,omitempty"`
	PaymentTerms    string  `json:"payment_terms,omitempty" bson:"payment_terms,omitempty"`
	InvoiceEmail    string  `json:"invoice_email,omitempty" bson:"invoice_email,omitempty" validate:"omitempty,email"`
	ClientType      string  `json:"client_type,omitempty" bson:"client_type,omitempty" validate:"omitempty,oneof=individual business"`
	Source          string  `json:"source,omitempty" bson:"source,omitempty"`
	AssignedSalesID string  `json:"assigned_sales_id,omitempty" bson:"assigned_sales_id,omitempty"`
	Notes           string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

// ClientUpdateInput là input cập nhật partial client
type ClientUpdateInput struct {
	Name            string   `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,no_xss"`
	Company         string   `json:"company,omitempty" bson:"company,omitempty" validate:"omitempty,no_xss"`
	ContactPerson   string   `json:"contact_person,omitempty" bson:"contact_person,omitempty" validate:"omitempty,no_xss"`
	Email           string   `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone           string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Address         string   `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,no_xss"`
	BusinessType    string   `json:"business_type,omitempty" bson:"business_type,omitempty"`
	ContractValue   *float64 `json:"contract_value,omitempty" bson:"contract_value,omitempty" validate:"omitempty,gte=0"`
	ContractLink    string   `json:"contract_link,omitempty" bson:"contract_link,omitempty"`
	PaymentTerms    string   `json:"payment_terms,omitempty" bson:"payment_terms,omitempty"`
	InvoiceEmail    string   `json:"invoice_email,omitempty" bson:"invoice_email,omitempty" validate:"omitempty,email"`
	ClientType      string   `json:"client_type,omitempty" bson:"client_type,omitempty" validate:"omitempty,oneof=individual business"`
	Source          string   `json:"source,omitempty" bson:"source,omitempty"`
	Status          string   `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=active archived"`
	AssignedSalesID string   `json:"assigned_sales_id,omitempty" bson:"assigned_sales_id,omitempty"`
	Notes           string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

// ClientBulkActionInput là input thao tác hàng loạt trên client
type ClientBulkActionInput struct {
	IDs    []string `json:"ids" validate:"required,min=1,dive,required"`
	Action string   `json:"action" validate:"required,oneof=delete archive"`
}

// DocumentCreateInput là input tạo tài liệu cho client
type DocumentCreateInput struct {
	Name   string `json:"name" bson:"name" validate:"required,min=1,no_xss"`
	Link   string `json:"link,omitempty" bson:"link,omitempty"`
	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending sent signed rejected"`
}

// DocumentUpdateInput là input cập nhật partial tài liệu
type DocumentUpdateInput struct {
	Name   string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,no_xss"`
	Link   string `json:"link,omitempty" bson:"link,omitempty"`
	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending sent signed rejected"`
}

// ClientStatisticsResult là kết quả thống kê client
type ClientStatisticsResult struct {
	TotalClients       int64   `json:"total_clients"`
	TotalContractValue float64 `json:"total_contract_value"`
	MonthClients       int64   `json:"month_clients"`
	MonthContractValue float64 `json:"month_contract_value"`
}
