// Package clientmodels - model khách hàng đã ký hợp đồng (Client) và tài liệu.
package clientmodels

// ClientType là loại khách hàng
type ClientType string

const (
	ClientTypeIndividual ClientType = "individual"
	ClientTypeBusiness   ClientType = "business"
)

// ClientStatus là trạng thái client
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusArchived ClientStatus = "archived"
)

// Client định nghĩa mô hình khách hàng đã ký hợp đồng.
// Client bị xóa vật lý (khác Project); bulk-action hỗ trợ delete và archive.
type Client struct {
	ID              string       `json:"id,omitempty" bson:"id,omitempty" index:"unique"`
	Name            string       `json:"name" bson:"name" index:"text"`
	Company         string       `json:"company,omitempty" bson:"company,omitempty"`
	ContactPerson   string       `json:"contact_person,omitempty" bson:"contact_person,omitempty"`
	Email           string       `json:"email,omitempty" bson:"email,omitempty"`
	Phone           string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Address         string       `json:"address,omitempty" bson:"address,omitempty"`
	BusinessType    string       `json:"business_type,omitempty" bson:"business_type,omitempty"`
	ContractValue   float64      `json:"contract_value" bson:"contract_value"`
	ContractLink    string       `json:"contract_link,omitempty" bson:"contract_link,omitempty"`
	PaymentTerms    string       `json:"payment_terms,omitempty" bson:"payment_terms,omitempty"`
	InvoiceEmail    string       `json:"invoice_email,omitempty" bson:"invoice_email,omitempty"`
	ClientType      ClientType   `json:"client_type,omitempty" bson:"client_type,omitempty"`
	Source          string       `json:"source,omitempty" bson:"source,omitempty"`
	Status          ClientStatus `json:"status" bson:"status" index:"single"`
	AssignedSalesID string       `json:"assigned_sales_id,omitempty" bson:"assigned_sales_id,omitempty" index:"single"`
	CreatedBy       string       `json:"created_by" bson:"created_by" index:"single"`
	Notes           string       `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       int64        `json:"created_at" bson:"created_at"`
	UpdatedAt       int64        `json:"updated_at" bson:"updated_at"`
}

// DocumentStatus là trạng thái tài liệu của client
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusSent     DocumentStatus = "sent"
	DocumentStatusSigned   DocumentStatus = "signed"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// ClientDocument định nghĩa tài liệu thuộc về một client,
// địa chỉ hóa bằng client_id + id của tài liệu.
type ClientDocument struct {
	ID        string         `json:"id,omitempty" bson:"id,omitempty" index:"unique"`
	ClientID  string         `json:"client_id" bson:"client_id" index:"single"`
	Name      string         `json:"name" bson:"name"`
	Link      string         `json:"link,omitempty" bson:"link,omitempty"`
	Status    DocumentStatus `json:"status" bson:"status"`
	CreatedBy string         `json:"created_by" bson:"created_by"`
	CreatedAt int64          `json:"created_at" bson:"created_at"`
	UpdatedAt int64          `json:"updated_at" bson:"updated_at"`
}
