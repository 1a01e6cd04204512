package crmmodels

// InteractionType là loại tương tác với khách
type InteractionType string

const (
	InteractionCall     InteractionType = "call"
	InteractionEmail    InteractionType = "email"
	InteractionMeeting  InteractionType = "meeting"
	InteractionFollowUp InteractionType = "follow_up"
	InteractionSale     InteractionType = "sale"
)

// Interaction định nghĩa mô hình lịch sử tương tác với khách hàng.
// Append-only: tạo mới cập nhật last_contact và cộng dồn total_revenue
// của customer, không bao giờ sửa/xóa.
type Interaction struct {
	ID               string          `json:"id,omitempty" bson:"id,omitempty" index:"unique"`
	CustomerID       string          `json:"customer_id" bson:"customer_id" index:"single"`
	SalesID          string          `json:"sales_id" bson:"sales_id" index:"single"`
	Type             InteractionType `json:"type" bson:"type"`
	Title            string          `json:"title" bson:"title"`
	Description      string          `json:"description,omitempty" bson:"description,omitempty"`
	Date             int64           `json:"date" bson:"date"`
	RevenueGenerated float64         `json:"revenue_generated" bson:"revenue_generated"`
	NextAction       string          `json:"next_action,omitempty" bson:"next_action,omitempty"`
	NextActionDate   int64           `json:"next_action_date,omitempty" bson:"next_action_date,omitempty"`
	CreatedAt        int64           `json:"created_at" bson:"created_at"`
	UpdatedAt        int64           `json:"updated_at" bson:"updated_at"`
}
