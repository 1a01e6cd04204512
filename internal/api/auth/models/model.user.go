// Package authmodels - model người dùng (User) thuộc domain auth.
package authmodels

// UserRole là vai trò của người dùng trong hệ thống
type UserRole string

// Các vai trò hợp lệ. "sales" và "sale" cùng tồn tại do dữ liệu lịch sử,
// cả hai đều thuộc nhóm sales khi xét phân quyền hiển thị.
const (
	RoleAdmin   UserRole = "admin"
	RoleSales   UserRole = "sales"
	RoleManager UserRole = "manager"
	RoleSale    UserRole = "sale"
	RoleIntern  UserRole = "intern"
	RoleSeeder  UserRole = "seeder"
	RoleAccount UserRole = "account"
	RoleContent UserRole = "content"
)

// AllRoles là danh sách tất cả các vai trò hợp lệ
var AllRoles = []UserRole{
	RoleAdmin, RoleSales, RoleManager, RoleSale,
	RoleIntern, RoleSeeder, RoleAccount, RoleContent,
}

// Valid kiểm tra vai trò có hợp lệ không. Giá trị lạ bị từ chối tại boundary,
// không coerce về vai trò mặc định.
func (r UserRole) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsSalesFamily kiểm tra vai trò thuộc nhóm sales (sales, sale, intern)
func (r UserRole) IsSalesFamily() bool {
	return r == RoleSales || r == RoleSale || r == RoleIntern
}

// User định nghĩa mô hình người dùng.
// User không bao giờ bị xóa vật lý: xóa user = is_active → false (soft-delete),
// các tham chiếu created_by/assigned_to vẫn giải quyết được.
type User struct {
	ID            string   `json:"id,omitempty" bson:"id,omitempty" index:"unique"`
	Username      string   `json:"username" bson:"username" index:"unique"`
	Email         string   `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password      string   `json:"-" bson:"password,omitempty"`
	FullName      string   `json:"full_name" bson:"full_name"`
	Position      string   `json:"position,omitempty" bson:"position,omitempty"`
	Phone         string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Avatar        string   `json:"avatar,omitempty" bson:"avatar,omitempty"`
	TargetMonthly float64  `json:"target_monthly" bson:"target_monthly"`
	Role          UserRole `json:"role" bson:"role" index:"single"`
	IsActive      bool     `json:"is_active" bson:"is_active"`
	CreatedAt     int64    `json:"created_at" bson:"created_at"`
	UpdatedAt     int64    `json:"updated_at" bson:"updated_at"`
}
