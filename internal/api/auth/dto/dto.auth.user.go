// Package authdto - DTO cho domain auth.
package authdto

// RegisterInput đầu vào đăng ký tài khoản.
type RegisterInput struct {
	Username      string  `json:"username" bson:"username" validate:"required,min=3,no_xss"`
	Email         string  `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Password      string  `json:"password" bson:"-" validate:"required,min=6"`
	FullName      string  `json:"full_name" bson:"full_name" validate:"required,no_xss"`
	Position      string  `json:"position,omitempty" bson:"position,omitempty"`
	Phone         string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Role          string  `json:"role,omitempty" bson:"role,omitempty" validate:"omitempty,oneof=admin sales manager sale intern seeder account content"`
	TargetMonthly float64 `json:"target_monthly,omitempty" bson:"target_monthly,omitempty"`
}

// LoginInput đầu vào đăng nhập. Username nhận cả username lẫn email.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserCreateInput đầu vào tạo người dùng (admin).
type UserCreateInput struct {
	Username      string  `json:"username" bson:"username" validate:"required,min=3,no_xss"`
	Email         string  `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Password      string  `json:"password" bson:"-" validate:"required,min=6"`
	FullName      string  `json:"full_name" bson:"full_name" validate:"required,no_xss"`
	Position      string  `json:"position,omitempty" bson:"position,omitempty"`
	Phone         string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Avatar        string  `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Role          string  `json:"role" bson:"role" validate:"required,oneof=admin sales manager sale intern seeder account content"`
	TargetMonthly float64 `json:"target_monthly,omitempty" bson:"target_monthly,omitempty"`
}

// UserUpdateInput đầu vào cập nhật người dùng (partial update).
// Field không gửi lên giữ nguyên giá trị hiện có.
type UserUpdateInput struct {
	Username      string   `json:"username,omitempty" bson:"username,omitempty" validate:"omitempty,min=3,no_xss"`
	Email         string   `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Password      string   `json:"password,omitempty" bson:"-" validate:"omitempty,min=6"`
	FullName      string   `json:"full_name,omitempty" bson:"full_name,omitempty" validate:"omitempty,no_xss"`
	Position      string   `json:"position,omitempty" bson:"position,omitempty"`
	Phone         string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Avatar        string   `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Role          string   `json:"role,omitempty" bson:"role,omitempty" validate:"omitempty,oneof=admin sales manager sale intern seeder account content"`
	TargetMonthly *float64 `json:"target_monthly,omitempty" bson:"target_monthly,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty" bson:"is_active,omitempty"`
}

// UserBulkDeleteInput đầu vào xóa nhiều người dùng.
type UserBulkDeleteInput struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// LoginResult kết quả đăng nhập/đăng ký: token kèm thông tin user.
type LoginResult struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// RoleOption một lựa chọn vai trò cho dropdown phía client.
type RoleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
