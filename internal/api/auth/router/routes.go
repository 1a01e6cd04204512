// Package router đăng ký các route thuộc domain auth: đăng nhập, người dùng, migrate.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/handler"
	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/api/middleware"
	apirouter "github.com/dailongmedia2603/CRM-DAILONG/internal/api/router"
)

// Register đăng ký tất cả route auth/users lên api.
// Mỗi prefix dùng chung một bộ middleware (Use của group áp lên cả prefix);
// các thao tác admin-only được check vai trò trong handler.
func Register(api fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("tạo UserHandler: %w", err)
	}

	authed := []fiber.Handler{middleware.AuthMiddleware()}
	adminOnly := []fiber.Handler{middleware.AuthMiddleware(authmodels.RoleAdmin)}

	// POST /auth/register — đăng ký tài khoản, trả token + user
	apirouter.RegisterRouteWithMiddleware(api, "/auth", "POST", "/register", nil, userHandler.HandleRegister)
	// POST /auth/login — đăng nhập bằng username hoặc email
	apirouter.RegisterRouteWithMiddleware(api, "/auth", "POST", "/login", nil, userHandler.HandleLogin)
	// GET /auth/me — thông tin user hiện tại
	apirouter.RegisterRouteWithMiddleware(api, "/auth", "GET", "/me", authed, userHandler.HandleMe)

	// GET /users — danh sách user (mọi user đăng nhập)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "GET", "/", authed, userHandler.HandleListUsers)
	// POST /users — tạo user (admin, check trong handler)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "POST", "/", authed, userHandler.HandleCreateUser)
	// GET /users/roles/list — option list vai trò (đăng ký trước /:id để không bị nuốt route)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "GET", "/roles/list", authed, userHandler.HandleRoleOptions)
	// POST /users/bulk-delete — vô hiệu hóa nhiều user (admin, check trong handler)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "POST", "/bulk-delete", authed, userHandler.HandleBulkDeleteUsers)
	// GET /users/:id
	apirouter.RegisterRouteWithMiddleware(api, "/users", "GET", "/:id", authed, userHandler.HandleGetUser)
	// PUT /users/:id — admin hoặc chính chủ (check trong handler)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "PUT", "/:id", authed, userHandler.HandleUpdateUser)
	// DELETE /users/:id — soft-delete (admin, check trong handler)
	apirouter.RegisterRouteWithMiddleware(api, "/users", "DELETE", "/:id", authed, userHandler.HandleDeleteUser)

	// POST /migrate/fix-users — backfill username/position cho bản ghi cũ.
	// Prefix /migrate chỉ có route admin nên dùng middleware admin cho cả prefix.
	apirouter.RegisterRouteWithMiddleware(api, "/migrate", "POST", "/fix-users", adminOnly, userHandler.HandleFixUsers)

	return nil
}
