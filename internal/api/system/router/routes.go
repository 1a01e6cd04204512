// Package router đăng ký các route hệ thống: initialize, status, health.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/dailongmedia2603/CRM-DAILONG/internal/api/middleware"
	apirouter "github.com/dailongmedia2603/CRM-DAILONG/internal/api/router"
	systemhdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/system/handler"
)

// Register đăng ký tất cả route hệ thống lên api.
func Register(api fiber.Router, r *apirouter.Router) error {
	systemHandler, err := systemhdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("tạo SystemHandler: %w", err)
	}

	authed := []fiber.Handler{middleware.AuthMiddleware()}

	// POST /initialize — seed user mặc định + dữ liệu mẫu, idempotent
	apirouter.RegisterRouteWithMiddleware(api, "/initialize", "POST", "/", nil, systemHandler.HandleInitialize)
	// GET /system/status
	apirouter.RegisterRouteWithMiddleware(api, "/system", "GET", "/status", authed, systemHandler.HandleSystemStatus)
	// GET /health — không cần auth
	apirouter.RegisterRouteWithMiddleware(api, "/health", "GET", "/", nil, systemhdl.HandleHealth)

	return nil
}
