// Package router đăng ký các route phân tích: sales, dashboard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dashboardhdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/dashboard/handler"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/api/middleware"
	apirouter "github.com/dailongmedia2603/CRM-DAILONG/internal/api/router"
)

// Register đăng ký tất cả route phân tích lên api.
func Register(api fiber.Router, r *apirouter.Router) error {
	dashboardHandler, err := dashboardhdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("tạo DashboardHandler: %w", err)
	}

	// Mỗi prefix dùng chung một bộ middleware (Use của group áp lên cả prefix);
	// GET /sales chỉ cho admin/manager, check vai trò trong handler.
	authed := []fiber.Handler{middleware.AuthMiddleware()}

	// GET /sales — danh sách sales đang active (admin/manager, check trong handler)
	apirouter.RegisterRouteWithMiddleware(api, "/sales", "GET", "/", authed, dashboardHandler.HandleListSales)
	// GET /sales/:id/analytics — sales chỉ xem được của mình, check trong service
	apirouter.RegisterRouteWithMiddleware(api, "/sales", "GET", "/:id/analytics", authed, dashboardHandler.HandleSalesAnalytics)

	// GET /dashboard/analytics
	apirouter.RegisterRouteWithMiddleware(api, "/dashboard", "GET", "/analytics", authed, dashboardHandler.HandleDashboardAnalytics)

	return nil
}
