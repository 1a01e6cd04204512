// Package router đăng ký các route thuộc domain crm: customers, interactions.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/handler"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/api/middleware"
	apirouter "github.com/dailongmedia2603/CRM-DAILONG/internal/api/router"
)

// Register đăng ký tất cả route crm lên api.
func Register(api fiber.Router, r *apirouter.Router) error {
	customerHandler, err := crmhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("tạo CustomerHandler: %w", err)
	}
	interactionHandler, err := crmhdl.NewInteractionHandler()
	if err != nil {
		return fmt.Errorf("tạo InteractionHandler: %w", err)
	}

	// Mỗi prefix dùng chung một bộ middleware (Use của group áp lên cả prefix);
	// các thao tác admin/manager-only được check vai trò trong handler.
	authed := []fiber.Handler{middleware.AuthMiddleware()}

	// GET /customers?sales_id=&status= — sales chỉ thấy khách của mình
	apirouter.RegisterRouteWithMiddleware(api, "/customers", "GET", "/", authed, customerHandler.HandleListCustomers)
	// POST /customers
	apirouter.RegisterRouteWithMiddleware(api, "/customers", "POST", "/", authed, customerHandler.HandleCreateCustomer)
	// GET /customers/:id
	apirouter.RegisterRouteWithMiddleware(api, "/customers", "GET", "/:id", authed, customerHandler.HandleGetCustomer)
	// PUT /customers/:id
	apirouter.RegisterRouteWithMiddleware(api, "/customers", "PUT", "/:id", authed, customerHandler.HandleUpdateCustomer)
	// DELETE /customers/:id — admin/manager, check trong handler
	apirouter.RegisterRouteWithMiddleware(api, "/customers", "DELETE", "/:id", authed, customerHandler.HandleDeleteCustomer)
	// GET /customers/:id/interactions — mới nhất trước
	apirouter.RegisterRouteWithMiddleware(api, "/customers", "GET", "/:id/interactions", authed, interactionHandler.HandleListByCustomer)

	// POST /interactions — stamp sales_id, cập nhật last_contact + total_revenue
	apirouter.RegisterRouteWithMiddleware(api, "/interactions", "POST", "/", authed, interactionHandler.HandleCreateInteraction)

	return nil
}
