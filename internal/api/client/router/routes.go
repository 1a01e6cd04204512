// Package router đăng ký các route thuộc domain client: clients, documents.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	clienthdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/client/handler"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/api/middleware"
	apirouter "github.com/dailongmedia2603/CRM-DAILONG/internal/api/router"
)

// Register đăng ký tất cả route client lên api.
func Register(api fiber.Router, r *apirouter.Router) error {
	clientHandler, err := clienthdl.NewClientHandler()
	if err != nil {
		return fmt.Errorf("tạo ClientHandler: %w", err)
	}
	documentHandler, err := clienthdl.NewDocumentHandler()
	if err != nil {
		return fmt.Errorf("tạo DocumentHandler: %w", err)
	}

	// Mỗi prefix dùng chung một bộ middleware (Use của group áp lên cả prefix);
	// xóa và thao tác hàng loạt được check vai trò admin/manager trong handler.
	// Router này sở hữu middleware của prefix /clients: các route /clients/...
	// của domain khác (vd. project) đăng ký sau và dựa vào Use ở đây.
	authed := []fiber.Handler{middleware.AuthMiddleware()}

	// GET /clients?status= — lọc theo visibility của actor
	apirouter.RegisterRouteWithMiddleware(api, "/clients", "GET", "/", authed, clientHandler.HandleListClients)
	// POST /clients
	apirouter.RegisterRouteWithMiddleware(api, "/clients", "POST", "/", authed, clientHandler.HandleCreateClient)
	// GET /clients/statistics — đăng ký trước /:id để không bị param nuốt
	apirouter.RegisterRouteWithMiddleware(api, "/clients", "GET", "/statistics", authed, clientHandler.HandleStatistics)
	// POST /clients/bulk-action — delete | archive (admin/manager, check trong handler)
	apirouter.RegisterRouteWithMiddleware(api, "/clients", "POST", "/bulk-action", authed, clientHandler.HandleBulkAction)
	// GET /clients/:id
	apirouter.RegisterRouteWithMiddleware(api, "/clients", "GET", "/:id", authed, clientHandler.HandleGetClient)
	// PUT /clients/:id
	apirouter.RegisterRouteWithMiddleware(api, "/clients", "PUT", "/:id", authed, clientHandler.HandleUpdateClient)
	// DELETE /clients/:id — admin/manager, check trong handler
	apirouter.RegisterRouteWithMiddleware(api, "/clients", "DELETE", "/:id", authed, clientHandler.HandleDeleteClient)

	// Tài liệu của client, địa chỉ hóa bằng client_id + docId
	apirouter.RegisterRouteWithMiddleware(api, "/clients", "GET", "/:id/documents", authed, documentHandler.HandleListDocuments)
	apirouter.RegisterRouteWithMiddleware(api, "/clients", "POST", "/:id/documents", authed, documentHandler.HandleCreateDocument)
	apirouter.RegisterRouteWithMiddleware(api, "/clients", "PUT", "/:id/documents/:docId", authed, documentHandler.HandleUpdateDocument)
	apirouter.RegisterRouteWithMiddleware(api, "/clients", "DELETE", "/:id/documents/:docId", authed, documentHandler.HandleDeleteDocument)

	return nil
}
