// Package router đăng ký các route thuộc domain project.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/dailongmedia2603/CRM-DAILONG/internal/api/middleware"
	projecthdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/project/handler"
	apirouter "github.com/dailongmedia2603/CRM-DAILONG/internal/api/router"
)

// Register đăng ký tất cả route project lên api.
func Register(api fiber.Router, r *apirouter.Router) error {
	projectHandler, err := projecthdl.NewProjectHandler()
	if err != nil {
		return fmt.Errorf("tạo ProjectHandler: %w", err)
	}

	authed := []fiber.Handler{middleware.AuthMiddleware()}

	// Các route tĩnh đăng ký trước /:id để không bị param nuốt
	apirouter.RegisterRouteWithMiddleware(api, "/projects", "GET", "/statistics", authed, projectHandler.HandleStatistics)
	apirouter.RegisterRouteWithMiddleware(api, "/projects", "GET", "/progress-options", authed, projectHandler.HandleProgressOptions)
	apirouter.RegisterRouteWithMiddleware(api, "/projects", "GET", "/status-options", authed, projectHandler.HandleStatusOptions)

	// GET /projects?time_filter=&time_value=&status=&progress=&search=
	apirouter.RegisterRouteWithMiddleware(api, "/projects", "GET", "/", authed, projectHandler.HandleListProjects)
	// POST /projects — stamp created_by
	apirouter.RegisterRouteWithMiddleware(api, "/projects", "POST", "/", authed, projectHandler.HandleCreateProject)
	// GET /projects/:id
	apirouter.RegisterRouteWithMiddleware(api, "/projects", "GET", "/:id", authed, projectHandler.HandleGetProject)
	// PUT /projects/:id
	apirouter.RegisterRouteWithMiddleware(api, "/projects", "PUT", "/:id", authed, projectHandler.HandleUpdateProject)
	// DELETE /projects/:id — soft-delete, status chuyển archived
	apirouter.RegisterRouteWithMiddleware(api, "/projects", "DELETE", "/:id", authed, projectHandler.HandleDeleteProject)

	// GET /clients/:id/projects — dự án của một client, thuộc domain project.
	// Middleware của prefix /clients do router client sở hữu (đăng ký trước
	// trong SetupRoutes) nên route này không gắn lại AuthMiddleware.
	apirouter.RegisterRouteWithMiddleware(api, "/clients", "GET", "/:id/projects", nil, projectHandler.HandleListByClient)

	return nil
}
