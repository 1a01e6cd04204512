// Package router đăng ký các route thuộc domain task.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/dailongmedia2603/CRM-DAILONG/internal/api/middleware"
	apirouter "github.com/dailongmedia2603/CRM-DAILONG/internal/api/router"
	taskhdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/task/handler"
)

// Register đăng ký tất cả route task lên api.
func Register(api fiber.Router, r *apirouter.Router) error {
	taskHandler, err := taskhdl.NewTaskHandler()
	if err != nil {
		return fmt.Errorf("tạo TaskHandler: %w", err)
	}

	// Mỗi prefix dùng chung một bộ middleware (Use của group áp lên cả prefix);
	// bulk-delete được check vai trò admin/manager trong handler.
	authed := []fiber.Handler{middleware.AuthMiddleware()}

	// Các route tĩnh đăng ký trước /:id để không bị param nuốt
	apirouter.RegisterRouteWithMiddleware(api, "/tasks", "GET", "/statistics", authed, taskHandler.HandleStatistics)
	apirouter.RegisterRouteWithMiddleware(api, "/tasks", "GET", "/comment-counts", authed, taskHandler.HandleCommentCounts)
	apirouter.RegisterRouteWithMiddleware(api, "/tasks", "POST", "/bulk-delete", authed, taskHandler.HandleBulkDelete)

	// GET /tasks?status=active|completed&priority=&deadline_filter=today|overdue
	apirouter.RegisterRouteWithMiddleware(api, "/tasks", "GET", "/", authed, taskHandler.HandleListTasks)
	// POST /tasks — trạng thái khởi tạo luôn todo, gửi mail cho assignee
	apirouter.RegisterRouteWithMiddleware(api, "/tasks", "POST", "/", authed, taskHandler.HandleCreateTask)
	// GET /tasks/:id
	apirouter.RegisterRouteWithMiddleware(api, "/tasks", "GET", "/:id", authed, taskHandler.HandleGetTask)
	// PUT /tasks/:id
	apirouter.RegisterRouteWithMiddleware(api, "/tasks", "PUT", "/:id", authed, taskHandler.HandleUpdateTask)
	// DELETE /tasks/:id
	apirouter.RegisterRouteWithMiddleware(api, "/tasks", "DELETE", "/:id", authed, taskHandler.HandleDeleteTask)

	// Bình luận của công việc
	apirouter.RegisterRouteWithMiddleware(api, "/tasks", "GET", "/:id/comments", authed, taskHandler.HandleListComments)
	apirouter.RegisterRouteWithMiddleware(api, "/tasks", "POST", "/:id/comments", authed, taskHandler.HandleCreateComment)
	apirouter.RegisterRouteWithMiddleware(api, "/tasks", "DELETE", "/:id/comments/:commentId", authed, taskHandler.HandleDeleteComment)

	return nil
}
