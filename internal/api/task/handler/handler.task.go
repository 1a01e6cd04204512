// Package taskhdl - handler công việc và bình luận.
package taskhdl

import (
	"fmt"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	basehdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/handler"
	taskdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/task/dto"
	taskmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/task/models"
	tasksvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/task/service"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"

	"github.com/gofiber/fiber/v3"
)

// TaskHandler xử lý request công việc.
type TaskHandler struct {
	*basehdl.BaseHandler[taskmodels.Task, taskdto.TaskCreateInput, taskdto.TaskUpdateInput]
	taskService *tasksvc.TaskService
}

// NewTaskHandler tạo TaskHandler mới.
func NewTaskHandler() (*TaskHandler, error) {
	taskService, err := tasksvc.NewTaskService()
	if err != nil {
		return nil, fmt.Errorf("tạo TaskService: %w", err)
	}
	baseHandler := basehdl.NewBaseHandler[taskmodels.Task, taskdto.TaskCreateInput, taskdto.TaskUpdateInput](taskService)
	return &TaskHandler{
		BaseHandler: baseHandler,
		taskService: taskService,
	}, nil
}

// currentUser lấy user đã xác thực từ context
func currentUser(c fiber.Ctx) (*authmodels.User, error) {
	user, ok := c.Locals("user").(authmodels.User)
	if !ok {
		return nil, common.ErrTokenMissing
	}
	return &user, nil
}

// HandleListTasks xử lý GET /tasks?status=&priority=&deadline_filter=
func (h *TaskHandler) HandleListTasks(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		q := &taskdto.TaskListQuery{
			Status:         c.Query("status"),
			Priority:       c.Query("priority"),
			DeadlineFilter: c.Query("deadline_filter"),
		}

		tasks, err := h.taskService.ListTasks(c.Context(), actor, q)
		h.HandleResponse(c, tasks, err)
		return nil
	})
}

// HandleStatistics xử lý GET /tasks/statistics
func (h *TaskHandler) HandleStatistics(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		stats, err := h.taskService.Statistics(c.Context(), actor)
		h.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleCommentCounts xử lý GET /tasks/comment-counts
func (h *TaskHandler) HandleCommentCounts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		counts, err := h.taskService.CommentCounts(c.Context())
		h.HandleResponse(c, counts, err)
		return nil
	})
}

// HandleCreateTask xử lý POST /tasks — trạng thái khởi tạo luôn todo
func (h *TaskHandler) HandleCreateTask(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input taskdto.TaskCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		task, err := h.taskService.CreateTask(c.Context(), actor, &input)
		h.HandleResponse(c, task, err)
		return nil
	})
}

// HandleGetTask xử lý GET /tasks/:id
func (h *TaskHandler) HandleGetTask(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if err := basehdl.ValidateRecordID(id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		task, err := h.taskService.GetTask(c.Context(), actor, id)
		h.HandleResponse(c, task, err)
		return nil
	})
}

// HandleUpdateTask xử lý PUT /tasks/:id
func (h *TaskHandler) HandleUpdateTask(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if err := basehdl.ValidateRecordID(id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input taskdto.TaskUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		update, err := h.TransformUpdateInputToUpdateData(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		task, err := h.taskService.UpdateTask(c.Context(), actor, id, update)
		h.HandleResponse(c, task, err)
		return nil
	})
}

// HandleDeleteTask xử lý DELETE /tasks/:id
func (h *TaskHandler) HandleDeleteTask(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if err := basehdl.ValidateRecordID(id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.taskService.DeleteTask(c.Context(), actor, id)
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}

// HandleBulkDelete xử lý POST /tasks/bulk-delete (admin/manager, check trong handler)
func (h *TaskHandler) HandleBulkDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if actor.Role != authmodels.RoleAdmin && actor.Role != authmodels.RoleManager {
			h.HandleResponse(c, nil, common.ErrPermissionDenied)
			return nil
		}

		var input taskdto.TaskBulkDeleteInput
		if err := basehdl.ParseAndValidate(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		for _, id := range input.IDs {
			if err := basehdl.ValidateRecordID(id); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		count, err := h.taskService.BulkDelete(c.Context(), input.IDs)
		h.HandleResponse(c, fiber.Map{"deleted_count": count}, err)
		return nil
	})
}
