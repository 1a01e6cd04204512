package taskhdl

import (
	basehdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/handler"
	taskdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/task/dto"

	"github.com/gofiber/fiber/v3"
)

// HandleListComments xử lý GET /tasks/:id/comments — thứ tự hội thoại
func (h *TaskHandler) HandleListComments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		taskID := c.Params("id")
		if err := basehdl.ValidateRecordID(taskID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comments, err := h.taskService.ListComments(c.Context(), actor, taskID)
		h.HandleResponse(c, comments, err)
		return nil
	})
}

// HandleCreateComment xử lý POST /tasks/:id/comments
func (h *TaskHandler) HandleCreateComment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		taskID := c.Params("id")
		if err := basehdl.ValidateRecordID(taskID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input taskdto.CommentCreateInput
		if err := basehdl.ParseAndValidate(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.taskService.CreateComment(c.Context(), actor, taskID, &input)
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleDeleteComment xử lý DELETE /tasks/:id/comments/:commentId
// Chỉ tác giả hoặc admin/manager được xóa, check trong service.
func (h *TaskHandler) HandleDeleteComment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		taskID := c.Params("id")
		commentID := c.Params("commentId")
		if err := basehdl.ValidateRecordID(taskID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateRecordID(commentID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.taskService.DeleteComment(c.Context(), actor, taskID, commentID)
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}
