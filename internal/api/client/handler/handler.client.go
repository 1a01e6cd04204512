// Package clienthdl - handler khách hàng đã ký hợp đồng.
package clienthdl

import (
	"fmt"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	basehdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/handler"
	clientdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/client/dto"
	clientmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/client/models"
	clientsvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/client/service"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"

	"github.com/gofiber/fiber/v3"
)

// ClientHandler xử lý request client.
type ClientHandler struct {
	*basehdl.BaseHandler[clientmodels.Client, clientdto.ClientCreateInput, clientdto.ClientUpdateInput]
	clientService *clientsvc.ClientService
}

// NewClientHandler tạo ClientHandler mới.
func NewClientHandler() (*ClientHandler, error) {
	clientService, err := clientsvc.NewClientService()
	if err != nil {
		return nil, fmt.Errorf("tạo ClientService: %w", err)
	}
	baseHandler := basehdl.NewBaseHandler[clientmodels.Client, clientdto.ClientCreateInput, clientdto.ClientUpdateInput](clientService)
	return &ClientHandler{
		BaseHandler:   baseHandler,
		clientService: clientService,
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

// HandleListClients xử lý GET /clients?status=
func (h *ClientHandler) HandleListClients(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		clients, err := h.clientService.ListClients(c.Context(), actor, c.Query("status"))
		h.HandleResponse(c, clients, err)
		return nil
	})
}

// HandleStatistics xử lý GET /clients/statistics
func (h *ClientHandler) HandleStatistics(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		stats, err := h.clientService.Statistics(c.Context(), actor)
		h.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleCreateClient xử lý POST /clients
func (h *ClientHandler) HandleCreateClient(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input clientdto.ClientCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		client, err := h.clientService.CreateClient(c.Context(), actor, &input)
		h.HandleResponse(c, client, err)
		return nil
	})
}

// HandleGetClient xử lý GET /clients/:id
func (h *ClientHandler) HandleGetClient(c fiber.Ctx) error {
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

		client, err := h.clientService.GetClient(c.Context(), actor, id)
		h.HandleResponse(c, client, err)
		return nil
	})
}

// HandleUpdateClient xử lý PUT /clients/:id
func (h *ClientHandler) HandleUpdateClient(c fiber.Ctx) error {
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

		var input clientdto.ClientUpdateInput
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

		client, err := h.clientService.UpdateClient(c.Context(), actor, id, update)
		h.HandleResponse(c, client, err)
		return nil
	})
}

// HandleDeleteClient xử lý DELETE /clients/:id (admin/manager, check trong handler)
func (h *ClientHandler) HandleDeleteClient(c fiber.Ctx) error {
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
		if actor.Role != authmodels.RoleAdmin && actor.Role != authmodels.RoleManager {
			h.HandleResponse(c, nil, common.ErrPermissionDenied)
			return nil
		}

		err = h.clientService.DeleteClient(c.Context(), id)
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}

// HandleBulkAction xử lý POST /clients/bulk-action (admin/manager, check trong handler)
func (h *ClientHandler) HandleBulkAction(c fiber.Ctx) error {
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

		var input clientdto.ClientBulkActionInput
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

		count, err := h.clientService.BulkAction(c.Context(), input.IDs, input.Action)
		h.HandleResponse(c, fiber.Map{"affected_count": count}, err)
		return nil
	})
}
