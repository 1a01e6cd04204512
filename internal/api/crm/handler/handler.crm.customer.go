// Package crmhdl - handler khách hàng tiềm năng và tương tác.
package crmhdl

import (
	"fmt"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	basehdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/handler"
	crmdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/dto"
	crmmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/models"
	crmvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/service"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"

	"github.com/gofiber/fiber/v3"
)

// CustomerHandler xử lý request khách hàng tiềm năng.
type CustomerHandler struct {
	*basehdl.BaseHandler[crmmodels.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput]
	customerService *crmvc.CustomerService
}

// NewCustomerHandler tạo CustomerHandler mới.
func NewCustomerHandler() (*CustomerHandler, error) {
	customerService, err := crmvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("tạo CustomerService: %w", err)
	}
	baseHandler := basehdl.NewBaseHandler[crmmodels.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput](customerService)
	return &CustomerHandler{
		BaseHandler:     baseHandler,
		customerService: customerService,
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

// HandleListCustomers xử lý GET /customers?sales_id=&status=
func (h *CustomerHandler) HandleListCustomers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customers, err := h.customerService.ListCustomers(c.Context(), actor, c.Query("sales_id"), c.Query("status"))
		h.HandleResponse(c, customers, err)
		return nil
	})
}

// HandleCreateCustomer xử lý POST /customers
func (h *CustomerHandler) HandleCreateCustomer(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input crmdto.CustomerCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customer, err := h.customerService.CreateCustomer(c.Context(), actor, &input)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandleGetCustomer xử lý GET /customers/:id
func (h *CustomerHandler) HandleGetCustomer(c fiber.Ctx) error {
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

		customer, err := h.customerService.GetCustomer(c.Context(), actor, id)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandleUpdateCustomer xử lý PUT /customers/:id
func (h *CustomerHandler) HandleUpdateCustomer(c fiber.Ctx) error {
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

		var input crmdto.CustomerUpdateInput
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

		customer, err := h.customerService.UpdateCustomer(c.Context(), actor, id, update)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandleDeleteCustomer xử lý DELETE /customers/:id (admin/manager, check trong handler)
func (h *CustomerHandler) HandleDeleteCustomer(c fiber.Ctx) error {
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

		err = h.customerService.DeleteCustomer(c.Context(), id)
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}
