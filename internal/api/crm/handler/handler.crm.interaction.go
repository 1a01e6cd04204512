package crmhdl

import (
	"fmt"

	basehdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/handler"
	crmdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/dto"
	crmvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/service"

	"github.com/gofiber/fiber/v3"
)

// InteractionHandler xử lý request lịch sử tương tác.
type InteractionHandler struct {
	interactionService *crmvc.InteractionService
}

// NewInteractionHandler tạo InteractionHandler mới.
func NewInteractionHandler() (*InteractionHandler, error) {
	interactionService, err := crmvc.NewInteractionService()
	if err != nil {
		return nil, fmt.Errorf("tạo InteractionService: %w", err)
	}
	return &InteractionHandler{interactionService: interactionService}, nil
}

// HandleListByCustomer xử lý GET /customers/:id/interactions — mới nhất trước
func (h *InteractionHandler) HandleListByCustomer(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		customerID := c.Params("id")
		if err := basehdl.ValidateRecordID(customerID); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		interactions, err := h.interactionService.ListByCustomer(c.Context(), actor, customerID)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, interactions)
		return nil
	})
}

// HandleCreateInteraction xử lý POST /interactions
func (h *InteractionHandler) HandleCreateInteraction(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		var input crmdto.InteractionCreateInput
		if err := basehdl.ParseAndValidate(c, &input); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		interaction, err := h.interactionService.CreateInteraction(c.Context(), actor, &input)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, interaction)
		return nil
	})
}
