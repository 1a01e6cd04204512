package clienthdl

import (
	"fmt"

	basehdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/handler"
	clientdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/client/dto"
	clientsvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/client/service"

	"github.com/gofiber/fiber/v3"
)

// DocumentHandler xử lý request tài liệu của client.
type DocumentHandler struct {
	documentService *clientsvc.DocumentService
}

// NewDocumentHandler tạo DocumentHandler mới.
func NewDocumentHandler() (*DocumentHandler, error) {
	documentService, err := clientsvc.NewDocumentService()
	if err != nil {
		return nil, fmt.Errorf("tạo DocumentService: %w", err)
	}
	return &DocumentHandler{documentService: documentService}, nil
}

// HandleListDocuments xử lý GET /clients/:id/documents
func (h *DocumentHandler) HandleListDocuments(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		clientID := c.Params("id")
		if err := basehdl.ValidateRecordID(clientID); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		documents, err := h.documentService.ListByClient(c.Context(), actor, clientID)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, documents)
		return nil
	})
}

// HandleCreateDocument xử lý POST /clients/:id/documents
func (h *DocumentHandler) HandleCreateDocument(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		clientID := c.Params("id")
		if err := basehdl.ValidateRecordID(clientID); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		var input clientdto.DocumentCreateInput
		if err := basehdl.ParseAndValidate(c, &input); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		document, err := h.documentService.CreateDocument(c.Context(), actor, clientID, &input)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, document)
		return nil
	})
}

// HandleUpdateDocument xử lý PUT /clients/:id/documents/:docId
func (h *DocumentHandler) HandleUpdateDocument(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		clientID := c.Params("id")
		docID := c.Params("docId")
		if err := basehdl.ValidateRecordID(clientID); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		if err := basehdl.ValidateRecordID(docID); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		var input clientdto.DocumentUpdateInput
		if err := basehdl.ParseAndValidate(c, &input); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		update, err := basehdl.BuildUpdateData(&input)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		document, err := h.documentService.UpdateDocument(c.Context(), actor, clientID, docID, update)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, document)
		return nil
	})
}

// HandleDeleteDocument xử lý DELETE /clients/:id/documents/:docId
func (h *DocumentHandler) HandleDeleteDocument(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		clientID := c.Params("id")
		docID := c.Params("docId")
		if err := basehdl.ValidateRecordID(clientID); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		if err := basehdl.ValidateRecordID(docID); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		if err := h.documentService.DeleteDocument(c.Context(), actor, clientID, docID); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, fiber.Map{"deleted": true})
		return nil
	})
}
