// Package systemhdl - handler khởi tạo và trạng thái hệ thống.
package systemhdl

import (
	"fmt"
	"time"

	basehdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/handler"
	systemsvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/system/service"

	"github.com/gofiber/fiber/v3"
)

// SystemHandler xử lý request hệ thống.
type SystemHandler struct {
	systemService *systemsvc.SystemService
}

// NewSystemHandler tạo SystemHandler mới.
func NewSystemHandler() (*SystemHandler, error) {
	systemService, err := systemsvc.NewSystemService()
	if err != nil {
		return nil, fmt.Errorf("tạo SystemService: %w", err)
	}
	return &SystemHandler{systemService: systemService}, nil
}

// HandleInitialize xử lý POST /initialize — seed idempotent
func (h *SystemHandler) HandleInitialize(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result, err := h.systemService.Initialize(c.Context())
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, result)
		return nil
	})
}

// HandleSystemStatus xử lý GET /system/status — đếm record từng collection
func (h *SystemHandler) HandleSystemStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		status, err := h.systemService.Status(c.Context())
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, status)
		return nil
	})
}

// HandleHealth xử lý GET /health — không cần auth
func HandleHealth(c fiber.Ctx) error {
	basehdl.HandleSuccess(c, fiber.Map{
		"status": "ok",
		"time":   time.Now().UnixMilli(),
	})
	return nil
}
