// Package dashboardhdl - handler phân tích sales và dashboard.
package dashboardhdl

import (
	"fmt"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	authsvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/service"
	basehdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/handler"
	dashboardsvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/dashboard/service"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"

	"github.com/gofiber/fiber/v3"
)

// DashboardHandler xử lý request phân tích.
type DashboardHandler struct {
	dashboardService *dashboardsvc.DashboardService
	userService      *authsvc.UserService
}

// NewDashboardHandler tạo DashboardHandler mới.
func NewDashboardHandler() (*DashboardHandler, error) {
	dashboardService, err := dashboardsvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("tạo DashboardService: %w", err)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("tạo UserService: %w", err)
	}
	return &DashboardHandler{
		dashboardService: dashboardService,
		userService:      userService,
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

// HandleListSales xử lý GET /sales — sales đang active (admin/manager, check trong handler)
func (h *DashboardHandler) HandleListSales(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		if actor.Role != authmodels.RoleAdmin && actor.Role != authmodels.RoleManager {
			basehdl.HandleError(c, common.ErrPermissionDenied)
			return nil
		}

		salesUsers, err := h.userService.ActiveSalesUsers(c.Context())
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, salesUsers)
		return nil
	})
}

// HandleSalesAnalytics xử lý GET /sales/:id/analytics
func (h *DashboardHandler) HandleSalesAnalytics(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		salesID := c.Params("id")
		if err := basehdl.ValidateRecordID(salesID); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		analytics, err := h.dashboardService.SalesAnalytics(c.Context(), actor, salesID)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, analytics)
		return nil
	})
}

// HandleDashboardAnalytics xử lý GET /dashboard/analytics
func (h *DashboardHandler) HandleDashboardAnalytics(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		analytics, err := h.dashboardService.DashboardAnalytics(c.Context(), actor)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, analytics)
		return nil
	})
}
