// Package authhdl - handler xác thực và quản lý người dùng.
package authhdl

import (
	"fmt"

	authdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/dto"
	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	authsvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/service"
	basehdl "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/handler"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/api/middleware"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"

	"github.com/gofiber/fiber/v3"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("tạo UserService: %w", err)
	}
	baseHandler := basehdl.NewBaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
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

// HandleRegister xử lý POST /auth/register
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.RegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, token, err := h.userService.Register(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, authdto.LoginResult{Token: token, User: user}, nil)
		return nil
	})
}

// HandleLogin xử lý POST /auth/login
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, token, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, authdto.LoginResult{Token: token, User: user}, nil)
		return nil
	})
}

// HandleMe xử lý GET /auth/me
func (h *UserHandler) HandleMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleListUsers xử lý GET /users — mọi user đăng nhập đều xem được danh sách
func (h *UserHandler) HandleListUsers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		users, err := h.userService.ListUsers(c.Context())
		h.HandleResponse(c, users, err)
		return nil
	})
}

// HandleCreateUser xử lý POST /users (admin)
func (h *UserHandler) HandleCreateUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if actor.Role != authmodels.RoleAdmin {
			h.HandleResponse(c, nil, common.ErrPermissionDenied)
			return nil
		}

		var input authdto.UserCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.CreateUser(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleGetUser xử lý GET /users/:id
func (h *UserHandler) HandleGetUser(c fiber.Ctx) error {
	return h.FindOneById(c)
}

// HandleUpdateUser xử lý PUT /users/:id — admin hoặc chính chủ
func (h *UserHandler) HandleUpdateUser(c fiber.Ctx) error {
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
		if actor.Role != authmodels.RoleAdmin && actor.ID != id {
			h.HandleResponse(c, nil, common.ErrPermissionDenied)
			return nil
		}

		var input authdto.UserUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Chỉ admin được đổi role và trạng thái active
		if actor.Role != authmodels.RoleAdmin {
			input.Role = ""
			input.IsActive = nil
		}

		user, err := h.userService.UpdateUser(c.Context(), id, &input)
		if err == nil {
			// User có thể đang nằm trong cache xác thực
			middleware.GetAuthManager().InvalidateUser(id)
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleDeleteUser xử lý DELETE /users/:id — admin, không tự xóa chính mình.
// Xóa = soft-delete (is_active → false).
func (h *UserHandler) HandleDeleteUser(c fiber.Ctx) error {
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
		if actor.Role != authmodels.RoleAdmin {
			h.HandleResponse(c, nil, common.ErrPermissionDenied)
			return nil
		}
		if actor.ID == id {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeAuthRole,
				"Không thể tự xóa tài khoản của chính mình",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		err = h.userService.SoftDeleteUser(c.Context(), id)
		if err == nil {
			middleware.GetAuthManager().InvalidateUser(id)
		}
		h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}

// HandleBulkDeleteUsers xử lý POST /users/bulk-delete (admin)
func (h *UserHandler) HandleBulkDeleteUsers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserBulkDeleteInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if actor.Role != authmodels.RoleAdmin {
			h.HandleResponse(c, nil, common.ErrPermissionDenied)
			return nil
		}
		// Loại chính mình khỏi danh sách xóa
		ids := make([]string, 0, len(input.IDs))
		for _, id := range input.IDs {
			if id != actor.ID {
				ids = append(ids, id)
			}
		}

		count, err := h.userService.BulkSoftDelete(c.Context(), ids)
		if err == nil {
			for _, id := range ids {
				middleware.GetAuthManager().InvalidateUser(id)
			}
		}
		h.HandleResponse(c, fiber.Map{"deleted_count": count}, err)
		return nil
	})
}

// HandleRoleOptions xử lý GET /users/roles/list
func (h *UserHandler) HandleRoleOptions(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, authsvc.ListRoleOptions(), nil)
		return nil
	})
}

// HandleFixUsers xử lý POST /migrate/fix-users — backfill username/position (admin)
func (h *UserHandler) HandleFixUsers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		fixed, err := h.userService.FixUsers(c.Context())
		h.HandleResponse(c, fiber.Map{"fixed_count": fixed}, err)
		return nil
	})
}
