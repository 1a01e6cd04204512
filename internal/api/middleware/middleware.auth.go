package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	authsvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/service"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/logger"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/utility"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("tạo UserService: %w", err)
	}

	return &AuthManager{
		UserCRUD: userService,
		// Cache user 5 phút để không query DB mỗi request
		Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// getUser lấy user theo id từ cache hoặc database
func (am *AuthManager) getUser(userID string) (*authmodels.User, error) {
	cacheKey := "auth_user:" + userID
	if cached, found := am.Cache.Get(cacheKey); found {
		user := cached.(authmodels.User)
		return &user, nil
	}

	user, err := am.UserCRUD.FindOneById(context.Background(), userID)
	if err != nil {
		return nil, err
	}

	am.Cache.Set(cacheKey, user)
	return &user, nil
}

// InvalidateUser xóa user khỏi cache (gọi sau khi update/vô hiệu hóa user)
func (am *AuthManager) InvalidateUser(userID string) {
	am.Cache.Delete("auth_user:" + userID)
}

// AuthMiddleware middleware xác thực JWT cho Fiber.
// Token được parse stateless (HS256), sau đó load user để kiểm tra còn active.
// requireRoles rỗng = chỉ cần đăng nhập; có giá trị = role của user phải nằm trong danh sách.
// Role không nhận diện được bị từ chối, không fallback về full visibility.
func AuthMiddleware(requireRoles ...authmodels.UserRole) fiber.Handler {
	return func(c fiber.Ctx) error {
		authManager := GetAuthManager()

		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, parts[1])
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		user, err := authManager.getUser(claims.UserID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id": claims.UserID,
				"path":    c.Path(),
			}).Warn("[AUTH] User trong token không tồn tại")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// User bị vô hiệu hóa thì token còn hạn vẫn bị từ chối
		if !user.IsActive {
			HandleErrorResponse(c, common.ErrUserInactive)
			return nil
		}

		// Role trong DB là nguồn sự thật, không tin role trong token
		if !user.Role.Valid() {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id": user.ID,
				"role":    string(user.Role),
			}).Warn("[AUTH] Vai trò không nhận diện được, từ chối truy cập")
			HandleErrorResponse(c, common.ErrPermissionDenied)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID)
		c.Locals("user_role", user.Role)
		c.Locals("user", *user)

		if len(requireRoles) == 0 {
			return c.Next()
		}

		for _, role := range requireRoles {
			if user.Role == role {
				return c.Next()
			}
		}

		logger.GetAppLogger().WithFields(logrus.Fields{
			"user_id": user.ID,
			"role":    string(user.Role),
			"path":    c.Path(),
		}).Warn("[AUTH] Không đủ quyền truy cập")
		HandleErrorResponse(c, common.ErrPermissionDenied)
		return nil
	}
}

// GetUserFromContext lấy user đã xác thực từ context, trả về lỗi nếu chưa đăng nhập
func GetUserFromContext(c fiber.Ctx) (*authmodels.User, error) {
	user, ok := c.Locals("user").(authmodels.User)
	if !ok {
		return nil, common.ErrTokenMissing
	}
	return &user, nil
}
