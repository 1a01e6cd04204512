// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	authdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/dto"
	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	basesvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/service"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/query"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Users, common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
	}, nil
}

// checkDuplicate kiểm tra username/email đã tồn tại chưa (loại trừ excludeID khi update).
// Username và email trùng trả về lỗi 409.
func (s *UserService) checkDuplicate(ctx context.Context, username, email, excludeID string) error {
	conditions := []bson.M{}
	if username != "" {
		conditions = append(conditions, query.Eq("username", username))
	}
	if email != "" {
		conditions = append(conditions, query.Eq("email", email))
	}
	if len(conditions) == 0 {
		return nil
	}

	filter := query.Or(conditions...)
	if excludeID != "" {
		filter = query.And(filter, query.Ne("id", excludeID))
	}

	count, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return err
	}
	if count > 0 {
		return common.NewError(common.ErrCodeDatabaseQuery, "Username hoặc email đã tồn tại", common.StatusConflict, nil)
	}
	return nil
}

// Register đăng ký tài khoản mới, trả về user và token đăng nhập.
func (s *UserService) Register(ctx context.Context, input *authdto.RegisterInput) (*authmodels.User, string, error) {
	if err := s.checkDuplicate(ctx, input.Username, input.Email, ""); err != nil {
		return nil, "", err
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, "", common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
	}

	role := authmodels.UserRole(input.Role)
	if input.Role == "" {
		role = authmodels.RoleSales
	}
	if !role.Valid() {
		return nil, "", common.NewError(common.ErrCodeValidationInput, "Vai trò không hợp lệ: "+input.Role, common.StatusBadRequest, nil)
	}

	user := authmodels.User{
		Username:      input.Username,
		Email:         input.Email,
		Password:      hashed,
		FullName:      input.FullName,
		Position:      input.Position,
		Phone:         input.Phone,
		Role:          role,
		TargetMonthly: input.TargetMonthly,
		IsActive:      true,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, created.ID, string(created.Role))
	if err != nil {
		return nil, "", err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID, "username": created.Username}).Info("Đăng ký tài khoản mới")
	return &created, token, nil
}

// verifyCredentials kiểm tra thông tin đăng nhập trên user đã nạp (nil = không
// tìm thấy). Mọi trường hợp sai (không có user, user bị khóa, sai mật khẩu)
// trả về cùng một lỗi 401 để không lộ thông tin tài khoản nào tồn tại.
func verifyCredentials(user *authmodels.User, password string) error {
	if user == nil || !user.IsActive {
		return common.ErrInvalidCredentials
	}
	if !utility.CheckPassword(password, user.Password) {
		return common.ErrInvalidCredentials
	}
	return nil
}

// Login đăng nhập bằng username hoặc email.
func (s *UserService) Login(ctx context.Context, input *authdto.LoginInput) (*authmodels.User, string, error) {
	filter := query.Or(
		query.Eq("username", input.Username),
		query.Eq("email", input.Username),
	)

	var found *authmodels.User
	user, err := s.FindOne(ctx, filter, nil)
	switch {
	case err == nil:
		found = &user
	case !errors.Is(err, common.ErrNotFound):
		return nil, "", err
	}

	if err := verifyCredentials(found, input.Password); err != nil {
		return nil, "", err
	}

	token, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, found.ID, string(found.Role))
	if err != nil {
		return nil, "", err
	}

	return found, token, nil
}

// CreateUser tạo người dùng mới (admin).
func (s *UserService) CreateUser(ctx context.Context, input *authdto.UserCreateInput) (*authmodels.User, error) {
	if err := s.checkDuplicate(ctx, input.Username, input.Email, ""); err != nil {
		return nil, err
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
	}

	user := authmodels.User{
		Username:      input.Username,
		Email:         input.Email,
		Password:      hashed,
		FullName:      input.FullName,
		Position:      input.Position,
		Phone:         input.Phone,
		Avatar:        input.Avatar,
		Role:          authmodels.UserRole(input.Role),
		TargetMonthly: input.TargetMonthly,
		IsActive:      true,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser cập nhật partial người dùng theo id.
// Đổi username/email phải check unique trước; đổi password được hash lại.
func (s *UserService) UpdateUser(ctx context.Context, id string, input *authdto.UserUpdateInput) (*authmodels.User, error) {
	if input.Username != "" || input.Email != "" {
		if err := s.checkDuplicate(ctx, input.Username, input.Email, id); err != nil {
			return nil, err
		}
	}

	dataMap, err := utility.ToMap(input)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể convert dữ liệu cập nhật", common.StatusInternalServerError, err)
	}

	if input.Password != "" {
		hashed, err := utility.HashPassword(input.Password)
		if err != nil {
			return nil, common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
		}
		dataMap["password"] = hashed
	}

	if len(dataMap) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không có trường nào để cập nhật", common.StatusBadRequest, nil)
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: dataMap})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SoftDeleteUser vô hiệu hóa người dùng (is_active = false).
// User không bao giờ bị xóa vật lý để các tham chiếu created_by còn giải quyết được.
func (s *UserService) SoftDeleteUser(ctx context.Context, id string) error {
	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"is_active": false},
	})
	return err
}

// BulkSoftDelete vô hiệu hóa nhiều người dùng, trả về số lượng bị ảnh hưởng.
func (s *UserService) BulkSoftDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.UpdateMany(ctx, query.In("id", ids), &basesvc.UpdateData{
		Set: map[string]interface{}{"is_active": false},
	}, nil)
}

// ListUsers trả về danh sách người dùng, mới nhất trước.
func (s *UserService) ListUsers(ctx context.Context) ([]authmodels.User, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.Find(ctx, bson.M{}, opts)
}

// ActiveSalesUsers trả về danh sách user nhóm sales đang active.
// Bao gồm cả role "sales" lẫn "sale" do dữ liệu lịch sử dùng cả hai tên.
func (s *UserService) ActiveSalesUsers(ctx context.Context) ([]authmodels.User, error) {
	filter := query.And(
		query.In("role", []authmodels.UserRole{authmodels.RoleSales, authmodels.RoleSale}),
		query.Eq("is_active", true),
	)
	opts := mongoopts.Find().SetSort(bson.D{{Key: "full_name", Value: 1}})
	return s.Find(ctx, filter, opts)
}

// ListRoleOptions trả về danh sách vai trò cho dropdown.
func ListRoleOptions() []authdto.RoleOption {
	labels := map[authmodels.UserRole]string{
		authmodels.RoleAdmin:   "Quản trị viên",
		authmodels.RoleSales:   "Sales",
		authmodels.RoleManager: "Quản lý",
		authmodels.RoleSale:    "Sale",
		authmodels.RoleIntern:  "Thực tập sinh",
		authmodels.RoleSeeder:  "Seeder",
		authmodels.RoleAccount: "Account",
		authmodels.RoleContent: "Content",
	}
	options := make([]authdto.RoleOption, 0, len(authmodels.AllRoles))
	for _, role := range authmodels.AllRoles {
		options = append(options, authdto.RoleOption{Value: string(role), Label: labels[role]})
	}
	return options
}

// FixUsers backfill username/position cho các bản ghi cũ thiếu dữ liệu.
// Username lấy từ phần trước @ của email, position mặc định theo vai trò.
func (s *UserService) FixUsers(ctx context.Context) (int64, error) {
	filter := query.Or(
		query.Eq("username", ""),
		query.Exists("username", false),
		query.Eq("position", ""),
		query.Exists("position", false),
	)

	users, err := s.Find(ctx, filter, nil)
	if err != nil {
		return 0, err
	}

	var fixed int64
	for _, user := range users {
		set := map[string]interface{}{}
		if user.Username == "" && user.Email != "" {
			set["username"] = strings.SplitN(user.Email, "@", 2)[0]
		}
		if user.Position == "" {
			set["position"] = defaultPositionForRole(user.Role)
		}
		if len(set) == 0 {
			continue
		}
		set["updated_at"] = time.Now().UnixMilli()
		if _, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{Set: set}); err != nil {
			logrus.WithFields(logrus.Fields{"user_id": user.ID, "error": err.Error()}).Warn("FixUsers: không cập nhật được user")
			continue
		}
		fixed++
	}

	return fixed, nil
}

func defaultPositionForRole(role authmodels.UserRole) string {
	switch role {
	case authmodels.RoleAdmin:
		return "Quản trị viên"
	case authmodels.RoleManager:
		return "Quản lý"
	case authmodels.RoleSales, authmodels.RoleSale:
		return "Nhân viên kinh doanh"
	case authmodels.RoleIntern:
		return "Thực tập sinh"
	default:
		return "Nhân viên"
	}
}
