// Package systemsvc - service khởi tạo dữ liệu và trạng thái hệ thống.
package systemsvc

import (
	"context"
	"fmt"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	authsvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/service"
	basesvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/service"
	crmmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/logger"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/query"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// SystemService xử lý seed dữ liệu mặc định và trạng thái hệ thống.
type SystemService struct {
	userCRUD     *authsvc.UserService
	customerCRUD *basesvc.BaseServiceMongoImpl[crmmodels.Customer]
}

// NewSystemService tạo SystemService mới.
func NewSystemService() (*SystemService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	customerColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Customers, common.ErrNotFound)
	}
	return &SystemService{
		userCRUD:     userService,
		customerCRUD: basesvc.NewBaseServiceMongo[crmmodels.Customer](customerColl),
	}, nil
}

// defaultUsers là bộ user mặc định được seed khi khởi tạo hệ thống
var defaultUsers = []struct {
	Username string
	Password string
	FullName string
	Role     authmodels.UserRole
}{
	{"admin", "admin123", "Quản trị viên", authmodels.RoleAdmin},
	{"manager", "manager123", "Trưởng phòng", authmodels.RoleManager},
	{"sales01", "sales123", "Nhân viên Sales 01", authmodels.RoleSales},
}

// Initialize seed user mặc định và dữ liệu mẫu. Idempotent:
// user đã tồn tại theo username thì bỏ qua, dữ liệu mẫu chỉ tạo khi
// collection khách hàng còn trống.
func (s *SystemService) Initialize(ctx context.Context) (map[string]interface{}, error) {
	createdUsers := 0
	var salesID string

	for _, seed := range defaultUsers {
		existing, err := s.userCRUD.FindOne(ctx, query.Eq("username", seed.Username), nil)
		if err == nil {
			if existing.Role == authmodels.RoleSales {
				salesID = existing.ID
			}
			continue
		}

		hashed, err := utility.HashPassword(seed.Password)
		if err != nil {
			return nil, err
		}
		user := authmodels.User{
			Username: seed.Username,
			Password: hashed,
			FullName: seed.FullName,
			Role:     seed.Role,
			IsActive: true,
		}
		created, err := s.userCRUD.InsertOne(ctx, user)
		if err != nil {
			return nil, err
		}
		if created.Role == authmodels.RoleSales {
			salesID = created.ID
		}
		createdUsers++
		logger.GetAppLogger().WithField("username", seed.Username).Info("Đã seed user mặc định")
	}

	createdCustomers, err := s.seedSampleCustomers(ctx, salesID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"created_users":     createdUsers,
		"created_customers": createdCustomers,
	}, nil
}

// seedSampleCustomers tạo khách hàng mẫu khi collection còn trống.
func (s *SystemService) seedSampleCustomers(ctx context.Context, salesID string) (int, error) {
	count, err := s.customerCRUD.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	samples := []crmmodels.Customer{
		{
			Name:            "Công ty TNHH Minh Phát",
			Phone:           "0901234567",
			Company:         "Minh Phát",
			Status:          crmmodels.CustomerStatusHigh,
			CareStatus:      crmmodels.CareStatusPotentialClose,
			AssignedSalesID: salesID,
			PotentialValue:  50000000,
			Source:          "facebook",
		},
		{
			Name:            "Anh Tuấn - Shop thời trang",
			Phone:           "0912345678",
			Status:          crmmodels.CustomerStatusNormal,
			CareStatus:      crmmodels.CareStatusThinking,
			AssignedSalesID: salesID,
			PotentialValue:  15000000,
			Source:          "referral",
		},
	}

	created := 0
	for _, sample := range samples {
		if _, err := s.customerCRUD.InsertOne(ctx, sample); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// Status đếm số record của từng collection đã đăng ký.
func (s *SystemService) Status(ctx context.Context) (map[string]int64, error) {
	status := map[string]int64{}
	for name, coll := range global.RegistryCollections.GetAll() {
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, common.NewError(common.ErrCodeDatabase, fmt.Sprintf("Đếm collection %s thất bại", name), common.StatusInternalServerError, err)
		}
		status[name] = count
	}
	return status, nil
}
