// Package crmvc - service khách hàng tiềm năng và tương tác.
package crmvc

import (
	"context"
	"fmt"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	basesvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/service"
	crmdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/dto"
	crmmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// CustomerService xử lý nghiệp vụ khách hàng tiềm năng.
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Customer]
}

// NewCustomerService tạo CustomerService mới.
func NewCustomerService() (*CustomerService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Customers, common.ErrNotFound)
	}
	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Customer](coll),
	}, nil
}

// isSalesScoped kiểm tra vai trò chỉ được thấy khách của mình
func isSalesScoped(role authmodels.UserRole) bool {
	return role == authmodels.RoleSales || role == authmodels.RoleSale
}

// ListCustomers trả về danh sách khách theo filter sales_id/status.
// Vai trò sales bị ép scope về khách của chính mình bất kể sales_id truyền lên.
func (s *CustomerService) ListCustomers(ctx context.Context, actor *authmodels.User, salesID, status string) ([]crmmodels.Customer, error) {
	conditions := []bson.M{}

	if isSalesScoped(actor.Role) {
		conditions = append(conditions, query.Eq("assigned_sales_id", actor.ID))
	} else if salesID != "" {
		conditions = append(conditions, query.Eq("assigned_sales_id", salesID))
	}
	if status != "" {
		conditions = append(conditions, query.Eq("status", status))
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.Find(ctx, query.And(conditions...), opts)
}

// GetCustomer trả về khách theo id, kiểm tra quyền truy cập của actor.
// Vai trò sales truy cập khách không phải của mình nhận 403.
func (s *CustomerService) GetCustomer(ctx context.Context, actor *authmodels.User, id string) (*crmmodels.Customer, error) {
	customer, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if isSalesScoped(actor.Role) && customer.AssignedSalesID != actor.ID {
		return nil, common.ErrPermissionDenied
	}
	return &customer, nil
}

// CreateCustomer tạo khách mới. Vai trò sales luôn tự gán mình vào assigned_sales_id.
func (s *CustomerService) CreateCustomer(ctx context.Context, actor *authmodels.User, input *crmdto.CustomerCreateInput) (*crmmodels.Customer, error) {
	status := crmmodels.CustomerStatus(input.Status)
	if input.Status == "" {
		status = crmmodels.CustomerStatusNormal
	}

	assignedSalesID := input.AssignedSalesID
	if isSalesScoped(actor.Role) {
		assignedSalesID = actor.ID
	}

	customer := crmmodels.Customer{
		Name:            input.Name,
		Phone:           input.Phone,
		Company:         input.Company,
		Status:          status,
		CareStatus:      crmmodels.CareStatus(input.CareStatus),
		SalesResult:     crmmodels.SalesResult(input.SalesResult),
		AssignedSalesID: assignedSalesID,
		PotentialValue:  input.PotentialValue,
		Notes:           input.Notes,
		Source:          input.Source,
	}

	created, err := s.InsertOne(ctx, customer)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCustomer cập nhật partial khách theo id, kiểm tra quyền như GetCustomer.
func (s *CustomerService) UpdateCustomer(ctx context.Context, actor *authmodels.User, id string, update *basesvc.UpdateData) (*crmmodels.Customer, error) {
	if _, err := s.GetCustomer(ctx, actor, id); err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCustomer xóa vật lý khách theo id (quyền admin/manager check ở handler).
func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.DeleteById(ctx, id)
}
