// Package clientsvc - service khách hàng đã ký hợp đồng và tài liệu đi kèm.
package clientsvc

import (
	"context"
	"fmt"
	"time"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	basesvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/service"
	clientdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/client/dto"
	clientmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/client/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/api/visibility"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/logger"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/query"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// ClientService xử lý nghiệp vụ khách hàng đã ký hợp đồng.
type ClientService struct {
	*basesvc.BaseServiceMongoImpl[clientmodels.Client]
	documentCRUD *basesvc.BaseServiceMongoImpl[clientmodels.ClientDocument]
}

// NewClientService tạo ClientService mới.
func NewClientService() (*ClientService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Clients)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Clients, common.ErrNotFound)
	}
	docColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ClientDocuments)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.ClientDocuments, common.ErrNotFound)
	}
	return &ClientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[clientmodels.Client](coll),
		documentCRUD:         basesvc.NewBaseServiceMongo[clientmodels.ClientDocument](docColl),
	}, nil
}

// canAccessClient kiểm tra actor có được truy cập client hay không,
// cùng ngữ nghĩa với visibility.ClientFilter nhưng trên một bản ghi đã nạp.
func canAccessClient(actor *authmodels.User, client *clientmodels.Client) bool {
	if actor.Role == authmodels.RoleAdmin {
		return true
	}
	if client.CreatedBy == actor.ID {
		return true
	}
	if (actor.Role == authmodels.RoleSales || actor.Role == authmodels.RoleSale) && client.AssignedSalesID == actor.ID {
		return true
	}
	return false
}

// ListClients trả về danh sách client theo phân quyền của actor, lọc thêm status.
func (s *ClientService) ListClients(ctx context.Context, actor *authmodels.User, status string) ([]clientmodels.Client, error) {
	visFilter, err := visibility.ClientFilter(actor.ID, actor.Role)
	if err != nil {
		return nil, err
	}

	conditions := []bson.M{visFilter}
	if status != "" {
		conditions = append(conditions, query.Eq("status", status))
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.Find(ctx, query.And(conditions...), opts)
}

// GetClient trả về client theo id, kiểm tra quyền truy cập của actor.
func (s *ClientService) GetClient(ctx context.Context, actor *authmodels.User, id string) (*clientmodels.Client, error) {
	client, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccessClient(actor, &client) {
		return nil, common.ErrPermissionDenied
	}
	return &client, nil
}

// CreateClient tạo client mới, stamp created_by từ actor.
// Vai trò sales luôn tự gán mình vào assigned_sales_id.
func (s *ClientService) CreateClient(ctx context.Context, actor *authmodels.User, input *clientdto.ClientCreateInput) (*clientmodels.Client, error) {
	assignedSalesID := input.AssignedSalesID
	if actor.Role == authmodels.RoleSales || actor.Role == authmodels.RoleSale {
		assignedSalesID = actor.ID
	}

	client := clientmodels.Client{
		Name:            input.Name,
		Company:         input.Company,
		ContactPerson:   input.ContactPerson,
		Email:           input.Email,
		Phone:           input.Phone,
		Address:         input.Address,
		BusinessType:    input.BusinessType,
		ContractValue:   input.ContractValue,
		ContractLink:    input.ContractLink,
		PaymentTerms:    input.PaymentTerms,
		InvoiceEmail:    input.InvoiceEmail,
		ClientType:      clientmodels.ClientType(input.ClientType),
		Source:          input.Source,
		Status:          clientmodels.ClientStatusActive,
		AssignedSalesID: assignedSalesID,
		CreatedBy:       actor.ID,
		Notes:           input.Notes,
	}

	created, err := s.InsertOne(ctx, client)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateClient cập nhật partial client theo id, kiểm tra quyền như GetClient.
func (s *ClientService) UpdateClient(ctx context.Context, actor *authmodels.User, id string, update *basesvc.UpdateData) (*clientmodels.Client, error) {
	if _, err := s.GetClient(ctx, actor, id); err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteClient xóa vật lý client và toàn bộ tài liệu của nó.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}
	if _, err := s.documentCRUD.DeleteMany(ctx, query.Eq("client_id", id)); err != nil {
		// Client đã xóa xong, tài liệu mồ côi chỉ ghi log
		logger.GetErrorLogger().WithError(err).WithField("client_id", id).
			Error("Xóa tài liệu của client thất bại")
	}
	return nil
}

// BulkAction thao tác hàng loạt trên danh sách client:
// delete xóa vật lý kèm tài liệu, archive chuyển status sang archived.
// Trả về số client bị tác động.
func (s *ClientService) BulkAction(ctx context.Context, ids []string, action string) (int64, error) {
	switch action {
	case "delete":
		count, err := s.DeleteMany(ctx, query.In("id", ids))
		if err != nil {
			return 0, err
		}
		if _, err := s.documentCRUD.DeleteMany(ctx, query.In("client_id", ids)); err != nil {
			logger.GetErrorLogger().WithError(err).Error("Xóa tài liệu hàng loạt thất bại")
		}
		return count, nil
	case "archive":
		update := &basesvc.UpdateData{
			Set: bson.M{"status": clientmodels.ClientStatusArchived},
		}
		return s.UpdateMany(ctx, query.In("id", ids), update, nil)
	}
	return 0, common.NewError(common.ErrCodeValidationInput, "Hành động không hợp lệ", common.StatusBadRequest, nil)
}

// Statistics tính thống kê client trong phạm vi visibility của actor:
// tổng số client, tổng contract_value, và số liệu của tháng hiện tại.
func (s *ClientService) Statistics(ctx context.Context, actor *authmodels.User) (*clientdto.ClientStatisticsResult, error) {
	visFilter, err := visibility.ClientFilter(actor.ID, actor.Role)
	if err != nil {
		return nil, err
	}

	result := &clientdto.ClientStatisticsResult{}

	total, err := s.aggregateStats(ctx, visFilter)
	if err != nil {
		return nil, err
	}
	result.TotalClients = total.count
	result.TotalContractValue = total.contractValue

	monthRange := utility.ResolveTimeRange("month", time.Now().UTC().Format("2006-01"))
	monthFilter := query.And(visFilter, query.Range("created_at", monthRange.StartMilli(), monthRange.EndMilli()))
	month, err := s.aggregateStats(ctx, monthFilter)
	if err != nil {
		return nil, err
	}
	result.MonthClients = month.count
	result.MonthContractValue = month.contractValue

	return result, nil
}

type clientStats struct {
	count         int64
	contractValue float64
}

// aggregateStats đếm số client và tổng contract_value khớp filter.
func (s *ClientService) aggregateStats(ctx context.Context, filter bson.M) (*clientStats, error) {
	pipeline := []bson.M{
		{"$match": filter},
		{"$group": bson.M{
			"_id":            nil,
			"count":          bson.M{"$sum": 1},
			"contract_value": bson.M{"$sum": "$contract_value"},
		}},
	}

	rows, err := s.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	stats := &clientStats{}
	if len(rows) == 0 {
		return stats, nil
	}
	stats.count = utility.ToInt64(rows[0]["count"])
	stats.contractValue = utility.ToFloat64(rows[0]["contract_value"])
	return stats, nil
}
