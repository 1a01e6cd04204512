package crmvc

import (
	"context"
	"fmt"
	"time"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	basesvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/service"
	crmdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/dto"
	crmmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/logger"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/query"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// InteractionService xử lý lịch sử tương tác với khách.
type InteractionService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Interaction]
	customerService *CustomerService
}

// NewInteractionService tạo InteractionService mới.
func NewInteractionService() (*InteractionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Interactions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Interactions, common.ErrNotFound)
	}
	customerService, err := NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("tạo CustomerService: %w", err)
	}
	return &InteractionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Interaction](coll),
		customerService:      customerService,
	}, nil
}

// ListByCustomer trả về lịch sử tương tác của khách, mới nhất trước.
// Actor phải có quyền truy cập khách đó.
func (s *InteractionService) ListByCustomer(ctx context.Context, actor *authmodels.User, customerID string) ([]crmmodels.Interaction, error) {
	if _, err := s.customerService.GetCustomer(ctx, actor, customerID); err != nil {
		return nil, err
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}})
	return s.Find(ctx, query.Eq("customer_id", customerID), opts)
}

// CreateInteraction ghi nhận tương tác mới.
// sales_id luôn được stamp bằng user hiện tại; customer được cập nhật
// last_contact và cộng dồn total_revenue theo revenue_generated.
func (s *InteractionService) CreateInteraction(ctx context.Context, actor *authmodels.User, input *crmdto.InteractionCreateInput) (*crmmodels.Interaction, error) {
	if _, err := s.customerService.GetCustomer(ctx, actor, input.CustomerID); err != nil {
		return nil, err
	}

	date := input.Date
	if date == 0 {
		date = time.Now().UnixMilli()
	}

	interaction := crmmodels.Interaction{
		CustomerID:       input.CustomerID,
		SalesID:          actor.ID,
		Type:             crmmodels.InteractionType(input.Type),
		Title:            input.Title,
		Description:      input.Description,
		Date:             date,
		RevenueGenerated: input.RevenueGenerated,
		NextAction:       input.NextAction,
		NextActionDate:   input.NextActionDate,
	}

	created, err := s.InsertOne(ctx, interaction)
	if err != nil {
		return nil, err
	}

	// Side-effect trên customer: không transaction đa document, tương tác đã ghi
	// xong thì lỗi cập nhật customer chỉ log lại chứ không rollback.
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"last_contact": date},
	}
	if input.RevenueGenerated != 0 {
		update.Inc = map[string]interface{}{"total_revenue": input.RevenueGenerated}
	}
	if _, err := s.customerService.UpdateById(ctx, input.CustomerID, update); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"customer_id":    input.CustomerID,
			"interaction_id": created.ID,
			"error":          err.Error(),
		}).Error("Không cập nhật được last_contact/total_revenue của khách")
	}

	return &created, nil
}
