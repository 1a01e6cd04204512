package clientsvc

import (
	"context"
	"fmt"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	basesvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/service"
	clientdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/client/dto"
	clientmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/client/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentService xử lý nghiệp vụ tài liệu của client.
// Mọi thao tác đều kiểm tra quyền truy cập trên client chứa tài liệu.
type DocumentService struct {
	*basesvc.BaseServiceMongoImpl[clientmodels.ClientDocument]
	clientService *ClientService
}

// NewDocumentService tạo DocumentService mới.
func NewDocumentService() (*DocumentService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ClientDocuments)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.ClientDocuments, common.ErrNotFound)
	}
	clientService, err := NewClientService()
	if err != nil {
		return nil, err
	}
	return &DocumentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[clientmodels.ClientDocument](coll),
		clientService:        clientService,
	}, nil
}

// ListByClient trả về tài liệu của một client, mới nhất trước.
func (s *DocumentService) ListByClient(ctx context.Context, actor *authmodels.User, clientID string) ([]clientmodels.ClientDocument, error) {
	if _, err := s.clientService.GetClient(ctx, actor, clientID); err != nil {
		return nil, err
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.Find(ctx, query.Eq("client_id", clientID), opts)
}

// CreateDocument tạo tài liệu mới cho client, stamp created_by từ actor.
func (s *DocumentService) CreateDocument(ctx context.Context, actor *authmodels.User, clientID string, input *clientdto.DocumentCreateInput) (*clientmodels.ClientDocument, error) {
	if _, err := s.clientService.GetClient(ctx, actor, clientID); err != nil {
		return nil, err
	}

	status := clientmodels.DocumentStatus(input.Status)
	if input.Status == "" {
		status = clientmodels.DocumentStatusPending
	}

	document := clientmodels.ClientDocument{
		ClientID:  clientID,
		Name:      input.Name,
		Link:      input.Link,
		Status:    status,
		CreatedBy: actor.ID,
	}

	created, err := s.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDocument cập nhật partial tài liệu theo cặp (client_id, id).
// Tài liệu không thuộc client trong path trả về 404.
func (s *DocumentService) UpdateDocument(ctx context.Context, actor *authmodels.User, clientID, docID string, update *basesvc.UpdateData) (*clientmodels.ClientDocument, error) {
	if _, err := s.clientService.GetClient(ctx, actor, clientID); err != nil {
		return nil, err
	}

	filter := query.And(query.Eq("id", docID), query.Eq("client_id", clientID))
	updated, err := s.UpdateOne(ctx, filter, update, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDocument xóa tài liệu theo cặp (client_id, id).
func (s *DocumentService) DeleteDocument(ctx context.Context, actor *authmodels.User, clientID, docID string) error {
	if _, err := s.clientService.GetClient(ctx, actor, clientID); err != nil {
		return err
	}

	return s.DeleteOne(ctx, query.And(query.Eq("id", docID), query.Eq("client_id", clientID)))
}
