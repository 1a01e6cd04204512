// Package visibility dựng filter phân quyền hiển thị theo vai trò.
//
// Quy tắc chung: admin thấy tất cả; vai trò khác chỉ thấy record mình tạo
// (created_by) hoặc record mà assignee field của resource khớp với mình.
// Filter trả về là một nhóm $or độc lập: kết hợp với điều kiện tìm kiếm
// phải qua query.And để hai nhóm không bị trộn phẳng vào nhau.
package visibility

import (
	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/query"

	"go.mongodb.org/mongo-driver/bson"
)

// ProjectFilter trả về filter hiển thị project cho user.
// Assignee theo vai trò: account → account_id, content → content_id,
// seeder → seeder_id; nhóm sales (sales/sale/intern) khớp cả ba field.
// Vai trò không nhận diện được trả về lỗi, không fallback về full visibility.
func ProjectFilter(userID string, role authmodels.UserRole) (bson.M, error) {
	if userID == "" || !role.Valid() {
		return nil, common.ErrPermissionDenied
	}
	if role == authmodels.RoleAdmin {
		return bson.M{}, nil
	}

	conditions := []bson.M{query.Eq("created_by", userID)}
	switch {
	case role == authmodels.RoleAccount:
		conditions = append(conditions, query.Eq("account_id", userID))
	case role == authmodels.RoleContent:
		conditions = append(conditions, query.Eq("content_id", userID))
	case role == authmodels.RoleSeeder:
		conditions = append(conditions, query.Eq("seeder_id", userID))
	case role.IsSalesFamily():
		conditions = append(conditions,
			query.Eq("account_id", userID),
			query.Eq("content_id", userID),
			query.Eq("seeder_id", userID),
		)
	}

	return query.Or(conditions...), nil
}

// ClientFilter trả về filter hiển thị client cho user.
// Vai trò sales/sale thấy thêm client được gán cho mình (assigned_sales_id).
func ClientFilter(userID string, role authmodels.UserRole) (bson.M, error) {
	if userID == "" || !role.Valid() {
		return nil, common.ErrPermissionDenied
	}
	if role == authmodels.RoleAdmin {
		return bson.M{}, nil
	}

	conditions := []bson.M{query.Eq("created_by", userID)}
	if role == authmodels.RoleSales || role == authmodels.RoleSale {
		conditions = append(conditions, query.Eq("assigned_sales_id", userID))
	}

	return query.Or(conditions...), nil
}

// TaskFilter trả về filter hiển thị task cho user: task mình tạo hoặc được giao.
func TaskFilter(userID string, role authmodels.UserRole) (bson.M, error) {
	if userID == "" || !role.Valid() {
		return nil, common.ErrPermissionDenied
	}
	if role == authmodels.RoleAdmin {
		return bson.M{}, nil
	}

	return query.Or(
		query.Eq("created_by", userID),
		query.Eq("assigned_to", userID),
	), nil
}
