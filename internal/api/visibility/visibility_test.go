package visibility

import (
	"reflect"
	"testing"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/query"

	"go.mongodb.org/mongo-driver/bson"
)

func TestAdminKhongGioiHan(t *testing.T) {
	filter, err := ProjectFilter("u1", authmodels.RoleAdmin)
	if err != nil {
		t.Fatalf("Admin không được trả về lỗi: %v", err)
	}
	if len(filter) != 0 {
		t.Errorf("Admin phải nhận filter rỗng (match tất cả), got %v", filter)
	}
}

func TestProjectFilterTheoRole(t *testing.T) {
	cases := []struct {
		role authmodels.UserRole
		want bson.M
	}{
		{authmodels.RoleAccount, bson.M{"$or": []bson.M{
			{"created_by": "u1"}, {"account_id": "u1"},
		}}},
		{authmodels.RoleContent, bson.M{"$or": []bson.M{
			{"created_by": "u1"}, {"content_id": "u1"},
		}}},
		{authmodels.RoleSeeder, bson.M{"$or": []bson.M{
			{"created_by": "u1"}, {"seeder_id": "u1"},
		}}},
		// Nhóm sales khớp cả ba assignee field
		{authmodels.RoleSales, bson.M{"$or": []bson.M{
			{"created_by": "u1"}, {"account_id": "u1"}, {"content_id": "u1"}, {"seeder_id": "u1"},
		}}},
		{authmodels.RoleIntern, bson.M{"$or": []bson.M{
			{"created_by": "u1"}, {"account_id": "u1"}, {"content_id": "u1"}, {"seeder_id": "u1"},
		}}},
		// Manager không có assignee field trên project, chỉ thấy record mình tạo
		{authmodels.RoleManager, bson.M{"created_by": "u1"}},
	}

	for _, tc := range cases {
		got, err := ProjectFilter("u1", tc.role)
		if err != nil {
			t.Fatalf("Role %s không được trả về lỗi: %v", tc.role, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Role %s: got %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestClientFilterSales(t *testing.T) {
	got, err := ClientFilter("u1", authmodels.RoleSale)
	if err != nil {
		t.Fatalf("ClientFilter thất bại: %v", err)
	}
	want := bson.M{"$or": []bson.M{
		{"created_by": "u1"}, {"assigned_sales_id": "u1"},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sale phải thấy client mình tạo hoặc được gán: got %v, want %v", got, want)
	}

	// Role khác sales chỉ thấy client mình tạo
	got, err = ClientFilter("u1", authmodels.RoleContent)
	if err != nil {
		t.Fatalf("ClientFilter thất bại: %v", err)
	}
	if !reflect.DeepEqual(got, bson.M{"created_by": "u1"}) {
		t.Errorf("Content chỉ thấy client mình tạo: got %v", got)
	}
}

func TestTaskFilter(t *testing.T) {
	got, err := TaskFilter("u1", authmodels.RoleSeeder)
	if err != nil {
		t.Fatalf("TaskFilter thất bại: %v", err)
	}
	want := bson.M{"$or": []bson.M{
		{"created_by": "u1"}, {"assigned_to": "u1"},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Task phải thấy task mình tạo hoặc được giao: got %v, want %v", got, want)
	}
}

func TestRoleLaBiTuChoi(t *testing.T) {
	if _, err := ProjectFilter("u1", authmodels.UserRole("superuser")); err == nil {
		t.Error("Role không nhận diện được phải bị từ chối, không fallback full visibility")
	}
	if _, err := TaskFilter("", authmodels.RoleAdmin); err == nil {
		t.Error("Thiếu user id phải bị từ chối")
	}
}

// Kết hợp visibility với search phải giữ hai nhóm $or riêng biệt qua $and
func TestKetHopSearchKhongFlatten(t *testing.T) {
	vis, err := ProjectFilter("u1", authmodels.RoleAccount)
	if err != nil {
		t.Fatalf("ProjectFilter thất bại: %v", err)
	}
	search := query.Or(query.Contains("name", "tet"), query.Contains("notes", "tet"))

	combined := query.And(vis, search)

	andClauses, ok := combined["$and"].([]bson.M)
	if !ok || len(andClauses) != 2 {
		t.Fatalf("Kết hợp phải là $and của hai nhóm: %v", combined)
	}
	if _, ok := andClauses[0]["$or"]; !ok {
		t.Errorf("Nhóm visibility phải giữ nguyên $or: %v", andClauses[0])
	}
	if _, ok := andClauses[1]["$or"]; !ok {
		t.Errorf("Nhóm search phải giữ nguyên $or: %v", andClauses[1])
	}
}
