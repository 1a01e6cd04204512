package projectsvc

import (
	"reflect"
	"testing"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	projectdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/project/dto"
	projectmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/project/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func salesActor() *authmodels.User {
	return &authmodels.User{ID: "u1", Role: authmodels.RoleSales}
}

func TestBuildListFilterTachNhomOr(t *testing.T) {
	s := &ProjectService{}
	filter, err := s.buildListFilter(salesActor(), &projectdto.ProjectListQuery{
		Status: "active",
		Search: "landing",
	})
	if err != nil {
		t.Fatalf("buildListFilter lỗi: %v", err)
	}

	and, ok := filter["$and"].([]bson.M)
	if !ok {
		t.Fatalf("filter phải gộp qua $and, nhận: %v", filter)
	}
	if len(and) != 3 {
		t.Fatalf("kỳ vọng 3 nhóm điều kiện (visibility, status, search), nhận %d", len(and))
	}

	// Nhóm visibility giữ nguyên $or, không bị trộn với search
	if _, ok := and[0]["$or"]; !ok {
		t.Errorf("nhóm visibility phải là $or, nhận: %v", and[0])
	}
	if got := and[1]["status"]; got != "active" {
		t.Errorf("nhóm status sai: %v", and[1])
	}
	regex, ok := and[2]["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("nhóm search phải là regex trên name, nhận: %v", and[2])
	}
	if regex.Options != "i" {
		t.Errorf("search phải không phân biệt hoa thường, options: %q", regex.Options)
	}
}

func TestBuildListFilterThoiGianKhongHopLeBiBoQua(t *testing.T) {
	s := &ProjectService{}
	filter, err := s.buildListFilter(salesActor(), &projectdto.ProjectListQuery{
		TimeFilter: "month",
		TimeValue:  "không-phải-tháng",
	})
	if err != nil {
		t.Fatalf("buildListFilter lỗi: %v", err)
	}

	// Chỉ còn nhóm visibility, không có điều kiện created_at
	if _, ok := filter["$and"]; ok {
		t.Errorf("giá trị thời gian hỏng phải bị bỏ qua, filter: %v", filter)
	}
	if _, ok := filter["created_at"]; ok {
		t.Errorf("không được có điều kiện created_at, filter: %v", filter)
	}
}

func TestBuildListFilterTheoThang(t *testing.T) {
	s := &ProjectService{}
	filter, err := s.buildListFilter(salesActor(), &projectdto.ProjectListQuery{
		TimeFilter: "month",
		TimeValue:  "2024-05",
	})
	if err != nil {
		t.Fatalf("buildListFilter lỗi: %v", err)
	}

	and, ok := filter["$and"].([]bson.M)
	if !ok || len(and) != 2 {
		t.Fatalf("kỳ vọng $and của 2 nhóm, nhận: %v", filter)
	}
	created, ok := and[1]["created_at"].(bson.M)
	if !ok {
		t.Fatalf("nhóm thời gian phải trên created_at, nhận: %v", and[1])
	}
	if _, ok := created["$gte"]; !ok {
		t.Errorf("khoảng thời gian thiếu $gte: %v", created)
	}
	if _, ok := created["$lt"]; !ok {
		t.Errorf("khoảng nửa-mở phải dùng $lt, nhận: %v", created)
	}
}

func TestBuildListFilterRoleLaBiTuChoi(t *testing.T) {
	s := &ProjectService{}
	actor := &authmodels.User{ID: "u1", Role: authmodels.UserRole("superuser")}
	if _, err := s.buildListFilter(actor, &projectdto.ProjectListQuery{}); err == nil {
		t.Fatal("role không nhận diện được phải bị từ chối, không fallback full visibility")
	}
}

func TestCanAccessProject(t *testing.T) {
	project := &projectmodels.Project{
		CreatedBy: "creator",
		AccountID: "acc",
		ContentID: "con",
		SeederID:  "see",
	}

	cases := []struct {
		name  string
		actor *authmodels.User
		want  bool
	}{
		{"admin luôn truy cập được", &authmodels.User{ID: "x", Role: authmodels.RoleAdmin}, true},
		{"người tạo truy cập được", &authmodels.User{ID: "creator", Role: authmodels.RoleManager}, true},
		{"account khớp account_id", &authmodels.User{ID: "acc", Role: authmodels.RoleAccount}, true},
		{"account không khớp content_id", &authmodels.User{ID: "con", Role: authmodels.RoleAccount}, false},
		{"sales khớp bất kỳ assignee nào", &authmodels.User{ID: "see", Role: authmodels.RoleSales}, true},
		{"intern khớp bất kỳ assignee nào", &authmodels.User{ID: "con", Role: authmodels.RoleIntern}, true},
		{"manager không phải người tạo", &authmodels.User{ID: "acc", Role: authmodels.RoleManager}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := canAccessProject(tc.actor, project); got != tc.want {
				t.Errorf("canAccessProject = %v, kỳ vọng %v", got, tc.want)
			}
		})
	}
}

func TestProgressOptionsDungThuTu(t *testing.T) {
	values := []string{}
	for _, opt := range ProgressOptions() {
		values = append(values, opt.Value)
	}
	want := []string{"in_progress", "completed", "accepted"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("ProgressOptions = %v, kỳ vọng %v", values, want)
	}
}
