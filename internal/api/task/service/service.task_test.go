package tasksvc

import (
	"testing"
	"time"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	taskdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/task/dto"
	taskmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/task/models"

	"go.mongodb.org/mongo-driver/bson"
)

func contentActor() *authmodels.User {
	return &authmodels.User{ID: "u1", Role: authmodels.RoleContent}
}

func TestBuildListFilterActive(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)
	filter, err := buildListFilter(contentActor(), &taskdto.TaskListQuery{Status: "active"}, now)
	if err != nil {
		t.Fatalf("buildListFilter lỗi: %v", err)
	}

	and, ok := filter["$and"].([]bson.M)
	if !ok || len(and) != 2 {
		t.Fatalf("kỳ vọng $and của 2 nhóm (visibility, status), nhận: %v", filter)
	}
	status, ok := and[1]["status"].(bson.M)
	if !ok {
		t.Fatalf("nhóm status sai: %v", and[1])
	}
	if status["$ne"] != taskmodels.TaskStatusCompleted {
		t.Errorf("active phải loại completed, nhận: %v", status)
	}
}

func TestBuildListFilterDeadlineHomNay(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)
	filter, err := buildListFilter(contentActor(), &taskdto.TaskListQuery{DeadlineFilter: "today"}, now)
	if err != nil {
		t.Fatalf("buildListFilter lỗi: %v", err)
	}

	and, ok := filter["$and"].([]bson.M)
	if !ok || len(and) != 2 {
		t.Fatalf("kỳ vọng $and của 2 nhóm, nhận: %v", filter)
	}
	deadline, ok := and[1]["deadline"].(bson.M)
	if !ok {
		t.Fatalf("nhóm deadline sai: %v", and[1])
	}

	dayStart := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC).UnixMilli()
	dayEnd := time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC).UnixMilli()
	if deadline["$gte"] != dayStart {
		t.Errorf("mốc đầu ngày sai: %v, kỳ vọng %d", deadline["$gte"], dayStart)
	}
	if deadline["$lt"] != dayEnd {
		t.Errorf("mốc cuối ngày (exclusive) sai: %v, kỳ vọng %d", deadline["$lt"], dayEnd)
	}
}

func TestBuildListFilterQuaHan(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)
	filter, err := buildListFilter(contentActor(), &taskdto.TaskListQuery{DeadlineFilter: "overdue"}, now)
	if err != nil {
		t.Fatalf("buildListFilter lỗi: %v", err)
	}

	and, ok := filter["$and"].([]bson.M)
	if !ok {
		t.Fatalf("kỳ vọng $and, nhận: %v", filter)
	}
	// visibility + gte + lt + loại completed
	if len(and) != 4 {
		t.Fatalf("kỳ vọng 4 nhóm điều kiện, nhận %d: %v", len(and), and)
	}

	foundLt := false
	foundNe := false
	for _, cond := range and[1:] {
		if deadline, ok := cond["deadline"].(bson.M); ok {
			if v, ok := deadline["$lt"]; ok {
				foundLt = true
				if v != now.UnixMilli() {
					t.Errorf("mốc quá hạn phải là now, nhận: %v", v)
				}
			}
		}
		if status, ok := cond["status"].(bson.M); ok {
			if status["$ne"] == taskmodels.TaskStatusCompleted {
				foundNe = true
			}
		}
	}
	if !foundLt {
		t.Error("thiếu điều kiện deadline < now")
	}
	if !foundNe {
		t.Error("quá hạn phải loại công việc đã hoàn thành")
	}
}

func TestBuildListFilterRoleLaBiTuChoi(t *testing.T) {
	actor := &authmodels.User{ID: "u1", Role: authmodels.UserRole("ghost")}
	if _, err := buildListFilter(actor, &taskdto.TaskListQuery{}, time.Now()); err == nil {
		t.Fatal("role không nhận diện được phải bị từ chối")
	}
}

func TestCanAccessTask(t *testing.T) {
	task := &taskmodels.Task{CreatedBy: "creator", AssignedTo: "worker"}

	cases := []struct {
		name  string
		actor *authmodels.User
		want  bool
	}{
		{"admin luôn truy cập được", &authmodels.User{ID: "x", Role: authmodels.RoleAdmin}, true},
		{"người tạo truy cập được", &authmodels.User{ID: "creator", Role: authmodels.RoleContent}, true},
		{"người được giao truy cập được", &authmodels.User{ID: "worker", Role: authmodels.RoleSales}, true},
		{"người ngoài bị chặn", &authmodels.User{ID: "other", Role: authmodels.RoleManager}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := canAccessTask(tc.actor, task); got != tc.want {
				t.Errorf("canAccessTask = %v, kỳ vọng %v", got, tc.want)
			}
		})
	}
}

func TestTodayRangeNuaMo(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	start, end := todayRange(now)

	wantStart := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC).UnixMilli()
	wantEnd := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if start != wantStart {
		t.Errorf("mốc đầu ngày = %d, kỳ vọng %d", start, wantStart)
	}
	if end != wantEnd {
		t.Errorf("mốc đầu ngày kế tiếp = %d, kỳ vọng %d (qua cả năm mới)", end, wantEnd)
	}
}
