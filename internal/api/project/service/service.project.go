// Package projectsvc - service dự án.
package projectsvc

import (
	"context"
	"fmt"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	basesvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/service"
	projectdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/project/dto"
	projectmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/project/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/api/visibility"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/query"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// ProjectService xử lý nghiệp vụ dự án.
type ProjectService struct {
	*basesvc.BaseServiceMongoImpl[projectmodels.Project]
}

// NewProjectService tạo ProjectService mới.
func NewProjectService() (*ProjectService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Projects)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Projects, common.ErrNotFound)
	}
	return &ProjectService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[projectmodels.Project](coll),
	}, nil
}

// canAccessProject kiểm tra actor có được truy cập dự án hay không,
// cùng ngữ nghĩa với visibility.ProjectFilter nhưng trên một bản ghi đã nạp.
func canAccessProject(actor *authmodels.User, project *projectmodels.Project) bool {
	if actor.Role == authmodels.RoleAdmin {
		return true
	}
	if project.CreatedBy == actor.ID {
		return true
	}
	switch {
	case actor.Role == authmodels.RoleAccount:
		return project.AccountID == actor.ID
	case actor.Role == authmodels.RoleContent:
		return project.ContentID == actor.ID
	case actor.Role == authmodels.RoleSeeder:
		return project.SeederID == actor.ID
	case actor.Role.IsSalesFamily():
		return project.AccountID == actor.ID || project.ContentID == actor.ID || project.SeederID == actor.ID
	}
	return false
}

// buildListFilter dựng filter danh sách từ visibility + time range + các tham số.
// Nhóm $or của visibility và nhóm $or của search luôn tách biệt qua $and.
func (s *ProjectService) buildListFilter(actor *authmodels.User, q *projectdto.ProjectListQuery) (bson.M, error) {
	visFilter, err := visibility.ProjectFilter(actor.ID, actor.Role)
	if err != nil {
		return nil, err
	}

	conditions := []bson.M{visFilter}

	// Giá trị thời gian không hợp lệ bị bỏ qua thay vì báo lỗi
	if timeRange := utility.ResolveTimeRange(q.TimeFilter, q.TimeValue); timeRange != nil {
		conditions = append(conditions, query.Range("created_at", timeRange.StartMilli(), timeRange.EndMilli()))
	}
	if q.Status != "" {
		conditions = append(conditions, query.Eq("status", q.Status))
	}
	if q.Progress != "" {
		conditions = append(conditions, query.Eq("progress", q.Progress))
	}
	if q.Search != "" {
		conditions = append(conditions, query.Contains("name", q.Search))
	}

	return query.And(conditions...), nil
}

// ListProjects trả về danh sách dự án theo visibility + các filter, mới nhất trước.
func (s *ProjectService) ListProjects(ctx context.Context, actor *authmodels.User, q *projectdto.ProjectListQuery) ([]projectmodels.Project, error) {
	filter, err := s.buildListFilter(actor, q)
	if err != nil {
		return nil, err
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// ListByClient trả về dự án thuộc một client, trong phạm vi visibility của actor.
func (s *ProjectService) ListByClient(ctx context.Context, actor *authmodels.User, clientID string) ([]projectmodels.Project, error) {
	visFilter, err := visibility.ProjectFilter(actor.ID, actor.Role)
	if err != nil {
		return nil, err
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.Find(ctx, query.And(visFilter, query.Eq("client_id", clientID)), opts)
}

// GetProject trả về dự án theo id, kiểm tra quyền truy cập của actor.
func (s *ProjectService) GetProject(ctx context.Context, actor *authmodels.User, id string) (*projectmodels.Project, error) {
	project, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccessProject(actor, &project) {
		return nil, common.ErrPermissionDenied
	}
	return &project, nil
}

// CreateProject tạo dự án mới, stamp created_by từ actor.
func (s *ProjectService) CreateProject(ctx context.Context, actor *authmodels.User, input *projectdto.ProjectCreateInput) (*projectmodels.Project, error) {
	progress := projectmodels.ProjectProgress(input.Progress)
	if input.Progress == "" {
		progress = projectmodels.ProgressInProgress
	}

	project := projectmodels.Project{
		ClientID:      input.ClientID,
		Name:          input.Name,
		WorkFileLink:  input.WorkFileLink,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		ContractValue: input.ContractValue,
		Debt:          input.Debt,
		AccountID:     input.AccountID,
		ContentID:     input.ContentID,
		SeederID:      input.SeederID,
		Progress:      progress,
		Status:        projectmodels.ProjectStatusActive,
		CreatedBy:     actor.ID,
		Notes:         input.Notes,
	}

	created, err := s.InsertOne(ctx, project)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProject cập nhật partial dự án theo id, kiểm tra quyền như GetProject.
func (s *ProjectService) UpdateProject(ctx context.Context, actor *authmodels.User, id string, update *basesvc.UpdateData) (*projectmodels.Project, error) {
	if _, err := s.GetProject(ctx, actor, id); err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProject soft-delete dự án: status chuyển sang archived, record được giữ lại.
func (s *ProjectService) DeleteProject(ctx context.Context, actor *authmodels.User, id string) error {
	if _, err := s.GetProject(ctx, actor, id); err != nil {
		return err
	}

	update := &basesvc.UpdateData{
		Set: bson.M{"status": projectmodels.ProjectStatusArchived},
	}
	_, err := s.UpdateById(ctx, id, update)
	return err
}

// Statistics tính thống kê dự án trong phạm vi visibility + time filter:
// tổng (loại archived), đang chạy, hoàn thành (completed + accepted),
// tổng contract_value và debt.
func (s *ProjectService) Statistics(ctx context.Context, actor *authmodels.User, timeFilter, timeValue string) (*projectdto.ProjectStatisticsResult, error) {
	visFilter, err := visibility.ProjectFilter(actor.ID, actor.Role)
	if err != nil {
		return nil, err
	}

	conditions := []bson.M{visFilter, query.Ne("status", projectmodels.ProjectStatusArchived)}
	if timeRange := utility.ResolveTimeRange(timeFilter, timeValue); timeRange != nil {
		conditions = append(conditions, query.Range("created_at", timeRange.StartMilli(), timeRange.EndMilli()))
	}

	pipeline := []bson.M{
		{"$match": query.And(conditions...)},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"in_progress": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$eq": []interface{}{"$progress", projectmodels.ProgressInProgress}}, 1, 0},
			}},
			"completed": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$in": []interface{}{"$progress", []interface{}{projectmodels.ProgressCompleted, projectmodels.ProgressAccepted}}}, 1, 0},
			}},
			"contract_value": bson.M{"$sum": "$contract_value"},
			"debt":           bson.M{"$sum": "$debt"},
		}},
	}

	rows, err := s.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	result := &projectdto.ProjectStatisticsResult{}
	if len(rows) == 0 {
		return result, nil
	}
	result.Total = utility.ToInt64(rows[0]["total"])
	result.InProgress = utility.ToInt64(rows[0]["in_progress"])
	result.Completed = utility.ToInt64(rows[0]["completed"])
	result.TotalContractValue = utility.ToFloat64(rows[0]["contract_value"])
	result.TotalDebt = utility.ToFloat64(rows[0]["debt"])
	return result, nil
}

// ProgressOptions trả về danh sách lựa chọn tiến độ dự án.
func ProgressOptions() []projectdto.Option {
	return []projectdto.Option{
		{Value: string(projectmodels.ProgressInProgress), Label: "Đang chạy"},
		{Value: string(projectmodels.ProgressCompleted), Label: "Hoàn thành"},
		{Value: string(projectmodels.ProgressAccepted), Label: "Đã nghiệm thu"},
	}
}

// StatusOptions trả về danh sách lựa chọn trạng thái dự án.
func StatusOptions() []projectdto.Option {
	return []projectdto.Option{
		{Value: string(projectmodels.ProjectStatusActive), Label: "Đang hoạt động"},
		{Value: string(projectmodels.ProjectStatusArchived), Label: "Đã lưu trữ"},
	}
}
