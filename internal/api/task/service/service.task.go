// Package tasksvc - service công việc và bình luận.
package tasksvc

import (
	"context"
	"fmt"
	"time"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	authsvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/service"
	basesvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/service"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/api/notification"
	taskdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/task/dto"
	taskmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/task/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/api/visibility"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/logger"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/query"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// TaskService xử lý nghiệp vụ công việc.
type TaskService struct {
	*basesvc.BaseServiceMongoImpl[taskmodels.Task]
	commentCRUD *basesvc.BaseServiceMongoImpl[taskmodels.TaskComment]
	userCRUD    *authsvc.UserService
}

// NewTaskService tạo TaskService mới.
func NewTaskService() (*TaskService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tasks)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Tasks, common.ErrNotFound)
	}
	commentColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.TaskComments)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.TaskComments, common.ErrNotFound)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &TaskService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[taskmodels.Task](coll),
		commentCRUD:          basesvc.NewBaseServiceMongo[taskmodels.TaskComment](commentColl),
		userCRUD:             userService,
	}, nil
}

// canAccessTask kiểm tra actor có được truy cập công việc hay không,
// cùng ngữ nghĩa với visibility.TaskFilter nhưng trên một bản ghi đã nạp.
func canAccessTask(actor *authmodels.User, task *taskmodels.Task) bool {
	if actor.Role == authmodels.RoleAdmin {
		return true
	}
	return task.CreatedBy == actor.ID || task.AssignedTo == actor.ID
}

// todayRange trả về khoảng nửa-mở [00:00 hôm nay, 00:00 ngày mai) theo UTC.
func todayRange(now time.Time) (int64, int64) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return start.UnixMilli(), start.AddDate(0, 0, 1).UnixMilli()
}

// buildListFilter dựng filter danh sách từ visibility + các tham số.
func buildListFilter(actor *authmodels.User, q *taskdto.TaskListQuery, now time.Time) (bson.M, error) {
	visFilter, err := visibility.TaskFilter(actor.ID, actor.Role)
	if err != nil {
		return nil, err
	}

	conditions := []bson.M{visFilter}

	switch q.Status {
	case "active":
		conditions = append(conditions, query.Ne("status", taskmodels.TaskStatusCompleted))
	case "completed":
		conditions = append(conditions, query.Eq("status", taskmodels.TaskStatusCompleted))
	}
	if q.Priority != "" {
		conditions = append(conditions, query.Eq("priority", q.Priority))
	}

	switch q.DeadlineFilter {
	case "today":
		start, end := todayRange(now)
		conditions = append(conditions, query.Range("deadline", start, end))
	case "overdue":
		conditions = append(conditions,
			query.Gte("deadline", 1), // deadline = 0 nghĩa là chưa đặt hạn
			query.Lt("deadline", now.UnixMilli()),
			query.Ne("status", taskmodels.TaskStatusCompleted),
		)
	}

	return query.And(conditions...), nil
}

// ListTasks trả về danh sách công việc theo visibility + các filter, mới nhất trước.
func (s *TaskService) ListTasks(ctx context.Context, actor *authmodels.User, q *taskdto.TaskListQuery) ([]taskmodels.Task, error) {
	filter, err := buildListFilter(actor, q, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// GetTask trả về công việc theo id, kiểm tra quyền truy cập của actor.
func (s *TaskService) GetTask(ctx context.Context, actor *authmodels.User, id string) (*taskmodels.Task, error) {
	task, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccessTask(actor, &task) {
		return nil, common.ErrPermissionDenied
	}
	return &task, nil
}

// CreateTask tạo công việc mới ở trạng thái todo, stamp created_by từ actor.
// Nếu giao cho người khác thì gửi mail thông báo (fire-and-forget).
func (s *TaskService) CreateTask(ctx context.Context, actor *authmodels.User, input *taskdto.TaskCreateInput) (*taskmodels.Task, error) {
	priority := taskmodels.TaskPriority(input.Priority)
	if input.Priority == "" {
		priority = taskmodels.PriorityMedium
	}

	task := taskmodels.Task{
		Title:       input.Title,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   actor.ID,
		Priority:    priority,
		Status:      taskmodels.TaskStatusTodo,
		Deadline:    input.Deadline,
	}

	created, err := s.InsertOne(ctx, task)
	if err != nil {
		return nil, err
	}

	if created.AssignedTo != "" && created.AssignedTo != actor.ID {
		s.notifyAssignee(ctx, actor, &created)
	}
	return &created, nil
}

// notifyAssignee gửi mail giao việc cho người nhận nếu tra được email.
func (s *TaskService) notifyAssignee(ctx context.Context, actor *authmodels.User, task *taskmodels.Task) {
	if !notification.Enabled() {
		return
	}
	assignee, err := s.userCRUD.FindOneById(ctx, task.AssignedTo)
	if err != nil || assignee.Email == "" {
		if err != nil {
			logger.GetAppLogger().WithError(err).WithField("assigned_to", task.AssignedTo).
				Warn("Không tra được người nhận việc để gửi mail")
		}
		return
	}
	creatorName := actor.FullName
	if creatorName == "" {
		creatorName = actor.Username
	}
	notification.SendTaskAssigned(assignee.Email, assignee.FullName, task.Title, creatorName)
}

// UpdateTask cập nhật partial công việc theo id, kiểm tra quyền như GetTask.
// Chuyển sang completed tự stamp completed_at; rời completed thì xóa mốc này.
func (s *TaskService) UpdateTask(ctx context.Context, actor *authmodels.User, id string, update *basesvc.UpdateData) (*taskmodels.Task, error) {
	if _, err := s.GetTask(ctx, actor, id); err != nil {
		return nil, err
	}

	if status, ok := update.Set["status"]; ok {
		if status == string(taskmodels.TaskStatusCompleted) {
			update.Set["completed_at"] = time.Now().UnixMilli()
		} else {
			update.Set["completed_at"] = int64(0)
		}
	}

	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask xóa vật lý công việc và toàn bộ bình luận của nó.
func (s *TaskService) DeleteTask(ctx context.Context, actor *authmodels.User, id string) error {
	if _, err := s.GetTask(ctx, actor, id); err != nil {
		return err
	}

	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}
	if _, err := s.commentCRUD.DeleteMany(ctx, query.Eq("task_id", id)); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("task_id", id).
			Error("Xóa bình luận của công việc thất bại")
	}
	return nil
}

// BulkDelete xóa hàng loạt công việc kèm bình luận, trả về số công việc đã xóa.
func (s *TaskService) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	count, err := s.DeleteMany(ctx, query.In("id", ids))
	if err != nil {
		return 0, err
	}
	if _, err := s.commentCRUD.DeleteMany(ctx, query.In("task_id", ids)); err != nil {
		logger.GetErrorLogger().WithError(err).Error("Xóa bình luận hàng loạt thất bại")
	}
	return count, nil
}

// Statistics đếm công việc theo các nhóm trong phạm vi visibility của actor.
func (s *TaskService) Statistics(ctx context.Context, actor *authmodels.User) (*taskdto.TaskStatisticsResult, error) {
	visFilter, err := visibility.TaskFilter(actor.ID, actor.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	todayStart, todayEnd := todayRange(now)
	notCompleted := query.Ne("status", taskmodels.TaskStatusCompleted)

	type countGroup struct {
		dest   *int64
		filter bson.M
	}

	result := &taskdto.TaskStatisticsResult{}
	counts := []countGroup{
		{&result.Urgent, query.And(visFilter, query.Eq("priority", taskmodels.PriorityUrgent), notCompleted)},
		{&result.Todo, query.And(visFilter, query.Eq("status", taskmodels.TaskStatusTodo))},
		{&result.InProgress, query.And(visFilter, query.Eq("status", taskmodels.TaskStatusInProgress))},
		{&result.DueToday, query.And(visFilter, query.Range("deadline", todayStart, todayEnd), notCompleted)},
		{&result.Overdue, query.And(visFilter, query.Gte("deadline", 1), query.Lt("deadline", now.UnixMilli()), notCompleted)},
	}

	for _, c := range counts {
		count, err := s.CountDocuments(ctx, c.filter)
		if err != nil {
			return nil, err
		}
		*c.dest = count
	}
	return result, nil
}

// CommentCounts đếm số bình luận theo task_id bằng aggregation.
func (s *TaskService) CommentCounts(ctx context.Context) ([]taskdto.CommentCount, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$task_id",
			"count": bson.M{"$sum": 1},
		}},
	}

	rows, err := s.commentCRUD.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	counts := make([]taskdto.CommentCount, 0, len(rows))
	for _, row := range rows {
		taskID, _ := row["_id"].(string)
		counts = append(counts, taskdto.CommentCount{
			TaskID: taskID,
			Count:  utility.ToInt64(row["count"]),
		})
	}
	return counts, nil
}
