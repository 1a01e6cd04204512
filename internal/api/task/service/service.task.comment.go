package tasksvc

import (
	"context"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	taskdto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/task/dto"
	taskmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/task/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// ListComments trả về bình luận của một công việc theo thứ tự hội thoại (cũ trước).
func (s *TaskService) ListComments(ctx context.Context, actor *authmodels.User, taskID string) ([]taskmodels.TaskComment, error) {
	if _, err := s.GetTask(ctx, actor, taskID); err != nil {
		return nil, err
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return s.commentCRUD.Find(ctx, query.Eq("task_id", taskID), opts)
}

// CreateComment thêm bình luận vào công việc, stamp user_id + user_name từ actor.
func (s *TaskService) CreateComment(ctx context.Context, actor *authmodels.User, taskID string, input *taskdto.CommentCreateInput) (*taskmodels.TaskComment, error) {
	if _, err := s.GetTask(ctx, actor, taskID); err != nil {
		return nil, err
	}

	userName := actor.FullName
	if userName == "" {
		userName = actor.Username
	}

	comment := taskmodels.TaskComment{
		TaskID:   taskID,
		UserID:   actor.ID,
		UserName: userName,
		Message:  input.Message,
	}

	created, err := s.commentCRUD.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteComment xóa bình luận theo cặp (task_id, id).
// Chỉ tác giả bình luận hoặc admin/manager được xóa.
func (s *TaskService) DeleteComment(ctx context.Context, actor *authmodels.User, taskID, commentID string) error {
	if _, err := s.GetTask(ctx, actor, taskID); err != nil {
		return err
	}

	comment, err := s.commentCRUD.FindOne(ctx, query.And(query.Eq("id", commentID), query.Eq("task_id", taskID)), nil)
	if err != nil {
		return err
	}

	isModerator := actor.Role == authmodels.RoleAdmin || actor.Role == authmodels.RoleManager
	if comment.UserID != actor.ID && !isModerator {
		return common.ErrPermissionDenied
	}

	return s.commentCRUD.DeleteOne(ctx, query.Eq("id", commentID))
}
