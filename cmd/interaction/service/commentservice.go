package service

import (
	"context"
	"strings"
	"time"

	"TagHub.com/cmd/interaction/dal/db"
	"TagHub.com/cmd/model"
	userdb "TagHub.com/cmd/user/dal/db"
	videodb "TagHub.com/cmd/video/dal/db"
	"TagHub.com/pkg/constants"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/mq"
	"TagHub.com/pkg/utils"
	"github.com/google/uuid"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// CommentInfo 评论及作者档案
type CommentInfo struct {
	CommentId int64     `json:"comment_id"`
	VideoId   int64     `json:"video_id"`
	UserId    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserImage string    `json:"user_image"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *CommentService) PostComment(videoId, userId int64, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errno.RequestErr
	}
	video, err := videodb.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if video == nil {
		return nil, errno.NotFoundErr
	}

	comment := &model.Comment{
		CommentId: utils.GenId(),
		VideoId:   videoId,
		UserId:    userId,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, errno.MysqlErr
	}

	mq.Publish(s.ctx, &mq.EngagementEvent{
		UserID:     userId,
		VideoID:    videoId,
		CreatorID:  video.CreatorId,
		ActionType: mq.ActionComment,
		Timestamp:  time.Now().Unix(),
		EventID:    uuid.NewString(),
	})
	return comment, nil
}

// ListComments 评论列表 批量补齐作者信息 作者已注销时名字留空
func (s *CommentService) ListComments(videoId int64) ([]*CommentInfo, error) {
	comments, err := db.GetComments(s.ctx, videoId)
	if err != nil {
		return nil, errno.MysqlErr
	}

	authorIds := make([]int64, 0, len(comments))
	seen := make(map[int64]struct{}, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserId]; !ok {
			seen[c.UserId] = struct{}{}
			authorIds = append(authorIds, c.UserId)
		}
	}
	authors, err := userdb.GetUsersByIds(s.ctx, authorIds)
	if err != nil {
		return nil, errno.MysqlErr
	}
	byId := make(map[int64]*model.User, len(authors))
	for _, u := range authors {
		byId[u.UserId] = u
	}

	infos := make([]*CommentInfo, 0, len(comments))
	for _, c := range comments {
		info := &CommentInfo{
			CommentId: c.CommentId,
			VideoId:   c.VideoId,
			UserId:    c.UserId,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		}
		if u, ok := byId[c.UserId]; ok {
			info.UserName = u.Name
			info.UserImage = u.Image
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// DeleteComment 评论作者/视频作者/管理员可删除
func (s *CommentService) DeleteComment(commentId, callerId int64, callerRole string) error {
	comment, err := db.GetComment(s.ctx, commentId)
	if err != nil {
		return errno.MysqlErr
	}
	if comment == nil {
		return errno.NotFoundErr
	}
	allowed := comment.UserId == callerId || callerRole == constants.RoleAdmin
	if !allowed {
		video, err := videodb.GetVideo(s.ctx, comment.VideoId)
		if err != nil {
			return errno.MysqlErr
		}
		if video != nil && (video.CreatorId == callerId || video.BrandId == callerId) {
			allowed = true
		}
	}
	if !allowed {
		return errno.AuthorizationFailedErr
	}
	if err := db.DeleteComment(s.ctx, commentId); err != nil {
		return errno.MysqlErr
	}
	return nil
}
