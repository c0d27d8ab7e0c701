package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"TagHub.com/cmd/message/dal/db"
	"TagHub.com/cmd/model"
	userdb "TagHub.com/cmd/user/dal/db"
	"TagHub.com/pkg/constants"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/utils"
)

type MessageService struct {
	ctx context.Context
}

func NewMessageService(ctx context.Context) *MessageService {
	return &MessageService{ctx: ctx}
}

// SendMessage 落库一条私信 在线投递由ws层负责 离线时仅落库
func (s *MessageService) SendMessage(fromUserId, toUserId int64, content, kind string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" || fromUserId == toUserId {
		return nil, errno.RequestErr
	}
	if kind == "" {
		kind = constants.MessageKindText
	}
	exists, err := userdb.CheckUserExistById(s.ctx, toUserId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr
	}

	message := &model.Message{
		MessageId:  utils.GenId(),
		FromUserId: fromUserId,
		ToUserId:   toUserId,
		Content:    content,
		Kind:       kind,
		CreatedAt:  time.Now(),
	}
	if err := db.InsertMessage(s.ctx, message); err != nil {
		return nil, errno.MysqlErr
	}
	return message, nil
}

// Conversation 两人会话的完整消息流 时间正序
func (s *MessageService) Conversation(userId, counterpartId int64) ([]*model.Message, error) {
	messages, err := db.GetConversation(s.ctx, userId, counterpartId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return messages, nil
}

// ChatSummaries 会话列表 每个对端恰好一条
// 取与该对端之间时间最大的消息 同时刻取消息id更大的一条
// 结果按最后消息时间倒序 同时间按对端id正序
func (s *MessageService) ChatSummaries(userId int64) ([]*model.ChatSummary, error) {
	messages, err := db.GetUserMessages(s.ctx, userId)
	if err != nil {
		return nil, errno.MysqlErr
	}

	latest := make(map[int64]*model.Message)
	order := make([]int64, 0)
	for _, m := range messages {
		counterpart := m.FromUserId
		if counterpart == userId {
			counterpart = m.ToUserId
		}
		prev, ok := latest[counterpart]
		if !ok {
			latest[counterpart] = m
			order = append(order, counterpart)
			continue
		}
		if m.CreatedAt.After(prev.CreatedAt) ||
			(m.CreatedAt.Equal(prev.CreatedAt) && m.MessageId > prev.MessageId) {
			latest[counterpart] = m
		}
	}

	counterparts, err := userdb.GetUsersByIds(s.ctx, order)
	if err != nil {
		return nil, errno.MysqlErr
	}
	profiles := make(map[int64]*model.User, len(counterparts))
	for _, u := range counterparts {
		profiles[u.UserId] = u
	}

	summaries := make([]*model.ChatSummary, 0, len(order))
	for _, id := range order {
		m := latest[id]
		summary := &model.ChatSummary{
			CounterpartId:   id,
			LastMessageText: m.Content,
			LastMessageTime: m.CreatedAt,
		}
		if u, ok := profiles[id]; ok {
			summary.Name = u.Name
			summary.Image = u.Image
		}
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].LastMessageTime.Equal(summaries[j].LastMessageTime) {
			return summaries[i].LastMessageTime.After(summaries[j].LastMessageTime)
		}
		return summaries[i].CounterpartId < summaries[j].CounterpartId
	})
	return summaries, nil
}
