package db

import (
	"context"

	"TagHub.com/cmd/model"
	"github.com/pkg/errors"
)

func InsertMessage(ctx context.Context, message *model.Message) error {
	if err := DB.WithContext(ctx).Create(message).Error; err != nil {
		return errors.Wrapf(err, "InsertMessage failed,err: %v", err)
	}
	return nil
}

// GetConversation 两人之间的全部消息 时间正序 同时刻按消息id
func GetConversation(ctx context.Context, userId, counterpartId int64) ([]*model.Message, error) {
	var messages []*model.Message
	if err := DB.WithContext(ctx).Model(&model.Message{}).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userId, counterpartId, counterpartId, userId).
		Order("created_at ASC, message_id ASC").Find(&messages).Error; err != nil {
		return nil, errors.Wrapf(err, "GetConversation failed,err: %v", err)
	}
	return messages, nil
}

// GetUserMessages 用户收发的全部消息 汇总会话用 时间正序
func GetUserMessages(ctx context.Context, userId int64) ([]*model.Message, error) {
	var messages []*model.Message
	if err := DB.WithContext(ctx).Model(&model.Message{}).
		Where("from_user_id = ? OR to_user_id = ?", userId, userId).
		Order("created_at ASC, message_id ASC").Find(&messages).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUserMessages failed,err: %v", err)
	}
	return messages, nil
}
