package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	messagedb "TagHub.com/cmd/message/dal/db"
	"TagHub.com/cmd/model"
	userdb "TagHub.com/cmd/user/dal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMessageDB(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&model.User{}, &model.Message{}))
	messagedb.DB = gdb
	userdb.DB = gdb
}

func seedUser(t *testing.T, id int64) {
	err := userdb.CreateUser(context.Background(), &model.User{
		UserId: id, Name: fmt.Sprintf("user%d", id),
		Email: fmt.Sprintf("u%d@test.com", id), Role: "creator",
	})
	require.NoError(t, err)
}

func seedMessage(t *testing.T, id, from, to int64, text string, at time.Time) {
	err := messagedb.InsertMessage(context.Background(), &model.Message{
		MessageId: id, FromUserId: from, ToUserId: to,
		Content: text, Kind: "text", CreatedAt: at,
	})
	require.NoError(t, err)
}

func TestChatSummariesOnePerCounterpart(t *testing.T) {
	setupMessageDB(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedUser(t, 1)
	seedUser(t, 2)
	seedUser(t, 3)

	// U1发3条给U2 U2回1条 U1发2条给U3
	seedMessage(t, 11, 1, 2, "hi", base.Add(1*time.Minute))
	seedMessage(t, 12, 1, 2, "hello", base.Add(2*time.Minute))
	seedMessage(t, 13, 1, 2, "there", base.Add(3*time.Minute))
	seedMessage(t, 14, 2, 1, "reply", base.Add(4*time.Minute))
	seedMessage(t, 15, 1, 3, "hey", base.Add(5*time.Minute))
	seedMessage(t, 16, 1, 3, "ping", base.Add(6*time.Minute))

	summaries, err := NewMessageService(ctx).ChatSummaries(1)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// 按最后消息时间倒序 U3(t6)在U2(t4)前
	assert.Equal(t, int64(3), summaries[0].CounterpartId)
	assert.Equal(t, "ping", summaries[0].LastMessageText)
	assert.Equal(t, "user3", summaries[0].Name)
	assert.Equal(t, int64(2), summaries[1].CounterpartId)
	assert.Equal(t, "reply", summaries[1].LastMessageText)
	assert.True(t, summaries[1].LastMessageTime.Equal(base.Add(4*time.Minute)))
}

func TestChatSummariesTieBrokenByMessageId(t *testing.T) {
	setupMessageDB(t)
	ctx := context.Background()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedUser(t, 1)
	seedUser(t, 2)

	seedMessage(t, 11, 1, 2, "old", at)
	seedMessage(t, 12, 2, 1, "new", at)

	summaries, err := NewMessageService(ctx).ChatSummaries(1)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "new", summaries[0].LastMessageText)
}

func TestSendMessageValidation(t *testing.T) {
	setupMessageDB(t)
	ctx := context.Background()
	seedUser(t, 1)
	svc := NewMessageService(ctx)

	_, err := svc.SendMessage(1, 1, "self", "text")
	assert.Error(t, err)
	_, err = svc.SendMessage(1, 99, "ghost", "text")
	assert.Error(t, err)
	_, err = svc.SendMessage(1, 2, "  ", "text")
	assert.Error(t, err)
}

func TestConversationOrdered(t *testing.T) {
	setupMessageDB(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedUser(t, 1)
	seedUser(t, 2)
	seedUser(t, 3)
	seedMessage(t, 11, 1, 2, "a", base.Add(1*time.Minute))
	seedMessage(t, 12, 2, 1, "b", base.Add(2*time.Minute))
	seedMessage(t, 13, 1, 3, "other thread", base.Add(3*time.Minute))

	messages, err := NewMessageService(ctx).Conversation(1, 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "a", messages[0].Content)
	assert.Equal(t, "b", messages[1].Content)
}
