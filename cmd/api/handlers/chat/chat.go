package chat

import (
	"context"
	"encoding/json"

	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/websocket"
)

// Message 客户端上行的消息帧
type Message struct {
	ToUserId int64  `json:"to_user_id"`
	Text     string `json:"text"`
	Kind     string `json:"kind"`
}

var upgrader = websocket.HertzUpgrader{
	CheckOrigin: func(ctx *app.RequestContext) bool {
		return true
	},
}

var badConnection = []byte(`bad connection`)

// Handler websocket入口 连接期间上行消息逐条落库并尝试实时转发
func Handler(ctx context.Context, c *app.RequestContext) {
	userId := jwt.CallerId(ctx, c)
	err := upgrader.Upgrade(c, func(conn *websocket.Conn) {
		if userId <= 0 {
			conn.WriteMessage(websocket.TextMessage, badConnection)
			return
		}

		s := NewChatService(ctx, c, conn, userId)
		s.Login()
		defer s.Logout()

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var msg Message
			if err := json.Unmarshal(raw, &msg); err != nil {
				conn.WriteMessage(websocket.TextMessage, []byte("Error unmarshalling message"))
				continue
			}
			if err := s.SendMessage(msg); err != nil {
				hlog.Infof("send message from %d failed: %v", userId, err)
				conn.WriteMessage(websocket.TextMessage, []byte("Error sending message"))
			}
		}
	})
	if err != nil {
		c.JSON(consts.StatusOK, `error`)
		return
	}
}
