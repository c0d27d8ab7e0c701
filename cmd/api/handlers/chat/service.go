package chat

import (
	"context"
	"encoding/json"
	"sync"

	messageservice "TagHub.com/cmd/message/service"
	"TagHub.com/cmd/model"
	"TagHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/websocket"
)

// connRegistry 在线连接表 一个用户同时只保留最后一条连接
type connRegistry struct {
	mu    sync.RWMutex
	conns map[int64]*websocket.Conn
}

var registry = &connRegistry{conns: make(map[int64]*websocket.Conn)}

func (r *connRegistry) add(userId int64, conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[userId] = conn
}

func (r *connRegistry) remove(userId int64, conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conns[userId] == conn {
		delete(r.conns, userId)
	}
}

func (r *connRegistry) get(userId int64) *websocket.Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.conns[userId]
}

type ChatService struct {
	ctx    context.Context
	c      *app.RequestContext
	conn   *websocket.Conn
	userId int64
}

func NewChatService(ctx context.Context, c *app.RequestContext, conn *websocket.Conn, userId int64) *ChatService {
	return &ChatService{ctx: ctx, c: c, conn: conn, userId: userId}
}

func (service *ChatService) Login() {
	registry.add(service.userId, service.conn)
}

func (service *ChatService) Logout() {
	registry.remove(service.userId, service.conn)
}

// SendMessage 先落库 对端在线时再实时转发 离线时仅落库等对端拉会话
func (service *ChatService) SendMessage(msg Message) error {
	stored, err := messageservice.NewMessageService(service.ctx).SendMessage(
		service.userId, msg.ToUserId, msg.Text, msg.Kind)
	if err != nil {
		return err
	}

	if toConn := registry.get(msg.ToUserId); toConn != nil {
		if err := service.relay(toConn, stored); err != nil {
			// 转发失败不算发送失败 消息已落库
			hlog.Warnf("relay message %d to user %d failed: %v", stored.MessageId, msg.ToUserId, err)
		}
	}
	return nil
}

func (service *ChatService) relay(toConn *websocket.Conn, message *model.Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return errno.ServiceErr
	}
	return toConn.WriteMessage(websocket.TextMessage, payload)
}
