package websocket

import (
	handler_ws_chat "TagHub.com/cmd/api/handlers/chat"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func WebsocketRegister(h *server.Hertz) {
	h.GET(`/`, jwt.AccessTokenJwtMiddleware.MiddlewareFunc(), handler_ws_chat.Handler)
}
