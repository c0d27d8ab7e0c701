package router

import (
	handler_chat "TagHub.com/cmd/api/handlers/chat"
	handler_interaction "TagHub.com/cmd/api/handlers/interaction"
	handler_relation "TagHub.com/cmd/api/handlers/relation"
	handler_requirement "TagHub.com/cmd/api/handlers/requirement"
	handler_user "TagHub.com/cmd/api/handlers/user"
	handler_video "TagHub.com/cmd/api/handlers/video"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register 注册全部HTTP路由 /v1下除注册登录和榜单外均需登录
func Register(h *server.Hertz) {
	v1 := h.Group("/v1")

	v1.POST("/user/register", handler_user.Register)
	v1.POST("/user/login", jwt.AccessTokenJwtMiddleware.LoginHandler)
	v1.POST("/user/sendcode", handler_user.SendCode)
	v1.POST("/user/verifycode", handler_user.VerifyCode)
	v1.GET("/video/leaderboard", handler_video.Leaderboard)

	auth := v1.Group("", jwt.AccessTokenJwtMiddleware.MiddlewareFunc())

	user := auth.Group("/user")
	user.GET("/info", handler_user.GetUserInfo)
	user.POST("/update", handler_user.UpdateUser)
	user.POST("/avatar", handler_user.UploadAvatar)
	user.POST("/delete", handler_user.DeleteUser)

	admin := auth.Group("/admin")
	admin.GET("/users", handler_user.QueryUsers)
	admin.GET("/stats", handler_user.TotalStats)
	admin.GET("/registrations", handler_user.RegistrationsGraph)

	video := auth.Group("/video")
	video.GET("/feed", handler_video.Feed)
	video.GET("/get", handler_video.GetVideo)
	video.GET("/list", handler_video.UserVideos)
	video.GET("/shorts", handler_video.UserShorts)
	video.GET("/related", handler_video.RelatedVideos)
	video.POST("/publish", handler_video.Publish)
	video.POST("/visit", handler_video.Visit)
	video.POST("/delete", handler_video.DeleteVideo)

	interaction := auth.Group("/interaction")
	interaction.POST("/like", handler_interaction.ToggleLike)
	interaction.GET("/likes", handler_interaction.VideoLikes)
	interaction.POST("/comment", handler_interaction.PostComment)
	interaction.GET("/comments", handler_interaction.ListComments)
	interaction.POST("/comment/delete", handler_interaction.DeleteComment)

	relation := auth.Group("/relation")
	relation.POST("/follow", handler_relation.Follow)
	relation.POST("/unfollow", handler_relation.Unfollow)
	relation.GET("/isfollowing", handler_relation.IsFollowing)
	relation.GET("/counts", handler_relation.FollowCounts)
	relation.GET("/following", handler_relation.FollowingList)
	relation.GET("/followers", handler_relation.FollowerList)

	requirement := auth.Group("/requirement")
	requirement.POST("/post", handler_requirement.PostRequirement)
	requirement.GET("/list", handler_requirement.ListRequirements)
	requirement.POST("/delete", handler_requirement.DeleteRequirement)

	message := auth.Group("/message")
	message.GET("/summaries", handler_chat.ChatSummaries)
	message.GET("/conversation", handler_chat.Conversation)
	message.POST("/send", handler_chat.SendMessage)
}
