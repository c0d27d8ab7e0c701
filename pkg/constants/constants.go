package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	// 用户角色
	RoleBrand   = "brand"
	RoleCreator = "creator"
	RoleAdmin   = "admin"

	// 视频类型
	VideoKindVideo = "video"
	VideoKindShort = "short"

	// 消息类型
	MessageKindText  = "text"
	MessageKindImage = "image"
	MessageKindAudio = "audio"

	DefaultPageSize = 20

	// 榜单规则：views*1 + likes*2 + comments*3，低于10分不上榜，取前50
	LeaderboardViewWeight    = 1
	LeaderboardLikeWeight    = 2
	LeaderboardCommentWeight = 3
	LeaderboardMinPoints     = 10
	LeaderboardSize          = 50
)
