package mq

// EngagementEvent 互动事件 点赞/评论/播放发生时发布
type EngagementEvent struct {
	UserID     int64  `json:"user_id"`     // 操作用户ID
	VideoID    int64  `json:"video_id"`    // 视频ID
	CreatorID  int64  `json:"creator_id"`  // 视频作者ID
	ActionType string `json:"action_type"` // like/unlike/comment/view
	Timestamp  int64  `json:"timestamp"`   // 时间戳
	EventID    string `json:"event_id"`    // 事件ID
}

const (
	EngagementEventExchange = "engagement_events"
	EngagementEventQueue    = "engagement_event_queue"

	ActionLike    = "like"
	ActionUnlike  = "unlike"
	ActionComment = "comment"
	ActionView    = "view"
)
