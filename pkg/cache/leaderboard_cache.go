package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"TagHub.com/cmd/model"
	"github.com/go-redsync/redsync/v4"
	redsyncredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// 缓存键名常量
const (
	// 创作者榜单快照缓存键
	LeaderboardSnapshotKey = "leaderboard:creators"
	// 榜单重算分布式锁键
	LeaderboardRecomputeLockKey = "lock:leaderboard:recompute"
)

// LeaderboardCacheManager 榜单缓存管理器
// 榜单是读多写少的报表视图 允许轻微过期 快照整体缓存
type LeaderboardCacheManager struct {
	client         *redis.Client
	rs             *redsync.Redsync
	snapshotExpire time.Duration
}

func NewLeaderboardCacheManager(client *redis.Client) *LeaderboardCacheManager {
	return &LeaderboardCacheManager{
		client:         client,
		rs:             redsync.New(redsyncredis.NewPool(client)),
		snapshotExpire: 5 * time.Minute,
	}
}

// CacheLeaderboard 缓存榜单快照
func (lcm *LeaderboardCacheManager) CacheLeaderboard(ctx context.Context, entries []*model.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard snapshot: %w", err)
	}
	return lcm.client.Set(ctx, LeaderboardSnapshotKey, data, lcm.snapshotExpire).Err()
}

// GetCachedLeaderboard 获取缓存的榜单快照 未命中返回nil,nil
func (lcm *LeaderboardCacheManager) GetCachedLeaderboard(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	data, err := lcm.client.Get(ctx, LeaderboardSnapshotKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // 缓存未命中
		}
		return nil, fmt.Errorf("failed to get cached leaderboard: %w", err)
	}
	var entries []*model.LeaderboardEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard snapshot: %w", err)
	}
	return entries, nil
}

// Invalidate 删除榜单快照 互动事件到达后调用
func (lcm *LeaderboardCacheManager) Invalidate(ctx context.Context) error {
	return lcm.client.Del(ctx, LeaderboardSnapshotKey).Err()
}

// WithRecomputeLock 持有分布式锁执行重算 避免缓存击穿时多节点同时全量聚合
func (lcm *LeaderboardCacheManager) WithRecomputeLock(ctx context.Context, fn func() error) error {
	mutex := lcm.rs.NewMutex(LeaderboardRecomputeLockKey,
		redsync.WithExpiry(10*time.Second), redsync.WithTries(3))
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("failed to acquire leaderboard lock: %w", err)
	}
	defer mutex.UnlockContext(ctx)
	return fn()
}
