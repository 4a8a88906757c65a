// Package cache 为聚合结果提供带 TTL 的缓存。
// 默认是进程内内存缓存, 配置了 REDIS_ADDR 则切换到 Redis,
// 多实例部署时可以共享同一份结果。
package cache

import (
	"time"

	"github.com/kabirsrana193-dot/Finance/internal/pipeline"
)

// Store 抽象缓存后端
type Store interface {
	// Get 返回未过期的缓存结果, 不存在或已过期返回 false。
	Get(key string) (*pipeline.Result, bool)
	// Put 写入结果并设置过期时间。
	Put(key string, result *pipeline.Result, ttl time.Duration)
	// Invalidate 删除指定 key。
	Invalidate(key string)
	// Clear 清空本服务写入过的全部缓存。
	Clear()
}

// FromConfig 按配置选择缓存后端
func FromConfig(redisAddr string) Store {
	if redisAddr != "" {
		return NewRedisStore(redisAddr)
	}
	return NewMemoryStore()
}
