package cache

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kabirsrana193-dot/Finance/internal/pipeline"
)

const redisOpTimeout = 3 * time.Second

// RedisStore 把聚合结果序列化成 JSON 存进 Redis, 依赖 Redis 自身的 TTL 过期。
// Clear 只删除本进程写入过的 key, 不做通配符扫描。
type RedisStore struct {
	client *redis.Client

	mu      sync.Mutex
	written map[string]struct{}
}

func NewRedisStore(addr string) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("warn: redis ping failed: %v", err)
	}

	return &RedisStore{
		client:  client,
		written: make(map[string]struct{}),
	}
}

func (r *RedisStore) Get(key string) (*pipeline.Result, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	bs, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis: get %s: %v", key, err)
		}
		return nil, false
	}

	var result pipeline.Result
	if err := json.Unmarshal(bs, &result); err != nil {
		log.Printf("redis: unmarshal %s: %v", key, err)
		return nil, false
	}
	return &result, true
}

func (r *RedisStore) Put(key string, result *pipeline.Result, ttl time.Duration) {
	bs, err := json.Marshal(result)
	if err != nil {
		log.Printf("redis: marshal %s: %v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Set(ctx, key, bs, ttl).Err(); err != nil {
		log.Printf("redis: set %s: %v", key, err)
		return
	}

	r.mu.Lock()
	r.written[key] = struct{}{}
	r.mu.Unlock()
}

func (r *RedisStore) Invalidate(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Del(ctx, key).Err(); err != nil {
		log.Printf("redis: del %s: %v", key, err)
	}

	r.mu.Lock()
	delete(r.written, key)
	r.mu.Unlock()
}

func (r *RedisStore) Clear() {
	r.mu.Lock()
	keys := make([]string, 0, len(r.written))
	for k := range r.written {
		keys = append(keys, k)
	}
	r.written = make(map[string]struct{})
	r.mu.Unlock()

	if len(keys) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("redis: clear %d keys: %v", len(keys), err)
	}
}
