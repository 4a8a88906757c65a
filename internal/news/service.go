// Package news 是聚合结果的读取入口, 在流水线之上加了 TTL 缓存
// 与 singleflight 合并, 缓存失效时并发请求只触发一次真实抓取。
package news

import (
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/kabirsrana193-dot/Finance/internal/cache"
	"github.com/kabirsrana193-dot/Finance/internal/pipeline"
)

const cacheKey = "news:aggregate"

type Service struct {
	pipeline *pipeline.Pipeline
	store    cache.Store
	ttl      time.Duration

	group singleflight.Group
}

func NewService(p *pipeline.Pipeline, store cache.Store, ttl time.Duration) *Service {
	return &Service{
		pipeline: p,
		store:    store,
		ttl:      ttl,
	}
}

// Latest 返回缓存内的聚合结果, 未命中时运行流水线并回写缓存。
func (s *Service) Latest() *pipeline.Result {
	if result, ok := s.store.Get(cacheKey); ok {
		return result
	}

	v, _, shared := s.group.Do(cacheKey, func() (interface{}, error) {
		// 双重检查: 排队期间可能已有别的请求填好了缓存。
		if result, ok := s.store.Get(cacheKey); ok {
			return result, nil
		}
		result := s.pipeline.Run()
		s.store.Put(cacheKey, result, s.ttl)
		return result, nil
	})
	if shared {
		log.Printf("news: pipeline run shared across concurrent requests")
	}
	return v.(*pipeline.Result)
}

// Refresh 跳过缓存强制重跑流水线, 并用新结果覆盖缓存。
func (s *Service) Refresh() *pipeline.Result {
	s.store.Invalidate(cacheKey)

	v, _, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		result := s.pipeline.Run()
		s.store.Put(cacheKey, result, s.ttl)
		return result, nil
	})
	return v.(*pipeline.Result)
}

// ClearCache 只清缓存, 下一次 Latest 会重新抓取。
func (s *Service) ClearCache() {
	s.store.Clear()
}
