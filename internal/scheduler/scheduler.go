package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kabirsrana193-dot/Finance/internal/news"
)

// warmupDelay 推迟启动后的首轮抓取, 避免和用户首次打开页面的请求争抢资源。
const warmupDelay = 5 * time.Second

// Scheduler 按 cron 表达式定期刷新聚合结果, 让缓存始终是热的。
type Scheduler struct {
	cron *cron.Cron
	svc  *news.Service
}

func New(spec string, svc *news.Service) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron: c,
		svc:  svc,
	}

	if _, err := c.AddFunc(spec, s.refresh); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	time.AfterFunc(warmupDelay, func() {
		// 首轮走 Latest 预热缓存, 命中则不触发抓取。
		s.svc.Latest()
	})
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) refresh() {
	log.Println("start scheduled refresh...")
	result := s.svc.Refresh()
	log.Printf("scheduled refresh done: %d articles, %d warnings",
		result.Summary.Total, len(result.Warnings))
}
