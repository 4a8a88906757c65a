package collector

import (
	"time"

	"github.com/kabirsrana193-dot/Finance/internal/config"
)

// RawEntry 统一采集后的基础结构, 只保留标题、链接和发布时间原文。
type RawEntry struct {
	Title     string
	Link      string
	Published string
	Source    string
}

// Warning 记录某个来源抓取失败的信息, 聚合结果会带回给调用方。
type Warning struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// Fetcher 抽象每一个新闻来源
type Fetcher interface {
	Name() string
	Fetch() ([]RawEntry, error)
}

// BuildFetchers 按配置构造全部抓取器, 顺序与配置一致。
func BuildFetchers(sources []config.Source, limit int, timeout time.Duration) []Fetcher {
	fetchers := make([]Fetcher, 0, len(sources))
	for _, src := range sources {
		switch src.Kind {
		case config.KindScrape:
			fetchers = append(fetchers, NewPageFetcher(src, limit, timeout))
		default:
			fetchers = append(fetchers, NewFeedFetcher(src, limit, timeout))
		}
	}
	return fetchers
}
