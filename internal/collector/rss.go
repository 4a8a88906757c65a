package collector

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/kabirsrana193-dot/Finance/internal/config"
)

const (
	userAgent = "FinanceNewsBot/1.0"

	feedMaxResponseBytes = 2 << 20 // 2MB

	// PublishedUnknown 在源条目缺少发布时间时占位。
	PublishedUnknown = "N/A"
)

// FeedFetcher 通过 RSS/Atom feed 抓取单个来源的头条
type FeedFetcher struct {
	source config.Source
	limit  int
	parser *gofeed.Parser
	client *http.Client
}

func NewFeedFetcher(source config.Source, limit int, timeout time.Duration) *FeedFetcher {
	return &FeedFetcher{
		source: source,
		limit:  limit,
		parser: gofeed.NewParser(),
		client: &http.Client{Timeout: timeout},
	}
}

func (f *FeedFetcher) Name() string {
	return f.source.Name
}

func (f *FeedFetcher) Fetch() ([]RawEntry, error) {
	req, err := http.NewRequest(http.MethodGet, f.source.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("rss: build request %s: %w", f.source.URL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rss: fetch %s: %w", f.source.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rss: %s unexpected status %d", f.source.Name, resp.StatusCode)
	}

	feed, err := f.parser.Parse(io.LimitReader(resp.Body, feedMaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("rss: parse %s: %w", f.source.URL, err)
	}

	// 先截取前 limit 条再过滤缺失字段, 与上限语义保持一致:
	// 上限约束的是原始条目数, 过滤后可以少于 limit。
	items := feed.Items
	if len(items) > f.limit {
		items = items[:f.limit]
	}

	entries := make([]RawEntry, 0, len(items))
	for _, it := range items {
		if it == nil || it.Title == "" || it.Link == "" {
			continue
		}
		published := it.Published
		if published == "" {
			published = PublishedUnknown
		}
		entries = append(entries, RawEntry{
			Title:     it.Title,
			Link:      it.Link,
			Published: published,
			Source:    f.source.Name,
		})
	}

	if len(entries) == 0 {
		log.Printf("rss: %s returned no usable entries", f.source.Name)
	}
	return entries, nil
}
