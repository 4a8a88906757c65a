package news

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/kabirsrana193-dot/Finance/internal/cache"
	"github.com/kabirsrana193-dot/Finance/internal/collector"
	"github.com/kabirsrana193-dot/Finance/internal/pipeline"
	"github.com/kabirsrana193-dot/Finance/internal/processor"
	"github.com/kabirsrana193-dot/Finance/internal/sentiment"
)

// countingFetcher 统计真实抓取次数, 用来验证缓存是否生效。
type countingFetcher struct {
	calls atomic.Int64
}

func (c *countingFetcher) Name() string { return "counting" }
func (c *countingFetcher) Fetch() ([]collector.RawEntry, error) {
	c.calls.Add(1)
	return []collector.RawEntry{
		{Title: "headline", Link: "https://c.example/1", Published: collector.PublishedUnknown, Source: "counting"},
	}, nil
}

type neutralClassifier struct{}

func (neutralClassifier) Name() string { return "stub" }

func (neutralClassifier) Classify(text string) sentiment.Label { return sentiment.Neutral }

func newTestService(f collector.Fetcher, ttl time.Duration) *Service {
	p := pipeline.New([]collector.Fetcher{f}, processor.New(30), neutralClassifier{})
	return NewService(p, cache.NewMemoryStore(), ttl)
}

func TestLatestServesFromCache(t *testing.T) {
	f := &countingFetcher{}
	svc := newTestService(f, time.Hour)

	first := svc.Latest()
	second := svc.Latest()

	if got := f.calls.Load(); got != 1 {
		t.Fatalf("fetcher called %d times, want 1 (second read from cache)", got)
	}
	if first.RunID != second.RunID {
		t.Fatalf("cached read must return the same run: %q vs %q", first.RunID, second.RunID)
	}
}

func TestClearCacheForcesRefetch(t *testing.T) {
	f := &countingFetcher{}
	svc := newTestService(f, time.Hour)

	first := svc.Latest()
	svc.ClearCache()
	second := svc.Latest()

	if got := f.calls.Load(); got != 2 {
		t.Fatalf("fetcher called %d times, want 2 after cache clear", got)
	}
	if first.RunID == second.RunID {
		t.Fatalf("a new run must carry a new RunID")
	}
}

func TestRefreshBypassesCache(t *testing.T) {
	f := &countingFetcher{}
	svc := newTestService(f, time.Hour)

	first := svc.Latest()
	refreshed := svc.Refresh()

	if got := f.calls.Load(); got != 2 {
		t.Fatalf("fetcher called %d times, want 2 (refresh must not hit cache)", got)
	}
	if first.RunID == refreshed.RunID {
		t.Fatalf("refresh must produce a new run")
	}

	// 刷新结果写回缓存, 后续读取不再触发抓取
	after := svc.Latest()
	if got := f.calls.Load(); got != 2 {
		t.Fatalf("fetcher called %d times, want 2 (refreshed result should be cached)", got)
	}
	if after.RunID != refreshed.RunID {
		t.Fatalf("Latest after Refresh should serve the refreshed run")
	}
}

func TestLatestConcurrentSingleFlight(t *testing.T) {
	f := &countingFetcher{}
	svc := newTestService(f, time.Hour)

	const readers = 8
	done := make(chan *pipeline.Result, readers)
	for i := 0; i < readers; i++ {
		go func() {
			done <- svc.Latest()
		}()
	}

	var runID string
	for i := 0; i < readers; i++ {
		r := <-done
		if runID == "" {
			runID = r.RunID
		} else if r.RunID != runID {
			t.Fatalf("concurrent readers saw different runs: %q vs %q", runID, r.RunID)
		}
	}
	if got := f.calls.Load(); got != 1 {
		t.Fatalf("fetcher called %d times, want 1 for concurrent cold reads", got)
	}
}
