package processor

import (
	"github.com/kabirsrana193-dot/Finance/internal/collector"
)

// Processor 负责聚合后的整形: 跨来源去重并截断到全局上限。
type Processor struct {
	maxArticles int
}

func New(maxArticles int) *Processor {
	return &Processor{maxArticles: maxArticles}
}

func (p *Processor) Process(entries []collector.RawEntry) []collector.RawEntry {
	return Truncate(Deduplicate(entries), p.maxArticles)
}

// Deduplicate 按标题精确去重, 保留首次出现的条目, 顺序不变。
func Deduplicate(entries []collector.RawEntry) []collector.RawEntry {
	out := make([]collector.RawEntry, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if _, ok := seen[e.Title]; ok {
			continue
		}
		seen[e.Title] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Truncate 截断到前 max 条, max<=0 时原样返回。
func Truncate(entries []collector.RawEntry, max int) []collector.RawEntry {
	if max <= 0 || len(entries) <= max {
		return entries
	}
	return entries[:max]
}
