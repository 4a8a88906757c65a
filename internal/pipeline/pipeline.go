// Package pipeline 把抓取、整形、情感分类串成一次完整的聚合运行。
package pipeline

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kabirsrana193-dot/Finance/internal/collector"
	"github.com/kabirsrana193-dot/Finance/internal/processor"
	"github.com/kabirsrana193-dot/Finance/internal/sentiment"
)

// classifyConcurrency 限制并发打标签的 goroutine 数量,
// 模型分类器走网络, 不宜无上限放开。
const classifyConcurrency = 4

// Article 是对外展示的单条新闻
type Article struct {
	Title     string          `json:"title"`
	Source    string          `json:"source"`
	Sentiment sentiment.Label `json:"sentiment"`
	Link      string          `json:"link"`
	Published string          `json:"published"`
}

// Summary 统计全量结果的情感分布, 不受展示过滤影响。
type Summary struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Result 是一次聚合运行的完整产物
type Result struct {
	RunID       string              `json:"runId"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Articles    []Article           `json:"articles"`
	Summary     Summary             `json:"summary"`
	Warnings    []collector.Warning `json:"warnings"`
}

// Pipeline 固定了来源集合与分类器, Run 可以反复调用。
type Pipeline struct {
	fetchers   []collector.Fetcher
	processor  *processor.Processor
	classifier sentiment.Classifier
}

func New(fetchers []collector.Fetcher, proc *processor.Processor, classifier sentiment.Classifier) *Pipeline {
	return &Pipeline{
		fetchers:   fetchers,
		processor:  proc,
		classifier: classifier,
	}
}

// Run 执行一次完整的聚合: 并发抓取 -> 去重截断 -> 并发分类 -> 汇总。
func (p *Pipeline) Run() *Result {
	start := time.Now()

	raw, warnings := collector.FetchAll(p.fetchers)
	entries := p.processor.Process(raw)
	articles := p.classifyAll(entries)

	summary := Summary{Total: len(articles)}
	for _, a := range articles {
		switch a.Sentiment {
		case sentiment.Positive:
			summary.Positive++
		case sentiment.Negative:
			summary.Negative++
		default:
			summary.Neutral++
		}
	}

	result := &Result{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Articles:    articles,
		Summary:     summary,
		Warnings:    warnings,
	}

	log.Printf("pipeline run %s: %d articles (pos=%d neg=%d neu=%d), %d warnings, took %s",
		result.RunID, summary.Total, summary.Positive, summary.Negative, summary.Neutral,
		len(warnings), time.Since(start).Round(time.Millisecond))
	return result
}

// classifyAll 并发打标签, 结果按 entries 原顺序写回。
func (p *Pipeline) classifyAll(entries []collector.RawEntry) []Article {
	articles := make([]Article, len(entries))

	var wg sync.WaitGroup
	sem := make(chan struct{}, classifyConcurrency)
	for i, e := range entries {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, e collector.RawEntry) {
			defer wg.Done()
			defer func() { <-sem }()

			articles[idx] = Article{
				Title:     e.Title,
				Source:    e.Source,
				Sentiment: p.classifier.Classify(e.Title),
				Link:      e.Link,
				Published: e.Published,
			}
		}(i, e)
	}
	wg.Wait()

	return articles
}
