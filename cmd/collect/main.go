package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/kabirsrana193-dot/Finance/internal/collector"
	"github.com/kabirsrana193-dot/Finance/internal/config"
	"github.com/kabirsrana193-dot/Finance/internal/pipeline"
	"github.com/kabirsrana193-dot/Finance/internal/processor"
	"github.com/kabirsrana193-dot/Finance/internal/sentiment"
)

// 一个仅执行一次聚合的命令行入口：适合调试来源与分类效果
func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	cfg := config.Load()

	fetchers := collector.BuildFetchers(cfg.Sources, cfg.PerSourceLimit, cfg.FetchTimeout)
	classifier := sentiment.FromConfig(cfg.Classifier, cfg.ModelAPIURL)

	p := pipeline.New(fetchers, processor.New(cfg.MaxArticles), classifier)
	result := p.Run()

	for _, w := range result.Warnings {
		log.Printf("warn: %s: %s", w.Source, w.Message)
	}

	for i, a := range result.Articles {
		fmt.Printf("%2d. [%-8s] %-18s %s\n", i+1, a.Sentiment, a.Source, a.Title)
	}
	fmt.Printf("total=%d positive=%d negative=%d neutral=%d\n",
		result.Summary.Total, result.Summary.Positive, result.Summary.Negative, result.Summary.Neutral)
}
