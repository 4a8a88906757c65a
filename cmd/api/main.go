package main

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kabirsrana193-dot/Finance/internal/api"
	"github.com/kabirsrana193-dot/Finance/internal/cache"
	"github.com/kabirsrana193-dot/Finance/internal/collector"
	"github.com/kabirsrana193-dot/Finance/internal/config"
	"github.com/kabirsrana193-dot/Finance/internal/news"
	"github.com/kabirsrana193-dot/Finance/internal/pipeline"
	"github.com/kabirsrana193-dot/Finance/internal/processor"
	"github.com/kabirsrana193-dot/Finance/internal/scheduler"
	"github.com/kabirsrana193-dot/Finance/internal/sentiment"
)

func main() {
	// 本地开发从 .env 读取配置, 文件不存在时静默跳过。
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	cfg := config.Load()

	fetchers := collector.BuildFetchers(cfg.Sources, cfg.PerSourceLimit, cfg.FetchTimeout)
	classifier := sentiment.FromConfig(cfg.Classifier, cfg.ModelAPIURL)
	log.Printf("using %s classifier", classifier.Name())

	p := pipeline.New(fetchers, processor.New(cfg.MaxArticles), classifier)
	store := cache.FromConfig(cfg.RedisAddr)
	svc := news.NewService(p, store, cfg.CacheTTL)

	if cfg.AutoRefresh {
		s, err := scheduler.New(cfg.CronSpec, svc)
		if err != nil {
			log.Fatalf("init scheduler failed: %v", err)
		}
		s.Start()
		defer s.Stop()
		log.Printf("auto refresh enabled: %s", cfg.CronSpec)
	}

	// API
	r := gin.Default()

	apiServer := api.NewServer(svc, cfg.Sources)
	apiServer.RegisterRoutes(r)

	// 若配置了前端目录，则托管 SPA 静态文件并做 fallback
	if cfg.WebRoot != "" {
		assetsDir := filepath.Join(cfg.WebRoot, "assets")
		indexFile := filepath.Join(cfg.WebRoot, "index.html")
		r.Static("/assets", assetsDir)
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet {
				c.Status(http.StatusNotFound)
				return
			}
			// SPA：未匹配 API 的 GET 均返回 index.html
			c.File(indexFile)
		})
	}

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
