package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kabirsrana193-dot/Finance/internal/collector"
	"github.com/kabirsrana193-dot/Finance/internal/config"
	"github.com/kabirsrana193-dot/Finance/internal/news"
	"github.com/kabirsrana193-dot/Finance/internal/pipeline"
	"github.com/kabirsrana193-dot/Finance/internal/sentiment"
)

type Server struct {
	svc     *news.Service
	sources []config.Source
}

func NewServer(svc *news.Service, sources []config.Source) *Server {
	return &Server{svc: svc, sources: sources}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	// 仪表盘前端独立部署, 默认放开跨域。
	r.Use(cors.Default())

	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/news", s.listNews)
		v1.POST("/refresh", s.refresh)
		v1.GET("/sources", s.listSources)
	}
}

// newsPayload 是 /news 与 /refresh 的 data 字段结构
type newsPayload struct {
	RunID       string              `json:"runId"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Articles    []pipeline.Article  `json:"articles"`
	Summary     pipeline.Summary    `json:"summary"`
	Warnings    []collector.Warning `json:"warnings"`
	Sources     int                 `json:"sources"`
}

type sourceInfo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listNews(c *gin.Context) {
	var filter sentiment.Label
	if raw := c.Query("sentiment"); raw != "" {
		label, ok := sentiment.ParseLabel(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    "bad_request",
				"message": "sentiment must be one of Positive, Negative, Neutral",
			})
			return
		}
		filter = label
	}

	result := s.svc.Latest()

	// 过滤只作用于列表, summary 始终统计全量结果。
	articles := result.Articles
	if filter != "" {
		filtered := make([]pipeline.Article, 0, len(articles))
		for _, a := range articles {
			if a.Sentiment == filter {
				filtered = append(filtered, a)
			}
		}
		articles = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data": newsPayload{
			RunID:       result.RunID,
			GeneratedAt: result.GeneratedAt,
			Articles:    articles,
			Summary:     result.Summary,
			Warnings:    result.Warnings,
			Sources:     len(s.sources),
		},
	})
}

func (s *Server) refresh(c *gin.Context) {
	result := s.svc.Refresh()

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data": newsPayload{
			RunID:       result.RunID,
			GeneratedAt: result.GeneratedAt,
			Articles:    result.Articles,
			Summary:     result.Summary,
			Warnings:    result.Warnings,
			Sources:     len(s.sources),
		},
	})
}

func (s *Server) listSources(c *gin.Context) {
	out := make([]sourceInfo, 0, len(s.sources))
	for _, src := range s.sources {
		out = append(out, sourceInfo{
			Name: src.Name,
			URL:  src.URL,
			Kind: src.Kind,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    out,
	})
}
