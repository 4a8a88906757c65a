package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Source 描述一个新闻来源。Kind 决定抓取方式:
// rss 走 feed 解析, scrape 走 HTML 页面抓取。
type Source struct {
	Name     string
	URL      string
	Kind     string
	Selector string
}

const (
	KindRSS    = "rss"
	KindScrape = "scrape"
)

// defaultSources 是内置的财经新闻源, 顺序即聚合输出顺序。
var defaultSources = []Source{
	{Name: "Economic Times", URL: "https://economictimes.indiatimes.com/markets/rssfeeds/1977021501.cms", Kind: KindRSS},
	{Name: "Moneycontrol", URL: "https://www.moneycontrol.com/rss/latestnews.xml", Kind: KindRSS},
	{Name: "Business Standard", URL: "https://www.business-standard.com/rss/home_page_top_stories.rss", Kind: KindRSS},
	{Name: "LiveMint Markets", URL: "https://www.livemint.com/rss/markets", Kind: KindRSS},
	{Name: "Financial Express", URL: "https://www.financialexpress.com/market/rss", Kind: KindRSS},
}

type Config struct {
	AppPort string

	Sources        []Source
	PerSourceLimit int
	MaxArticles    int
	FetchTimeout   time.Duration

	Classifier  string
	ModelAPIURL string

	CacheTTL  time.Duration
	RedisAddr string

	AutoRefresh bool
	CronSpec    string

	WebRoot string
}

func Load() *Config {
	cfg := &Config{
		AppPort:        getEnv("APP_PORT", "9000"),
		Sources:        parseSources(getEnv("SOURCES", "")),
		PerSourceLimit: getEnvInt("PER_SOURCE_LIMIT", 10),
		MaxArticles:    getEnvInt("MAX_ARTICLES", 30),
		FetchTimeout:   getEnvSeconds("FETCH_TIMEOUT_SECONDS", 8),
		Classifier:     getEnv("CLASSIFIER", "lexicon"),
		ModelAPIURL:    getEnv("MODEL_API_URL", ""),
		CacheTTL:       getEnvSeconds("CACHE_TTL_SECONDS", 300),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		AutoRefresh:    getEnvBool("AUTO_REFRESH", false),
		CronSpec:       getEnv("CRON_SPEC", "*/5 * * * *"),
		WebRoot:        getEnv("WEB_ROOT", ""),
	}

	log.Printf("config loaded: port=%s sources=%d limit=%d max=%d ttl=%s classifier=%s",
		cfg.AppPort, len(cfg.Sources), cfg.PerSourceLimit, cfg.MaxArticles, cfg.CacheTTL, cfg.Classifier)
	return cfg
}

// parseSources 解析 SOURCES 环境变量, 格式为分号分隔的
// name|url[|kind[|selector]] 列表。空串返回内置源。
func parseSources(raw string) []Source {
	if strings.TrimSpace(raw) == "" {
		out := make([]Source, len(defaultSources))
		copy(out, defaultSources)
		return out
	}

	var out []Source
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, "|")
		if len(fields) < 2 {
			log.Printf("skip malformed source entry: %q", part)
			continue
		}
		src := Source{
			Name: strings.TrimSpace(fields[0]),
			URL:  strings.TrimSpace(fields[1]),
			Kind: KindRSS,
		}
		if len(fields) >= 3 && strings.TrimSpace(fields[2]) != "" {
			src.Kind = strings.ToLower(strings.TrimSpace(fields[2]))
		}
		if len(fields) >= 4 {
			src.Selector = strings.TrimSpace(fields[3])
		}
		if src.Name == "" || src.URL == "" {
			log.Printf("skip source with empty name or url: %q", part)
			continue
		}
		out = append(out, src)
	}
	if len(out) == 0 {
		log.Printf("SOURCES parsed to nothing, fall back to built-in sources")
		out = make([]Source, len(defaultSources))
		copy(out, defaultSources)
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, use default %d", key, v, def)
		return def
	}
	return n
}

func getEnvSeconds(key string, def int) time.Duration {
	return time.Duration(getEnvInt(key, def)) * time.Second
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, use default %v", key, v, def)
		return def
	}
	return b
}
