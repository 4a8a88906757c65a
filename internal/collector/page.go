package collector

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/kabirsrana193-dot/Finance/internal/config"
)

// defaultLinkSelector 在来源未配置选择器时兜底, 抓取页面上的所有链接。
const defaultLinkSelector = "a[href]"

// PageFetcher 直接抓取 HTML 页面上的标题链接, 用于没有 RSS 的来源
type PageFetcher struct {
	source  config.Source
	limit   int
	timeout time.Duration
}

func NewPageFetcher(source config.Source, limit int, timeout time.Duration) *PageFetcher {
	return &PageFetcher{
		source:  source,
		limit:   limit,
		timeout: timeout,
	}
}

func (p *PageFetcher) Name() string {
	return p.source.Name
}

func (p *PageFetcher) Fetch() ([]RawEntry, error) {
	base, err := url.Parse(p.source.URL)
	if err != nil {
		return nil, fmt.Errorf("scrape: parse url %s: %w", p.source.URL, err)
	}

	selector := p.source.Selector
	if selector == "" {
		selector = defaultLinkSelector
	}

	c := colly.NewCollector(
		colly.AllowedDomains(base.Hostname(), base.Host),
		colly.UserAgent(userAgent),
	)
	c.SetRequestTimeout(p.timeout)

	entries := make([]RawEntry, 0, p.limit)

	c.OnHTML(selector, func(e *colly.HTMLElement) {
		if len(entries) >= p.limit {
			return
		}

		var title, href string
		if h := e.Attr("href"); h != "" {
			title = strings.TrimSpace(e.Text)
			href = h
		} else {
			// 选择器匹配到容器时, 取容器内第一个有文字的锚点
			e.DOM.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
				t := strings.TrimSpace(a.Text())
				if t == "" {
					return true
				}
				title = t
				href, _ = a.Attr("href")
				return false
			})
		}

		link := e.Request.AbsoluteURL(href)
		if title == "" || link == "" {
			return
		}
		entries = append(entries, RawEntry{
			Title:     title,
			Link:      link,
			Published: PublishedUnknown,
			Source:    p.source.Name,
		})
	})

	if err := c.Visit(p.source.URL); err != nil {
		return nil, fmt.Errorf("scrape: visit %s: %w", p.source.URL, err)
	}

	if len(entries) == 0 {
		log.Printf("scrape: %s matched no entries with selector %q", p.source.Name, selector)
	}
	return entries, nil
}
