package collector

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kabirsrana193-dot/Finance/internal/config"
)

const headlinesHTML = `<!DOCTYPE html>
<html><body>
<nav><a href="/about">About us</a></nav>
<ul class="headlines">
  <li><a href="/news/1">Markets open flat</a></li>
  <li><a href="/news/2">Gold prices edge up</a></li>
  <li><a href="https://other.example/3">Oil slips in early trade</a></li>
  <li><a href="/news/4"></a></li>
  <li><a href="/news/5">Banks lead the recovery</a></li>
</ul>
</body></html>`

func TestPageFetcherSelectorAndAbsoluteLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(headlinesHTML))
	}))
	defer srv.Close()

	src := config.Source{
		Name:     "scrape-test",
		URL:      srv.URL,
		Kind:     config.KindScrape,
		Selector: "ul.headlines a",
	}
	f := NewPageFetcher(src, 10, 5*time.Second)

	entries, err := f.Fetch()
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	// 导航链接不在选择器内, 空文本链接被跳过
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4: %+v", len(entries), entries)
	}
	if entries[0].Title != "Markets open flat" {
		t.Fatalf("first title = %q", entries[0].Title)
	}
	if want := srv.URL + "/news/1"; entries[0].Link != want {
		t.Fatalf("relative link not resolved: %q, want %q", entries[0].Link, want)
	}
	if entries[2].Link != "https://other.example/3" {
		t.Fatalf("absolute link rewritten: %q", entries[2].Link)
	}
	for _, e := range entries {
		if e.Published != PublishedUnknown {
			t.Fatalf("scraped entry should have Published=%q, got %q", PublishedUnknown, e.Published)
		}
	}
}

func TestPageFetcherContainerSelector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(headlinesHTML))
	}))
	defer srv.Close()

	// 选择器指向 li 容器而不是锚点, 标题与链接取容器内第一个有文字的 a
	src := config.Source{Name: "scrape-test", URL: srv.URL, Selector: "ul.headlines li"}
	f := NewPageFetcher(src, 10, 5*time.Second)

	entries, err := f.Fetch()
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4: %+v", len(entries), entries)
	}
	if entries[0].Title != "Markets open flat" {
		t.Fatalf("first title = %q", entries[0].Title)
	}
	if want := srv.URL + "/news/1"; entries[0].Link != want {
		t.Fatalf("container link = %q, want %q", entries[0].Link, want)
	}
}

func TestPageFetcherHonorsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(headlinesHTML))
	}))
	defer srv.Close()

	src := config.Source{Name: "scrape-test", URL: srv.URL, Selector: "ul.headlines a"}
	f := NewPageFetcher(src, 2, 5*time.Second)

	entries, err := f.Fetch()
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want limit 2", len(entries))
	}
}

func TestPageFetcherVisitError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewPageFetcher(config.Source{Name: "down", URL: srv.URL}, 10, 5*time.Second)
	if _, err := f.Fetch(); err == nil {
		t.Fatalf("expected error for HTTP 503 page")
	}
}
