package processor

import (
	"testing"

	"github.com/kabirsrana193-dot/Finance/internal/collector"
)

func TestDeduplicateKeepsFirstSeenAcrossSources(t *testing.T) {
	entries := []collector.RawEntry{
		{Title: "Markets close higher", Source: "alpha", Link: "https://alpha.example/1"},
		{Title: "Rupee slips", Source: "alpha", Link: "https://alpha.example/2"},
		{Title: "Markets close higher", Source: "beta", Link: "https://beta.example/1"},
		{Title: "Rupee slips", Source: "beta", Link: "https://beta.example/2"},
		{Title: "Gold steady", Source: "beta", Link: "https://beta.example/3"},
	}

	out := Deduplicate(entries)
	if len(out) != 3 {
		t.Fatalf("expected 3 entries after dedupe, got %d", len(out))
	}

	// 重复标题保留首次出现的那一条, 包括它的来源和链接
	if out[0].Source != "alpha" || out[0].Link != "https://alpha.example/1" {
		t.Fatalf("first occurrence not kept: %+v", out[0])
	}
	if out[2].Title != "Gold steady" {
		t.Fatalf("order changed after dedupe: %+v", out)
	}

	// 去重是幂等的
	again := Deduplicate(out)
	if len(again) != len(out) {
		t.Fatalf("Deduplicate not idempotent: %d vs %d", len(again), len(out))
	}
}

func TestDeduplicateIsCaseSensitiveExactMatch(t *testing.T) {
	entries := []collector.RawEntry{
		{Title: "Sensex hits record"},
		{Title: "SENSEX HITS RECORD"},
	}
	out := Deduplicate(entries)
	if len(out) != 2 {
		t.Fatalf("titles differing in case must both survive, got %d", len(out))
	}
}

func TestTruncate(t *testing.T) {
	entries := []collector.RawEntry{
		{Title: "a"}, {Title: "b"}, {Title: "c"},
	}

	if got := Truncate(entries, 2); len(got) != 2 || got[1].Title != "b" {
		t.Fatalf("Truncate(2) = %+v, want first two entries", got)
	}
	if got := Truncate(entries, 5); len(got) != 3 {
		t.Fatalf("Truncate above length should keep all, got %d", len(got))
	}
	if got := Truncate(entries, 0); len(got) != 3 {
		t.Fatalf("Truncate(0) should keep all, got %d", len(got))
	}
}

func TestProcessDedupesThenTruncates(t *testing.T) {
	p := New(2)
	entries := []collector.RawEntry{
		{Title: "one", Source: "alpha"},
		{Title: "one", Source: "beta"},
		{Title: "two", Source: "alpha"},
		{Title: "three", Source: "beta"},
	}

	out := p.Process(entries)
	if len(out) != 2 {
		t.Fatalf("expected 2 entries after process, got %d", len(out))
	}
	// 先去重再截断: "one"(alpha) 和 "two" 留下, "three" 被上限挤掉
	if out[0].Title != "one" || out[0].Source != "alpha" || out[1].Title != "two" {
		t.Fatalf("unexpected process output: %+v", out)
	}
}
