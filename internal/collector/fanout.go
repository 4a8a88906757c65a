package collector

import (
	"log"
	"sync"
)

// FetchAll 并发抓取全部来源, 按 fetchers 的顺序拼接结果。
// 单个来源失败不影响其它来源, 失败以 Warning 形式返回。
func FetchAll(fetchers []Fetcher) ([]RawEntry, []Warning) {
	results := make([][]RawEntry, len(fetchers))
	errs := make([]error, len(fetchers))

	var wg sync.WaitGroup
	for i, f := range fetchers {
		wg.Add(1)
		go func(idx int, f Fetcher) {
			defer wg.Done()
			log.Printf("fetch from %s...", f.Name())
			entries, err := f.Fetch()
			if err != nil {
				log.Printf("fetch %s error: %v", f.Name(), err)
				errs[idx] = err
				return
			}
			log.Printf("fetch %s got %d entries", f.Name(), len(entries))
			results[idx] = entries
		}(i, f)
	}
	wg.Wait()

	var all []RawEntry
	warnings := make([]Warning, 0)
	for i, f := range fetchers {
		if errs[i] != nil {
			warnings = append(warnings, Warning{
				Source:  f.Name(),
				Message: errs[i].Error(),
			})
			continue
		}
		all = append(all, results[i]...)
	}
	return all, warnings
}
