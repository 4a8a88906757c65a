package sentiment

import (
	"fmt"
	"log"
	"strings"

	"github.com/jonreiter/govader"
)

// positiveWords / negativeWords 是面向财经标题的触发词表。
// 匹配按小写子串包含, 所以 "gain" 也能命中 "gains"。
var positiveWords = []string{
	"gain", "rise", "surge", "rally", "jump", "soar", "boost",
	"record", "high", "profit", "growth", "bull", "upbeat",
	"upgrade", "beat", "strong", "recover", "rebound", "advance",
	"outperform", "optimis", "improve", "expand", "momentum", "buy",
}

var negativeWords = []string{
	"fall", "drop", "loss", "crash", "bear", "plunge", "slump",
	"decline", "weak", "tumble", "downgrade", "sink", "slide",
	"fear", "concern", "risk", "miss", "default", "fraud", "probe",
	"crisis", "recession", "selloff", "sell-off", "pressure",
	"worry", "warn", "layoff", "slowdown",
}

// polarityThreshold 是词数打平时启用极性分数的死区边界,
// 分数必须严格越过 ±0.1 才离开 Neutral。
const polarityThreshold = 0.1

// PolarityFunc 对原始文本给出 [-1,1] 的极性分数。
type PolarityFunc func(text string) (float64, error)

// LexiconClassifier 先数词表命中, 打平再看极性分数。
// Polarity 可注入, 方便测试替换打分实现。
type LexiconClassifier struct {
	Polarity PolarityFunc
}

func NewLexiconClassifier() *LexiconClassifier {
	analyzer := govader.NewSentimentIntensityAnalyzer()
	return &LexiconClassifier{
		Polarity: func(text string) (score float64, err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("polarity: %v", r)
				}
			}()
			return analyzer.PolarityScores(text).Compound, nil
		},
	}
}

func (c *LexiconClassifier) Name() string {
	return "lexicon"
}

func (c *LexiconClassifier) Classify(text string) Label {
	lowered := strings.ToLower(text)

	pos := countDistinctHits(lowered, positiveWords)
	neg := countDistinctHits(lowered, negativeWords)

	switch {
	case pos > neg:
		return Positive
	case neg > pos:
		return Negative
	}

	// 词数打平, 用极性分数破平; 打分失败按 0 处理。
	score := 0.0
	if c.Polarity != nil {
		s, err := c.Polarity(text)
		if err != nil {
			log.Printf("lexicon: polarity error: %v", err)
		} else {
			score = s
		}
	}

	switch {
	case score > polarityThreshold:
		return Positive
	case score < -polarityThreshold:
		return Negative
	}
	return Neutral
}

// countDistinctHits 统计有多少个不同的词命中了文本,
// 同一个词出现多次只算一次。
func countDistinctHits(lowered string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lowered, w) {
			n++
		}
	}
	return n
}
