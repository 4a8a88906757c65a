// Package sentiment 对新闻标题做三分类情感判定。
// 默认使用内置词表 + 极性分数的规则分类器, 也可以切换到外部模型服务。
package sentiment

import (
	"log"
	"strings"
)

// Label 是分类结果, 只有三种取值。
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

// Classifier 抽象一种情感分类实现
type Classifier interface {
	Name() string
	Classify(text string) Label
}

// ParseLabel 把外部输入解析为合法标签, 大小写不敏感。
func ParseLabel(s string) (Label, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive":
		return Positive, true
	case "negative":
		return Negative, true
	case "neutral":
		return Neutral, true
	}
	return "", false
}

// FromConfig 按配置选择分类器。model 需要配置服务地址,
// 缺失时回退到词表分类器。
func FromConfig(kind, modelURL string) Classifier {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "model":
		if modelURL == "" {
			log.Printf("classifier=model but MODEL_API_URL is empty, fall back to lexicon")
			return NewLexiconClassifier()
		}
		return NewModelClassifier(modelURL)
	default:
		return NewLexiconClassifier()
	}
}
