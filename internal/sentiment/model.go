package sentiment

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	// modelMaxInputChars 与常见 transformer 服务的输入上限对齐,
	// 超长标题截断后再送分类。
	modelMaxInputChars    = 512
	modelMaxResponseBytes = 64 * 1024
	modelClientTimeout    = 15 * time.Second
)

// ModelClassifier 调用外部 HTTP 模型服务做分类。
// 服务不可用时一律回退到 Neutral, 不让单条失败拖垮整个流水线。
type ModelClassifier struct {
	endpoint string
	client   *http.Client
}

func NewModelClassifier(endpoint string) *ModelClassifier {
	return &ModelClassifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: modelClientTimeout},
	}
}

func (c *ModelClassifier) Name() string {
	return "model"
}

type modelRequest struct {
	Text string `json:"text"`
}

type modelResponse struct {
	Label string `json:"label"`
}

func (c *ModelClassifier) Classify(text string) Label {
	runes := []rune(text)
	if len(runes) > modelMaxInputChars {
		text = string(runes[:modelMaxInputChars])
	}

	body, err := json.Marshal(modelRequest{Text: text})
	if err != nil {
		log.Printf("model: marshal request: %v", err)
		return Neutral
	}

	resp, err := c.client.Post(c.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("model: call %s: %v", c.endpoint, err)
		return Neutral
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("model: unexpected status %d", resp.StatusCode)
		return Neutral
	}

	var out modelResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, modelMaxResponseBytes)).Decode(&out); err != nil {
		log.Printf("model: decode response: %v", err)
		return Neutral
	}

	label, ok := ParseLabel(out.Label)
	if !ok {
		log.Printf("model: unknown label %q", out.Label)
		return Neutral
	}
	return label
}
