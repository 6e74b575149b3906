package llm

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// ollamaClient talks to a local Ollama server through its chat endpoint.
type ollamaClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewOllamaClient returns an LLMClient backed by an Ollama server at
// cfg.Endpoint. No credentials are needed.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{cfg: cfg, http: newHTTPClient(), observer: observer}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaTuning struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaChat is the non-streaming body for POST /api/chat. Format "json"
// constrains the reply to a JSON document.
type ollamaChat struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   string          `json:"format,omitempty"`
	Options  ollamaTuning    `json:"options"`
}

type ollamaChatReply struct {
	Model   string        `json:"model"`
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

type ollamaTags struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func (c *ollamaClient) chatBody(req GenerateRequest, temp float64, maxTok int) ollamaChat {
	msgs := make([]ollamaMessage, 0, 2)
	if req.SystemPrompt != "" {
		msgs = append(msgs, ollamaMessage{Role: "system", Content: req.SystemPrompt})
	}
	msgs = append(msgs, ollamaMessage{Role: "user", Content: req.UserPrompt})

	body := ollamaChat{
		Model:    c.cfg.Model,
		Messages: msgs,
		Options:  ollamaTuning{Temperature: temp, NumPredict: maxTok},
	}
	if req.ResponseSchema != nil {
		body.Format = "json"
	}
	return body
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return generateWithRetry(ctx, c.cfg, c.observer, req, func(ctx context.Context, temp float64, maxTok int) (string, string, error) {
		var reply ollamaChatReply
		err := postJSON(ctx, c.http, ProviderOllama, c.cfg.Endpoint+"/api/chat", nil, c.chatBody(req, temp, maxTok), &reply)
		if err != nil {
			return "", "", err
		}
		return reply.Message.Content, reply.Model, nil
	})
}

// Available lists the local models and reports whether the configured one
// has been pulled. A bare model name matches any of its tags.
func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var tags ollamaTags
	if err := getJSON(ctx, c.http, c.cfg.Endpoint+"/api/tags", nil, &tags); err != nil {
		return false
	}
	for _, m := range tags.Models {
		if m.Name == c.cfg.Model || strings.HasPrefix(m.Name, c.cfg.Model+":") {
			return true
		}
	}
	return false
}
