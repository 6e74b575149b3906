package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// geminiClient implements LLMClient using the generateContent REST endpoint.
type geminiClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewGeminiClient creates an LLMClient for the hosted Gemini API.
func NewGeminiClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{
		cfg:      cfg,
		http:     newHTTPClient(),
		observer: observer,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

// geminiRequest is the JSON body sent to POST models/{model}:generateContent.
type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	ModelVersion string `json:"modelVersion"`
}

// text joins the parts of the first candidate.
func (r geminiResponse) text() (string, error) {
	if r.PromptFeedback != nil && r.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", ErrInvalidOutput, r.PromptFeedback.BlockReason)
	}
	if len(r.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", ErrInvalidOutput)
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("%w: empty candidate (finish reason %s)", ErrInvalidOutput, r.Candidates[0].FinishReason)
	}
	return b.String(), nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: missing api key", ErrNotConfigured)
	}
	return generateWithRetry(ctx, c.cfg, c.observer, req, func(ctx context.Context, temp float64, maxTok int) (string, string, error) {
		body := geminiRequest{
			Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.UserPrompt}}}},
			GenerationConfig: geminiGenerationConfig{
				Temperature:     temp,
				MaxOutputTokens: maxTok,
			},
		}
		if req.SystemPrompt != "" {
			body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
		}
		if req.ResponseSchema != nil {
			body.GenerationConfig.ResponseMimeType = "application/json"
			body.GenerationConfig.ResponseSchema = req.ResponseSchema
		}

		var resp geminiResponse
		if err := postJSON(ctx, c.http, ProviderGemini, c.modelURL(":generateContent"), c.header(), body, &resp); err != nil {
			return "", "", err
		}
		text, err := resp.text()
		if err != nil {
			return "", "", err
		}
		return text, resp.ModelVersion, nil
	})
}

func (c *geminiClient) modelURL(suffix string) string {
	return c.cfg.Endpoint + "/v1beta/models/" + url.PathEscape(c.cfg.Model) + suffix
}

func (c *geminiClient) header() http.Header {
	return http.Header{"X-Goog-Api-Key": []string{c.cfg.APIKey}}
}

// Available fetches the model resource; a 200 means the key and model are usable.
func (c *geminiClient) Available(ctx context.Context) bool {
	if c.cfg.APIKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return getJSON(ctx, c.http, c.modelURL(""), c.header(), nil) == nil
}
