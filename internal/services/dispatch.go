package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"deepchat-backend/internal/config"
	"deepchat-backend/internal/models"
)

// DispatchResult is the modeled outcome of a dispatch: either text from an
// upstream provider, or fallback text with the reason the upstream path was
// skipped. Dispatch never returns an error; degradation is a normal outcome.
type DispatchResult struct {
	Text     string
	Provider string
	Fallback bool
	Reason   string // set only when Fallback is true
}

type provider struct {
	name          string
	endpointURL   string
	apiKey        string
	upstreamModel string
}

// Dispatcher resolves a requested model name against the configured provider
// table and performs a single chat-completion call against the winner.
type Dispatcher struct {
	providers   map[string]provider
	defaultName string
	client      *http.Client
}

func NewDispatcher(cfg *config.Config) *Dispatcher {
	providers := map[string]provider{
		"deepseek": {
			name:          "deepseek",
			endpointURL:   cfg.DeepSeekURL,
			apiKey:        cfg.DeepSeekAPIKey,
			upstreamModel: "deepseek-chat",
		},
		"phi4": {
			name:          "phi4",
			endpointURL:   cfg.OpenRouterURL,
			apiKey:        cfg.OpenRouterAPIKey,
			upstreamModel: "microsoft/phi-4",
		},
	}

	defaultName := cfg.DefaultModel
	if _, ok := providers[defaultName]; !ok {
		defaultName = "deepseek"
	}

	return &Dispatcher{
		providers:   providers,
		defaultName: defaultName,
		client: &http.Client{
			Timeout: time.Duration(cfg.UpstreamTimeoutMs) * time.Millisecond,
		},
	}
}

type upstreamMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type upstreamRequest struct {
	Model    string            `json:"model"`
	Messages []upstreamMessage `json:"messages"`
}

// upstreamResponse covers both reply shapes seen across providers: the
// OpenAI-style choices array and a bare top-level result string.
type upstreamResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Result string `json:"result"`
}

// Dispatch sends the prompt to the provider selected by modelName. Unknown
// names resolve to the default provider. Every failure path degrades to the
// offline fallback generator; the caller always gets usable text.
func (d *Dispatcher) Dispatch(ctx context.Context, prompt, modelName, userID string, history []models.ChatMessage) DispatchResult {
	p, ok := d.providers[modelName]
	if !ok {
		p = d.providers[d.defaultName]
	}

	res := d.call(ctx, p, prompt, history)

	outcome := "success"
	if res.Fallback {
		outcome = "fallback (" + res.Reason + ")"
	}
	log.Printf("dispatch user=%s model=%s provider=%s outcome=%s", userID, modelName, p.name, outcome)

	return res
}

func (d *Dispatcher) call(ctx context.Context, p provider, prompt string, history []models.ChatMessage) DispatchResult {
	if p.apiKey == "" {
		return DispatchResult{
			Text:     OfflineFallback(prompt),
			Provider: p.name,
			Fallback: true,
			Reason:   "no credential configured",
		}
	}

	messages := make([]upstreamMessage, 0, len(history)+1)
	for _, m := range history {
		role := "user"
		if m.Sender == "ai" {
			role = "assistant"
		}
		messages = append(messages, upstreamMessage{Role: role, Content: m.Content})
	}
	messages = append(messages, upstreamMessage{Role: "user", Content: prompt})

	body, err := json.Marshal(upstreamRequest{Model: p.upstreamModel, Messages: messages})
	if err != nil {
		return d.degrade(p, prompt, fmt.Sprintf("encode request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpointURL, bytes.NewReader(body))
	if err != nil {
		return d.degrade(p, prompt, fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := d.client.Do(req)
	if err != nil {
		return d.degrade(p, prompt, fmt.Sprintf("transport error: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		return d.degrade(p, prompt, "quota exhausted (402)")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return d.degrade(p, prompt, fmt.Sprintf("upstream status %d", resp.StatusCode))
	}

	var out upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return d.degrade(p, prompt, fmt.Sprintf("decode response: %v", err))
	}

	text := out.Result
	if len(out.Choices) > 0 {
		text = out.Choices[0].Message.Content
	}
	if text == "" {
		return d.degrade(p, prompt, "empty reply from upstream")
	}

	return DispatchResult{Text: text, Provider: p.name}
}

func (d *Dispatcher) degrade(p provider, prompt, reason string) DispatchResult {
	return DispatchResult{
		Text:     OfflineFallback(prompt),
		Provider: p.name,
		Fallback: true,
		Reason:   reason,
	}
}
