package eligibility

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiAssistant calls the generative-language REST API. Identical prompts
// within a short window are served from a small in-memory cache, which keeps
// repeated identical requests from burning quota.
type GeminiAssistant struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client

	mu    sync.Mutex
	cache map[string]geminiCacheEntry
}

type geminiCacheEntry struct {
	text string
	exp  time.Time
}

const geminiCacheTTL = 60 * time.Second

func (g *GeminiAssistant) Available() bool {
	key := strings.TrimSpace(g.APIKey)
	return key != "" && !strings.HasPrefix(key, "replace_with")
}

type geminiRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiAssistant) Generate(ctx context.Context, prompt string) (string, error) {
	if !g.Available() {
		return "", ErrUnavailable
	}
	if text, ok := g.cacheGet(prompt); ok {
		return text, nil
	}

	model := g.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	base := g.BaseURL
	if base == "" {
		base = defaultGeminiBaseURL
	}

	var body geminiRequest
	body.Contents = make([]struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	}, 1)
	body.Contents[0].Parts = []struct {
		Text string `json:"text"`
	}{{Text: prompt}}
	b, _ := json.Marshal(body)

	timeout := 25 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", strings.TrimRight(base, "/"), model, g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", ErrUnavailable
	}
	req.Header.Set("Content-Type", "application/json")

	client := g.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", ErrUnavailable
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", ErrUnavailable
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", ErrUnavailable
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrUnavailable
	}
	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrUnavailable
	}
	g.cachePut(prompt, text)
	return text, nil
}

func (g *GeminiAssistant) cacheGet(prompt string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.cache[prompt]
	if !ok || time.Now().After(e.exp) {
		return "", false
	}
	return e.text, true
}

func (g *GeminiAssistant) cachePut(prompt, text string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cache == nil {
		g.cache = map[string]geminiCacheEntry{}
	}
	g.cache[prompt] = geminiCacheEntry{text: text, exp: time.Now().Add(geminiCacheTTL)}
}
