package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cv-genius/internal/model"
)

// ErrNotConfigured is returned by NewClient when the upstream credential is
// absent. Construction fails loudly instead of falling back to a dummy key.
var ErrNotConfigured = errors.New("ai: API key is not configured")

// ErrEnhancementFailed covers upstream errors and empty completions; the
// caller keeps the field's prior value in both cases.
var ErrEnhancementFailed = errors.New("ai: enhancement failed")

// Config carries everything the bridge needs. It is passed in explicitly;
// nothing in this package reads the process environment.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client calls the generative ai-service behind the assistant features.
// Every operation is a single opaque request/response round trip; there is
// no cancellation beyond the context and no coordination between calls.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://ai-service:8000"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}, nil
}

// doPostWithRetry performs an HTTP POST to the given path with retry and
// exponential backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

		resp, err := c.http.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// chat sends a single prompt to the chat endpoint and returns the raw
// completion text.
func (c *Client) chat(ctx context.Context, input string) (string, error) {
	b, err := json.Marshal(map[string]interface{}{
		"agent": "auto",
		"input": input,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.doPostWithRetry(ctx, "/v1/chat", b)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}

	var chatResp struct {
		Agent  string `json:"agent"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", err
	}
	return chatResp.Output, nil
}

// EnhanceText rewrites a piece of resume content to be more professional
// and impactful. Empty input is returned unchanged without a round trip;
// an upstream error or an empty completion fails the enhancement and the
// caller keeps the original text.
func (c *Client) EnhanceText(ctx context.Context, text, fieldContext string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	prompt := fmt.Sprintf(`You are an expert resume writer and career coach.
Your task is to rewrite the following %s content to be more professional, concise, and impactful.
Use strong action verbs. Do not add any conversational filler. Just return the improved text.

Original Text:
%q`, fieldContext, text)

	out, err := c.chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEnhancementFailed, err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEnhancementFailed
	}
	return out, nil
}

// GenerateSummary drafts a short professional summary from the title,
// skills and experience highlights already entered.
func (c *Client) GenerateSummary(ctx context.Context, jobTitle string, skills []string, experience string) (string, error) {
	prompt := fmt.Sprintf(`Write a professional resume summary (max 3-4 sentences) for a %s.
Key skills: %s.
Experience highlights: %s.
Focus on value proposition and professional achievements.`,
		jobTitle, strings.Join(skills, ", "), experience)

	out, err := c.chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEnhancementFailed
	}
	return out, nil
}

// SuggestDesign asks for a theme matching a free-text description. The
// result is a partial suggestion; field validation against the closed
// template/font sets happens in model.ThemeSuggestion.Merge. On error the
// caller falls back to the fixed default theme.
func (c *Client) SuggestDesign(ctx context.Context, description string) (model.ThemeSuggestion, error) {
	ids := make([]string, len(model.TemplateIDs))
	for i, id := range model.TemplateIDs {
		ids[i] = string(id)
	}

	prompt := fmt.Sprintf(`You are a high-end personal branding consultant.
The user wants a resume design that matches this description: %q.

Pick the PERFECT template, font, and accent color.
Role matching guidelines: developer/tech -> tech or modern; designer/creative -> creative, bold, or minimal; CEO/executive -> executive; student -> student; lawyer/classic -> classic.
Color psychology: tech -> green, indigo, cyan; creative -> purple, orange, bold red; corporate -> navy, slate, black.

Available templates: [%s]
Available fonts: [sans, serif, mono]

Respond with ONLY a single JSON object of the shape
{"templateId": "...", "primaryColor": "...", "fontFamily": "..."}
and NOTHING ELSE — no commentary, no markdown, no code fences.`,
		description, strings.Join(ids, ", "))

	out, err := c.chat(ctx, prompt)
	if err != nil {
		return model.ThemeSuggestion{}, fmt.Errorf("suggest design: %w", err)
	}

	var suggestion model.ThemeSuggestion
	if err := json.Unmarshal([]byte(out), &suggestion); err != nil {
		// The model sometimes wraps the object in prose; try the largest
		// brace-delimited substring before giving up.
		sub, ok := extractJSONObject(out)
		if !ok {
			return model.ThemeSuggestion{}, fmt.Errorf("suggest design: non-json content: %w", err)
		}
		if err2 := json.Unmarshal([]byte(sub), &suggestion); err2 != nil {
			return model.ThemeSuggestion{}, fmt.Errorf("suggest design: non-json content: %w", err2)
		}
	}
	return suggestion, nil
}

// EditImage sends the current profile photo plus an instruction to the
// image endpoint and returns the edited image as a data URL. On any
// failure the caller retains the original image unchanged.
func (c *Client) EditImage(ctx context.Context, imageData, instruction string) (string, error) {
	mimeType := "image/jpeg"
	data := imageData
	if rest, found := strings.CutPrefix(data, "data:"); found {
		if mt, b64, ok := strings.Cut(rest, ";base64,"); ok {
			if mt != "" {
				mimeType = mt
			}
			data = b64
		}
	}

	b, err := json.Marshal(map[string]interface{}{
		"image":       data,
		"mimeType":    mimeType,
		"instruction": instruction,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.doPostWithRetry(ctx, "/v1/image", b)
	if err != nil {
		return "", fmt.Errorf("edit image: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("edit image: ai-service returned non-200 status: %d", resp.StatusCode)
	}

	var imgResp struct {
		Image    string `json:"image"`
		MimeType string `json:"mimeType"`
	}
	if err := json.Unmarshal(respBytes, &imgResp); err != nil {
		return "", err
	}
	if imgResp.Image == "" {
		return "", errors.New("edit image: no image in response")
	}
	if imgResp.MimeType == "" {
		imgResp.MimeType = "image/png"
	}
	return "data:" + imgResp.MimeType + ";base64," + imgResp.Image, nil
}

// extractJSONObject returns the substring between the first '{' and the
// last '}' when both exist.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
