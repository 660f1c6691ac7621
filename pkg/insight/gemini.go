// Package insight talks to the external text-generation service and
// turns its replies into state the tracker can hold: parsed milestone
// plans and the weekly coaching summary.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Messages shown in place of generated content. The call boundary never
// returns an error; a failure becomes one of these strings.
const (
	FallbackMessage   = "Failed to generate insight. Please try again."
	MissingKeyMessage = "No API key configured. Set LIFETRACK_GEMINI_API_KEY to enable insights."
	EmptyMessage      = "No response generated."
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash-preview-09-2025"
)

// Generator is a prompt-to-text collaborator. ok reports whether the
// returned text is real content rather than a fallback message.
type Generator interface {
	Generate(ctx context.Context, prompt string) (text string, ok bool)
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient builds a client from viper configuration: gemini_api_key and
// gemini_model, overridable through the LIFETRACK_ environment prefix.
func NewClient() *Client {
	viper.SetEnvPrefix("LIFETRACK")
	viper.AutomaticEnv()
	viper.SetDefault("gemini_model", defaultModel)

	return &Client{
		APIKey: viper.GetString("gemini_api_key"),
		Model:  viper.GetString("gemini_model"),
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends one prompt and returns one reply. Transport errors,
// non-2xx statuses, undecodable bodies, and empty candidate lists all
// collapse into a fixed message with ok=false; nothing escapes as an
// error.
func (c *Client) Generate(ctx context.Context, prompt string) (string, bool) {
	if c.APIKey == "" {
		return MissingKeyMessage, false
	}

	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", base, model, url.QueryEscape(c.APIKey))

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "insight: encode request: %s\n", err)
		return FallbackMessage, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "insight: build request: %s\n", err)
		return FallbackMessage, false
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "insight: %s\n", err)
		return FallbackMessage, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fmt.Fprintf(os.Stderr, "insight: API error: %s\n", resp.Status)
		return FallbackMessage, false
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		fmt.Fprintf(os.Stderr, "insight: decode response: %s\n", err)
		return FallbackMessage, false
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return EmptyMessage, false
	}
	text := decoded.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return EmptyMessage, false
	}
	return text, true
}
