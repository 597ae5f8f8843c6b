// Package assistant forwards chat questions to the Gemini generateContent
// REST API, restricted to Islamic finance topics.
package assistant

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

	"github.com/segyhp/islamicfin-engine/internal/config"
	"github.com/segyhp/islamicfin-engine/internal/domain"
)

// Refusal is the fixed answer to off-topic questions.
const Refusal = "I can only assist with Islamic finance and related topics."

const systemPrompt = `You are an Islamic finance assistant.
Only answer questions about Islamic financial calculators, Shariah-compliant finance, and related financial topics.
If the question is unrelated, respond with exactly: "` + Refusal + `"
Be concise and helpful.`

// ErrEmptyReply is returned when the model answers without any text.
var ErrEmptyReply = errors.New("model returned no text")

type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: timeout},
	}
}

// NewClientFromConfig builds a client from the assistant configuration.
func NewClientFromConfig(cfg *config.Config) *Client {
	return NewClient(cfg.Assistant.BaseURL, cfg.Assistant.APIKey, cfg.Assistant.Model, cfg.GetAssistantTimeout())
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction content   `json:"systemInstruction"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Reply sends the conversation and returns the model's trimmed answer.
func (c *Client) Reply(ctx context.Context, message string, history []domain.ChatMessage) (string, error) {
	body, err := json.Marshal(generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemPrompt}}},
		Contents:          conversation(message, history),
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("generateContent: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	var reply strings.Builder
	for _, candidate := range out.Candidates {
		for _, p := range candidate.Content.Parts {
			reply.WriteString(p.Text)
		}
		if reply.Len() > 0 {
			break
		}
	}

	text := strings.TrimSpace(reply.String())
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

// conversation maps chat history onto Gemini turns. Anything that is not the
// user speaks as the model.
func conversation(message string, history []domain.ChatMessage) []content {
	turns := make([]content, 0, len(history)+1)
	for _, msg := range history {
		if strings.TrimSpace(msg.Text) == "" {
			continue
		}
		role := "model"
		if msg.Role == "user" {
			role = "user"
		}
		turns = append(turns, content{Role: role, Parts: []part{{Text: msg.Text}}})
	}
	return append(turns, content{Role: "user", Parts: []part{{Text: message}}})
}
