// Package classify calls an OpenAI-compatible chat endpoint to judge whether
// a message is about a channel's configured topic. Callers must treat any
// error as a permissive "on topic" verdict.
package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = `You are a content moderator. Determine if a message is about the specified topic. Answer only "yes" or "no".`

// Checker is what the moderation pipeline depends on.
type Checker interface {
	IsOnTopic(ctx context.Context, content, topic string) (bool, error)
}

// Client talks to a chat-completion endpoint.
type Client struct {
	url    string
	model  string
	apiKey string
	client *http.Client
}

// New creates a classifier client. The timeout bounds the whole call; the
// pipeline never blocks on it regardless.
func New(url, model, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		url:    url,
		model:  model,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// IsOnTopic asks the model for a yes/no verdict.
func (c *Client) IsOnTopic(ctx context.Context, content, topic string) (bool, error) {
	payload := map[string]interface{}{
		"model": c.model,
		"messages": []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Topic: %q\n\nMessage: %q\n\nIs this message about the topic?", topic, content)},
		},
		"max_tokens": 10,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return false, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("classifier http %d", resp.StatusCode)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return false, err
	}
	if len(parsed.Choices) == 0 {
		return false, fmt.Errorf("classifier empty choices")
	}

	answer := strings.ToLower(strings.TrimSpace(parsed.Choices[0].Message.Content))
	return strings.Contains(answer, "yes"), nil
}
