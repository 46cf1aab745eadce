// Package openaichat provides a summarizer.Client implementation backed by an
// OpenAI-compatible chat completions API.
package openaichat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"tracker/pkg/serrors"
	"tracker/pkg/summarizer"
)

// DefaultEndpoint is the chat completions URL used when none is configured.
const DefaultEndpoint = "https://api.openai.com/v1/chat/completions"

// Client talks to an OpenAI-compatible chat completions endpoint and fulfills
// the summarizer.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the provider
	endpoint   string       // endpoint is the chat completions URL
	token      string       // token is the provider API key
	model      string       // model is the model identifier sent with every request
}

// buildPrompt renders the project facts into the instruction sent to the
// model.
func buildPrompt(req summarizer.Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Act as a Senior Automotive Program Manager. Review this data for Project %q:\n", req.ProjectName)
	fmt.Fprintf(&b, "Type: %s\n", req.ProjectType)
	fmt.Fprintf(&b, "Readiness: %.0f%%\n\nDelays:\n", req.Readiness)
	if len(req.Delays) == 0 {
		b.WriteString("none\n")
	}
	for _, d := range req.Delays {
		fmt.Fprintf(&b, "- %s at %s: %d day(s) behind plan\n", d.Module, d.Gateway, d.Days)
	}
	b.WriteString("\nWrite a 3-bullet executive summary focusing on risks and timeline recovery. ")
	b.WriteString("Keep it professional and concise.")

	return b.String()
}

// Summarize sends the project facts to the chat completions endpoint and
// returns the generated summary text. It returns ErrRateLimited when the
// provider throttles the request.
func (c *Client) Summarize(ctx context.Context, summaryReq summarizer.Request) (string, error) {
	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	type chatReq struct {
		Model    string    `json:"model"`
		Messages []message `json:"messages"`
	}
	bodyBytes, err := json.Marshal(chatReq{
		Model:    c.model,
		Messages: []message{{Role: "user", Content: buildPrompt(summaryReq)}},
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.endpoint,
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(b, &chatResp); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// Ensure Client conforms to the summarizer.Client interface at compile time.
var _ summarizer.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, API token and
// model to generate summaries. An empty endpoint falls back to
// DefaultEndpoint.
func New(httpClient *http.Client, endpoint, token, model string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		token:      token,
		model:      model,
	}
}
