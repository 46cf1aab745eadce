package openaichat_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"tracker/pkg/serrors"
	"tracker/pkg/summarizer"
	"tracker/pkg/summarizer/openaichat"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *openaichat.Client {
	return openaichat.New(&http.Client{Transport: fn}, "", "test-token", "gpt-4o-mini")
}

func sampleRequest() summarizer.Request {
	return summarizer.Request{
		ProjectName: "Gearbox NG",
		ProjectType: "Major",
		Readiness:   85,
		Delays: []summarizer.Delay{
			{Module: "Housing", Gateway: "D2", Days: 45},
		},
	}
}

func TestClient_Summarize_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "api.openai.com", r.URL.Host)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.Unmarshal(body, &req))
		require.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 1)
		require.Contains(t, req.Messages[0].Content, "Gearbox NG")
		require.Contains(t, req.Messages[0].Content, "Housing at D2: 45 day(s) behind plan")
		require.Contains(t, req.Messages[0].Content, "Readiness: 85%")

		return &http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(strings.NewReader(
				`{"choices":[{"message":{"content":"- risk summary\n"}}]}`)),
		}, nil
	})

	out, err := c.Summarize(context.Background(), sampleRequest())
	require.NoError(t, err)
	require.Equal(t, "- risk summary", out)
}

func TestClient_Summarize_rateLimited429(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader(`{"error":"quota exceeded"}`)),
		}, nil
	})

	_, err := c.Summarize(context.Background(), sampleRequest())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Summarize_serverError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader(`boom`)),
		}, nil
	})

	_, err := c.Summarize(context.Background(), sampleRequest())
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestClient_Summarize_emptyChoices(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"choices":[]}`)),
		}, nil
	})

	_, err := c.Summarize(context.Background(), sampleRequest())
	require.Error(t, err)
}

func TestClient_Summarize_customEndpoint(t *testing.T) {
	c := openaichat.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "llm.internal", r.URL.Host)

		return &http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(strings.NewReader(
				`{"choices":[{"message":{"content":"ok"}}]}`)),
		}, nil
	})}, "https://llm.internal/v1/chat/completions", "test-token", "gpt-4o-mini")

	out, err := c.Summarize(context.Background(), sampleRequest())
	require.NoError(t, err)
	require.Equal(t, "ok", out)
}
