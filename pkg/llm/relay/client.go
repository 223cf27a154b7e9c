// Package relay implements the HTTP client for prompt-completion backends
// speaking the plain {"prompt": ...} -> {"response": ...} JSON contract.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/robot-coder/converso-multimodal/pkg/llm"
)

// DefaultTimeout bounds a single backend call when no explicit value is
// configured.
const DefaultTimeout = 30 * time.Second

// Client issues one completion request per call. No retries: a failed
// attempt is surfaced immediately rather than masked.
type Client struct {
	httpDo *http.Client
}

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpDo: &http.Client{Timeout: timeout},
	}
}

type completionRequest struct {
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Response string `json:"response"`
}

// Complete posts the prompt to endpoint and returns the backend's completion.
// Transport errors, timeouts and non-2xx statuses come back as *llm.BackendError.
// A 2xx body without a "response" field yields an empty completion; the
// backends are trusted to know what they meant.
func (c *Client) Complete(ctx context.Context, endpoint, prompt string) (string, error) {
	data, err := json.Marshal(completionRequest{Prompt: prompt})
	if err != nil {
		return "", &llm.BackendError{Kind: llm.KindTransport, Detail: fmt.Sprintf("encode request: %v", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", &llm.BackendError{Kind: llm.KindTransport, Detail: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return "", classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &llm.BackendError{
			Kind:   llm.KindStatus,
			Detail: fmt.Sprintf("http %d: %s", resp.StatusCode, bytes.TrimSpace(body)),
		}
	}
	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &llm.BackendError{Kind: llm.KindTransport, Detail: fmt.Sprintf("decode response: %v", err)}
	}
	return out.Response, nil
}

func classifyTransport(err error) *llm.BackendError {
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return &llm.BackendError{Kind: llm.KindTimeout, Detail: err.Error()}
	}
	return &llm.BackendError{Kind: llm.KindTransport, Detail: err.Error()}
}
