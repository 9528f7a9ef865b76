package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pterm/pterm"
)

// envelope is the v4 response wrapper every control plane endpoint uses.
type envelope struct {
	Success  bool            `json:"success"`
	Errors   []ResponseInfo  `json:"errors"`
	Messages []ResponseInfo  `json:"messages"`
	Result   json.RawMessage `json:"result"`
}

// FetchResult performs a request against the control plane and decodes the
// envelope's result into out. A nil out discards the result.
// Unsuccessful envelopes and non-2xx responses are returned as *APIError.
func (c *Client) FetchResult(ctx context.Context, method, path string, header http.Header, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}

	pterm.Debug.Printfln("-- START API REQUEST: %s %s", method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() // Connection cleanup, error doesn't affect functionality

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	pterm.Debug.Printfln("-- END API RESPONSE: %d %s", resp.StatusCode, path)

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return newAPIError(resp.StatusCode, method, path, nil, string(raw))
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success || resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, method, path, env.Errors, http.StatusText(resp.StatusCode))
	}

	if out == nil || len(env.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
