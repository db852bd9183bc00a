// Package upstream is the credential-scoped request pipeline: every provider
// operation is a thin typed call through Client.post, which injects the
// active credential into the outgoing body and normalizes every failure into
// an *APIError. No call site bypasses injection or classification.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/edgedeck/edgedeck/internal/account"
	"github.com/edgedeck/edgedeck/internal/util"
)

// DefaultTimeout bounds how long the pipeline waits for a response before
// treating the call as a connectivity failure. There is no mid-flight
// cancellation beyond the caller's context.
const DefaultTimeout = 30 * time.Second

// CredentialSource supplies the active credential at call time. A nil result
// means no account is active and the request goes out unauthenticated; the
// upstream will reject it, which is intentional for pre-registration calls.
type CredentialSource interface {
	CurrentCredentials() *account.Credentials
}

// Client handles communication with the provider gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialSource
}

// NewClient creates a pipeline client rooted at baseURL. A zero timeout
// falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, creds CredentialSource) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		creds:      creds,
	}
}

// envelope is the gateway's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// post issues one pipeline call: credential injection on the way out,
// envelope unwrap on the way back, classification on any failure. fields are
// the operation-specific body; out receives the decoded data payload and may
// be nil for operations whose result the caller ignores.
//
// Credential fields are merged first and caller fields applied after, so a
// caller-supplied field wins on key collision.
func (c *Client) post(ctx context.Context, path string, fields map[string]interface{}, out interface{}) error {
	payload := make(map[string]interface{}, len(fields)+1)
	if creds := c.creds.CurrentCredentials(); creds != nil {
		payload["credentials"] = creds
	}
	for k, v := range fields {
		payload[k] = v
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return &APIError{Message: "Request failed.", Cause: fmt.Errorf("marshal payload: %w", err)}
	}
	if util.IsVerbose() {
		log.Printf("🔄 [VERBOSE] POST %s payload: %s", path, util.TruncateBytes(jsonData))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return &APIError{Message: "Request failed.", Cause: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response received: network-level failure.
		return Classify(err, 0, nil)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Classify(err, resp.StatusCode, nil)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Classify(fmt.Errorf("upstream returned %d", resp.StatusCode), resp.StatusCode, body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Classify(fmt.Errorf("decode response: %w", err), resp.StatusCode, body)
	}
	if !env.Success {
		return Classify(fmt.Errorf("upstream rejected request"), resp.StatusCode, body)
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return Classify(fmt.Errorf("decode data payload: %w", err), resp.StatusCode, body)
		}
	}
	return nil
}

// toFields flattens a typed request struct into the map shape post merges
// credentials into.
func toFields(v interface{}) map[string]interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{}
	}
	fields := make(map[string]interface{})
	if err := json.Unmarshal(data, &fields); err != nil {
		return map[string]interface{}{}
	}
	return fields
}

// ListProviderAccounts is the bootstrap identity call: the provider accounts
// visible to the active token. Implements account.IdentityClient.
func (c *Client) ListProviderAccounts(ctx context.Context) ([]account.ProviderAccount, error) {
	var accounts []account.ProviderAccount
	if err := c.post(ctx, "/cloudflare/accounts", map[string]interface{}{}, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
