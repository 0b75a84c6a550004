// Package causality is the sole network boundary for gameplay commands.
// Every failure is absorbed here: the rest of the session only ever
// sees well-formed results, real or simulated.
package causality

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"chronos-core/internal/sanitize"
)

const (
	defaultBackendURL = "http://localhost:5000"
	healthTimeout     = 3 * time.Second
	commandTimeout    = 10 * time.Second
)

// Client talks to the causality-simulation backend. It tracks a single
// in-process online flag: flipped by CheckHealth and by transport
// failures, never re-probed automatically. While the flag is down,
// commands are served by the local simulation without touching the
// network.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	healthClient *http.Client

	mu     sync.Mutex
	online bool
}

// NewClient creates a backend client. An empty baseURL falls back to
// the CHRONOS_BACKEND_URL env var, then to the local default.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("CHRONOS_BACKEND_URL")
	}
	if baseURL == "" {
		baseURL = defaultBackendURL
	}

	return &Client{
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: commandTimeout},
		healthClient: &http.Client{Timeout: healthTimeout},
		online:       true,
	}
}

// Online reports whether the client currently believes the backend is
// reachable.
func (c *Client) Online() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.online
}

func (c *Client) setOnline(online bool) {
	c.mu.Lock()
	c.online = online
	c.mu.Unlock()
}

// CheckHealth probes the backend health endpoint with a bounded
// timeout. Any transport error or non-2xx status yields an offline
// verdict and flips the internal flag.
func (c *Client) CheckHealth(ctx context.Context) HealthStatus {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		c.setOnline(false)
		return HealthStatus{Online: false}
	}

	resp, err := c.healthClient.Do(req)
	if err != nil {
		log.Printf("Backend health check failed: %v", err)
		c.setOnline(false)
		return HealthStatus{Online: false}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Backend health check returned status %d", resp.StatusCode)
		c.setOnline(false)
		return HealthStatus{Online: false}
	}

	var details map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		details = nil
	}

	c.setOnline(true)
	return HealthStatus{Online: true, Details: details}
}

// SendCommand sends a player command for the given era. It always
// returns a usable result: offline, transport failures and malformed
// responses all degrade to the local simulation.
func (c *Client) SendCommand(ctx context.Context, command, era string) *CommandResult {
	command = sanitize.Command(command)
	era = sanitize.Text(era, 100)

	if !c.Online() {
		return Mock(command, era)
	}

	body, err := json.Marshal(map[string]string{
		"command": command,
		"era":     era,
	})
	if err != nil {
		return Mock(command, era)
	}

	raw, err := c.post(ctx, "/api/temporal-command", body)
	if err != nil {
		log.Printf("Temporal command failed, falling back to simulation: %v", err)
		c.setOnline(false)
		return Mock(command, era)
	}

	result, err := validateCommandResult(raw)
	if err != nil {
		log.Printf("Backend response rejected, falling back to simulation: %v", err)
		return Mock(command, era)
	}
	return result
}

// WorldState fetches the backend's world snapshot for an era. Nil when
// offline or on any error; callers tolerate absence.
func (c *Client) WorldState(ctx context.Context, era string) *WorldState {
	if !c.Online() {
		return nil
	}

	raw, err := c.get(ctx, "/api/world-state/"+url.PathEscape(sanitize.Text(era, 100)))
	if err != nil {
		log.Printf("World state fetch failed: %v", err)
		return nil
	}

	var state WorldState
	if err := json.Unmarshal(raw, &state); err != nil {
		log.Printf("World state decode failed: %v", err)
		return nil
	}
	return &state
}

// Timeline fetches the backend's full timeline view. Nil when offline
// or on any error.
func (c *Client) Timeline(ctx context.Context) *TimelineState {
	if !c.Online() {
		return nil
	}

	raw, err := c.get(ctx, "/api/timeline")
	if err != nil {
		log.Printf("Timeline fetch failed: %v", err)
		return nil
	}

	var state TimelineState
	if err := json.Unmarshal(raw, &state); err != nil {
		log.Printf("Timeline decode failed: %v", err)
		return nil
	}
	return &state
}

// CheckCausality asks the backend whether a causal chain connects two
// eras. Nil when offline or on any error.
func (c *Client) CheckCausality(ctx context.Context, sourceEra, targetEra string) *CausalityResult {
	if !c.Online() {
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"source_era": sanitize.Text(sourceEra, 100),
		"target_era": sanitize.Text(targetEra, 100),
	})
	if err != nil {
		return nil
	}

	raw, err := c.post(ctx, "/api/causality-check", body)
	if err != nil {
		log.Printf("Causality check failed: %v", err)
		return nil
	}

	var result CausalityResult
	if err := json.Unmarshal(raw, &result); err != nil {
		log.Printf("Causality check decode failed: %v", err)
		return nil
	}
	return &result
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(body))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return raw, nil
}
