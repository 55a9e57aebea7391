// Package zipf fetches word-frequency (Zipf) scores from an HTTP frequency
// service and memoizes them in a bounded LRU cache. The Zipf scale is
// logarithmic: roughly 1 for vanishingly rare words, 7 for "the". A word the
// service does not know scores 0.0.
package zipf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Provider fetches Zipf frequency scores over HTTP.
// Endpoint shape: GET {base}/{language}/{word} → {"word":..,"language":..,"zipf":..}.
type Provider struct {
	baseURL    string
	language   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the given service base URL and language.
func NewProvider(baseURL, language string, timeout time.Duration, logger *slog.Logger) *Provider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "zipf"),
	}
}

// Zipf looks up the frequency score for word. HTTP 404 means the word is
// unknown to the dataset and yields 0.0 without error; transport failures and
// unexpected statuses are returned as errors so the caller can decide how to
// degrade.
func (p *Provider) Zipf(ctx context.Context, word string) (float64, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(p.language) + "/" + url.PathEscape(word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("zipf: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.WarnContext(ctx, "zipf request failed", slog.String("word", word), slog.String("error", err.Error()))
		return 0, fmt.Errorf("zipf: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, nil
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("zipf: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("zipf: read body: %w", err)
	}

	var r apiResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return 0, fmt.Errorf("zipf: decode json: %w", err)
	}

	p.log.DebugContext(ctx, "zipf response",
		slog.String("word", word),
		slog.Float64("zipf", r.Zipf),
	)

	return r.Zipf, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "zipf retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.httpClient.Do(req)
}
