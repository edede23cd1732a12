// Package perseus adapts the Perseus lexicon service, the network-backed
// fallback for Greek lemmas the core list misses.
package perseus

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/autocom/glossa/internal/lexicon"
)

// SourceName is the identifier this source registers under.
const SourceName = "perseus"

// Client fetches raw lexicon entries from a Perseus endpoint. Transient
// failures retry with exponential backoff; a definitive not-found never
// retries.
type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewClient builds a client against baseURL.
func NewClient(baseURL string, timeout time.Duration, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/xml")

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

// Fetch returns the raw XML entry for lemma, or ErrNotFound when the
// service has no entry for it.
func (c *Client) Fetch(ctx context.Context, lemma string) ([]byte, error) {
	var (
		raw      []byte
		notFound bool
	)
	if err := retry.Do(
		func() error {
			res, err := c.httpClient.R().
				SetContext(ctx).
				SetQueryParams(map[string]string{
					"lang":  "grc",
					"lemma": lemma,
				}).
				Get("/lexica/entry")
			if err != nil {
				return fmt.Errorf("request lexicon entry: %w", err)
			}
			switch res.StatusCode() {
			case http.StatusOK:
			case http.StatusNotFound:
				notFound = true
				return retry.Unrecoverable(fmt.Errorf("status code: %d", res.StatusCode()))
			default:
				return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
			}
			raw = res.Body()
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	); err != nil {
		if notFound {
			return nil, fmt.Errorf("%q: %w", lemma, lexicon.ErrNotFound)
		}
		return nil, err
	}
	return raw, nil
}
