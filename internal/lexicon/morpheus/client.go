// Package morpheus adapts the Morpheus morphology web service, the
// network-backed fallback source for lemmas the static dictionaries miss.
package morpheus

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
const SourceName = "morpheus"

var engines = map[lexicon.Language]struct{ lang, engine string }{
	lexicon.LanguageLatin: {lang: "lat", engine: "morpheuslat"},
	lexicon.LanguageGreek: {lang: "grc", engine: "morpheusgrc"},
}

// Client fetches raw analyses from a Morpheus endpoint. Transient failures
// retry with exponential backoff; a definitive not-found never retries.
type Client struct {
	httpClient       *resty.Client
	lang             string
	engine           string
	maxRetryAttempts uint
}

// NewClient builds a client for one language against baseURL.
func NewClient(baseURL string, language lexicon.Language, timeout time.Duration, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	e := engines[language]
	return &Client{
		httpClient:       client,
		lang:             e.lang,
		engine:           e.engine,
		maxRetryAttempts: retryAttempts,
	}
}

// Fetch returns the raw analysis payload for lemma, or ErrNotFound when the
// service has no analysis for it.
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
					"lang":   c.lang,
					"engine": c.engine,
					"word":   lemma,
				}).
				Get("/analysis/word")
			if err != nil {
				return fmt.Errorf("request morphology analysis: %w", err)
			}
			switch res.StatusCode() {
			case http.StatusOK, http.StatusCreated:
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
