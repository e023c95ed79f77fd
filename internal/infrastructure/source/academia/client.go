// Package academia fetches listing and statistics pages from the
// Academia das Apostas Brasil site and reduces them to the plain text
// the report parser consumes.
package academia

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/lucasveiga/palpiteiro/internal/platform/logging"
	"github.com/lucasveiga/palpiteiro/internal/platform/resilience"
	"github.com/lucasveiga/palpiteiro/internal/platform/textnorm"
	"github.com/lucasveiga/palpiteiro/internal/usecase"
)

const (
	defaultBaseURL         = "https://www.academiadasapostas.com.br"
	defaultCompetitionPath = "futebol/brasil/campeonato-brasileiro-serie-a"
	maxPageBytes           = 6 << 20
)

var errAcademiaTransient = crerr.New("academia transient failure")

// The site throttles repeated identical clients, so requests rotate
// through a small pool of browser user agents.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/117.0",
}

type ClientConfig struct {
	HTTPClient      *http.Client
	BaseURL         string
	CompetitionPath string
	Timeout         time.Duration
	MaxRetries      int
	Logger          *logging.Logger
	BreakerFailures int
	BreakerCooldown time.Duration
}

// Client implements usecase.PageSource against the live site.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	competitionPath string
	maxRetries      int
	logger          *logging.Logger
	breaker         *resilience.Breaker
	flight          resilience.SingleFlight
	now             func() time.Time
	uaCounter       atomic.Uint32
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	competitionPath := strings.Trim(strings.TrimSpace(cfg.CompetitionPath), "/")
	if competitionPath == "" {
		competitionPath = defaultCompetitionPath
	}

	breakerFailures := cfg.BreakerFailures
	if breakerFailures <= 0 {
		breakerFailures = 5
	}

	return &Client{
		httpClient:      httpClient,
		baseURL:         baseURL,
		competitionPath: competitionPath,
		maxRetries:      max(cfg.MaxRetries, 0),
		logger:          logger,
		breaker:         resilience.NewBreaker(breakerFailures, cfg.BreakerCooldown, 1),
		now:             time.Now,
	}
}

// FetchDailyListing pulls today's fixture listing for the configured
// competition.
func (c *Client) FetchDailyListing(ctx context.Context) (string, error) {
	day := c.now().Format("2006-01-02")
	url := fmt.Sprintf("%s/stats/jogos-do-dia/%s/%s", c.baseURL, day, c.competitionPath)
	return c.fetchText(ctx, url)
}

// FetchMatchPage pulls the statistics preview page for one fixture.
func (c *Client) FetchMatchPage(ctx context.Context, homeTeam, awayTeam string) (string, error) {
	url := fmt.Sprintf("%s/stats/previsao/%s-vs-%s/%s",
		c.baseURL, urlSlug(homeTeam), urlSlug(awayTeam), c.competitionPath)
	return c.fetchText(ctx, url)
}

func (c *Client) fetchText(ctx context.Context, url string) (string, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "academia circuit breaker rejected request", "state", c.breaker.State())
		return "", fmt.Errorf("%w: statistics site is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	out, err, _ := c.flight.Do(url, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, url)
		if reqErr != nil {
			if stderrors.Is(reqErr, errAcademiaTransient) {
				c.breaker.Failure()
			} else {
				c.breaker.Success()
			}
			return nil, reqErr
		}
		c.breaker.Success()
		return raw, nil
	})
	if err != nil {
		return "", err
	}

	raw, ok := out.([]byte)
	if !ok {
		return "", fmt.Errorf("unexpected page payload type %T", out)
	}

	text, err := ReduceHTML(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("reduce page %s: %w", url, err)
	}
	return text, nil
}

func (c *Client) executeRequest(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("User-Agent", c.nextUserAgent())
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7")
		req.Header.Set("Referer", c.baseURL+"/")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errAcademiaTransient, "send request: %v", err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errAcademiaTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errAcademiaTransient, "site status=%d", resp.StatusCode)
			default:
				return nil, fmt.Errorf("site status=%d for %s", resp.StatusCode, url)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("site request failed")
	}
	c.logger.WarnContext(ctx, "academia request failed", "url", url, "error", lastErr)
	return nil, lastErr
}

func (c *Client) nextUserAgent() string {
	idx := c.uaCounter.Add(1)
	return userAgents[int(idx)%len(userAgents)]
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// urlSlug builds the hyphenated team segment the site uses in its
// preview URLs.
func urlSlug(team string) string {
	return strings.ReplaceAll(textnorm.Slug(team), "_", "-")
}
