package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the platform host used when none is configured
	DefaultBaseURL = "https://euw1.api.riotgames.com"

	// Rate limits for dev key (using conservative values to be safe)
	requestsPerSecond = 15 // Actual: 20
	requestsPer2Min   = 90 // Actual: 100

	maxRateLimitRetries = 3
)

// API error types
var (
	ErrNotFound  = errors.New("riot: not found (404)")
	ErrForbidden = errors.New("riot: api key rejected (401/403)")
)

// Client is a rate-limited Riot API client
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	// Rate limiting
	mu          sync.Mutex
	shortWindow []time.Time // Requests in last second
	longWindow  []time.Time // Requests in last 2 minutes
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL sets the platform host (useful for testing)
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for rate limit messages
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a new Riot API client
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("riot API key cannot be empty")
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// waitForRateLimit blocks until we can make another request
func (c *Client) waitForRateLimit(ctx context.Context) error {
	for {
		c.mu.Lock()
		now := time.Now()

		c.shortWindow = pruneBefore(c.shortWindow, now.Add(-time.Second))
		c.longWindow = pruneBefore(c.longWindow, now.Add(-2*time.Minute))

		var wait time.Duration
		switch {
		case len(c.shortWindow) >= requestsPerSecond:
			wait = c.shortWindow[0].Add(time.Second).Sub(now) + 100*time.Millisecond
		case len(c.longWindow) >= requestsPer2Min:
			wait = c.longWindow[0].Add(2*time.Minute).Sub(now) + 100*time.Millisecond
		default:
			c.shortWindow = append(c.shortWindow, now)
			c.longWindow = append(c.longWindow, now)
			c.mu.Unlock()
			return nil
		}
		c.mu.Unlock()

		c.logger.Debug("rate limit reached, waiting", "wait", wait)
		if err := sleepCtx(ctx, wait); err != nil {
			return err
		}
	}
}

func pruneBefore(window []time.Time, cutoff time.Time) []time.Time {
	kept := window[:0]
	for _, t := range window {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// doRequest makes a rate-limited GET and decodes the JSON body into result
func (c *Client) doRequest(ctx context.Context, path string, result interface{}) error {
	for attempt := 0; ; attempt++ {
		if err := c.waitForRateLimit(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-Riot-Token", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request %s failed: %w", path, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < maxRateLimitRetries {
			waitSeconds := 10
			if ra := resp.Header.Get("Retry-After"); ra != "" {
				if n, err := strconv.Atoi(ra); err == nil {
					waitSeconds = n
				}
			}
			resp.Body.Close()
			c.logger.Warn("rate limited by API", "path", path, "retry_after_s", waitSeconds)
			if err := sleepCtx(ctx, time.Duration(waitSeconds)*time.Second); err != nil {
				return err
			}
			continue
		}

		err = decodeResponse(resp, result)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
}

func decodeResponse(resp *http.Response, result interface{}) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(result)
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}
}

// GetSummonerByName fetches a summoner profile by name
func (c *Client) GetSummonerByName(ctx context.Context, name string) (*SummonerDTO, error) {
	var summoner SummonerDTO
	err := c.doRequest(ctx, "/lol/summoner/v4/summoners/by-name/"+url.PathEscape(name), &summoner)
	if err != nil {
		return nil, err
	}
	return &summoner, nil
}

// GetMatchlist fetches the most recent match references for an account
func (c *Client) GetMatchlist(ctx context.Context, accountID string, count int) (*MatchlistDTO, error) {
	path := fmt.Sprintf("/lol/match/v4/matchlists/by-account/%s?beginIndex=0&endIndex=%d",
		url.PathEscape(accountID), count)

	var matchlist MatchlistDTO
	if err := c.doRequest(ctx, path, &matchlist); err != nil {
		return nil, err
	}
	return &matchlist, nil
}

// GetMatch fetches match details
func (c *Client) GetMatch(ctx context.Context, gameID int64) (*MatchDTO, error) {
	var match MatchDTO
	if err := c.doRequest(ctx, fmt.Sprintf("/lol/match/v4/matches/%d", gameID), &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// GetTimeline fetches the frame timeline of a match
func (c *Client) GetTimeline(ctx context.Context, gameID int64) (*MatchTimelineDTO, error) {
	var timeline MatchTimelineDTO
	if err := c.doRequest(ctx, fmt.Sprintf("/lol/match/v4/timelines/by-match/%d", gameID), &timeline); err != nil {
		return nil, err
	}
	return &timeline, nil
}
