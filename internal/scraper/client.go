package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://hosted.dcd.shared.geniussports.com/LMBA/en"
	UserAgent      = "mba-calendar/1.0 (github.com/pfrederiksen/mba-calendar)"
	Timeout        = 15 * time.Second
)

// maxPageSize bounds how much of a schedule page is read
var maxPageSize int64 = 10 << 20

// FetchError reports a schedule page that could not be retrieved
type FetchError struct {
	URL        string
	StatusCode int // 0 for transport failures
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client fetches league schedule pages
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// New creates a Client for the default schedule host
func New() *Client {
	return NewWithOptions(DefaultBaseURL, UserAgent, Timeout)
}

// NewWithOptions creates a Client with an explicit base URL, user agent, and timeout.
// Empty or zero values fall back to the defaults.
func NewWithOptions(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = UserAgent
	}
	if timeout <= 0 {
		timeout = Timeout
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

// ScheduleURL returns the schedule page URL for a league
func (c *Client) ScheduleURL(leagueID int) string {
	return fmt.Sprintf("%s/competition/%d/schedule", c.baseURL, leagueID)
}

// Fetch downloads the schedule page for a league
func (c *Client) Fetch(ctx context.Context, leagueID int) ([]byte, error) {
	url := c.ScheduleURL(leagueID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize+1))
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}
	// A truncated page still parses, so an oversized one must fail outright.
	if int64(len(body)) > maxPageSize {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("page exceeds %d bytes", maxPageSize)}
	}
	return body, nil
}
