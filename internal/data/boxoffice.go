package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/yixianOu/movie-review/internal/biz"
	"github.com/yixianOu/movie-review/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
)

var errBoxOfficeNotFound = errors.New("box office: title not found")

type boxOfficeClient struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	maxRetries int
	log        *log.Helper
}

// NewBoxOfficeClient creates a new box office API client
func NewBoxOfficeClient(c *conf.BoxOffice, logger log.Logger) biz.BoxOfficeClient {
	if c == nil {
		c = &conf.BoxOffice{}
	}
	return &boxOfficeClient{
		client: &http.Client{
			Timeout: c.Timeout.AsDuration(),
		},
		baseURL:    c.Url,
		apiKey:     c.ApiKey,
		maxRetries: int(c.MaxRetries),
		log:        log.NewHelper(logger),
	}
}

// GetBoxOffice returns nil data without error when no upstream is configured.
func (c *boxOfficeClient) GetBoxOffice(ctx context.Context, title string) (*biz.BoxOfficeData, error) {
	if c.baseURL == "" {
		return nil, nil
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 100 * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			c.log.Infof("retrying box office request for '%s', attempt %d/%d", title, attempt, c.maxRetries)
		}

		data, err := c.doRequest(ctx, title)
		if err == nil {
			return data, nil
		}
		lastErr = err

		// Don't retry on 404
		if errors.Is(err, errBoxOfficeNotFound) {
			break
		}
	}

	c.log.Warnf("box office request failed after %d attempts: %v", c.maxRetries+1, lastErr)
	return nil, lastErr
}

func (c *boxOfficeClient) doRequest(ctx context.Context, title string) (*biz.BoxOfficeData, error) {
	endpoint := fmt.Sprintf("%s/boxoffice?title=%s", c.baseURL, url.QueryEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errBoxOfficeNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response struct {
		Title   string `json:"title"`
		Budget  int64  `json:"budget"`
		Revenue struct {
			USA       int64 `json:"usa"`
			Worldwide int64 `json:"worldwide"`
		} `json:"revenue"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &biz.BoxOfficeData{
		Title:       response.Title,
		Budget:      nonNegative(response.Budget),
		FeesInUSA:   nonNegative(response.Revenue.USA),
		FeesInWorld: nonNegative(response.Revenue.Worldwide),
	}, nil
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
