// Package scrape walks rib.gg tournament and series pages, extracts the JSON
// payloads embedded in them, and persists the extra/details documents the
// ingestion pipeline consumes.
package scrape

import (
	"context"
	"fmt"
	"time"

	"valorant-pipeline/internal/constants"

	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

// Client is a rate-limited HTTP fetcher shared by all scraping calls.
type Client struct {
	client  *fasthttp.Client
	limiter *rate.Limiter
}

func NewClient() *Client {
	return &Client{
		client: &fasthttp.Client{
			MaxConnsPerHost:     10,
			ReadTimeout:         constants.ScrapeRequestTimeout,
			WriteTimeout:        constants.ScrapeRequestTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		limiter: rate.NewLimiter(rate.Limit(constants.ScrapeRequestsPerSecond), constants.ScrapeBurst),
	}
}

// Get fetches one URL, honoring the shared rate limit.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "text/html,application/json")

	if err := c.client.DoTimeout(req, resp, constants.ScrapeRequestTimeout); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode(), url)
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}
