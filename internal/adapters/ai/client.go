// Package ai talks to the external text-generation collaborator. The
// service is opaque, possibly slow, and possibly down; this client only
// shapes the two fixed request/response contracts and folds transport
// problems into a small error taxonomy callers can branch on.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrUnavailable covers unreachable hosts, timeouts, and non-2xx
	// responses. The caller shows a retry affordance.
	ErrUnavailable = errors.New("text generation service unavailable")

	// ErrBadPayload means the service answered but the body did not
	// match the contract.
	ErrBadPayload = errors.New("text generation service returned a malformed payload")
)

// DailyReviewRequest carries the four pre-assembled summary strings.
// Aggregation happens upstream; this is text-in, text-out.
type DailyReviewRequest struct {
	Mood      string `json:"mood"`
	Habits    string `json:"habits"`
	Spending  string `json:"spending"`
	Decisions string `json:"decisions"`
}

type DailyReviewResponse struct {
	Summary     string `json:"summary"`
	Suggestions string `json:"suggestions"`
}

type DecisionEntry struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
	Feeling  string `json:"feeling"`
}

type DecisionInsightsRequest struct {
	Entries []DecisionEntry `json:"entries"`
}

type Insight struct {
	Pattern     string `json:"pattern"`
	Explanation string `json:"explanation"`
	Suggestion  string `json:"suggestion"`
}

type DecisionInsightsResponse struct {
	Insights []Insight `json:"insights"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) DailyReview(ctx context.Context, req DailyReviewRequest) (*DailyReviewResponse, error) {
	var resp DailyReviewResponse
	if err := c.post(ctx, "/v1/daily-review", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DecisionInsights(ctx context.Context, req DecisionInsightsRequest) (*DecisionInsightsResponse, error) {
	var resp DecisionInsightsResponse
	if err := c.post(ctx, "/v1/decision-insights", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("ai client: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("ai client: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		io.Copy(io.Discard, httpResp.Body)
		return fmt.Errorf("%w: status %d", ErrUnavailable, httpResp.StatusCode)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	return nil
}
