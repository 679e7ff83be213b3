// Package leetcode is a thin client for the upstream GraphQL API. It knows
// the three query documents the service needs and nothing else; interpreting
// the payloads is the service layer's job.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// userAgent mimics a browser; the upstream rejects obviously robotic clients.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Config carries the client settings, normally taken from config.LeetCode.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// Client posts GraphQL documents to a single fixed endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	log      zerolog.Logger
}

// New builds a client for the given endpoint.
func New(cfg Config, logger zerolog.Logger) *Client {
	l := logger.With().Str("module", "leetcode").Logger()
	return &Client{
		endpoint: cfg.Endpoint,
		http:     &http.Client{Timeout: cfg.Timeout},
		log:      l,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// UpstreamError reports errors the service embedded in an otherwise
// successful response body. It counts as a failed query.
type UpstreamError struct {
	Query    string
	Messages []string
}

func (e *UpstreamError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("upstream error on %s: %s", e.Query, e.Messages[0])
	}
	return fmt.Sprintf("upstream error on %s", e.Query)
}

// FetchBasicProfile runs the required basic-profile query. A nil MatchedUser
// in the result means the username did not resolve; that is for the caller to
// decide on, not a transport failure.
func (c *Client) FetchBasicProfile(ctx context.Context, username string) (*BasicData, error) {
	var out BasicData
	if err := c.query(ctx, "getUserProfile", basicDataQuery, username, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchContestRanking runs the optional contest-ranking query.
func (c *Client) FetchContestRanking(ctx context.Context, username string) (*ContestData, error) {
	var out ContestData
	if err := c.query(ctx, "getContestRanking", contestDataQuery, username, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchSubmissionCalendar runs the optional submission-calendar query.
func (c *Client) FetchSubmissionCalendar(ctx context.Context, username string) (*CalendarData, error) {
	var out CalendarData
	if err := c.query(ctx, "getRecentAcSubmissions", calendarDataQuery, username, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Forward relays a raw {query, variables} document to the endpoint and
// returns the upstream status code and body untouched. Used by the proxy
// route only.
func (c *Client) Forward(ctx context.Context, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read upstream response: %w", err)
	}
	return resp.StatusCode, data, nil
}

// query posts one document and decodes the data subtree into out. Transport
// errors, non-2xx statuses and a non-empty errors list are all failures.
func (c *Client) query(ctx context.Context, name, doc, username string, out any) error {
	payload, err := json.Marshal(graphQLRequest{
		Query:     doc,
		Variables: map[string]any{"username": username},
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s returned status %d", name, resp.StatusCode)
	}

	var envelope graphQLEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", name, err)
	}
	if len(envelope.Errors) > 0 {
		msgs := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msgs = append(msgs, e.Message)
		}
		return &UpstreamError{Query: name, Messages: msgs}
	}
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode %s data: %w", name, err)
		}
	}

	c.log.Debug().
		Str("query", name).
		Dur("duration", time.Since(start)).
		Msg("upstream query completed")
	return nil
}
