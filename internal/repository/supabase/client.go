// Package supabase implements the repositories against a Supabase PostgREST
// endpoint using the service role key. The adapter performs no retries;
// any non-2xx response or transport failure surfaces as a domain.StoreError.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"privatemeetups/internal/domain"
)

const requestTimeout = 10 * time.Second

// Client holds the connection details shared by the repositories in this
// package.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

// NewClient returns a Client for the given Supabase project URL and service
// role key. httpClient may be nil, in which case a client with a 10s timeout
// is used.
func NewClient(baseURL, serviceKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		key:     serviceKey,
		http:    httpClient,
	}
}

// doRaw performs one PostgREST request and returns the response for any 2xx
// status. The caller owns resp.Body.
func (c *Client) doRaw(ctx context.Context, op, method, table string, query url.Values, prefer string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.StoreError{Op: op, Body: err.Error()}
		}
		reader = bytes.NewReader(b)
	}

	u := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, &domain.StoreError{Op: op, Body: err.Error()}
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.StoreError{Op: op, Body: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &domain.StoreError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return resp, nil
}

// do performs a request and decodes the JSON response into out (unless out is
// nil or the response is empty).
func (c *Client) do(ctx context.Context, op, method, table string, query url.Values, prefer string, body, out any) error {
	resp, err := c.doRaw(ctx, op, method, table, query, prefer, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return &domain.StoreError{Op: op, Body: "decode response: " + err.Error()}
	}
	return nil
}

// eq builds a PostgREST equality filter value.
func eq(v string) string {
	return "eq." + v
}

// parseContentRangeTotal extracts the total row count from a PostgREST
// Content-Range header such as "0-49/123" or "*/0".
func parseContentRangeTotal(header string) (int, bool) {
	idx := strings.LastIndex(header, "/")
	if idx < 0 {
		return 0, false
	}
	total, err := strconv.Atoi(header[idx+1:])
	if err != nil {
		return 0, false
	}
	return total, true
}
