// ABOUTME: Gmail content fetcher: searches messages and decodes bodies to text.
// ABOUTME: Multipart messages yield their HTML part; attachment-only messages are skipped.
package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://gmail.googleapis.com/gmail/v1"

// PageCap is the provider's cap on results for a single search call. A
// query that may match more messages must be split into date-bounded
// windows (see DateWindows).
const PageCap = 100

// FetchError reports a provider or auth failure. Fetch errors are
// retryable; the client retries transient ones itself before surfacing.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("gmail %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches decoded message bodies from the Gmail REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient builds a client around an authenticated OAuth2 token source.
func NewClient(ctx context.Context, ts oauth2.TokenSource) *Client {
	return &Client{
		httpClient: oauth2.NewClient(ctx, ts),
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBase builds a client against a custom endpoint. Used by tests.
func NewClientWithBase(httpClient *http.Client, baseURL string) *Client {
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

type listResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

type message struct {
	ID      string      `json:"id"`
	Payload messagePart `json:"payload"`
}

type messagePart struct {
	MimeType string `json:"mimeType"`
	Body     struct {
		Data         string `json:"data"`
		AttachmentID string `json:"attachmentId"`
	} `json:"body"`
	Parts []messagePart `json:"parts"`
}

// Search returns the decoded bodies of all messages matching the query, in
// provider order (no ordering guarantee). Messages whose bodies cannot be
// decoded to text are dropped individually rather than failing the batch.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	path := fmt.Sprintf("/users/me/messages?q=%s&maxResults=%d&includeSpamTrash=false",
		url.QueryEscape(query), PageCap)

	var list listResponse
	if err := c.get(ctx, path, &list); err != nil {
		return nil, &FetchError{Op: "list messages", Err: err}
	}

	var bodies []string
	for _, m := range list.Messages {
		var msg message
		msgPath := fmt.Sprintf("/users/me/messages/%s?format=full", m.ID)
		if err := c.get(ctx, msgPath, &msg); err != nil {
			return nil, &FetchError{Op: "get message", Err: err}
		}
		body, ok := extractBody(msg.Payload)
		if !ok {
			continue
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}

// extractBody picks the deterministic text part of a payload: for multipart
// messages the HTML part wins over plain text so downstream parsing always
// sees the same shape; single-part messages use their inline body. A
// payload with no decodable text part reports ok=false.
func extractBody(p messagePart) (string, bool) {
	if len(p.Parts) > 0 {
		if part, ok := findPart(p, "text/html"); ok {
			return decodeData(part.Body.Data)
		}
		if part, ok := findPart(p, "text/plain"); ok {
			return decodeData(part.Body.Data)
		}
		return "", false
	}
	return decodeData(p.Body.Data)
}

func findPart(p messagePart, mimeType string) (messagePart, bool) {
	for _, part := range p.Parts {
		if part.MimeType == mimeType && part.Body.Data != "" {
			return part, true
		}
		if sub, ok := findPart(part, mimeType); ok {
			return sub, true
		}
	}
	return messagePart{}, false
}

// decodeData decodes a base64url body payload. Gmail omits padding; padded
// data is accepted too.
func decodeData(data string) (string, bool) {
	if data == "" {
		return "", false
	}
	raw, err := base64.RawURLEncoding.DecodeString(data)
	if err != nil {
		raw, err = base64.URLEncoding.DecodeString(data)
		if err != nil {
			return "", false
		}
	}
	return string(raw), true
}

// get performs one API call with bounded retry and exponential backoff on
// transient failures.
func (c *Client) get(ctx context.Context, path string, v any) error {
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			return json.NewDecoder(resp.Body).Decode(v)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("status %d", resp.StatusCode)
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return backoff.Permanent(fmt.Errorf("status %d: %s", resp.StatusCode, body))
		}
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 30 * time.Second
	return backoff.Retry(op, backoff.WithContext(b, ctx))
}

// DateWindows splits [from, to) into step-day search windows, each below
// the provider page cap for a daily-journal sender. Each element is a query
// fragment like "after:2021-05-01 before:2021-07-18".
func DateWindows(from, to time.Time, stepDays int) []string {
	if stepDays <= 0 {
		stepDays = 75
	}
	var windows []string
	for cur := from; cur.Before(to); cur = cur.AddDate(0, 0, stepDays) {
		end := cur.AddDate(0, 0, stepDays)
		if end.After(to) {
			end = to
		}
		windows = append(windows, fmt.Sprintf("after:%s before:%s",
			cur.Format("2006-01-02"), end.Format("2006-01-02")))
	}
	return windows
}
