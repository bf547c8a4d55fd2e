// Package quip fetches documents from the Quip Automation API and extracts
// the first spreadsheet they contain.
package quip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bjaus/projreport"

	log "github.com/sirupsen/logrus"
)

const DefaultBaseURL = "https://platform.quip.com"

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("quip: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Thread is the metadata of a Quip document.
type Thread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

// ThreadDocument is a thread together with its HTML body.
type ThreadDocument struct {
	Thread Thread `json:"thread"`
	HTML   string `json:"html"`
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL points the client at another API host.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// NewClient returns a client authenticating with the personal access token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetThread fetches the thread with the given id.
func (c *Client) GetThread(ctx context.Context, id string) (*ThreadDocument, error) {
	endpoint := c.baseURL + "/1/threads/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	log.WithField("url", endpoint).Debug("Fetching thread")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get thread %s: %w", id, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("get thread %s: %w", id, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get thread %s: %w", id, newAPIError(resp.StatusCode, body))
	}

	var doc ThreadDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("get thread %s: decode response: %w", id, err)
	}
	return &doc, nil
}

// FetchDocument fetches the thread and parses its first spreadsheet.
func (c *Client) FetchDocument(ctx context.Context, id string) (*projreport.Document, error) {
	doc, err := c.GetThread(ctx, id)
	if err != nil {
		return nil, err
	}
	grid, err := ParseSpreadsheet(strings.NewReader(doc.HTML))
	if err != nil {
		return nil, fmt.Errorf("thread %s: %w", id, err)
	}
	log.WithFields(log.Fields{
		"thread": id,
		"rows":   len(grid.Rows),
	}).Debug("Parsed spreadsheet")
	return &projreport.Document{Title: doc.Thread.Title, Grid: grid}, nil
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Description string `json:"error_description"`
	}
	msg := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &payload) == nil && payload.Description != "" {
		msg = payload.Description
	}
	return &APIError{StatusCode: status, Message: msg}
}
