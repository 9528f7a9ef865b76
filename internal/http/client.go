package http

import (
	"net/http"
	"net/url"
	"path"

	"github.com/d1ctl/d1ctl/internal/build"
)

// Client handles HTTP requests with base URL resolution
type Client struct {
	doer      HTTPDoer
	baseURL   *url.URL
	userAgent string
}

// HTTPDoer interface for making HTTP requests
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient creates an HTTP client with any HTTPDoer implementation
func NewClient(baseURL string, doer HTTPDoer) (*Client, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		doer:      doer,
		baseURL:   parsedURL,
		userAgent: build.UserAgent(),
	}, nil
}

// Do performs an HTTP request below the base URL. The request path is
// appended to the base path, so "/accounts" against ".../client/v4"
// becomes ".../client/v4/accounts". The joined path is always absolute,
// also for a base URL without a path such as "http://localhost:8787".
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	fullURL := *c.baseURL
	fullURL.Path = path.Join("/", c.baseURL.Path, req.URL.Path)
	fullURL.RawPath = ""
	fullURL.RawQuery = req.URL.RawQuery

	header := req.Header
	if header == nil {
		header = make(http.Header)
	}
	if header.Get("User-Agent") == "" {
		header.Set("User-Agent", c.userAgent)
	}

	newReq := &http.Request{
		Method: req.Method,
		URL:    &fullURL,
		Header: header,
		Body:   req.Body,
		Host:   fullURL.Host,

		ContentLength: req.ContentLength,
		GetBody:       req.GetBody,
	}

	if req.Context() != nil {
		newReq = newReq.WithContext(req.Context())
	}

	return c.doer.Do(newReq)
}
