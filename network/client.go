// Package network provides a pre-configured HTTP client for playlist document retrieval.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application.
// The outer timeout is intentionally generous; callers fetching playlist
// documents apply their own per-request context deadline.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with conservative pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
