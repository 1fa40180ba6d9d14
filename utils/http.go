package utils

import (
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

type HTTPClientOption func(*http.Client)

func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *http.Client) {
		c.Timeout = timeout
	}
}

func DefaultHTTPClient() *http.Client {
	return NewHTTPClient()
}

func NewHTTPClient(opts ...HTTPClientOption) *http.Client {
	client := &http.Client{Timeout: defaultTimeout}
	for _, opt := range opts {
		opt(client)
	}
	return client
}
