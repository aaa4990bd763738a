package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "go-relief-sync"

// HTTPClient embeds *resty.Client so all resty methods are available
// directly, while the constructor applies the client-wide defaults.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client bound to baseURL. When apiKey is set
// every request carries it as a bearer credential.
//
// Retries stay disabled (resty's default): callers own their retry policy.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	if apiKey != "" {
		c.SetAuthToken(apiKey)
	}

	return &HTTPClient{Client: c}
}
