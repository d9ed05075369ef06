// Package utils holds small helpers shared by the client and the
// development server: the resty-based HTTP client and JSON response writing.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TokenHeader is the header carrying the static API token expected by the
// NFT backend.
const TokenHeader = "X-Practicum-Mobile-Token"

// HTTPClient embeds *resty.Client so callers get the full resty API while
// the constructor applies the defaults every NFT backend call needs.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client bound to baseURL. A non-zero
// timeout bounds every request; a non-empty token is sent in [TokenHeader].
// The client never retries: retry policy belongs to the caller.
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second, "secret")
//	resp, err := client.R().Get("/api/v1/nft/42")
func NewHTTPClient(baseURL string, timeout time.Duration, token string) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	if token != "" {
		c.SetHeader(TokenHeader, token)
	}

	return &HTTPClient{Client: c}
}
