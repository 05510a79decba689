package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client so adapters can be handed a preconfigured
// client and add their own middleware.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient around a fresh resty client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
