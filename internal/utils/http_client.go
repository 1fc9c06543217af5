// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly, while allowing extension with
// application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a ready-to-use HTTP client. Each call returns an
// independent client instance with its own configuration, connection pool,
// and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
