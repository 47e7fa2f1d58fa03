// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// DialUnix makes every request of the client go to the unix socket at path,
// whatever host the request URL names. It is how the Podman service socket is
// reached.
//
// Example usage:
//
//	client := utils.NewHTTPClient().DialUnix("/run/podman/podman.sock")
//	resp, err := client.R().Get("http://d/v4.0.0/libpod/_ping")
func (c *HTTPClient) DialUnix(path string) *HTTPClient {
	dialer := &net.Dialer{Timeout: 5 * time.Second}
	c.SetTransport(&http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			return dialer.DialContext(ctx, "unix", path)
		},
		MaxIdleConns:    4,
		IdleConnTimeout: 90 * time.Second,
	})
	return c
}
