// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-pod-mirror/internal/config"
	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/internal/utils"
	"github.com/MKhiriev/go-pod-mirror/models"
)

const (
	defaultAPIVersion     = "4.0.0"
	defaultRequestTimeout = 30 * time.Second

	// unixBaseURL is a placeholder host; requests are dialed to the socket.
	unixBaseURL = "http://d"
)

type httpPodmanAdapter struct {
	client *utils.HTTPClient

	apiPrefix      string
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPPodmanAdapter constructs an HTTP implementation of [PodmanAdapter].
//
// adapterCfg.PodmanURL may be a unix socket ("unix:///run/podman/podman.sock"
// or a bare absolute path) or a TCP endpoint ("tcp://host:port",
// "http://host:port" or "host:port"). Requests go to the libpod API of
// adapterCfg.APIVersion, and every request except the event stream is bounded
// by adapterCfg.RequestTimeout.
//
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPPodmanAdapter(adapterCfg config.Adapter, logger *logger.Logger) (PodmanAdapter, error) {
	client := utils.NewHTTPClient()

	baseURL, socket, err := resolveAddress(adapterCfg.PodmanURL)
	if err != nil {
		return nil, fmt.Errorf("invalid podman address: %w", err)
	}
	if socket != "" {
		client.DialUnix(socket)
	}
	client.SetBaseURL(baseURL)

	version := strings.TrimPrefix(strings.TrimSpace(adapterCfg.APIVersion), "v")
	if version == "" {
		version = defaultAPIVersion
	}
	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &httpPodmanAdapter{
		client:         client,
		apiPrefix:      "/v" + version + "/libpod",
		requestTimeout: timeout,
		logger:         logger,
	}, nil
}

// resolveAddress returns the base URL for requests and, for unix sockets, the
// socket path to dial.
func resolveAddress(raw string) (baseURL, socket string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", ErrEmptyAddress
	}

	if strings.HasPrefix(raw, "/") {
		return unixBaseURL, raw, nil
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	switch u.Scheme {
	case "unix":
		if u.Path == "" {
			return "", "", fmt.Errorf("unix address without socket path")
		}
		return unixBaseURL, u.Path, nil
	case "tcp":
		u.Scheme = "http"
	case "http", "https":
	default:
		return "", "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("address must include host")
	}

	return strings.TrimRight(u.String(), "/"), "", nil
}

// Ping implements [PodmanAdapter]. It calls GET /libpod/_ping.
func (h *httpPodmanAdapter) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.path("/_ping"))
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListPods implements [PodmanAdapter]. It calls GET /libpod/pods/json, with an
// id filter when id is not empty.
func (h *httpPodmanAdapter) ListPods(ctx context.Context, id string) ([]models.PodReport, error) {
	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	req := h.client.R().SetContext(ctx)
	if id != "" {
		filters, err := encodeFilters(map[string][]string{"id": {id}})
		if err != nil {
			return nil, err
		}
		req.SetQueryParam("filters", filters)
	}

	resp, err := req.Get(h.path("/pods/json"))
	if err != nil {
		return nil, fmt.Errorf("list pods request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var pods []models.PodReport
	if err = json.Unmarshal(resp.Body(), &pods); err != nil {
		return nil, fmt.Errorf("decode list pods response: %w", err)
	}

	h.logger.Debug().Str("scope", id).Int("pods", len(pods)).Msg("pods listed")
	return pods, nil
}

// StreamEvents implements [PodmanAdapter]. It calls
// GET /libpod/events?stream=true and decodes the newline-delimited JSON body
// until the stream ends.
func (h *httpPodmanAdapter) StreamEvents(ctx context.Context, eventType string, handle func(models.Event)) error {
	req := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetQueryParam("stream", "true")
	if eventType != "" {
		filters, err := encodeFilters(map[string][]string{"type": {eventType}})
		if err != nil {
			return err
		}
		req.SetQueryParam("filters", filters)
	}

	resp, err := req.Get(h.path("/events"))
	if err != nil {
		return fmt.Errorf("events request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(body, 64<<10))
		return mapStatus(resp.StatusCode(), raw)
	}

	h.logger.Info().Str("type", eventType).Msg("event stream opened")

	dec := json.NewDecoder(body)
	for {
		var event models.Event
		if err = dec.Decode(&event); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				return ErrEventStreamClosed
			}
			return fmt.Errorf("decode event: %w", err)
		}
		handle(event)
	}
}

func (h *httpPodmanAdapter) path(p string) string {
	return h.apiPrefix + p
}

func encodeFilters(filters map[string][]string) (string, error) {
	b, err := json.Marshal(filters)
	if err != nil {
		return "", fmt.Errorf("encode filters: %w", err)
	}
	return string(b), nil
}
