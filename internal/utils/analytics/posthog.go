// Package analytics wraps the PostHog client so callers never have to care
// whether event tracking is configured.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// Client is a nil-safe wrapper around posthog.Client. With an empty API key
// every method is a no-op, so event tracking can stay wired in environments
// that do not configure it.
type Client struct {
	client posthog.Client
	logger *slog.Logger
}

// NewClient builds the PostHog client. An empty apiKey yields an
// uninitialized client whose methods do nothing.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	if apiKey == "" {
		logger.Warn("PostHog API key is empty, event tracking disabled.")
		return &Client{}
	}
	c := &Client{logger: logger}
	c.client, _ = posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	return c
}

// IsInitialized reports whether an underlying PostHog client exists.
func (c *Client) IsInitialized() bool {
	return c.client != nil
}

// Enqueue sends a capture event keyed on the user's distinct ID.
func (c *Client) Enqueue(distinctID string, event string, properties map[string]any) {
	if c.client == nil {
		return
	}
	if c.logger != nil {
		c.logger.Debug("Enqueueing analytics event", slog.String("distinct_id", distinctID), slog.String("event", event))
	}
	c.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
}

// Close flushes pending events.
func (c *Client) Close() {
	if c.client == nil {
		return
	}
	c.client.Close()
}
