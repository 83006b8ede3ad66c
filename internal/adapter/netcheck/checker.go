// Package netcheck answers whether the analysis provider is reachable
// before a request is attempted.
package netcheck

import (
	"context"
	"log/slog"
	"net"
	"time"
)

// Checker probes reachability with a TCP dial to a fixed host:port.
type Checker struct {
	address string
	timeout time.Duration
	dialer  net.Dialer
	log     *slog.Logger
}

// NewChecker creates a Checker for address (host:port).
func NewChecker(address string, timeout time.Duration, logger *slog.Logger) *Checker {
	return &Checker{
		address: address,
		timeout: timeout,
		log:     logger.With("adapter", "netcheck"),
	}
}

// Available reports whether a TCP connection to the address can be opened
// within the timeout.
func (c *Checker) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		c.log.WarnContext(ctx, "network unavailable",
			slog.String("address", c.address),
			slog.String("error", err.Error()),
		)
		return false
	}
	conn.Close()
	return true
}

// Static is a fixed answer, used when reachability checks are disabled.
type Static bool

// Available returns the fixed answer.
func (s Static) Available(context.Context) bool { return bool(s) }
