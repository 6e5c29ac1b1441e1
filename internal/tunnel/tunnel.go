// Package tunnel exposes the local server through a public HTTPS URL
// so remote subscribers can connect without port forwarding.
package tunnel

import (
	"context"
	"net"
)

// Tunnel provides a public listener in front of the local server.
type Tunnel interface {
	// Start establishes the tunnel and returns its public URL.
	Start(ctx context.Context) (publicURL string, err error)
	// Listener returns the listener the HTTP server should serve on.
	// Only valid after a successful Start.
	Listener() net.Listener
	// PublicURL returns the public URL, or "" before Start.
	PublicURL() string
	Close() error
}
