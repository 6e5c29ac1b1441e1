package tunnel

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"

	ngroklib "golang.ngrok.com/ngrok"
	ngrokconfig "golang.ngrok.com/ngrok/config"
)

// NgrokTunnel implements Tunnel using ngrok. With a domain it binds a
// fixed endpoint (paid plans); without one ngrok assigns a random URL.
type NgrokTunnel struct {
	authToken string
	domain    string
	listener  net.Listener
	url       string
}

// NewNgrok creates an ngrok tunnel with the given auth token and
// optional fixed domain.
func NewNgrok(authToken, domain string) *NgrokTunnel {
	return &NgrokTunnel{
		authToken: authToken,
		domain:    domain,
	}
}

// Start creates the ngrok listener and returns the public URL.
func (n *NgrokTunnel) Start(ctx context.Context) (string, error) {
	if n.authToken == "" {
		return "", fmt.Errorf("ngrok auth token is required (set tunnel.authtoken in config or TASKBOARD_NGROK_AUTHTOKEN)")
	}

	endpoint := ngrokconfig.HTTPEndpoint()
	if n.domain != "" {
		endpoint = ngrokconfig.HTTPEndpoint(ngrokconfig.WithDomain(n.domain))
	}

	listener, err := ngroklib.Listen(ctx, endpoint, ngroklib.WithAuthtoken(n.authToken))
	if err != nil {
		return "", fmt.Errorf("creating ngrok tunnel: %w", err)
	}

	n.listener = listener
	n.url = listener.Addr().String()
	if !strings.HasPrefix(n.url, "http://") && !strings.HasPrefix(n.url, "https://") {
		n.url = "https://" + n.url
	}

	slog.Info("ngrok tunnel established", "public_url", n.url, "domain", n.domain)
	return n.url, nil
}

// Close tears the tunnel down. Calling Close on an unstarted tunnel
// is a no-op.
func (n *NgrokTunnel) Close() error {
	if n.listener == nil {
		return nil
	}

	slog.Info("closing ngrok tunnel", "public_url", n.url)
	if err := n.listener.Close(); err != nil {
		return fmt.Errorf("closing ngrok tunnel: %w", err)
	}

	n.listener = nil
	n.url = ""
	return nil
}

// PublicURL returns the public URL of the tunnel.
func (n *NgrokTunnel) PublicURL() string {
	return n.url
}

// Listener returns the underlying net.Listener for serving HTTP requests.
func (n *NgrokTunnel) Listener() net.Listener {
	return n.listener
}
