package tunnel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNgrok_SetsFields(t *testing.T) {
	t.Parallel()

	tun := NewNgrok("test-token", "test-domain.ngrok.io")

	assert.Equal(t, "test-token", tun.authToken)
	assert.Equal(t, "test-domain.ngrok.io", tun.domain)
}

func TestNgrokTunnel_Start_RequiresToken(t *testing.T) {
	t.Parallel()

	tun := NewNgrok("", "")

	_, err := tun.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth token")
}

func TestNgrokTunnel_PublicURL_BeforeStart(t *testing.T) {
	t.Parallel()

	tun := NewNgrok("test-token", "")

	assert.Empty(t, tun.PublicURL())
}

func TestNgrokTunnel_Close_BeforeStart(t *testing.T) {
	t.Parallel()

	tun := NewNgrok("test-token", "")

	assert.NoError(t, tun.Close(), "closing unstarted tunnel should not error")
}

// Starting a real tunnel needs a valid token and network access, so
// connection behavior is not covered here.
