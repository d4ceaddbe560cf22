package engineclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ParsesEngineURL(t *testing.T) {
	t.Parallel()

	c, err := New("http://engine:8080/socket.io", "/workflows", 5*time.Second)
	require.NoError(t, err)

	assert.Equal(t, "http://engine:8080", c.baseURL)
	assert.Equal(t, "/socket.io", c.path)
	assert.Equal(t, "/workflows", c.namespace)
	assert.Equal(t, 5*time.Second, c.timeout)
}

func TestNew_RejectsURLsWithoutSchemeOrHost(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"engine:8080", "/just/a/path", ""} {
		_, err := New(raw, "/", time.Second)
		require.Error(t, err, "url %q", raw)
	}
}

func TestNew_DefaultsTheTimeout(t *testing.T) {
	t.Parallel()

	c, err := New("ws://engine:8080", "/", 0)
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, c.timeout)
}
