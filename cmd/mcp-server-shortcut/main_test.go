package main

import (
	"testing"

	"github.com/effective-security/xlog"
	"github.com/madisonbullard/mcp-server-shortcut/config"
	"github.com/madisonbullard/mcp-server-shortcut/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, xlog.DEBUG, logLevel("DEBUG"))
	assert.Equal(t, xlog.INFO, logLevel("INFO"))
	assert.Equal(t, xlog.WARNING, logLevel("WARNING"))
	assert.Equal(t, xlog.ERROR, logLevel("ERROR"))
	assert.Equal(t, xlog.INFO, logLevel(""))
}

func TestCatalog(t *testing.T) {
	for _, format := range encoding.Formats {
		t.Run(format, func(t *testing.T) {
			c, err := catalog(format)
			require.NoError(t, err)
			assert.Contains(t, c, "get-iteration-stories")
			assert.Contains(t, c, "get-iteration")
			assert.Contains(t, c, "search-iterations")
			assert.Contains(t, c, "iterationPublicId")
			assert.Contains(t, c, "startDate")
		})
	}

	_, err := catalog("ini")
	assert.EqualError(t, err, "unsupported format: ini")
}

func TestNewClient(t *testing.T) {
	_, err := newClient(config.Shortcut{})
	assert.EqualError(t, err, "shortcut API token is not set")

	_, err = newClient(config.Shortcut{Token: "t", Timeout: "soon"})
	assert.Error(t, err)

	c, err := newClient(config.Shortcut{Token: "t", Timeout: "5s", BaseURL: "http://localhost", SearchPageSize: 10})
	require.NoError(t, err)
	assert.NotNil(t, c)
}
