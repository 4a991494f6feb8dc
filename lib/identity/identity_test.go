package identity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadersWithoutRotation(t *testing.T) {
	headers := Provider{Rotate: false}.Headers()

	require.Equal(t, FallbackUserAgent, headers["User-Agent"])
	require.Equal(t, "keep-alive", headers["Connection"])
	require.NotEmpty(t, headers["Accept"])
	require.NotEmpty(t, headers["Accept-Language"])
	// only encodings the client actually decodes
	require.Equal(t, "gzip", headers["Accept-Encoding"])
}

func TestHeadersWithRotation(t *testing.T) {
	headers := Provider{Rotate: true}.Headers()
	require.NotEmpty(t, headers["User-Agent"])
}
