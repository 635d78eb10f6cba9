package middleware

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagePayloadRoundTrip(t *testing.T) {
	t.Parallel()

	body := []byte("<html><body>hello</body></html>")
	bs := encodePage(http.StatusOK, body)

	status, got, ok := decodePage(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, body, got)
}

func TestDecodePageRejectsShortPayload(t *testing.T) {
	t.Parallel()

	_, _, ok := decodePage([]byte{1, 2})
	assert.False(t, ok)
}

func TestEncodePageEmptyBody(t *testing.T) {
	t.Parallel()

	status, body, ok := decodePage(encodePage(http.StatusOK, nil))
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body)
}
