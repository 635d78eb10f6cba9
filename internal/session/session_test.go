package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-magic/internal/model"
)

const testSecret = "test-secret"

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	id := model.Identity{ID: "u-1", Name: "Ada", Email: "ada@example.com"}
	token, err := Issue(testSecret, id, 60)
	require.NoError(t, err)

	got, err := Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := Issue(testSecret, model.Identity{ID: "u-1", Email: "a@b.c"}, 60)
	require.NoError(t, err)

	_, err = Parse("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	token, err := Issue(testSecret, model.Identity{ID: "u-1", Email: "a@b.c"}, 60)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = Parse(testSecret, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	token, err := Issue(testSecret, model.Identity{ID: "u-1", Email: "a@b.c"}, -1)
	require.NoError(t, err)

	_, err = Parse(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Parse(testSecret, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
