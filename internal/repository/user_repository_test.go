package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"mysql duplicate entry", errors.New("Error 1062 (23000): Duplicate entry 'ada@example.com' for key 'uq_users_email'"), true},
		{"other mysql error", errors.New("Error 1146 (42S02): Table 'movie_magic.users' doesn't exist"), false},
		{"network error", errors.New("dial tcp: connection refused"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, isDuplicateKey(tc.err))
		})
	}
}
