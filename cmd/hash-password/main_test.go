package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("arguments", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run([]string{"secret123", "another-one"}, strings.NewReader(""), &out, bcrypt.MinCost))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(lines[0]), []byte("secret123")))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(lines[1]), []byte("another-one")))

		cost, err := bcrypt.Cost([]byte(lines[0]))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.MinCost, cost)
	})

	t.Run("stdin", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(nil, strings.NewReader("secret123\n"), &out, bcrypt.MinCost))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out.String())), []byte("secret123")))
	})

	t.Run("rejects short password", func(t *testing.T) {
		var out bytes.Buffer
		err := run([]string{"short"}, strings.NewReader(""), &out, bcrypt.MinCost)
		require.ErrorIs(t, err, domain.ErrPasswordTooShort)
		assert.Empty(t, out.String())
	})
}
