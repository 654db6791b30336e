package dbx

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil))
	})

	t.Run("plain error gets prefix", func(t *testing.T) {
		base := errors.New("conn refused")
		err := Wrap(base)
		require.Error(t, err)
		assert.Equal(t, "db error: conn refused", err.Error())
		assert.ErrorIs(t, err, base)
		assert.NotErrorIs(t, err, common.ErrorAlreadyExists)
	})

	t.Run("unique violation maps to already exists", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
		err := Wrap(pgErr)
		assert.ErrorIs(t, err, common.ErrorAlreadyExists)

		var got *pgconn.PgError
		require.ErrorAs(t, err, &got)
		assert.Equal(t, "23505", got.Code)
	})

	t.Run("other pg errors are not translated", func(t *testing.T) {
		err := Wrap(&pgconn.PgError{Code: "23503"})
		assert.NotErrorIs(t, err, common.ErrorAlreadyExists)
	})
}
