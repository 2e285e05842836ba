//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"catalog-sync/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: infra.KindConflict},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: infra.KindConflict},
		{name: "lock not available", err: &pgconn.PgError{Code: "55P03"}, want: infra.KindConflict},
		{name: "anything else", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("save entry", tt.err)

			assert.True(t, infra.IsKind(err, tt.want))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "save entry")
		})
	}
}

func TestNewRepoErr(t *testing.T) {
	err := infra.NewRepoErr(infra.KindNotFound, "snapshot missing")

	assert.Equal(t, "NOT_FOUND: snapshot missing", err.Error())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
}
