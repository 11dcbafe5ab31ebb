//go:build unit

package infra_test

import (
	"testing"

	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, nil, infra.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, nil, infra.KindDuplicateKey},
		{"foreign key", &pgconn.PgError{Code: "23503"}, nil, infra.KindForeignKeyViolated},
		{"other pg error", &pgconn.PgError{Code: "57014"}, nil, infra.KindDBFailure},
		{"plain error", errs.New("connection reset"), nil, infra.KindDBFailure},
		{"explicit kind wins", errs.New("odd"), []infra.RepositoryErrorKind{infra.KindNotFound}, infra.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("load row", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(err, tt.want))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "load row")
		})
	}

	assert.True(t, infra.IsKind(errs.Wrap(infra.NewNotFound("ticket"), "outer"), infra.KindNotFound))
	assert.False(t, infra.IsKind(errs.New("x"), infra.KindNotFound))
}
