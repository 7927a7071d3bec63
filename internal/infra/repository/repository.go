package repository

import (
	"errors"

	"coupon-market/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapError translates pgx-level failures into repository error kinds so the
// usecase layer never inspects driver codes.
func mapError(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case "23503": // foreign_key_violation
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}

	return infra.WrapRepoErr(msg, err, infra.KindDBFailure)
}
