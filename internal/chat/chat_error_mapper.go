package chat

import (
	"errors"
	"strings"

	chaterrors "go-groupware/internal/chat/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError: FK violation bisa datang dari department atau talker.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		// nama constraint dari gorm: fk_<table>_<Field>
		if strings.Contains(strings.ToLower(pgErr.ConstraintName), "talker") {
			return chaterrors.ErrTalkerNotFound
		}
		return chaterrors.ErrDepartmentNotFound
	}

	return err
}
