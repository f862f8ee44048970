package note

import (
	"errors"
	"strings"

	noteerrors "go-groupware/internal/note/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return noteerrors.ErrStatusNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		// nama constraint dari gorm: fk_<table>_<Field>
		if strings.Contains(strings.ToLower(pgErr.ConstraintName), "sender") {
			return noteerrors.ErrSenderNotFound
		}
		return noteerrors.ErrReceiverNotFound
	}

	return err
}
