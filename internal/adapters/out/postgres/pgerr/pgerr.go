// Package pgerr translates record store errors into the errors of the
// workshop core.
package pgerr

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err was raised by a unique constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Translate maps gorm.ErrRecordNotFound to errs.ObjectNotFoundError and unique
// violations to errs.ValueIsInvalidError. Other errors pass through.
func Translate(err error, object string, key any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(object, key)
	}
	if IsUniqueViolation(err) {
		var pgErr *pgconn.PgError
		errors.As(err, &pgErr)
		return errs.NewValueIsInvalidErrorWithCause(object,
			fmt.Errorf("%v already exists (%s)", key, pgErr.ConstraintName))
	}
	return err
}
