package sqlconfig

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/carson-networks/finance-tracker/internal/errs"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translateInsertError maps driver errors on insert paths into the domain
// taxonomy: unique violations become conflicts, foreign-key violations become
// not-found on the referenced resource.
func translateInsertError(err error, resource, conflictDetail string, referencedID int64) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return errs.NewConflict(resource, conflictDetail)
		case pqForeignKeyViolation:
			return errs.NewNotFound(resource+" reference", referencedID)
		}
	}
	return err
}

// translateFindError maps sql.ErrNoRows into a typed not-found error.
func translateFindError(err error, resource string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFound(resource, id)
	}
	return err
}

// deleteOutcome converts an Exec result into nil or not-found. Deletes are
// scoped by owner in the WHERE clause, so zero affected rows covers both a
// missing row and a row owned by someone else.
func deleteOutcome(result sql.Result, execErr error, resource string, id int64) error {
	if execErr != nil {
		return execErr
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.NewNotFound(resource, id)
	}
	return nil
}
