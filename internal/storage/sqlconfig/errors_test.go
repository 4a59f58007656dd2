package sqlconfig

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-tracker/internal/errs"
)

func TestTranslateInsertError_UniqueViolation(t *testing.T) {
	err := translateInsertError(&pq.Error{Code: pq.ErrorCode(pqUniqueViolation)}, "currency", "USD", 0)

	var conflict *errs.ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, "currency", conflict.Resource)
	assert.Equal(t, "USD", conflict.Detail)
}

func TestTranslateInsertError_ForeignKeyViolation(t *testing.T) {
	err := translateInsertError(&pq.Error{Code: pq.ErrorCode(pqForeignKeyViolation)}, "account", "", 2)

	var notFound *errs.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(2), notFound.ID)
}

func TestTranslateInsertError_PassthroughUnknown(t *testing.T) {
	original := errors.New("connection refused")
	assert.Equal(t, original, translateInsertError(original, "user", "", 0))

	// Other pq codes pass through untouched too.
	pqErr := &pq.Error{Code: "57014"}
	assert.Equal(t, error(pqErr), translateInsertError(pqErr, "user", "", 0))
}

func TestTranslateFindError(t *testing.T) {
	err := translateFindError(sql.ErrNoRows, "user", 9)

	var notFound *errs.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user", notFound.Resource)
	assert.Equal(t, int64(9), notFound.ID)

	original := errors.New("connection refused")
	assert.Equal(t, original, translateFindError(original, "user", 9))
}
