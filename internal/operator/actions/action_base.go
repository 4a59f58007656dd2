package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is one unit of work executed by an operator worker inside a single
// transaction. Perform may set result fields on the action; the operator
// guarantees the caller only reads them after commit.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
