package sqlconfig

import "context"

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec Querier
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// NewTransactionsTable creates a TransactionsTable over the given executor.
func NewTransactionsTable(exec Querier) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

const transactionColumns = "id, user_id, account_id, category_id, amount, description, transaction_date, created_at"

// Insert creates a new transaction and returns the stored row. A zero
// TransactionDate defers to the column default (now).
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	var row rowScanner
	if create.TransactionDate.IsZero() {
		row = t.exec.QueryRowContext(ctx,
			`INSERT INTO transactions (user_id, account_id, category_id, amount, description)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING `+transactionColumns,
			create.UserID, create.AccountID, create.CategoryID, create.Amount, create.Description,
		)
	} else {
		row = t.exec.QueryRowContext(ctx,
			`INSERT INTO transactions (user_id, account_id, category_id, amount, description, transaction_date)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING `+transactionColumns,
			create.UserID, create.AccountID, create.CategoryID, create.Amount, create.Description, create.TransactionDate,
		)
	}
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, translateInsertError(err, "transaction", "", create.AccountID)
	}
	return transaction, nil
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	row := t.exec.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, translateFindError(err, "transaction", id)
	}
	return transaction, nil
}

// ListByUser returns the user's transactions, optionally narrowed to one
// account or category. Nil filter returns all.
func (t *TransactionsTable) ListByUser(ctx context.Context, userID int64, filter *TransactionFilter) ([]*Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []interface{}{userID}
	if filter != nil {
		if filter.AccountID != nil {
			args = append(args, *filter.AccountID)
			query += ` AND account_id = $2`
		}
		if filter.CategoryID != nil {
			args = append(args, *filter.CategoryID)
			if len(args) == 3 {
				query += ` AND category_id = $3`
			} else {
				query += ` AND category_id = $2`
			}
		}
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := t.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, transaction)
	}
	return result, rows.Err()
}

// Delete removes a transaction owned by userID.
func (t *TransactionsTable) Delete(ctx context.Context, id, userID int64) error {
	result, err := t.exec.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	return deleteOutcome(result, err, "transaction", id)
}

func scanTransaction(row rowScanner) (*Transaction, error) {
	var transaction Transaction
	err := row.Scan(&transaction.ID, &transaction.UserID, &transaction.AccountID,
		&transaction.CategoryID, &transaction.Amount, &transaction.Description,
		&transaction.TransactionDate, &transaction.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}
