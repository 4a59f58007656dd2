package sqlconfig

import "context"

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec Querier
}

var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable over the given executor.
func NewAccountsTable(exec Querier) *AccountsTable {
	return &AccountsTable{exec: exec}
}

const accountColumns = "id, user_id, currency_id, name, balance, is_active, created_at"

// Insert creates a new account and returns the stored row. A missing currency
// reference surfaces as a NotFoundError from the foreign key.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	row := t.exec.QueryRowContext(ctx,
		`INSERT INTO accounts (user_id, currency_id, name, balance)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+accountColumns,
		create.UserID, create.CurrencyID, create.Name, create.Balance,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, translateInsertError(err, "account", create.Name, create.CurrencyID)
	}
	return account, nil
}

// FindByID retrieves an account by primary key.
func (t *AccountsTable) FindByID(ctx context.Context, id int64) (*Account, error) {
	row := t.exec.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	account, err := scanAccount(row)
	if err != nil {
		return nil, translateFindError(err, "account", id)
	}
	return account, nil
}

// ListByUser returns all accounts owned by the user.
func (t *AccountsTable) ListByUser(ctx context.Context, userID int64) ([]*Account, error) {
	rows, err := t.exec.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE user_id = $1 ORDER BY name, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, account)
	}
	return result, rows.Err()
}

// Delete removes an account owned by userID. The schema cascades the delete
// to the account's transactions.
func (t *AccountsTable) Delete(ctx context.Context, id, userID int64) error {
	result, err := t.exec.ExecContext(ctx,
		`DELETE FROM accounts WHERE id = $1 AND user_id = $2`, id, userID)
	return deleteOutcome(result, err, "account", id)
}

func scanAccount(row rowScanner) (*Account, error) {
	var account Account
	err := row.Scan(&account.ID, &account.UserID, &account.CurrencyID,
		&account.Name, &account.Balance, &account.IsActive, &account.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &account, nil
}
