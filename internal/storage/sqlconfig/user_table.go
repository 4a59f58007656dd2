package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec Querier
}

// Ensure UsersTable implements IUserTable at compile time.
var _ IUserTable = (*UsersTable)(nil)

// NewUsersTable creates a UsersTable over the given executor.
func NewUsersTable(exec Querier) *UsersTable {
	return &UsersTable{exec: exec}
}

const userColumns = "id, email, hashed_password, full_name, is_active, created_at"

// Insert creates a new user and returns the stored row. A duplicate email
// surfaces as a ConflictError from the unique constraint.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	row := t.exec.QueryRowContext(ctx,
		`INSERT INTO users (email, hashed_password, full_name)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		create.Email, create.HashedPassword, create.FullName,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, translateInsertError(err, "user", create.Email, 0)
	}
	return user, nil
}

// FindByID retrieves a user by primary key.
func (t *UsersTable) FindByID(ctx context.Context, id int64) (*User, error) {
	row := t.exec.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, translateFindError(err, "user", id)
	}
	return user, nil
}

// FindByEmail retrieves a user by email, returning (nil, nil) when absent.
// Used by the best-effort duplicate pre-check on user creation.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := t.exec.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// List returns all users. Full scan, no pagination.
func (t *UsersTable) List(ctx context.Context) ([]*User, error) {
	rows, err := t.exec.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

// Delete removes a user. The schema cascades the delete to the user's
// accounts, categories, transactions, and budgets.
func (t *UsersTable) Delete(ctx context.Context, id int64) error {
	result, err := t.exec.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return deleteOutcome(result, err, "user", id)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Email, &user.HashedPassword,
		&user.FullName, &user.IsActive, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
