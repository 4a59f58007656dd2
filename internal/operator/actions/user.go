package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateUser inserts a user after a best-effort duplicate-email pre-check.
// The unique constraint remains the authoritative guarantee; the pre-check
// only produces a friendlier conflict before the insert races.
type CreateUser struct {
	Email          string
	FullName       string
	HashedPassword string

	Result *sqlconfig.User
}

func (c *CreateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Users.FindByEmail(ctx, c.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errs.NewConflict("user", c.Email)
	}

	user, err := writer.Users.Insert(ctx, &sqlconfig.UserCreate{
		Email:          c.Email,
		FullName:       c.FullName,
		HashedPassword: c.HashedPassword,
	})
	if err != nil {
		return err
	}

	c.Result = user
	return nil
}

// DeleteUser removes a user; the schema cascades to everything the user owns.
type DeleteUser struct {
	UserID int64
}

func (d *DeleteUser) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Users.Delete(ctx, d.UserID)
}
