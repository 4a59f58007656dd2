package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateCategory inserts a category. A parent, when given, must exist, belong
// to the same user, and not sit on an ancestor chain that loops. Ownership
// failures surface as not-found so the surface does not reveal other users'
// category ids.
type CreateCategory struct {
	UserID   int64
	Name     string
	Type     sqlconfig.OperationType
	ParentID *int64

	Result *sqlconfig.Category
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Users.FindByID(ctx, c.UserID); err != nil {
		return err
	}

	if c.ParentID != nil {
		if err := c.checkParent(ctx, writer); err != nil {
			return err
		}
	}

	category, err := writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		UserID:   c.UserID,
		Name:     c.Name,
		Type:     c.Type,
		ParentID: c.ParentID,
	})
	if err != nil {
		return err
	}

	c.Result = category
	return nil
}

// checkParent verifies the parent chain. The walk is bounded by the user's
// category count, so a corrupted chain terminates instead of spinning.
func (c *CreateCategory) checkParent(ctx context.Context, writer *storage.Writer) error {
	parent, err := writer.Categories.FindByID(ctx, *c.ParentID)
	if err != nil {
		return err
	}
	if parent.UserID != c.UserID {
		return errs.NewNotFound("category", *c.ParentID)
	}

	maxDepth, err := writer.Categories.CountByUser(ctx, c.UserID)
	if err != nil {
		return err
	}

	current := parent
	for steps := int64(0); current.ParentID != nil; steps++ {
		if steps >= maxDepth {
			return errors.New("category parent chain does not terminate")
		}
		current, err = writer.Categories.FindByID(ctx, *current.ParentID)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteCategory removes a category owned by UserID. Child categories are
// kept with their parent reference cleared; dependent transactions and
// budgets cascade.
type DeleteCategory struct {
	CategoryID int64
	UserID     int64
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Categories.Delete(ctx, d.CategoryID, d.UserID)
}
