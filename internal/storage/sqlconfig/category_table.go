package sqlconfig

import "context"

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec Querier
}

var _ ICategoryTable = (*CategoriesTable)(nil)

// NewCategoriesTable creates a CategoriesTable over the given executor.
func NewCategoriesTable(exec Querier) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

const categoryColumns = "id, user_id, name, type, parent_id, is_active"

// Insert creates a new category and returns the stored row.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	var parentID int64
	if create.ParentID != nil {
		parentID = *create.ParentID
	}
	row := t.exec.QueryRowContext(ctx,
		`INSERT INTO categories (user_id, name, type, parent_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+categoryColumns,
		create.UserID, create.Name, string(create.Type), create.ParentID,
	)
	category, err := scanCategory(row)
	if err != nil {
		return nil, translateInsertError(err, "category", create.Name, parentID)
	}
	return category, nil
}

// FindByID retrieves a category by primary key.
func (t *CategoriesTable) FindByID(ctx context.Context, id int64) (*Category, error) {
	row := t.exec.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	category, err := scanCategory(row)
	if err != nil {
		return nil, translateFindError(err, "category", id)
	}
	return category, nil
}

// ListByUser returns all categories owned by the user.
func (t *CategoriesTable) ListByUser(ctx context.Context, userID int64) ([]*Category, error) {
	rows, err := t.exec.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE user_id = $1 ORDER BY name, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	return result, rows.Err()
}

// CountByUser returns the number of categories owned by the user. Bounds the
// ancestor walk on parent assignment.
func (t *CategoriesTable) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := t.exec.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categories WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

// Delete removes a category owned by userID. Child categories survive with
// parent_id set to NULL; dependent transactions and budgets cascade.
func (t *CategoriesTable) Delete(ctx context.Context, id, userID int64) error {
	result, err := t.exec.ExecContext(ctx,
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	return deleteOutcome(result, err, "category", id)
}

func scanCategory(row rowScanner) (*Category, error) {
	var category Category
	var categoryType string
	err := row.Scan(&category.ID, &category.UserID, &category.Name,
		&categoryType, &category.ParentID, &category.IsActive)
	if err != nil {
		return nil, err
	}
	category.Type = OperationType(categoryType)
	return &category, nil
}
