package sqlconfig

import "context"

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec Querier
}

var _ IBudgetTable = (*BudgetsTable)(nil)

// NewBudgetsTable creates a BudgetsTable over the given executor.
func NewBudgetsTable(exec Querier) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

const budgetColumns = "id, user_id, category_id, amount, period, start_date, end_date, created_at"

// Insert creates a new budget and returns the stored row.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	row := t.exec.QueryRowContext(ctx,
		`INSERT INTO budgets (user_id, category_id, amount, period, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+budgetColumns,
		create.UserID, create.CategoryID, create.Amount, string(create.Period),
		create.StartDate, create.EndDate,
	)
	budget, err := scanBudget(row)
	if err != nil {
		return nil, translateInsertError(err, "budget", "", create.CategoryID)
	}
	return budget, nil
}

// FindByID retrieves a budget by primary key.
func (t *BudgetsTable) FindByID(ctx context.Context, id int64) (*Budget, error) {
	row := t.exec.QueryRowContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE id = $1`, id)
	budget, err := scanBudget(row)
	if err != nil {
		return nil, translateFindError(err, "budget", id)
	}
	return budget, nil
}

// ListByUser returns all budgets owned by the user.
func (t *BudgetsTable) ListByUser(ctx context.Context, userID int64) ([]*Budget, error) {
	rows, err := t.exec.QueryContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = $1 ORDER BY start_date, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Budget
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, budget)
	}
	return result, rows.Err()
}

// Delete removes a budget owned by userID.
func (t *BudgetsTable) Delete(ctx context.Context, id, userID int64) error {
	result, err := t.exec.ExecContext(ctx,
		`DELETE FROM budgets WHERE id = $1 AND user_id = $2`, id, userID)
	return deleteOutcome(result, err, "budget", id)
}

func scanBudget(row rowScanner) (*Budget, error) {
	var budget Budget
	var period string
	err := row.Scan(&budget.ID, &budget.UserID, &budget.CategoryID,
		&budget.Amount, &period, &budget.StartDate, &budget.EndDate, &budget.CreatedAt)
	if err != nil {
		return nil, err
	}
	budget.Period = BudgetPeriod(period)
	return &budget, nil
}
