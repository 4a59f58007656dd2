package sqlconfig

import "fmt"

// OperationType is the canonical income/expense tag shared by the storage and
// boundary layers. It is persisted as its string value.
type OperationType string

const (
	OperationTypeIncome  OperationType = "income"
	OperationTypeExpense OperationType = "expense"
)

// ParseOperationType converts a wire string into the canonical enum.
func ParseOperationType(value string) (OperationType, error) {
	switch OperationType(value) {
	case OperationTypeIncome, OperationTypeExpense:
		return OperationType(value), nil
	}
	return "", fmt.Errorf("unknown operation type %q", value)
}

// BudgetPeriod is the canonical budget period enum, persisted as its string
// value.
type BudgetPeriod string

const (
	BudgetPeriodMonth   BudgetPeriod = "month"
	BudgetPeriodQuarter BudgetPeriod = "quarter"
	BudgetPeriodYear    BudgetPeriod = "year"
)

// ParseBudgetPeriod converts a wire string into the canonical enum.
func ParseBudgetPeriod(value string) (BudgetPeriod, error) {
	switch BudgetPeriod(value) {
	case BudgetPeriodMonth, BudgetPeriodQuarter, BudgetPeriodYear:
		return BudgetPeriod(value), nil
	}
	return "", fmt.Errorf("unknown budget period %q", value)
}
