// Package validate performs syntactic and range validation of boundary input
// before it reaches storage. Each check appends field-level messages to a
// shared ValidationError; cross-entity ownership is checked separately inside
// the write transaction.
package validate

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const (
	MinPasswordLength = 8
	MaxNameLength     = 100
	MaxCurrencyName   = 50
	CurrencyCodeLen   = 3
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email checks syntactic validity of an email address.
func Email(v *errs.ValidationError, field, value string) string {
	if !emailPattern.MatchString(value) {
		v.Add(field, "must be a valid email address")
	}
	return value
}

// Password enforces the minimum password length.
func Password(v *errs.ValidationError, field, value string) string {
	if len(value) < MinPasswordLength {
		v.Add(field, fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	return value
}

// CurrencyCode requires exactly 3 ASCII letters.
func CurrencyCode(v *errs.ValidationError, field, value string) string {
	if len(value) != CurrencyCodeLen {
		v.Add(field, fmt.Sprintf("must be exactly %d characters", CurrencyCodeLen))
		return value
	}
	for _, c := range value {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			v.Add(field, "must contain only letters")
			return value
		}
	}
	return value
}

// Name requires a non-empty string of at most max characters.
func Name(v *errs.ValidationError, field, value string, max int) string {
	if len(value) == 0 {
		v.Add(field, "must not be empty")
	} else if len(value) > max {
		v.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return value
}

// Amount parses a decimal string and rejects more than 2 fractional digits.
// Values are rejected rather than rounded so the stored value always equals
// the submitted one.
func Amount(v *errs.ValidationError, field, value string) decimal.Decimal {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		v.Add(field, "must be a decimal number")
		return decimal.Zero
	}
	if parsed.Exponent() < -2 {
		v.Add(field, "must have at most 2 decimal places")
	}
	return parsed
}

// NonNegativeAmount is Amount with a >= 0 bound, used for account balances.
func NonNegativeAmount(v *errs.ValidationError, field, value string) decimal.Decimal {
	parsed := Amount(v, field, value)
	if parsed.IsNegative() {
		v.Add(field, "must not be negative")
	}
	return parsed
}

// PositiveAmount is Amount with a > 0 bound, used for budget amounts.
func PositiveAmount(v *errs.ValidationError, field, value string) decimal.Decimal {
	parsed := Amount(v, field, value)
	if !parsed.IsPositive() {
		v.Add(field, "must be greater than zero")
	}
	return parsed
}

// OperationType parses the income/expense tag into the canonical enum.
func OperationType(v *errs.ValidationError, field, value string) sqlconfig.OperationType {
	parsed, err := sqlconfig.ParseOperationType(value)
	if err != nil {
		v.Add(field, fmt.Sprintf("must be %q or %q", sqlconfig.OperationTypeIncome, sqlconfig.OperationTypeExpense))
	}
	return parsed
}

// BudgetPeriod parses the budget period into the canonical enum.
func BudgetPeriod(v *errs.ValidationError, field, value string) sqlconfig.BudgetPeriod {
	parsed, err := sqlconfig.ParseBudgetPeriod(value)
	if err != nil {
		v.Add(field, fmt.Sprintf("must be %q, %q, or %q",
			sqlconfig.BudgetPeriodMonth, sqlconfig.BudgetPeriodQuarter, sqlconfig.BudgetPeriodYear))
	}
	return parsed
}

// Date parses an ISO date (YYYY-MM-DD).
func Date(v *errs.ValidationError, field, value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		v.Add(field, "must be a date in YYYY-MM-DD format")
	}
	return parsed
}

// OptionalDateTime parses an RFC3339 timestamp, returning the zero time for
// an empty input.
func OptionalDateTime(v *errs.ValidationError, field, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		v.Add(field, "must be an RFC3339 timestamp")
	}
	return parsed
}
