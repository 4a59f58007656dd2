package validate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple address", "alice@example.com", true},
		{"subdomain", "bob@mail.example.co.uk", true},
		{"plus tag", "carol+tag@example.com", true},
		{"missing at", "example.com", false},
		{"missing domain dot", "alice@example", false},
		{"empty", "", false},
		{"whitespace in local part", "a lice@example.com", false},
		{"double at", "alice@@example.com", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := &errs.ValidationError{}
			Email(v, "email", tc.value)
			assert.Equal(t, !tc.valid, v.HasErrors())
		})
	}
}

func TestPassword(t *testing.T) {
	v := &errs.ValidationError{}
	Password(v, "password", "longenough")
	assert.False(t, v.HasErrors())

	v = &errs.ValidationError{}
	Password(v, "password", "short")
	assert.True(t, v.HasErrors())
	assert.Equal(t, "password", v.Fields[0].Field)

	// Exactly at the minimum.
	v = &errs.ValidationError{}
	Password(v, "password", "12345678")
	assert.False(t, v.HasErrors())
}

func TestCurrencyCode(t *testing.T) {
	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"uppercase", "USD", true},
		{"lowercase", "eur", true},
		{"mixed case", "GbP", true},
		{"too short", "US", false},
		{"too long", "USDD", false},
		{"empty", "", false},
		{"digits", "U5D", false},
		{"symbol", "U$D", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := &errs.ValidationError{}
			CurrencyCode(v, "code", tc.value)
			assert.Equal(t, !tc.valid, v.HasErrors())
		})
	}
}

func TestName(t *testing.T) {
	v := &errs.ValidationError{}
	Name(v, "name", "Groceries", MaxNameLength)
	assert.False(t, v.HasErrors())

	v = &errs.ValidationError{}
	Name(v, "name", "", MaxNameLength)
	assert.True(t, v.HasErrors())

	long := make([]byte, MaxNameLength+1)
	for i := range long {
		long[i] = 'x'
	}
	v = &errs.ValidationError{}
	Name(v, "name", string(long), MaxNameLength)
	assert.True(t, v.HasErrors())

	v = &errs.ValidationError{}
	Name(v, "name", string(long[:MaxNameLength]), MaxNameLength)
	assert.False(t, v.HasErrors())
}

func TestAmount(t *testing.T) {
	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"integer", "100", true},
		{"one decimal", "10.5", true},
		{"two decimals", "10.55", true},
		{"negative", "-99.99", true},
		{"zero", "0", true},
		{"three decimals", "10.005", false},
		{"many decimals", "1.23456", false},
		{"not a number", "ten", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := &errs.ValidationError{}
			Amount(v, "amount", tc.value)
			assert.Equal(t, !tc.valid, v.HasErrors())
		})
	}
}

func TestAmount_ExactValuePreserved(t *testing.T) {
	v := &errs.ValidationError{}
	parsed := Amount(v, "amount", "10.10")
	assert.False(t, v.HasErrors())
	assert.True(t, parsed.Equal(decimal.RequireFromString("10.10")))
	assert.Equal(t, "10.10", parsed.StringFixed(2))
}

func TestNonNegativeAmount(t *testing.T) {
	v := &errs.ValidationError{}
	NonNegativeAmount(v, "balance", "0.00")
	assert.False(t, v.HasErrors())

	v = &errs.ValidationError{}
	NonNegativeAmount(v, "balance", "-0.01")
	assert.True(t, v.HasErrors())
}

func TestPositiveAmount(t *testing.T) {
	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"positive", "500.00", true},
		{"small positive", "0.01", true},
		{"zero", "0", false},
		{"zero with decimals", "0.00", false},
		{"negative", "-1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := &errs.ValidationError{}
			PositiveAmount(v, "amount", tc.value)
			assert.Equal(t, !tc.valid, v.HasErrors())
		})
	}
}

func TestOperationType(t *testing.T) {
	v := &errs.ValidationError{}
	parsed := OperationType(v, "type", "income")
	assert.False(t, v.HasErrors())
	assert.Equal(t, sqlconfig.OperationTypeIncome, parsed)

	v = &errs.ValidationError{}
	parsed = OperationType(v, "type", "expense")
	assert.False(t, v.HasErrors())
	assert.Equal(t, sqlconfig.OperationTypeExpense, parsed)

	v = &errs.ValidationError{}
	OperationType(v, "type", "transfer")
	assert.True(t, v.HasErrors())

	// Case matters; the canonical values are lowercase.
	v = &errs.ValidationError{}
	OperationType(v, "type", "Income")
	assert.True(t, v.HasErrors())
}

func TestBudgetPeriod(t *testing.T) {
	for _, value := range []string{"month", "quarter", "year"} {
		v := &errs.ValidationError{}
		BudgetPeriod(v, "period", value)
		assert.False(t, v.HasErrors(), value)
	}

	v := &errs.ValidationError{}
	BudgetPeriod(v, "period", "week")
	assert.True(t, v.HasErrors())
}

func TestDate(t *testing.T) {
	v := &errs.ValidationError{}
	parsed := Date(v, "startDate", "2025-06-01")
	assert.False(t, v.HasErrors())
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), parsed)

	v = &errs.ValidationError{}
	Date(v, "startDate", "06/01/2025")
	assert.True(t, v.HasErrors())

	v = &errs.ValidationError{}
	Date(v, "startDate", "")
	assert.True(t, v.HasErrors())
}

func TestOptionalDateTime(t *testing.T) {
	v := &errs.ValidationError{}
	parsed := OptionalDateTime(v, "transactionDate", "")
	assert.False(t, v.HasErrors())
	assert.True(t, parsed.IsZero())

	v = &errs.ValidationError{}
	parsed = OptionalDateTime(v, "transactionDate", "2025-01-15T10:30:00Z")
	assert.False(t, v.HasErrors())
	expected, _ := time.Parse(time.RFC3339, "2025-01-15T10:30:00Z")
	assert.True(t, parsed.Equal(expected))

	v = &errs.ValidationError{}
	OptionalDateTime(v, "transactionDate", "not-a-date")
	assert.True(t, v.HasErrors())
}

func TestMultipleFieldsAccumulate(t *testing.T) {
	v := &errs.ValidationError{}
	Email(v, "email", "bad")
	Password(v, "password", "short")
	assert.True(t, v.HasErrors())
	assert.Len(t, v.Fields, 2)
	assert.Equal(t, "email", v.Fields[0].Field)
	assert.Equal(t, "password", v.Fields[1].Field)
}
