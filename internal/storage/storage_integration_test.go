package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// startStorage brings up a throwaway Postgres container, runs the migrations,
// and returns a ready Storage. Skipped in -short mode and when Docker is not
// available.
func startStorage(t *testing.T) *storage.Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("finance"),
		tcpostgres.WithUsername("finance"),
		tcpostgres.WithPassword("finance"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	testcontainers.CleanupContainer(t, container)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	store, err := storage.NewStorage(&config.Config{
		PostgresAddress:  host,
		PostgresPort:     port.Port(),
		PostgresDB:       "finance",
		PostgresUsername: "finance",
		PostgresPassword: "finance",

		DatabaseRetryAttempts: 5,
		DatabaseRetrySeconds:  1,
		DatabaseMaxOpenConns:  5,
		DatabaseMaxIdleConns:  2,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.VerifyConnectivity(ctx))
	require.NoError(t, store.EnsureSchema())
	return store
}

// startOperator wires a delegator over the storage and stops it on cleanup.
func startOperator(t *testing.T, store *storage.Storage) *operator.OperatorDelegator {
	t.Helper()
	delegator := operator.NewOperatorDelegator(store, 2)
	delegator.Start()
	t.Cleanup(delegator.Stop)
	return delegator
}

func createUser(t *testing.T, op *operator.OperatorDelegator, email string) *sqlconfig.User {
	t.Helper()
	action := &actions.CreateUser{Email: email, HashedPassword: "hash"}
	require.NoError(t, op.Process(context.Background(), action))
	require.NotNil(t, action.Result)
	return action.Result
}

func createCurrency(t *testing.T, op *operator.OperatorDelegator, code string) *sqlconfig.Currency {
	t.Helper()
	action := &actions.CreateCurrency{Code: code, Name: code + " currency"}
	require.NoError(t, op.Process(context.Background(), action))
	return action.Result
}

func createAccount(t *testing.T, op *operator.OperatorDelegator, userID, currencyID int64, balance string) *sqlconfig.Account {
	t.Helper()
	action := &actions.CreateAccount{
		UserID:     userID,
		CurrencyID: currencyID,
		Name:       "Checking",
		Balance:    decimal.RequireFromString(balance),
	}
	require.NoError(t, op.Process(context.Background(), action))
	return action.Result
}

func createCategory(t *testing.T, op *operator.OperatorDelegator, userID int64, name string, parentID *int64) *sqlconfig.Category {
	t.Helper()
	action := &actions.CreateCategory{
		UserID:   userID,
		Name:     name,
		Type:     sqlconfig.OperationTypeExpense,
		ParentID: parentID,
	}
	require.NoError(t, op.Process(context.Background(), action))
	return action.Result
}

func TestIntegration_UserLifecycle(t *testing.T) {
	store := startStorage(t)
	op := startOperator(t, store)
	ctx := context.Background()

	user := createUser(t, op, "alice@example.com")
	assert.True(t, user.IsActive)
	assert.False(t, user.CreatedAt.IsZero())

	// Duplicate email is a conflict, not a driver error.
	dup := &actions.CreateUser{Email: "alice@example.com", HashedPassword: "hash"}
	err := op.Process(ctx, dup)
	var conflict *errs.ConflictError
	assert.ErrorAs(t, err, &conflict)

	users, err := store.Users.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 1, spew.Sdump(users))

	require.NoError(t, op.Process(ctx, &actions.DeleteUser{UserID: user.ID}))

	_, err = store.Users.FindByID(ctx, user.ID)
	var notFound *errs.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestIntegration_DuplicateCurrencyCode(t *testing.T) {
	store := startStorage(t)
	op := startOperator(t, store)
	ctx := context.Background()

	createCurrency(t, op, "USD")

	err := op.Process(ctx, &actions.CreateCurrency{Code: "USD", Name: "Duplicate"})
	var conflict *errs.ConflictError
	assert.ErrorAs(t, err, &conflict)

	currencies, err := store.Currencies.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, currencies, 1)
}

func TestIntegration_BalancePrecisionSurvivesRoundTrip(t *testing.T) {
	store := startStorage(t)
	op := startOperator(t, store)
	ctx := context.Background()

	user := createUser(t, op, "alice@example.com")
	currency := createCurrency(t, op, "EUR")
	account := createAccount(t, op, user.ID, currency.ID, "10.10")

	found, err := store.Accounts.FindByID(ctx, account.ID)
	assert.NoError(t, err)
	assert.Equal(t, "10.10", found.Balance.StringFixed(2), spew.Sdump(found))
}

func TestIntegration_DeleteUserCascades(t *testing.T) {
	store := startStorage(t)
	op := startOperator(t, store)
	ctx := context.Background()

	user := createUser(t, op, "alice@example.com")
	currency := createCurrency(t, op, "USD")
	account := createAccount(t, op, user.ID, currency.ID, "100.00")
	category := createCategory(t, op, user.ID, "Food", nil)

	txAction := &actions.CreateTransaction{
		UserID:     user.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Amount:     decimal.RequireFromString("-12.50"),
	}
	require.NoError(t, op.Process(ctx, txAction))

	budgetAction := &actions.CreateBudget{
		UserID:     user.ID,
		CategoryID: category.ID,
		Amount:     decimal.RequireFromString("500.00"),
		Period:     sqlconfig.BudgetPeriodMonth,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, op.Process(ctx, budgetAction))

	require.NoError(t, op.Process(ctx, &actions.DeleteUser{UserID: user.ID}))

	// Everything owned by the user is gone; the shared currency survives.
	accounts, err := store.Accounts.ListByUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Empty(t, accounts)

	categories, err := store.Categories.ListByUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Empty(t, categories)

	transactions, err := store.Transactions.ListByUser(ctx, user.ID, nil)
	assert.NoError(t, err)
	assert.Empty(t, transactions)

	budgets, err := store.Budgets.ListByUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Empty(t, budgets)

	currencies, err := store.Currencies.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, currencies, 1)
}

func TestIntegration_DeleteParentDetachesChildren(t *testing.T) {
	store := startStorage(t)
	op := startOperator(t, store)
	ctx := context.Background()

	user := createUser(t, op, "alice@example.com")
	parent := createCategory(t, op, user.ID, "Food", nil)
	child := createCategory(t, op, user.ID, "Groceries", &parent.ID)
	require.NotNil(t, child.ParentID)

	require.NoError(t, op.Process(ctx, &actions.DeleteCategory{CategoryID: parent.ID, UserID: user.ID}))

	// The child survives as a root category.
	found, err := store.Categories.FindByID(ctx, child.ID)
	assert.NoError(t, err)
	assert.Nil(t, found.ParentID, spew.Sdump(found))
}

func TestIntegration_DeleteAccountCascadesTransactions(t *testing.T) {
	store := startStorage(t)
	op := startOperator(t, store)
	ctx := context.Background()

	user := createUser(t, op, "alice@example.com")
	currency := createCurrency(t, op, "USD")
	account := createAccount(t, op, user.ID, currency.ID, "100.00")
	category := createCategory(t, op, user.ID, "Food", nil)

	txAction := &actions.CreateTransaction{
		UserID:     user.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Amount:     decimal.RequireFromString("-5.00"),
	}
	require.NoError(t, op.Process(ctx, txAction))

	require.NoError(t, op.Process(ctx, &actions.DeleteAccount{AccountID: account.ID, UserID: user.ID}))

	transactions, err := store.Transactions.ListByUser(ctx, user.ID, nil)
	assert.NoError(t, err)
	assert.Empty(t, transactions)

	// The category referenced by the deleted transaction is untouched.
	_, err = store.Categories.FindByID(ctx, category.ID)
	assert.NoError(t, err)
}

func TestIntegration_DeleteScopedToOwner(t *testing.T) {
	store := startStorage(t)
	op := startOperator(t, store)
	ctx := context.Background()

	alice := createUser(t, op, "alice@example.com")
	mallory := createUser(t, op, "mallory@example.com")
	currency := createCurrency(t, op, "USD")
	account := createAccount(t, op, alice.ID, currency.ID, "100.00")

	// Another user cannot delete the account; it looks like not-found.
	err := op.Process(ctx, &actions.DeleteAccount{AccountID: account.ID, UserID: mallory.ID})
	var notFound *errs.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = store.Accounts.FindByID(ctx, account.ID)
	assert.NoError(t, err)
}

func TestIntegration_TransactionFiltersAndOrdering(t *testing.T) {
	store := startStorage(t)
	op := startOperator(t, store)
	ctx := context.Background()
	svc := service.NewTransactionService(store)

	user := createUser(t, op, "alice@example.com")
	currency := createCurrency(t, op, "USD")
	checking := createAccount(t, op, user.ID, currency.ID, "100.00")
	savings := createAccount(t, op, user.ID, currency.ID, "500.00")
	food := createCategory(t, op, user.ID, "Food", nil)
	rent := createCategory(t, op, user.ID, "Rent", nil)

	older := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, create := range []*actions.CreateTransaction{
		{UserID: user.ID, AccountID: checking.ID, CategoryID: food.ID, Amount: decimal.RequireFromString("-12.50"), TransactionDate: older},
		{UserID: user.ID, AccountID: checking.ID, CategoryID: rent.ID, Amount: decimal.RequireFromString("-800.00"), TransactionDate: newer},
		{UserID: user.ID, AccountID: savings.ID, CategoryID: food.ID, Amount: decimal.RequireFromString("-3.00"), TransactionDate: newer},
	} {
		require.NoError(t, op.Process(ctx, create))
	}

	all, err := svc.ListTransactions(ctx, user.ID, nil)
	assert.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.False(t, all[0].TransactionDate.Before(all[1].TransactionDate))
	assert.False(t, all[1].TransactionDate.Before(all[2].TransactionDate))

	byAccount, err := svc.ListTransactions(ctx, user.ID, &service.TransactionFilter{AccountID: &checking.ID})
	assert.NoError(t, err)
	assert.Len(t, byAccount, 2)

	byCategory, err := svc.ListTransactions(ctx, user.ID, &service.TransactionFilter{CategoryID: &food.ID})
	assert.NoError(t, err)
	assert.Len(t, byCategory, 2)

	both, err := svc.ListTransactions(ctx, user.ID, &service.TransactionFilter{AccountID: &checking.ID, CategoryID: &food.ID})
	assert.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "-12.50", both[0].Amount.StringFixed(2))
}

func TestIntegration_TransactionDateDefaultsToNow(t *testing.T) {
	store := startStorage(t)
	op := startOperator(t, store)
	ctx := context.Background()

	user := createUser(t, op, "alice@example.com")
	currency := createCurrency(t, op, "USD")
	account := createAccount(t, op, user.ID, currency.ID, "100.00")
	category := createCategory(t, op, user.ID, "Food", nil)

	action := &actions.CreateTransaction{
		UserID:     user.ID,
		AccountID:  account.ID,
		CategoryID: category.ID,
		Amount:     decimal.RequireFromString("-1.00"),
	}
	require.NoError(t, op.Process(ctx, action))

	assert.False(t, action.Result.TransactionDate.IsZero())
	assert.WithinDuration(t, time.Now(), action.Result.TransactionDate, time.Minute)
}
