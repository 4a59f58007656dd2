package sqlconfig

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Hand-maintained testify mocks for the table interfaces. Each constructor
// binds the mock to the test and asserts expectations on cleanup.

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockIUserTable mocks IUserTable.
type MockIUserTable struct {
	mock.Mock
}

func NewMockIUserTable(t mockConstructorTestingT) *MockIUserTable {
	m := &MockIUserTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockIUserTableExpecter struct {
	mock *mock.Mock
}

func (m *MockIUserTable) EXPECT() *MockIUserTableExpecter {
	return &MockIUserTableExpecter{mock: &m.Mock}
}

func (e *MockIUserTableExpecter) Insert(ctx, create interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, create)
}

func (e *MockIUserTableExpecter) FindByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockIUserTableExpecter) FindByEmail(ctx, email interface{}) *mock.Call {
	return e.mock.On("FindByEmail", ctx, email)
}

func (e *MockIUserTableExpecter) List(ctx interface{}) *mock.Call {
	return e.mock.On("List", ctx)
}

func (e *MockIUserTableExpecter) Delete(ctx, id interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

func (m *MockIUserTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockIUserTable) FindByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockIUserTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockIUserTable) List(ctx context.Context) ([]*User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*User), args.Error(1)
}

func (m *MockIUserTable) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockICurrencyTable mocks ICurrencyTable.
type MockICurrencyTable struct {
	mock.Mock
}

func NewMockICurrencyTable(t mockConstructorTestingT) *MockICurrencyTable {
	m := &MockICurrencyTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockICurrencyTableExpecter struct {
	mock *mock.Mock
}

func (m *MockICurrencyTable) EXPECT() *MockICurrencyTableExpecter {
	return &MockICurrencyTableExpecter{mock: &m.Mock}
}

func (e *MockICurrencyTableExpecter) Insert(ctx, create interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, create)
}

func (e *MockICurrencyTableExpecter) FindByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockICurrencyTableExpecter) List(ctx interface{}) *mock.Call {
	return e.mock.On("List", ctx)
}

func (m *MockICurrencyTable) Insert(ctx context.Context, create *CurrencyCreate) (*Currency, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Currency), args.Error(1)
}

func (m *MockICurrencyTable) FindByID(ctx context.Context, id int64) (*Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Currency), args.Error(1)
}

func (m *MockICurrencyTable) List(ctx context.Context) ([]*Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Currency), args.Error(1)
}

// MockIAccountTable mocks IAccountTable.
type MockIAccountTable struct {
	mock.Mock
}

func NewMockIAccountTable(t mockConstructorTestingT) *MockIAccountTable {
	m := &MockIAccountTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockIAccountTableExpecter struct {
	mock *mock.Mock
}

func (m *MockIAccountTable) EXPECT() *MockIAccountTableExpecter {
	return &MockIAccountTableExpecter{mock: &m.Mock}
}

func (e *MockIAccountTableExpecter) Insert(ctx, create interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, create)
}

func (e *MockIAccountTableExpecter) FindByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockIAccountTableExpecter) ListByUser(ctx, userID interface{}) *mock.Call {
	return e.mock.On("ListByUser", ctx, userID)
}

func (e *MockIAccountTableExpecter) Delete(ctx, id, userID interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, id, userID)
}

func (m *MockIAccountTable) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Account), args.Error(1)
}

func (m *MockIAccountTable) FindByID(ctx context.Context, id int64) (*Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Account), args.Error(1)
}

func (m *MockIAccountTable) ListByUser(ctx context.Context, userID int64) ([]*Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Account), args.Error(1)
}

func (m *MockIAccountTable) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockICategoryTable mocks ICategoryTable.
type MockICategoryTable struct {
	mock.Mock
}

func NewMockICategoryTable(t mockConstructorTestingT) *MockICategoryTable {
	m := &MockICategoryTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockICategoryTableExpecter struct {
	mock *mock.Mock
}

func (m *MockICategoryTable) EXPECT() *MockICategoryTableExpecter {
	return &MockICategoryTableExpecter{mock: &m.Mock}
}

func (e *MockICategoryTableExpecter) Insert(ctx, create interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, create)
}

func (e *MockICategoryTableExpecter) FindByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockICategoryTableExpecter) ListByUser(ctx, userID interface{}) *mock.Call {
	return e.mock.On("ListByUser", ctx, userID)
}

func (e *MockICategoryTableExpecter) CountByUser(ctx, userID interface{}) *mock.Call {
	return e.mock.On("CountByUser", ctx, userID)
}

func (e *MockICategoryTableExpecter) Delete(ctx, id, userID interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, id, userID)
}

func (m *MockICategoryTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockICategoryTable) FindByID(ctx context.Context, id int64) (*Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockICategoryTable) ListByUser(ctx context.Context, userID int64) ([]*Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Category), args.Error(1)
}

func (m *MockICategoryTable) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockICategoryTable) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockITransactionTable mocks ITransactionTable.
type MockITransactionTable struct {
	mock.Mock
}

func NewMockITransactionTable(t mockConstructorTestingT) *MockITransactionTable {
	m := &MockITransactionTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockITransactionTableExpecter struct {
	mock *mock.Mock
}

func (m *MockITransactionTable) EXPECT() *MockITransactionTableExpecter {
	return &MockITransactionTableExpecter{mock: &m.Mock}
}

func (e *MockITransactionTableExpecter) Insert(ctx, create interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, create)
}

func (e *MockITransactionTableExpecter) FindByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockITransactionTableExpecter) ListByUser(ctx, userID, filter interface{}) *mock.Call {
	return e.mock.On("ListByUser", ctx, userID, filter)
}

func (e *MockITransactionTableExpecter) Delete(ctx, id, userID interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, id, userID)
}

func (m *MockITransactionTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Transaction), args.Error(1)
}

func (m *MockITransactionTable) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Transaction), args.Error(1)
}

func (m *MockITransactionTable) ListByUser(ctx context.Context, userID int64, filter *TransactionFilter) ([]*Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Transaction), args.Error(1)
}

func (m *MockITransactionTable) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockIBudgetTable mocks IBudgetTable.
type MockIBudgetTable struct {
	mock.Mock
}

func NewMockIBudgetTable(t mockConstructorTestingT) *MockIBudgetTable {
	m := &MockIBudgetTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockIBudgetTableExpecter struct {
	mock *mock.Mock
}

func (m *MockIBudgetTable) EXPECT() *MockIBudgetTableExpecter {
	return &MockIBudgetTableExpecter{mock: &m.Mock}
}

func (e *MockIBudgetTableExpecter) Insert(ctx, create interface{}) *mock.Call {
	return e.mock.On("Insert", ctx, create)
}

func (e *MockIBudgetTableExpecter) FindByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockIBudgetTableExpecter) ListByUser(ctx, userID interface{}) *mock.Call {
	return e.mock.On("ListByUser", ctx, userID)
}

func (e *MockIBudgetTableExpecter) Delete(ctx, id, userID interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, id, userID)
}

func (m *MockIBudgetTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Budget), args.Error(1)
}

func (m *MockIBudgetTable) FindByID(ctx context.Context, id int64) (*Budget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Budget), args.Error(1)
}

func (m *MockIBudgetTable) ListByUser(ctx context.Context, userID int64) ([]*Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Budget), args.Error(1)
}

func (m *MockIBudgetTable) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
