package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/account"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/category"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/currency"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/user"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Storage  *storage.Storage
	Operator *operator.OperatorDelegator
	Service  *service.Service

	server *http.Server
}

// Serve registers every endpoint and blocks until the server exits.
func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("finance-tracker", "1.0.0"))

	status.NewHandler(r.Storage.DB).Register(humaAPI)

	user.NewCreateUserHandler(r.Operator).Register(humaAPI)
	user.NewListUsersHandler(r.Service.User).Register(humaAPI)
	user.NewDeleteUserHandler(r.Operator).Register(humaAPI)

	currency.NewCreateCurrencyHandler(r.Operator).Register(humaAPI)
	currency.NewListCurrenciesHandler(r.Service.Currency).Register(humaAPI)

	account.NewCreateAccountHandler(r.Operator).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewDeleteAccountHandler(r.Operator).Register(humaAPI)

	category.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Operator).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(humaAPI)

	budget.NewCreateBudgetHandler(r.Operator).Register(humaAPI)
	budget.NewListBudgetsHandler(r.Service.Budget).Register(humaAPI)
	budget.NewDeleteBudgetHandler(r.Operator).Register(humaAPI)

	r.server = &http.Server{
		Addr:              ":" + r.Port,
		Handler:           logging.Middleware(r.Logger, mux),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// Shutdown drains in-flight requests and stops the listener.
func (r *Rest) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}
