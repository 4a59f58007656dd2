package account

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Account is the API response model for an account. Balance is serialized as
// a string so the 2-decimal value survives JSON round-trips untouched.
type Account struct {
	ID         int64  `json:"id" doc:"Account ID"`
	UserID     int64  `json:"userId" doc:"Owning user ID"`
	CurrencyID int64  `json:"currencyId" doc:"Currency ID"`
	Name       string `json:"name" doc:"Account name"`
	Balance    string `json:"balance" doc:"Current balance, decimal string"`
	IsActive   bool   `json:"isActive" doc:"Whether the account is active"`
	CreatedAt  string `json:"createdAt" doc:"Creation time, RFC3339"`
}

func fromService(a service.Account) Account {
	return Account{
		ID:         a.ID,
		UserID:     a.UserID,
		CurrencyID: a.CurrencyID,
		Name:       a.Name,
		Balance:    a.Balance.StringFixed(2),
		IsActive:   a.IsActive,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}
