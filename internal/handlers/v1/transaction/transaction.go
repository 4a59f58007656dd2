package transaction

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID              int64  `json:"id" doc:"Transaction ID"`
	UserID          int64  `json:"userId" doc:"Owning user ID"`
	AccountID       int64  `json:"accountId" doc:"Account the transaction posted against"`
	CategoryID      int64  `json:"categoryId" doc:"Category the transaction is filed under"`
	Amount          string `json:"amount" doc:"Amount, decimal string"`
	Description     string `json:"description" doc:"Free-text description"`
	TransactionDate string `json:"transactionDate" doc:"When the transaction occurred, RFC3339"`
	CreatedAt       string `json:"createdAt" doc:"Record creation time, RFC3339"`
}

func fromService(t service.Transaction) Transaction {
	return Transaction{
		ID:              t.ID,
		UserID:          t.UserID,
		AccountID:       t.AccountID,
		CategoryID:      t.CategoryID,
		Amount:          t.Amount.StringFixed(2),
		Description:     t.Description,
		TransactionDate: t.TransactionDate.Format(time.RFC3339),
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
}
