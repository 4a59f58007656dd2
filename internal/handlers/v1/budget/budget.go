package budget

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

const dateLayout = "2006-01-02"

// Budget is the API response model for a budget.
type Budget struct {
	ID         int64  `json:"id" doc:"Budget ID"`
	UserID     int64  `json:"userId" doc:"Owning user ID"`
	CategoryID int64  `json:"categoryId" doc:"Category the budget applies to"`
	Amount     string `json:"amount" doc:"Budgeted amount, decimal string"`
	Period     string `json:"period" doc:"One of month, quarter, or year"`
	StartDate  string `json:"startDate" doc:"First day the budget covers, YYYY-MM-DD"`
	EndDate    string `json:"endDate" doc:"Last day the budget covers, YYYY-MM-DD"`
	CreatedAt  string `json:"createdAt" doc:"Creation time, RFC3339"`
}

func fromService(b service.Budget) Budget {
	return Budget{
		ID:         b.ID,
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount.StringFixed(2),
		Period:     string(b.Period),
		StartDate:  b.StartDate.Format(dateLayout),
		EndDate:    b.EndDate.Format(dateLayout),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}
