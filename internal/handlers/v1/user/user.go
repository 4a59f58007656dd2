package user

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// User is the API response model for a user. It never carries the password
// hash.
type User struct {
	ID        int64  `json:"id" doc:"User ID"`
	Email     string `json:"email" doc:"Email address"`
	FullName  string `json:"fullName,omitempty" doc:"Display name"`
	IsActive  bool   `json:"isActive" doc:"Active flag"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromRow(row *sqlconfig.User) User {
	return User{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
	}
}
