package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record owned by exactly one user.
// UserID is set on create and never reassigned by updates.
type Expense struct {
	ID          string
	UserID      string
	Description string
	Amount      decimal.Decimal
	Date        Date
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
