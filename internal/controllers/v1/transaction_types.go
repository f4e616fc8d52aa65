package v1

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Amount      decimal.Decimal `json:"amount" binding:"required" example:"14.50"`      // Amount with up to two decimal places
	Date        types.Date      `json:"date" binding:"required" example:"2026-01-15"`   // Day the transaction occurred, must not be in the future
	Category    string          `json:"category" binding:"required" example:"Food"`     // Name of a category visible to the user
	Description string          `json:"description" example:"Groceries for the week"`   // Optional free text
}

// TransactionUpdateRequest is a partial update. Fields that are not sent
// stay unchanged, the date can never be changed.
type TransactionUpdateRequest struct {
	Amount      *decimal.Decimal `json:"amount" example:"14.50"`
	Description *string          `json:"description" example:"Groceries for the week"`
	Category    *string          `json:"category" example:"Food"`
}

// Transaction is the API view of a transaction.
type Transaction struct {
	ID          uint64                 `json:"id" example:"42"`
	Amount      decimal.Decimal        `json:"amount" example:"14.50"`
	Date        types.Date             `json:"date" example:"2026-01-15"`
	Category    string                 `json:"category" example:"Food"`
	Description string                 `json:"description" example:"Groceries for the week"`
	Type        models.TransactionType `json:"type" example:"EXPENSE"`
}

func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		ID:          model.ID,
		Amount:      model.Amount,
		Date:        model.Date,
		Category:    model.Category.Name,
		Description: model.Description,
		Type:        model.Type,
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                       // List of transactions
	Error *string       `json:"error" example:"there is no transaction matching your query"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                       // Data for the transaction
	Error *string      `json:"error" example:"there is no transaction matching your query"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	StartDate  string `form:"startDate"`  // Transactions at and after this date
	EndDate    string `form:"endDate"`    // Transactions before and at this date
	CategoryID uint64 `form:"categoryId"` // Only transactions in this category
}
