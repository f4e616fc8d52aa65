package models

import (
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single booked income or expense.
//
// The type is always copied from the category the transaction is booked
// against, it can not be set independently. The date is immutable after
// creation.
type Transaction struct {
	Model
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,2)" example:"14.50"` // Amount with two decimal places
	Date        types.Date      `json:"date" example:"2026-01-15"`                        // Day the transaction occurred, immutable
	Type        TransactionType `json:"type" example:"EXPENSE"`                           // Copied from the category
	Description string          `json:"description" example:"Groceries for the week"`     // Optional free text
	CategoryID  uint64          `json:"categoryId"`
	Category    Category        `json:"-"`
	UserID      uint64          `json:"-"`
	User        User            `json:"-"`
}

// BeforeCreate rejects dates in the future. Existing transactions keep
// their date forever, so this only runs on creation.
func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.Date.After(types.Today()) {
		return ErrTransactionDateInFuture
	}

	return nil
}

// AfterSave verifies the amount invariants.
func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Amount.Exponent() < -2 {
		return ErrAmountPrecision
	}

	return nil
}

// CreateTransaction books a transaction against the category with this name.
func CreateTransaction(amount decimal.Decimal, date types.Date, categoryName, description string, user User) (Transaction, error) {
	category, err := ResolveCategory(categoryName, user.ID)
	if err != nil {
		return Transaction{}, err
	}

	transaction := Transaction{
		Amount:      amount,
		Date:        date,
		Type:        category.Type,
		Description: description,
		CategoryID:  category.ID,
		Category:    category,
		UserID:      user.ID,
	}

	err = DB.Omit("Category", "User").Create(&transaction).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// TransactionFilter restricts the transaction list. Zero values mean
// "no constraint on that dimension".
type TransactionFilter struct {
	StartDate  types.Date
	EndDate    types.Date
	CategoryID uint64
}

// TransactionsForUser returns the user's transactions, newest first,
// restricted by the filter. Both filter dates are inclusive.
func TransactionsForUser(userID uint64, filter TransactionFilter) ([]Transaction, error) {
	q := DB.
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC")

	if !filter.StartDate.IsZero() {
		q = q.Where("date >= ?", filter.StartDate)
	}

	if !filter.EndDate.IsZero() {
		q = q.Where("date <= ?", filter.EndDate)
	}

	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	var transactions []Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// GetTransaction returns the transaction with this ID.
//
// A transaction that does not exist at all is a not-found error. A
// transaction that exists but belongs to another user is an access error,
// the two cases are deliberately distinguishable to the caller.
func GetTransaction(id uint64, user User) (Transaction, error) {
	var transaction Transaction
	err := DB.Preload("Category").First(&transaction, id).Error
	if err != nil {
		return Transaction{}, err
	}

	if transaction.UserID != user.ID {
		return Transaction{}, ErrNoResourceAccess
	}

	return transaction, nil
}

// TransactionUpdate carries the fields of a partial update. Nil fields
// stay unchanged. The date can never be updated.
type TransactionUpdate struct {
	Amount      *decimal.Decimal
	Description *string
	Category    *string
}

// UpdateTransaction applies a partial update to the user's transaction.
// A new category is resolved for the user and the type is re-derived
// from it.
func UpdateTransaction(id uint64, update TransactionUpdate, user User) (Transaction, error) {
	transaction, err := GetTransaction(id, user)
	if err != nil {
		return Transaction{}, err
	}

	fields := []string{}
	values := Transaction{}

	if update.Amount != nil {
		fields = append(fields, "Amount")
		values.Amount = *update.Amount
	}

	if update.Description != nil {
		fields = append(fields, "Description")
		values.Description = *update.Description
	}

	if update.Category != nil {
		category, err := ResolveCategory(*update.Category, user.ID)
		if err != nil {
			return Transaction{}, err
		}

		fields = append(fields, "CategoryID", "Type")
		values.CategoryID = category.ID
		values.Type = category.Type
		transaction.Category = category
	}

	if len(fields) > 0 {
		err = DB.Model(&transaction).Select(fields).Updates(values).Error
		if err != nil {
			return Transaction{}, err
		}
	}

	return transaction, nil
}

// DeleteTransaction removes the user's transaction.
func DeleteTransaction(id uint64, user User) error {
	transaction, err := GetTransaction(id, user)
	if err != nil {
		return err
	}

	return DB.Delete(&transaction).Error
}

// TransactionUsesCategory reports whether any transaction references the
// category. Used as the in-use guard before a category is deleted.
func TransactionUsesCategory(categoryID uint64) (bool, error) {
	var count int64
	err := DB.Model(&Transaction{}).Where("category_id = ?", categoryID).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// TransactionsSum returns the sum of the user's transactions of one type
// dated on or after the given date.
func TransactionsSum(userID uint64, transactionType TransactionType, since types.Date) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := DB.Table("transactions").
		Where("user_id = ? AND type = ? AND date >= ?", userID, transactionType, since).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return sum.Decimal, nil
}
