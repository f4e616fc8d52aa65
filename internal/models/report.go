package models

import (
	"time"

	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CategoryTotals maps category names to summed amounts.
type CategoryTotals map[string]decimal.Decimal

// MonthlyReport aggregates one month of a user's transactions.
type MonthlyReport struct {
	Month         int             `json:"month" example:"1"`
	Year          int             `json:"year" example:"2026"`
	TotalIncome   CategoryTotals  `json:"totalIncome"`   // Income sums by category name
	TotalExpenses CategoryTotals  `json:"totalExpenses"` // Expense sums by category name
	NetSavings    decimal.Decimal `json:"netSavings" example:"3000"`
}

// YearlyReport aggregates one calendar year of a user's transactions.
type YearlyReport struct {
	Year          int             `json:"year" example:"2026"`
	TotalIncome   CategoryTotals  `json:"totalIncome"`
	TotalExpenses CategoryTotals  `json:"totalExpenses"`
	NetSavings    decimal.Decimal `json:"netSavings" example:"36000"`
}

// MonthlyReportFor aggregates the user's transactions of one month.
func MonthlyReportFor(userID uint64, year, month int) (MonthlyReport, error) {
	if month < 1 || month > 12 {
		return MonthlyReport{}, ErrMonthOutOfRange
	}

	reportMonth := types.NewMonth(year, time.Month(month))
	transactions, err := transactionsInWindow(userID, reportMonth.FirstDay(), reportMonth.AddDate(0, 1).FirstDay())
	if err != nil {
		return MonthlyReport{}, err
	}

	income, expenses, netSavings := aggregateByCategory(transactions)

	return MonthlyReport{
		Month:         month,
		Year:          year,
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetSavings:    netSavings,
	}, nil
}

// YearlyReportFor aggregates the user's transactions of one calendar year.
func YearlyReportFor(userID uint64, year int) (YearlyReport, error) {
	transactions, err := transactionsInWindow(userID, types.NewDate(year, time.January, 1), types.NewDate(year+1, time.January, 1))
	if err != nil {
		return YearlyReport{}, err
	}

	income, expenses, netSavings := aggregateByCategory(transactions)

	return YearlyReport{
		Year:          year,
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetSavings:    netSavings,
	}, nil
}

// transactionsInWindow returns the user's transactions with from <= date < until.
func transactionsInWindow(userID uint64, from, until types.Date) ([]Transaction, error) {
	var transactions []Transaction
	err := DB.
		Preload("Category").
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, until).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// aggregateByCategory sums the transactions into one mapping per type in a
// single pass. A category has exactly one type, so no name can appear in
// both mappings.
func aggregateByCategory(transactions []Transaction) (income, expenses CategoryTotals, netSavings decimal.Decimal) {
	income = CategoryTotals{}
	expenses = CategoryTotals{}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	for _, transaction := range transactions {
		name := transaction.Category.Name

		if transaction.Type == TransactionTypeIncome {
			income[name] = income[name].Add(transaction.Amount)
			totalIncome = totalIncome.Add(transaction.Amount)
		} else {
			expenses[name] = expenses[name].Add(transaction.Amount)
			totalExpenses = totalExpenses.Add(transaction.Amount)
		}
	}

	return income, expenses, totalIncome.Sub(totalExpenses)
}
