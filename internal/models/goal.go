package models

import (
	"strings"

	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal is a target amount to be saved by a target date.
//
// Progress is never stored. It is derived on every read from the owner's
// transactions dated on or after the start date, so it can not drift from
// the transaction ledger.
type SavingsGoal struct {
	Model
	Name         string          `json:"goalName" example:"Emergency fund"`                        // Name of the goal
	TargetAmount decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,2)" example:"10000"`   // Amount to be saved
	TargetDate   types.Date      `json:"targetDate" example:"2027-06-30"`                          // Day the goal should be reached
	StartDate    types.Date      `json:"startDate" example:"2026-01-01"`                           // Day from which transactions count toward the goal
	UserID       uint64          `json:"-"`
	User         User            `json:"-"`
}

// GoalProgress is the derived state of a savings goal.
type GoalProgress struct {
	CurrentProgress    decimal.Decimal `json:"currentProgress" example:"6000"`  // Net savings since the start date, floored at zero
	ProgressPercentage float64         `json:"progressPercentage" example:"60"` // Progress toward the target, capped at 100
	RemainingAmount    decimal.Decimal `json:"remainingAmount" example:"4000"`  // Amount still missing, floored at zero
}

var oneHundred = decimal.NewFromInt(100)

// BeforeCreate defaults the start date to today.
func (g *SavingsGoal) BeforeCreate(_ *gorm.DB) error {
	if g.StartDate.IsZero() {
		g.StartDate = types.Today()
	}

	return nil
}

// BeforeSave trims whitespace from the name.
func (g *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)

	return nil
}

// AfterSave verifies the target amount invariants.
func (g *SavingsGoal) AfterSave(_ *gorm.DB) error {
	if !g.TargetAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	if g.TargetAmount.Exponent() < -2 {
		return ErrAmountPrecision
	}

	return nil
}

// Progress computes the goal's progress from the owner's transactions.
func (g SavingsGoal) Progress() (GoalProgress, error) {
	income, err := TransactionsSum(g.UserID, TransactionTypeIncome, g.StartDate)
	if err != nil {
		return GoalProgress{}, err
	}

	expenses, err := TransactionsSum(g.UserID, TransactionTypeExpense, g.StartDate)
	if err != nil {
		return GoalProgress{}, err
	}

	// Progress is never shown as negative
	netSavings := income.Sub(expenses)
	current := decimal.Max(netSavings, decimal.Zero)
	remaining := decimal.Max(g.TargetAmount.Sub(current), decimal.Zero)

	// A non-positive target should not exist, but the percentage must not
	// divide by it if it does
	percentage := 0.0
	if g.TargetAmount.IsPositive() {
		p := current.DivRound(g.TargetAmount, 4).Mul(oneHundred)
		if p.GreaterThan(oneHundred) {
			p = oneHundred
		}
		percentage, _ = p.Round(2).Float64()
	}

	return GoalProgress{
		CurrentProgress:    current,
		ProgressPercentage: percentage,
		RemainingAmount:    remaining,
	}, nil
}

// CreateSavingsGoal creates a goal owned by the user. A zero start date
// defaults to today.
func CreateSavingsGoal(name string, targetAmount decimal.Decimal, targetDate, startDate types.Date, user User) (SavingsGoal, error) {
	if !targetDate.After(types.Today()) {
		return SavingsGoal{}, ErrTargetDateNotInFuture
	}

	goal := SavingsGoal{
		Name:         name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
		StartDate:    startDate,
		UserID:       user.ID,
	}

	err := DB.Omit("User").Create(&goal).Error
	if err != nil {
		return SavingsGoal{}, err
	}

	return goal, nil
}

// SavingsGoalsForUser returns all goals owned by the user.
func SavingsGoalsForUser(userID uint64) ([]SavingsGoal, error) {
	var goals []SavingsGoal
	err := DB.Where("user_id = ?", userID).Find(&goals).Error
	if err != nil {
		return nil, err
	}

	return goals, nil
}

// GetSavingsGoal returns the goal with this ID. The not-found and access
// error split works exactly as for transactions.
func GetSavingsGoal(id uint64, user User) (SavingsGoal, error) {
	var goal SavingsGoal
	err := DB.First(&goal, id).Error
	if err != nil {
		return SavingsGoal{}, err
	}

	if goal.UserID != user.ID {
		return SavingsGoal{}, ErrNoResourceAccess
	}

	return goal, nil
}

// SavingsGoalUpdate carries the fields of a partial update. Nil fields
// stay unchanged.
type SavingsGoalUpdate struct {
	TargetAmount *decimal.Decimal
	TargetDate   *types.Date
}

// UpdateSavingsGoal applies a partial update to the user's goal. A new
// target date is validated against today again.
func UpdateSavingsGoal(id uint64, update SavingsGoalUpdate, user User) (SavingsGoal, error) {
	goal, err := GetSavingsGoal(id, user)
	if err != nil {
		return SavingsGoal{}, err
	}

	fields := []string{}
	values := SavingsGoal{}

	if update.TargetAmount != nil {
		fields = append(fields, "TargetAmount")
		values.TargetAmount = *update.TargetAmount
	}

	if update.TargetDate != nil {
		if !update.TargetDate.After(types.Today()) {
			return SavingsGoal{}, ErrTargetDateNotInFuture
		}

		fields = append(fields, "TargetDate")
		values.TargetDate = *update.TargetDate
	}

	if len(fields) > 0 {
		err = DB.Model(&goal).Select(fields).Updates(values).Error
		if err != nil {
			return SavingsGoal{}, err
		}
	}

	return goal, nil
}

// DeleteSavingsGoal removes the user's goal.
func DeleteSavingsGoal(id uint64, user User) error {
	goal, err := GetSavingsGoal(id, user)
	if err != nil {
		return err
	}

	return DB.Delete(&goal).Error
}
