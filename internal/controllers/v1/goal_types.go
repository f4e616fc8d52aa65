package v1

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	GoalName     string          `json:"goalName" binding:"required" example:"Emergency fund"` // Name of the goal
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required" example:"10000"`      // Amount to be saved
	TargetDate   types.Date      `json:"targetDate" binding:"required" example:"2027-06-30"`   // Must be in the future
	StartDate    types.Date      `json:"startDate" example:"2026-01-01"`                       // Defaults to today
}

// GoalUpdateRequest is a partial update. Fields that are not sent stay
// unchanged.
type GoalUpdateRequest struct {
	TargetAmount *decimal.Decimal `json:"targetAmount" example:"12000"`
	TargetDate   *types.Date      `json:"targetDate" example:"2027-12-31"`
}

// Goal is the API view of a savings goal, enriched with the progress
// derived from the owner's transactions.
type Goal struct {
	ID           uint64          `json:"id" example:"42"`
	GoalName     string          `json:"goalName" example:"Emergency fund"`
	TargetAmount decimal.Decimal `json:"targetAmount" example:"10000"`
	TargetDate   types.Date      `json:"targetDate" example:"2027-06-30"`
	StartDate    types.Date      `json:"startDate" example:"2026-01-01"`

	// These fields are computed
	CurrentProgress    decimal.Decimal `json:"currentProgress" example:"6000"`
	ProgressPercentage float64         `json:"progressPercentage" example:"60"`
	RemainingAmount    decimal.Decimal `json:"remainingAmount" example:"4000"`
}

func newGoal(model models.SavingsGoal) (Goal, error) {
	progress, err := model.Progress()
	if err != nil {
		return Goal{}, err
	}

	return Goal{
		ID:                 model.ID,
		GoalName:           model.Name,
		TargetAmount:       model.TargetAmount,
		TargetDate:         model.TargetDate,
		StartDate:          model.StartDate,
		CurrentProgress:    progress.CurrentProgress,
		ProgressPercentage: progress.ProgressPercentage,
		RemainingAmount:    progress.RemainingAmount,
	}, nil
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                // List of goals
	Error *string `json:"error" example:"there is no goal matching your query"` // The error, if any occurred
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                // Data for the goal
	Error *string `json:"error" example:"there is no goal matching your query"` // The error, if any occurred
}
