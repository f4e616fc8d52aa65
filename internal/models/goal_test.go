package models_test

import (
	"errors"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateSavingsGoal() {
	user := suite.createTestUser()

	targetDate := types.Today().AddDate(1, 0, 0)
	goal := suite.createTestGoal(user, "Emergency fund", "10000", targetDate, types.NewDate(2020, time.January, 1))

	suite.Assert().Equal("Emergency fund", goal.Name)
	suite.Assert().True(targetDate.Equal(goal.TargetDate))
	suite.Assert().True(types.NewDate(2020, time.January, 1).Equal(goal.StartDate))
}

func (suite *TestSuiteStandard) TestCreateSavingsGoalTargetDateNotInFuture() {
	user := suite.createTestUser()
	amount := decimal.RequireFromString("10000")

	// Today does not count as future
	_, err := models.CreateSavingsGoal("Emergency fund", amount, types.Today(), types.Date{}, user)
	suite.Assert().ErrorIs(err, models.ErrTargetDateNotInFuture)

	_, err = models.CreateSavingsGoal("Emergency fund", amount, types.Today().AddDate(0, 0, -1), types.Date{}, user)
	suite.Assert().ErrorIs(err, models.ErrTargetDateNotInFuture)
}

func (suite *TestSuiteStandard) TestCreateSavingsGoalDefaultStartDate() {
	user := suite.createTestUser()

	goal := suite.createTestGoal(user, "Emergency fund", "10000", types.Today().AddDate(1, 0, 0), types.Date{})
	suite.Assert().True(types.Today().Equal(goal.StartDate), "Start date is %s", goal.StartDate)
}

func (suite *TestSuiteStandard) TestCreateSavingsGoalAmountInvalid() {
	user := suite.createTestUser()
	targetDate := types.Today().AddDate(1, 0, 0)

	_, err := models.CreateSavingsGoal("Emergency fund", decimal.RequireFromString("-1"), targetDate, types.Date{}, user)
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)

	_, err = models.CreateSavingsGoal("Emergency fund", decimal.RequireFromString("10.001"), targetDate, types.Date{}, user)
	suite.Assert().ErrorIs(err, models.ErrAmountPrecision)
}

func (suite *TestSuiteStandard) TestSavingsGoalProgress() {
	user := suite.createTestUser()

	_ = suite.createTestTransaction(user, "8000", types.NewDate(2020, time.February, 1), "Salary")
	_ = suite.createTestTransaction(user, "2000", types.NewDate(2020, time.March, 1), "Rent")

	goal := suite.createTestGoal(user, "Emergency fund", "10000", types.Today().AddDate(1, 0, 0), types.NewDate(2020, time.January, 1))

	progress, err := goal.Progress()
	suite.Require().Nil(err)

	suite.Assert().True(progress.CurrentProgress.Equal(decimal.RequireFromString("6000")), "Current progress is %s", progress.CurrentProgress)
	suite.Assert().Equal(60.0, progress.ProgressPercentage)
	suite.Assert().True(progress.RemainingAmount.Equal(decimal.RequireFromString("4000")), "Remaining amount is %s", progress.RemainingAmount)
}

func (suite *TestSuiteStandard) TestSavingsGoalProgressCapped() {
	user := suite.createTestUser()

	_ = suite.createTestTransaction(user, "15000", types.NewDate(2020, time.February, 1), "Salary")

	goal := suite.createTestGoal(user, "Emergency fund", "10000", types.Today().AddDate(1, 0, 0), types.NewDate(2020, time.January, 1))

	progress, err := goal.Progress()
	suite.Require().Nil(err)

	// Progress beyond the target keeps accumulating, but the percentage is
	// capped and nothing remains to be saved
	suite.Assert().True(progress.CurrentProgress.Equal(decimal.RequireFromString("15000")), "Current progress is %s", progress.CurrentProgress)
	suite.Assert().Equal(100.0, progress.ProgressPercentage)
	suite.Assert().True(progress.RemainingAmount.IsZero(), "Remaining amount is %s", progress.RemainingAmount)
}

func (suite *TestSuiteStandard) TestSavingsGoalProgressNegativeNet() {
	user := suite.createTestUser()

	_ = suite.createTestTransaction(user, "1000", types.NewDate(2020, time.February, 1), "Salary")
	_ = suite.createTestTransaction(user, "2500", types.NewDate(2020, time.March, 1), "Rent")

	goal := suite.createTestGoal(user, "Emergency fund", "10000", types.Today().AddDate(1, 0, 0), types.NewDate(2020, time.January, 1))

	progress, err := goal.Progress()
	suite.Require().Nil(err)

	suite.Assert().True(progress.CurrentProgress.IsZero(), "Current progress is %s", progress.CurrentProgress)
	suite.Assert().Equal(0.0, progress.ProgressPercentage)
	suite.Assert().True(progress.RemainingAmount.Equal(decimal.RequireFromString("10000")), "Remaining amount is %s", progress.RemainingAmount)
}

func (suite *TestSuiteStandard) TestSavingsGoalProgressStartDate() {
	user := suite.createTestUser()

	// Dated before the goal's start date, must not count
	_ = suite.createTestTransaction(user, "9999", types.NewDate(2020, time.January, 31), "Salary")
	_ = suite.createTestTransaction(user, "500", types.NewDate(2020, time.February, 1), "Salary")

	goal := suite.createTestGoal(user, "Emergency fund", "10000", types.Today().AddDate(1, 0, 0), types.NewDate(2020, time.February, 1))

	progress, err := goal.Progress()
	suite.Require().Nil(err)
	suite.Assert().True(progress.CurrentProgress.Equal(decimal.RequireFromString("500")), "Current progress is %s", progress.CurrentProgress)
}

func (suite *TestSuiteStandard) TestSavingsGoalProgressRounding() {
	user := suite.createTestUser()

	_ = suite.createTestTransaction(user, "1000", types.NewDate(2020, time.February, 1), "Salary")

	goal := suite.createTestGoal(user, "Emergency fund", "3000", types.Today().AddDate(1, 0, 0), types.NewDate(2020, time.January, 1))

	progress, err := goal.Progress()
	suite.Require().Nil(err)

	// 1000/3000 is divided at four decimal places, the percentage is then
	// rounded to two
	suite.Assert().Equal(33.33, progress.ProgressPercentage)
}

func (suite *TestSuiteStandard) TestSavingsGoalsForUser() {
	alice := suite.createTestUser()
	bob := suite.createTestUser()

	_ = suite.createTestGoal(alice, "Emergency fund", "10000", types.Today().AddDate(1, 0, 0), types.Date{})
	_ = suite.createTestGoal(alice, "Vacation", "2500", types.Today().AddDate(0, 6, 0), types.Date{})

	aliceGoals, err := models.SavingsGoalsForUser(alice.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(aliceGoals, 2)

	bobGoals, err := models.SavingsGoalsForUser(bob.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(bobGoals, 0)
}

func (suite *TestSuiteStandard) TestGetSavingsGoalNotFoundAndAccess() {
	alice := suite.createTestUser()
	bob := suite.createTestUser()

	goal := suite.createTestGoal(alice, "Emergency fund", "10000", types.Today().AddDate(1, 0, 0), types.Date{})

	_, err := models.GetSavingsGoal(goal.ID+1000, alice)
	suite.Assert().True(errors.Is(err, models.ErrResourceNotFound), "Error is: %v", err)

	_, err = models.GetSavingsGoal(goal.ID, bob)
	suite.Assert().ErrorIs(err, models.ErrNoResourceAccess)
}

func (suite *TestSuiteStandard) TestUpdateSavingsGoalPartial() {
	user := suite.createTestUser()
	goal := suite.createTestGoal(user, "Emergency fund", "10000", types.Today().AddDate(1, 0, 0), types.Date{})

	amount := decimal.RequireFromString("12000")
	updated, err := models.UpdateSavingsGoal(goal.ID, models.SavingsGoalUpdate{TargetAmount: &amount}, user)
	suite.Require().Nil(err)
	suite.Assert().True(amount.Equal(updated.TargetAmount), "Target amount is %s", updated.TargetAmount)
	suite.Assert().True(goal.TargetDate.Equal(updated.TargetDate), "Target date is %s", updated.TargetDate)
}

func (suite *TestSuiteStandard) TestUpdateSavingsGoalTargetDateValidated() {
	user := suite.createTestUser()
	goal := suite.createTestGoal(user, "Emergency fund", "10000", types.Today().AddDate(1, 0, 0), types.Date{})

	today := types.Today()
	_, err := models.UpdateSavingsGoal(goal.ID, models.SavingsGoalUpdate{TargetDate: &today}, user)
	suite.Assert().ErrorIs(err, models.ErrTargetDateNotInFuture)

	future := types.Today().AddDate(2, 0, 0)
	updated, err := models.UpdateSavingsGoal(goal.ID, models.SavingsGoalUpdate{TargetDate: &future}, user)
	suite.Require().Nil(err)
	suite.Assert().True(future.Equal(updated.TargetDate), "Target date is %s", updated.TargetDate)
}

func (suite *TestSuiteStandard) TestDeleteSavingsGoal() {
	user := suite.createTestUser()
	goal := suite.createTestGoal(user, "Emergency fund", "10000", types.Today().AddDate(1, 0, 0), types.Date{})

	err := models.DeleteSavingsGoal(goal.ID, user)
	suite.Require().Nil(err)

	_, err = models.GetSavingsGoal(goal.ID, user)
	suite.Assert().True(errors.Is(err, models.ErrResourceNotFound), "Error is: %v", err)
}
