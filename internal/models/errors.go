package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Ownership errors
	ErrNoResourceAccess = errors.New("you do not have access to this resource")

	// User errors
	ErrUsernameTaken      = errors.New("this username is already in use")
	ErrInvalidCredentials = errors.New("the username or password is incorrect")
	ErrNoValidSession     = errors.New("the session token is missing or invalid")

	// Category errors
	ErrCategoryNameTaken        = errors.New("this category name is already in use")
	ErrCategoryInUse            = errors.New("this category is used by at least one transaction and cannot be deleted")
	ErrDefaultCategoryProtected = errors.New("default categories cannot be deleted")
	ErrTransactionTypeInvalid   = errors.New("the transaction type must be INCOME or EXPENSE")

	// Transaction errors
	ErrTransactionDateInFuture = errors.New("the transaction date must not be in the future")
	ErrAmountNotPositive       = errors.New("amounts must be larger than zero")
	ErrAmountPrecision         = errors.New("amounts must not have more than two decimal places")

	// Savings goal errors
	ErrTargetDateNotInFuture = errors.New("the target date must be in the future")

	// Report errors
	ErrMonthOutOfRange = errors.New("the month must be between 1 and 12")
)
