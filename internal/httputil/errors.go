package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidID        = errors.New("an ID specified in the request is not a valid number")
	ErrInvalidDate      = errors.New("a date specified in the request is not in YYYY-MM-DD format")
)
