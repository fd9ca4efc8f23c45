package common

import (
	"errors"
)

var (
	ErrValidation              = errors.New("validation failed")
	ErrAccountNotFound         = errors.New("account not found in fetched accounts")
	ErrHoldingsEmpty           = errors.New("account has no holdings")
	ErrDivisionByZero          = errors.New("division by zero: holding has zero units")
	ErrWorksheetNotFound       = errors.New("worksheet not found")
	ErrSpreadsheetIDEmpty      = errors.New("spreadsheet id is empty")
	ErrMappingEmpty            = errors.New("account to sheet mapping is empty")
	ErrMappingDuplicateAccount = errors.New("account mapped more than once")
	ErrUnknownSecurityQuestion = errors.New("no answer configured for security question")
	ErrLoginFailed             = errors.New("tangerine login failed")
	ErrNotLoggedIn             = errors.New("tangerine session not established")
	ErrBucketNameEmpty         = errors.New("cloud storage bucket name not set")
	ErrInvalidJobRoute         = errors.New("invalid version or job name")
	ErrReportNameTaken         = errors.New("no free report object name")
)
