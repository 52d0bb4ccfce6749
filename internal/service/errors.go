package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")

	ErrCategoryNotFound         = errors.New("category not found")
	ErrCategoryPermissionDenied = errors.New("category does not belong to the user")
	ErrCategoryTypeMismatch     = errors.New("category type does not match the operation")
	ErrInvalidCategoryType      = errors.New("unknown category type")

	ErrExpenseNotFound         = errors.New("expense not found")
	ErrExpensePermissionDenied = errors.New("expense does not belong to the user")

	ErrIncomeNotFound         = errors.New("income not found")
	ErrIncomePermissionDenied = errors.New("income does not belong to the user")

	ErrInvalidPeriod     = errors.New("invalid date period")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
	ErrValueOutOfRange   = errors.New("value out of range")
	ErrCommentTooLong    = errors.New("comment too long")
)
