package usecase

import "errors"

var (
	ErrUserExists         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
	ErrAlreadyReviewed    = errors.New("product already reviewed")
	ErrRatingRequired     = errors.New("please select a rating")
	ErrNoOrderItems       = errors.New("no order items")
	ErrProductNotFound    = errors.New("product not found")
	ErrNotAuthorized      = errors.New("not authorized to view this order")
)
