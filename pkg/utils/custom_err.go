package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidBudget          = errors.New("budget must be a positive number")
	ErrInvalidDateFormat      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange       = errors.New("end date must be after start date")
	ErrItineraryNotFound      = errors.New("itinerary not found")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
)
