package services

import "errors"

var (
	// Account
	ErrEmailInUse         = errors.New("email is already in use")
	ErrInvalidName        = errors.New("name must not be empty or a placeholder")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrPasswordUnchanged  = errors.New("new password must differ from the current password")
	ErrUserNotFound       = errors.New("user not found")

	// Check-ins
	ErrCheckinNotFound = errors.New("check-in not found")
	ErrInvalidRating   = errors.New("mood, stress and sleep must be between 1 and 5")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")

	// Insights
	ErrInvalidRange = errors.New("period start must not be after its end")

	// Tips
	ErrTipNotFound     = errors.New("tip not found")
	ErrInvalidCategory = errors.New("category must be one of Stress, Sleep, Mood, Wellness")

	// ErrMissingArgument and ErrUnauthorized are mapped by the top-level error
	// handler to 400 and 401.
	ErrMissingArgument = errors.New("required argument is missing")
	ErrUnauthorized    = errors.New("unauthorized")
)
