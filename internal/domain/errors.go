package domain

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidTime       = errors.New("invalid time")
	ErrInvalidDuration   = errors.New("invalid duration")
	ErrRecipientRequired = errors.New("recipient required")
	ErrMissingField      = errors.New("missing required field")
	ErrMailSendFailed    = errors.New("failed to send calendar invitation")
)
