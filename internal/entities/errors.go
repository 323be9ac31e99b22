package entities

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrder        = errors.New("invalid order data")
	ErrOrderNotCancellable = errors.New("cannot cancel order that is already being prepared or delivered")

	ErrPizzaNotFound    = errors.New("pizza not found")
	ErrPizzaUnavailable = errors.New("pizza is currently unavailable")
	ErrPizzaNameTaken   = errors.New("pizza with this name already exists")

	// ErrMenuUnavailable means the menu service could not be reached at all,
	// as opposed to it answering that a pizza does not exist.
	ErrMenuUnavailable = errors.New("menu service unavailable")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
