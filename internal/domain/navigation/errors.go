package navigation

import "errors"

var (
	// ErrUnknownScreen is returned when a navigation target is not a valid screen
	ErrUnknownScreen = errors.New("unknown screen")

	// ErrUnknownRole is returned when a role selection is not a known role
	ErrUnknownRole = errors.New("unknown role")
)
