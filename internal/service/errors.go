package service

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike, so login failures carry no user-existence signal.
	ErrInvalidCredentials = errors.New("invalid username/password")
	// ErrInvalidToken covers every token failure: bad signature, wrong
	// signing method, tampering and expiry are deliberately not
	// distinguished to the caller.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrDuplicateUsername is returned when registering an already-taken username.
	ErrDuplicateUsername = errors.New("duplicate username")
	// ErrUserNotFound is returned when the referenced account does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrRecipeNotFound is returned when the external catalog has no recipe
	// for the requested lookup.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrSavedRecipeNotFound is returned when a saved entry is absent or
	// belongs to a different user.
	ErrSavedRecipeNotFound = errors.New("saved recipe not found")
	// ErrCreatedRecipeNotFound is returned when a created recipe is absent
	// or belongs to a different user.
	ErrCreatedRecipeNotFound = errors.New("created recipe not found")
)
