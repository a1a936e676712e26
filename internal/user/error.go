package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already registered")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAdminSecret        = errors.New("do not have access to become admin")
	ErrAddressNotFound    = errors.New("delivery address not found")
	ErrNoPrimaryAddress   = errors.New("no primary address found")
)
