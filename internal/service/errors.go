package service

import "errors"

var (
	ErrLoginFailed         = errors.New("login failed")
	ErrCreateUser          = errors.New("error creating user")
	ErrChangePassword      = errors.New("error changing password")
	ErrListUsers           = errors.New("error listing users")
	ErrListWorkers         = errors.New("error listing workers")
	ErrAssignWorker        = errors.New("error assigning worker")
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
