package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")

	ErrTaskDone          = errors.New("task already completed")
	ErrSlotTaken         = errors.New("appointment slot already taken")
	ErrDoseAdministered  = errors.New("dose already administered")
	ErrCheckupDone       = errors.New("checkup already recorded")
	ErrInsufficientStock = errors.New("insufficient blood stock")
	ErrAlertResolved     = errors.New("alert already resolved")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
)
