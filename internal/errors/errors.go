package errors

import "errors"

var ErrUnauthorized = errors.New("no active session")
var ErrForbidden = errors.New("operation is forbidden for user")
var ErrNotFound = errors.New("record not found")
var ErrEmailTaken = errors.New("user with this email already exists")
var ErrValidation = errors.New("invalid input")
var ErrInsufficientInventory = errors.New("requested quantity exceeds remaining tickets")
var ErrStorageFull = errors.New("storage limit exceeded")
