package utils

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInternal             = errors.New("internal error")
	ErrInvalidJSON          = errors.New("invalid json body")
	ErrValidationFailed     = errors.New("validation failed")
	ErrUserNotFound         = errors.New("user not found")
	ErrCourseNotFound       = errors.New("course not found")
	ErrPRNotFound           = errors.New("pull request not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrTraineeUnresolved    = errors.New("trainee could not be resolved")
	ErrCourseUnresolved     = errors.New("course could not be resolved")
)
