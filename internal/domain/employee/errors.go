package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUnauthorized     = errors.New("unauthorized to access this employee")
	ErrNoDraft          = errors.New("no draft selected for this employee")
	ErrCommitNotAllowed = errors.New("profile commit requires edit permission")
	ErrVersionConflict  = errors.New("employee record changed since the draft was taken")
)
