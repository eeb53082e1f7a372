package payroll

import "errors"

var (
	ErrRunNotFound             = errors.New("payroll run not found")
	ErrAcknowledgementNotFound = errors.New("payroll acknowledgement not found")
	ErrInvalidStateTransition  = errors.New("invalid settlement state transition")
	ErrNotRunOwner             = errors.New("settlement can only be confirmed by the teacher it belongs to")
	ErrInvalidPeriod           = errors.New("invalid settlement period")
)
