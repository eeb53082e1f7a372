package profile

import "errors"

var (
	ErrProfileNotFound    = errors.New("no applicable pay profile for the settlement period")
	ErrInvalidContract    = errors.New("invalid contract type")
	ErrEffectiveRangeFlip = errors.New("effective_to must not precede effective_from")
)
