package response

import (
	"errors"
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/profile"
	"github.com/edupay/edupay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "No applicable pay profile for the settlement period")
	case errors.Is(err, profile.ErrInvalidContract):
		BadRequest(w, "Invalid contract type", nil)
	case errors.Is(err, profile.ErrEffectiveRangeFlip):
		BadRequest(w, "effective_to must not precede effective_from", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Settlement run not found")
	case errors.Is(err, payroll.ErrAcknowledgementNotFound):
		NotFound(w, "Acknowledgement not found")
	case errors.Is(err, payroll.ErrInvalidStateTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrNotRunOwner):
		Forbidden(w, "Only the owning teacher may confirm this settlement")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid settlement period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
