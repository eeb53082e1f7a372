package profile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupay/edupay-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateProfileRequest {
	return CreateProfileRequest{
		TeacherID:     "t1",
		HourlyRate:    decimal.NewFromInt(10000),
		ContractType:  "employee",
		EffectiveFrom: "2025-01-01",
	}
}

func TestCreateProfileRequest_Valid(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateProfileRequest_InvalidContractType(t *testing.T) {
	req := validCreateRequest()
	req.ContractType = "contractor"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "contract_type")
}

func TestCreateProfileRequest_NegativeRate(t *testing.T) {
	req := validCreateRequest()
	req.HourlyRate = decimal.NewFromInt(-1)

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "hourly_rate")
}

func TestCreateProfileRequest_MalformedEffectiveTo(t *testing.T) {
	req := validCreateRequest()
	to := "May 1st"
	req.EffectiveTo = &to

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "effective_to")
}
