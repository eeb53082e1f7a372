package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-01-06")
	assert.True(t, ok)

	_, ok = IsValidDate("06-01-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("not-a-date")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "teacher_id", Message: "is required"},
		{Field: "period_end", Message: "must not precede period_start"},
	}

	assert.Equal(t, "teacher_id: is required; period_end: must not precede period_start", errs.Error())
	assert.Equal(t, map[string]string{
		"teacher_id": "is required",
		"period_end": "must not precede period_start",
	}, errs.ToMap())
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"draft", "pending_ack", "confirmed"}

	assert.True(t, IsInSlice("draft", statuses))
	assert.True(t, IsInSlice("confirmed", statuses))
	assert.False(t, IsInSlice("paid", statuses))
	assert.False(t, IsInSlice("", statuses))
}
