package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "year", Message: "year is required"},
		{Field: "month", Message: "month must be between 1 and 12"},
	}

	assert.Equal(t, "year: year is required; month: month must be between 1 and 12", errs.Error())

	m := errs.ToMap()
	assert.Equal(t, "year is required", m["year"])
	assert.Equal(t, "month must be between 1 and 12", m["month"])
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@"))
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUUID("0195f9a8-1234-7abc-9def-0123456789ab"))
	assert.True(t, IsValidUUID("0195F9A8-1234-7ABC-9DEF-0123456789AB"))
	assert.False(t, IsValidUUID("EMP-0042"))
	assert.False(t, IsValidUUID(""))
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNumeric("2024"))
	assert.False(t, IsNumeric("20a4"))
	assert.False(t, IsNumeric(""))
}
