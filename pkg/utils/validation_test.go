package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name   string  `validate:"required"`
	Seat   int     `validate:"required,gt=0"`
	Rating float64 `validate:"gte=0,lte=10"`
	UserID string  `validate:"omitempty,uuid"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(sampleRequest{
		Name:   "ok",
		Seat:   3,
		Rating: 7.5,
		UserID: "84438967-f68f-4fa0-b620-0f08217e76af",
	})
	assert.Nil(t, errs)
}

func TestValidateStruct_Invalid(t *testing.T) {
	errs := ValidateStruct(sampleRequest{
		Seat:   0,
		Rating: 11,
		UserID: "nope",
	})

	assert.Equal(t, "This field is required", errs["Name"])
	assert.Equal(t, "This field is required", errs["Seat"])
	assert.Equal(t, "Must be at most 10", errs["Rating"])
	assert.Equal(t, "Must be a valid UUID", errs["UserID"])
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{"Name": "This field is required"})
	assert.Equal(t, "Name: This field is required", msg)
}
