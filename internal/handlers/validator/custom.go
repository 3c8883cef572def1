package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/jobvault/jobs-api/internal/store/model"
)

func jobStatusValidator(fl validator.FieldLevel) bool {
	val, ok := fieldString(fl)
	if !ok {
		return false
	}

	switch val {
	case model.JobStatusPending, model.JobStatusInterview, model.JobStatusDeclined:
		return true
	}
	return false
}

func jobTypeValidator(fl validator.FieldLevel) bool {
	val, ok := fieldString(fl)
	if !ok {
		return false
	}

	switch val {
	case model.JobTypeFullTime, model.JobTypePartTime, model.JobTypeRemote, model.JobTypeInternship:
		return true
	}
	return false
}

// fieldString unwraps the field value. Pointer fields arrive already
// dereferenced, so the same rules serve create and update payloads.
func fieldString(fl validator.FieldLevel) (string, bool) {
	val, ok := fl.Field().Interface().(string)
	return val, ok
}
