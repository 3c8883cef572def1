package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("no %s with id %s", resourceType, id)}
}

func NewErrJobNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "job")
}

type ErrEmptyJobField struct {
	error
}

func NewErrEmptyJobField() *ErrEmptyJobField {
	return &ErrEmptyJobField{fmt.Errorf("company or position fields cannot be empty")}
}
