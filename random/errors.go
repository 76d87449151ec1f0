package random

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRange is returned when a requested range contains no values.
	ErrEmptyRange = errors.New("empty range")

	// ErrOutOfDomain is returned when an argument lies outside the domain
	// accepted by the operation, such as a probability outside [0, 1].
	ErrOutOfDomain = errors.New("out of domain")
)

// RangeError describes a rejected range. It unwraps to ErrEmptyRange.
type RangeError struct {
	Start     any
	End       any
	Inclusive bool
}

func (e *RangeError) Error() string {
	closing := ")"
	if e.Inclusive {
		closing = "]"
	}
	return fmt.Sprintf("%s: [%v, %v%s", ErrEmptyRange, e.Start, e.End, closing)
}

func (e *RangeError) Unwrap() error {
	return ErrEmptyRange
}

// DomainError describes an argument outside its accepted domain. It unwraps
// to ErrOutOfDomain.
type DomainError struct {
	Name  string
	Value any
	Want  string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s must be in %s (got %v)", ErrOutOfDomain, e.Name, e.Want, e.Value)
}

func (e *DomainError) Unwrap() error {
	return ErrOutOfDomain
}
