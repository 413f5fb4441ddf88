// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import "fmt"

// Error is a validation failure for the arguments of a figure
// constructor. Callers are expected to fix their input and call
// again.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

// Errorf returns an *Error with a formatted message.
func Errorf(format string, args ...interface{}) error {
	return &Error{fmt.Sprintf(format, args...)}
}

// ValueError reports a numeric argument that must be positive.
type ValueError struct {
	Name  string
	Value float64
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s must be > 0, got %v", e.Name, e.Value)
}

// ValidatePositive returns a *ValueError if value is not strictly
// positive. NaN is not positive.
func ValidatePositive(name string, value float64) error {
	if !(value > 0) {
		return &ValueError{name, value}
	}
	return nil
}

// ValidateEqualLength returns an *Error unless all lengths are equal.
func ValidateEqualLength(lens ...int) error {
	if len(lens) == 0 {
		return nil
	}
	for _, n := range lens[1:] {
		if n != lens[0] {
			return &Error{"Oops! Your data lists or ndarrays should be the same length."}
		}
	}
	return nil
}
