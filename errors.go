package mvp

import (
	"errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
//
// The wrapped error can still be recognized with the Is... functions.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type invalidParameter struct {
	message string
}

func (e invalidParameter) Error() string {
	return e.message
}

// NewInvalidParameter creates an error for a constructor argument that
// would make the inverse undefined, e.g. a zero scale factor.
func NewInvalidParameter(msg string, v ...interface{}) error {
	return invalidParameter{"Invalid parameter: " + fmt.Sprintf(msg, v...)}
}

// IsInvalidParameter checks if the given error is an "invalid parameter" error.
func IsInvalidParameter(err error) bool {
	var e invalidParameter
	return errors.As(err, &e)
}

type emptyStack struct {
	message string
}

func (e emptyStack) Error() string {
	return e.message
}

// NewEmptyStack creates the error returned when popping an empty stack.
func NewEmptyStack() error {
	return emptyStack{"Empty stack: pop without matching push"}
}

// IsEmptyStack checks if the given error is an "empty stack" error.
func IsEmptyStack(err error) bool {
	var e emptyStack
	return errors.As(err, &e)
}

type unsupportedInverse struct {
	message string
}

func (e unsupportedInverse) Error() string {
	return e.message
}

// NewUnsupportedInverse creates an error for a function whose inverse is
// not implemented.
func NewUnsupportedInverse(msg string, v ...interface{}) error {
	return unsupportedInverse{"Unsupported inverse: " + fmt.Sprintf(msg, v...)}
}

// IsUnsupportedInverse checks if the given error is an "unsupported inverse"
// error.
func IsUnsupportedInverse(err error) bool {
	var e unsupportedInverse
	return errors.As(err, &e)
}

type notAffine struct {
	message string
}

func (e notAffine) Error() string {
	return e.message
}

// NewNotAffine creates an error for a function that cannot be expressed as
// an affine matrix.
func NewNotAffine(msg string, v ...interface{}) error {
	return notAffine{"Not affine: " + fmt.Sprintf(msg, v...)}
}

// IsNotAffine checks if the given error is a "not affine" error.
func IsNotAffine(err error) bool {
	var e notAffine
	return errors.As(err, &e)
}
