package safe

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrInvalidIOPattern is returned when start validation fails.
	ErrInvalidIOPattern = errors.New("safe: invalid io pattern")

	// ErrIOPatternViolation is returned when an absorb or squeeze call does
	// not match the next call the io pattern expects, or when finish is
	// called before every call in the pattern has been consumed.
	ErrIOPatternViolation = errors.New("safe: io pattern violation")

	// ErrTooFewInputElements is returned when absorb is given fewer input
	// elements than the length it was called with.
	ErrTooFewInputElements = errors.New("safe: too few input elements")

	// ErrInvalidLength is returned when an encrypt/decrypt cipher or
	// message length does not match the length contract of §4.4.
	ErrInvalidLength = errors.New("safe: invalid length")

	// ErrVerificationFailed is returned when decrypt's authentication tag
	// check fails.
	ErrVerificationFailed = errors.New("safe: verification failed")

	// ErrErased is returned by any operation attempted on an instance that
	// has already erased its state, either via finish or a prior error.
	ErrErased = errors.New("safe: sponge already erased")
)

// Error is implemented by the typed errors this package returns
// (IOPatternError, LengthError, PatternValidationError); the sentinel
// errors above are returned unwrapped and do not implement it. It never
// carries element values, only structural context (call indices,
// expected/actual lengths), so implementations are safe to log.
type Error interface {
	error
	safeError() // marker method
}

// IOPatternError reports a mismatch between the declared io pattern and
// the sequence of absorb/squeeze calls actually made.
type IOPatternError struct {
	// CallIndex is the index into the io pattern that was violated.
	CallIndex int
	// Reason describes what went wrong, without any element data.
	Reason string
}

func (e *IOPatternError) Error() string {
	return fmt.Sprintf("safe: io pattern violation at call %d: %s", e.CallIndex, e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *IOPatternError) Is(target error) bool {
	return target == ErrIOPatternViolation
}

func (e *IOPatternError) safeError() {}

// LengthError reports an absorb call given fewer input elements than its
// declared length, or an encrypt/decrypt call whose message or cipher
// length is invalid.
type LengthError struct {
	// Want is the length the io pattern or protocol expected.
	Want int
	// Got is the length actually supplied.
	Got int
	// Sentinel is the sentinel error this wraps (ErrTooFewInputElements or
	// ErrInvalidLength).
	Sentinel error
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: want %d, got %d", e.Sentinel, e.Want, e.Got)
}

// Unwrap returns the underlying sentinel error.
func (e *LengthError) Unwrap() error {
	return e.Sentinel
}

func (e *LengthError) safeError() {}

// PatternValidationError explains why an io pattern failed Validate.
type PatternValidationError struct {
	Reason string
}

func (e *PatternValidationError) Error() string {
	return fmt.Sprintf("safe: invalid io pattern: %s", e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *PatternValidationError) Is(target error) bool {
	return target == ErrInvalidIOPattern
}

func (e *PatternValidationError) safeError() {}
