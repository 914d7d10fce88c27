package bij256

import (
	"errors"
	"math/big"
)

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	KindInvalidLength   Kind = "InvalidLength"
	KindTooLarge        Kind = "TooLarge"
	KindInvalidEncoding Kind = "InvalidEncoding"
)

// Stable rule identifiers.
const (
	RuleNegativeLength  = "BIJ-LEN-001"
	RuleMissingLength   = "BIJ-LEN-002"
	RuleMalformedLength = "BIJ-LEN-003"
	RuleLengthLimit     = "BIJ-LEN-004"
	RuleUnaryTooLarge   = "BIJ-UNARY-001"
	RuleUnaryMarker     = "BIJ-UNARY-002"
)

// Sentinels matching every *Error of the corresponding Kind under errors.Is.
var (
	ErrInvalidLength   = &Error{Kind: KindInvalidLength, Message: "invalid length"}
	ErrTooLarge        = &Error{Kind: KindTooLarge, Message: "too large"}
	ErrInvalidEncoding = &Error{Kind: KindInvalidEncoding, Message: "invalid encoding"}
)

// Error is the package's structured error type.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string

	// Required is the unary length that was refused. Set for KindTooLarge.
	Required *big.Int

	// Offset and Char locate the first non-marker byte. Set for KindInvalidEncoding.
	Offset int
	Char   byte

	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "bij256: " + e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is a *Error of the same Kind, and of the same
// RuleID when target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.RuleID == "" || t.RuleID == e.RuleID
}

func newError(kind Kind, ruleID, msg string) *Error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

// NewInvalidLength returns an InvalidLength error for collaborators that
// reject a length before it reaches DecodeInteger, such as a decimal parser.
func NewInvalidLength(ruleID, msg string, cause error) error {
	e := newError(KindInvalidLength, ruleID, msg)
	e.Cause = cause
	return e
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}

// RequiredLength returns a copy of the length carried by a TooLarge error,
// or nil if err is not one.
func RequiredLength(err error) *big.Int {
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindTooLarge || e.Required == nil {
		return nil
	}
	return new(big.Int).Set(e.Required)
}
