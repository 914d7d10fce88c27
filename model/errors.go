package model

import (
	"errors"
	"fmt"

	"xdao.co/bij256/bij256"
)

type ErrorCode string

const (
	ErrInvalidLength   ErrorCode = "INVALID_LENGTH"
	ErrTooLarge        ErrorCode = "TOO_LARGE"
	ErrInvalidEncoding ErrorCode = "INVALID_ENCODING"
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"
	ErrInternal        ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	RuleID  string    `json:"ruleID,omitempty"`
	Message string    `json:"message"`

	// RequiredLength is the refused unary length in decimal, for TOO_LARGE.
	RequiredLength string `json:"requiredLength,omitempty"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// FromError maps err onto the boundary taxonomy. It returns nil for nil.
func FromError(err error) *CodedError {
	if err == nil {
		return nil
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce
	}
	var be *bij256.Error
	if !errors.As(err, &be) {
		return NewError(ErrInternal, err.Error())
	}
	out := &CodedError{RuleID: be.RuleID, Message: be.Error()}
	switch be.Kind {
	case bij256.KindInvalidLength:
		out.Code = ErrInvalidLength
	case bij256.KindTooLarge:
		out.Code = ErrTooLarge
		if be.Required != nil {
			out.RequiredLength = be.Required.String()
		}
	case bij256.KindInvalidEncoding:
		out.Code = ErrInvalidEncoding
	default:
		out.Code = ErrInternal
	}
	return out
}
