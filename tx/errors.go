// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"errors"
	"fmt"

	"github.com/thor-tools/txkit/utils/crypto/secp256k1"
)

var (
	// ErrInvalidField is returned for malformed or contradictory body fields,
	// including encodings that are not canonical at the field level.
	ErrInvalidField = errors.New("invalid transaction field")
	// ErrInvalidDataType is returned when clause input handed to the gas
	// calculator cannot be interpreted.
	ErrInvalidDataType = errors.New("invalid data type")
	// ErrDecode is returned for byte input that is not well formed RLP.
	ErrDecode = errors.New("couldn't decode transaction")

	ErrInvalidPrivateKey = secp256k1.ErrInvalidPrivateKey

	ErrNotDelegated  = errors.New("transaction is not delegated")
	ErrDelegated     = errors.New("transaction is delegated")
	ErrAlreadySigned = errors.New("transaction is already signed")
	ErrUnavailable   = errors.New("transaction field unavailable")

	ErrIntrinsicGasOverflow = errors.New("intrinsic gas overflows uint64")
)

// FieldError describes which field was rejected and why.
type FieldError struct {
	Field  string
	Value  interface{}
	Reason string
	Err    error
	// Cause is the underlying failure, if any.
	Cause error
}

func (e *FieldError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s: %s", e.Err, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s (got %v)", e.Err, e.Field, e.Reason, e.Value)
}

func (e *FieldError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func invalidField(field string, value interface{}, reason string) error {
	return &FieldError{
		Field:  field,
		Value:  value,
		Reason: reason,
		Err:    ErrInvalidField,
	}
}

func invalidDataType(field string, value interface{}, reason string) error {
	return &FieldError{
		Field:  field,
		Value:  value,
		Reason: reason,
		Err:    ErrInvalidDataType,
	}
}

// decodeError reports a field whose bytes could not be read. The result
// matches both ErrInvalidField and [cause].
func decodeError(field string, cause error) error {
	return &FieldError{
		Field:  field,
		Reason: cause.Error(),
		Err:    ErrInvalidField,
		Cause:  cause,
	}
}
