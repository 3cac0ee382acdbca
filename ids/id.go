// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/thor-tools/txkit/utils/hashing"
)

const IDLen = 32

var (
	// Empty is a useful all zero value
	Empty = ID{}

	errMissingQuotes = errors.New("first and last characters should be quotes")
	ErrInvalidID     = errors.New("invalid id")
)

// ID wraps a 32 byte hash used as an identifier
type ID [IDLen]byte

// ToID attempt to convert a byte slice into an id
func ToID(bytes []byte) (ID, error) {
	return hashing.ToHash256(bytes)
}

// FromString is the inverse of ID.String()
func FromString(idStr string) (ID, error) {
	b, err := hexutil.Decode(idStr)
	if err != nil {
		return ID{}, fmt.Errorf("%w %q: %w", ErrInvalidID, idStr, err)
	}
	id, err := ToID(b)
	if err != nil {
		return ID{}, fmt.Errorf("%w %q: %w", ErrInvalidID, idStr, err)
	}
	return id, nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	str := id.String()
	return []byte(`"` + str + `"`), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == nullStr { // If "null", do nothing
		return nil
	} else if len(str) < 2 {
		return errMissingQuotes
	}

	lastIndex := len(str) - 1
	if str[0] != '"' || str[lastIndex] != '"' {
		return errMissingQuotes
	}

	// Parse ID
	newID, err := FromString(str[1:lastIndex])
	if err != nil {
		return err
	}
	*id = newID
	return nil
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	newID, err := FromString(string(text))
	if err != nil {
		return err
	}
	*id = newID
	return nil
}

// Bytes returns the 32 byte hash as a slice. It is assumed this slice is not
// modified.
func (id ID) Bytes() []byte {
	return id[:]
}

// Hex is an alias of String.
func (id ID) Hex() string {
	return id.String()
}

// String returns the 0x prefixed lowercase hex encoding of the id.
func (id ID) String() string {
	return hexutil.Encode(id[:])
}

// Prefix this id to create a more selective id. This can be used to store
// multiple values under the same key.
func (id ID) Prefix(prefixes ...uint64) ID {
	packed := make([]byte, 0, len(prefixes)*8+IDLen)
	for _, prefix := range prefixes {
		packed = binary.BigEndian.AppendUint64(packed, prefix)
	}
	packed = append(packed, id[:]...)
	return hashing.ComputeBlake2b256Array(packed)
}

func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}
