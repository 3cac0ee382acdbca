// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	AddressLen = 20

	nullStr = "null"
)

var (
	// EmptyAddress is a useful all zero value
	EmptyAddress = Address{}

	ErrInvalidAddress = errors.New("invalid address")
)

// Address is the 20 byte account identifier derived from a public key.
type Address [AddressLen]byte

// ToAddress attempt to convert a byte slice into an address
func ToAddress(b []byte) (Address, error) {
	if len(b) != AddressLen {
		return Address{}, fmt.Errorf("%w: expected %d bytes but got %d", ErrInvalidAddress, AddressLen, len(b))
	}
	var addr Address
	copy(addr[:], b)
	return addr, nil
}

// AddressFromString parses a 0x prefixed, 40 digit hex address. Mixed case
// input must carry a valid EIP-55 checksum.
func AddressFromString(addrStr string) (Address, error) {
	if !strings.HasPrefix(addrStr, "0x") || len(addrStr) != 2+2*AddressLen {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, addrStr)
	}
	b, err := hexutil.Decode(addrStr)
	if err != nil {
		return Address{}, fmt.Errorf("%w %q: %w", ErrInvalidAddress, addrStr, err)
	}
	addr, err := ToAddress(b)
	if err != nil {
		return Address{}, err
	}

	digits := addrStr[2:]
	if digits == strings.ToLower(digits) || digits == strings.ToUpper(digits) {
		return addr, nil
	}
	if addr.String() != addrStr {
		return Address{}, fmt.Errorf("%w: bad checksum %q", ErrInvalidAddress, addrStr)
	}
	return addr, nil
}

// IsValidAddress reports whether [addrStr] would be accepted by
// AddressFromString.
func IsValidAddress(addrStr string) bool {
	_, err := AddressFromString(addrStr)
	return err == nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a *Address) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == nullStr {
		return nil
	} else if len(str) < 2 {
		return errMissingQuotes
	}

	lastIndex := len(str) - 1
	if str[0] != '"' || str[lastIndex] != '"' {
		return errMissingQuotes
	}

	addr, err := AddressFromString(str[1:lastIndex])
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	addr, err := AddressFromString(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Bytes returns the 20 bytes as a slice. It is assumed this slice is not
// modified.
func (a Address) Bytes() []byte {
	return a[:]
}

// Hex returns the 0x prefixed lowercase hex encoding.
func (a Address) Hex() string {
	return hexutil.Encode(a[:])
}

// String returns the EIP-55 checksummed encoding.
func (a Address) String() string {
	return common.Address(a).Hex()
}

func (a Address) Compare(other Address) int {
	return bytes.Compare(a[:], other[:])
}
