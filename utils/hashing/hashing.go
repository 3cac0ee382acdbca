// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

const (
	HashLen = blake2b.Size256
	AddrLen = 20
)

var ErrInvalidHashLen = errors.New("invalid hash length")

// Hash256 A 256 bit long hash value.
type Hash256 = [HashLen]byte

// ComputeBlake2b256Array computes the blake2b-256 hash of the concatenation of
// the input byte slices.
func ComputeBlake2b256Array(bufs ...[]byte) Hash256 {
	h, err := blake2b.New256(nil)
	if err != nil {
		// only fails for an oversized key
		panic(err)
	}
	for _, buf := range bufs {
		_, _ = h.Write(buf)
	}
	var out Hash256
	h.Sum(out[:0])
	return out
}

// ComputeBlake2b256 computes the blake2b-256 hash of the concatenation of the
// input byte slices.
func ComputeBlake2b256(bufs ...[]byte) []byte {
	arr := ComputeBlake2b256Array(bufs...)
	return arr[:]
}

// ComputeKeccak256Array computes the legacy keccak-256 hash of the
// concatenation of the input byte slices.
func ComputeKeccak256Array(bufs ...[]byte) Hash256 {
	h := sha3.NewLegacyKeccak256()
	for _, buf := range bufs {
		_, _ = h.Write(buf)
	}
	var out Hash256
	h.Sum(out[:0])
	return out
}

// ComputeKeccak256 computes the legacy keccak-256 hash of the concatenation
// of the input byte slices.
func ComputeKeccak256(bufs ...[]byte) []byte {
	arr := ComputeKeccak256Array(bufs...)
	return arr[:]
}

func ToHash256(bytes []byte) (Hash256, error) {
	hash := Hash256{}
	if bytesLen := len(bytes); bytesLen != HashLen {
		return hash, fmt.Errorf("%w: expected 32 bytes but got %d", ErrInvalidHashLen, bytesLen)
	}
	copy(hash[:], bytes)
	return hash, nil
}

// PubkeyBytesToAddress returns the last 20 bytes of the keccak-256 hash of an
// uncompressed public key, excluding its 0x04 prefix byte.
func PubkeyBytesToAddress(key []byte) []byte {
	if len(key) > 0 && key[0] == 0x04 {
		key = key[1:]
	}
	hash := ComputeKeccak256Array(key)
	return hash[HashLen-AddrLen:]
}
