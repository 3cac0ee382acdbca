// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/thor-tools/txkit/ids"
)

// BlockRef references a recent block. Its first 4 bytes are the block
// number.
type BlockRef [blockRefLen]byte

// NewBlockRef returns the reference of block [number] without its id
// suffix.
func NewBlockRef(number uint32) BlockRef {
	var br BlockRef
	binary.BigEndian.PutUint32(br[:], number)
	return br
}

// BlockRefFromID returns the reference of the block with id [blockID].
func BlockRefFromID(blockID ids.ID) BlockRef {
	var br BlockRef
	copy(br[:], blockID[:blockRefLen])
	return br
}

func BlockRefFromUint64(v uint64) BlockRef {
	var br BlockRef
	binary.BigEndian.PutUint64(br[:], v)
	return br
}

func (br BlockRef) Number() uint32 {
	return binary.BigEndian.Uint32(br[:])
}

func (br BlockRef) Uint64() uint64 {
	return binary.BigEndian.Uint64(br[:])
}

func (br BlockRef) String() string {
	return hexutil.Encode(br[:])
}

// Body is the signed content of a transaction.
type Body struct {
	ChainTag   uint8
	BlockRef   BlockRef
	Expiration uint32
	// Clauses are executed in order.
	Clauses   []Clause
	Fee       Fee
	Gas       uint64
	DependsOn *ids.ID
	Nonce     uint64
	Reserved  Reserved
}

// Verify returns an error if [b] has no canonical encoding.
func (b *Body) Verify() error {
	return b.Reserved.Verify()
}

func (b *Body) Type() Type {
	return b.Fee.Type()
}

func (b *Body) IsDelegated() bool {
	return b.Reserved.Features.IsDelegated()
}

// IntrinsicGas returns the gas charged before any clause executes.
func (b *Body) IntrinsicGas() (uint64, error) {
	return IntrinsicGas(b.Clauses...)
}

// Copy returns a body that shares no memory with [b].
func (b *Body) Copy() Body {
	cpy := *b
	if b.Clauses != nil {
		cpy.Clauses = make([]Clause, len(b.Clauses))
		for i := range b.Clauses {
			cpy.Clauses[i] = b.Clauses[i].Copy()
		}
	}
	if b.DependsOn != nil {
		dependsOn := *b.DependsOn
		cpy.DependsOn = &dependsOn
	}
	cpy.Reserved = b.Reserved.Copy()
	return cpy
}

// Equal reports whether [b] and [o] have the same encoding.
func (b *Body) Equal(o *Body) bool {
	if b.ChainTag != o.ChainTag ||
		b.BlockRef != o.BlockRef ||
		b.Expiration != o.Expiration ||
		!b.Fee.Equal(o.Fee) ||
		b.Gas != o.Gas ||
		b.Nonce != o.Nonce ||
		len(b.Clauses) != len(o.Clauses) {
		return false
	}
	if (b.DependsOn == nil) != (o.DependsOn == nil) {
		return false
	}
	if b.DependsOn != nil && *b.DependsOn != *o.DependsOn {
		return false
	}
	for i := range b.Clauses {
		if !b.Clauses[i].Equal(&o.Clauses[i]) {
			return false
		}
	}
	return b.Reserved.Equal(&o.Reserved)
}
