// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/thor-tools/txkit/tx"
)

var ErrInvalidGasPadding = errors.New("gas padding must be in (0, 1]")

// Context holds the chain specific fields shared by every body a Builder
// produces.
type Context struct {
	ChainTag uint8
	// BlockRef is the reference of the block the expiration counts from.
	BlockRef   tx.BlockRef
	Expiration uint32
}

type Builder struct {
	context Context
	options []Option
}

// New returns a builder whose bodies use [context]. [options] apply to every
// body and can be overridden per body.
func New(context Context, options ...Option) *Builder {
	return &Builder{
		context: context,
		options: options,
	}
}

func (b *Builder) Context() Context {
	return b.context
}

// NewBody returns a body executing [clauses]. Without WithGas the gas limit
// is the intrinsic gas of [clauses], padded if requested. Without WithNonce
// the nonce is random.
func (b *Builder) NewBody(clauses []tx.Clause, options ...Option) (*tx.Body, error) {
	ops := NewOptions(UnionOptions(b.options, options))

	gas, ok := ops.Gas()
	if !ok {
		var err error
		gas, err = tx.IntrinsicGas(clauses...)
		if err != nil {
			return nil, err
		}
		gas, err = pad(gas, ops.GasPadding())
		if err != nil {
			return nil, err
		}
	}

	nonce, ok := ops.Nonce()
	if !ok {
		var err error
		nonce, err = randomNonce()
		if err != nil {
			return nil, fmt.Errorf("couldn't draw nonce: %w", err)
		}
	}

	body := &tx.Body{
		ChainTag:   b.context.ChainTag,
		BlockRef:   b.context.BlockRef,
		Expiration: b.context.Expiration,
		Fee:        ops.Fee(),
		Gas:        gas,
		Nonce:      nonce,
	}
	if len(clauses) > 0 {
		body.Clauses = make([]tx.Clause, len(clauses))
		for i := range clauses {
			body.Clauses[i] = clauses[i].Copy()
		}
	}
	if dependsOn := ops.DependsOn(); dependsOn != nil {
		id := *dependsOn
		body.DependsOn = &id
	}
	body.Reserved.Features.SetDelegated(ops.Delegated())
	for _, u := range ops.ReservedUnused() {
		body.Reserved.Unused = append(body.Reserved.Unused, append([]byte(nil), u...))
	}
	if err := body.Verify(); err != nil {
		return nil, err
	}
	return body, nil
}

func pad(gas uint64, padding float64) (uint64, error) {
	switch {
	case padding == 0:
		return gas, nil
	case padding < 0, padding > 1, math.IsNaN(padding):
		return 0, fmt.Errorf("%w: got %v", ErrInvalidGasPadding, padding)
	}
	extra := uint64(float64(gas) * padding)
	if gas > math.MaxUint64-extra {
		return 0, tx.ErrIntrinsicGasOverflow
	}
	return gas + extra, nil
}

func randomNonce() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}
