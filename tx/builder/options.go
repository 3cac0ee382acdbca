// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"github.com/holiman/uint256"

	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/tx"
)

type Option func(*Options)

type Options struct {
	gasSet bool
	gas    uint64

	gasPadding float64

	feeSet bool
	fee    tx.Fee

	dependsOn *ids.ID

	nonceSet bool
	nonce    uint64

	delegated bool

	unused [][]byte
}

func NewOptions(ops []Option) *Options {
	o := &Options{}
	o.applyOptions(ops)
	return o
}

func UnionOptions(first, second []Option) []Option {
	firstLen := len(first)
	newOptions := make([]Option, firstLen+len(second))
	copy(newOptions, first)
	copy(newOptions[firstLen:], second)
	return newOptions
}

func (o *Options) applyOptions(ops []Option) {
	for _, op := range ops {
		op(o)
	}
}

func (o *Options) Gas() (uint64, bool) {
	return o.gas, o.gasSet
}

func (o *Options) GasPadding() float64 {
	return o.gasPadding
}

func (o *Options) Fee() tx.Fee {
	if o.feeSet {
		return o.fee
	}
	return tx.Fee{}
}

func (o *Options) DependsOn() *ids.ID {
	return o.dependsOn
}

func (o *Options) Nonce() (uint64, bool) {
	return o.nonce, o.nonceSet
}

func (o *Options) Delegated() bool {
	return o.delegated
}

func (o *Options) ReservedUnused() [][]byte {
	return o.unused
}

// WithGas sets the gas limit instead of deriving it from the clauses.
func WithGas(gas uint64) Option {
	return func(o *Options) {
		o.gasSet = true
		o.gas = gas
	}
}

// WithGasPadding raises a derived gas limit by the fraction [padding], which
// must be in (0, 1].
func WithGasPadding(padding float64) Option {
	return func(o *Options) {
		o.gasPadding = padding
	}
}

func WithGasPriceCoef(gasPriceCoef uint8) Option {
	return func(o *Options) {
		o.feeSet = true
		o.fee = tx.LegacyFee(gasPriceCoef)
	}
}

func WithDynamicFee(maxFeePerGas, maxPriorityFeePerGas *uint256.Int) Option {
	return func(o *Options) {
		o.feeSet = true
		o.fee = tx.DynamicFee(maxFeePerGas, maxPriorityFeePerGas)
	}
}

func WithDependsOn(txID ids.ID) Option {
	return func(o *Options) {
		o.dependsOn = &txID
	}
}

// WithNonce sets the nonce instead of drawing a random one.
func WithNonce(nonce uint64) Option {
	return func(o *Options) {
		o.nonceSet = true
		o.nonce = nonce
	}
}

// WithDelegation marks the body as paid for by a gas payer.
func WithDelegation() Option {
	return func(o *Options) {
		o.delegated = true
	}
}

// WithReservedUnused carries opaque elements in the reserved slot.
func WithReservedUnused(unused ...[]byte) Option {
	return func(o *Options) {
		o.unused = unused
	}
}
