// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Fee selects the fee model of a transaction. The zero value is the legacy
// model with a gas price coefficient of 0.
type Fee struct {
	typ                  Type
	gasPriceCoef         uint8
	maxFeePerGas         uint256.Int
	maxPriorityFeePerGas uint256.Int
}

// LegacyFee returns a fee priced by the network base price scaled by
// [gasPriceCoef].
func LegacyFee(gasPriceCoef uint8) Fee {
	return Fee{
		typ:          TypeLegacy,
		gasPriceCoef: gasPriceCoef,
	}
}

// DynamicFee returns a fee capped at [maxFeePerGas] per unit of gas of which
// at most [maxPriorityFeePerGas] is paid as a tip. Nil arguments mean zero.
func DynamicFee(maxFeePerGas, maxPriorityFeePerGas *uint256.Int) Fee {
	f := Fee{typ: TypeDynamicFee}
	if maxFeePerGas != nil {
		f.maxFeePerGas = *maxFeePerGas
	}
	if maxPriorityFeePerGas != nil {
		f.maxPriorityFeePerGas = *maxPriorityFeePerGas
	}
	return f
}

func (f Fee) Type() Type {
	return f.typ
}

// GasPriceCoef is 0 for dynamic fees.
func (f Fee) GasPriceCoef() uint8 {
	return f.gasPriceCoef
}

// MaxFeePerGas is nil for legacy fees.
func (f Fee) MaxFeePerGas() *uint256.Int {
	if f.typ != TypeDynamicFee {
		return nil
	}
	return f.maxFeePerGas.Clone()
}

// MaxPriorityFeePerGas is nil for legacy fees.
func (f Fee) MaxPriorityFeePerGas() *uint256.Int {
	if f.typ != TypeDynamicFee {
		return nil
	}
	return f.maxPriorityFeePerGas.Clone()
}

func (f Fee) Equal(o Fee) bool {
	return f.typ == o.typ &&
		f.gasPriceCoef == o.gasPriceCoef &&
		f.maxFeePerGas.Eq(&o.maxFeePerGas) &&
		f.maxPriorityFeePerGas.Eq(&o.maxPriorityFeePerGas)
}

func (f Fee) String() string {
	if f.typ == TypeDynamicFee {
		return fmt.Sprintf("dynamic(maxFeePerGas=%s, maxPriorityFeePerGas=%s)", f.maxFeePerGas.ToBig(), f.maxPriorityFeePerGas.ToBig())
	}
	return fmt.Sprintf("legacy(gasPriceCoef=%d)", f.gasPriceCoef)
}
