// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"github.com/ethereum/go-ethereum/common/math"
)

// IntrinsicGas returns the gas charged for [clauses] before execution. No
// clauses are charged as a single value transfer.
func IntrinsicGas(clauses ...Clause) (uint64, error) {
	if len(clauses) == 0 {
		return TxGas + ClauseGas, nil
	}

	total := TxGas
	for i := range clauses {
		clauseGas := ClauseGas
		if clauses[i].IsCreatingContract() {
			clauseGas = ClauseGasContractCreation
		}

		dataGas, err := dataGas(clauses[i].Data)
		if err != nil {
			return 0, err
		}

		var overflow bool
		if total, overflow = math.SafeAdd(total, clauseGas); overflow {
			return 0, ErrIntrinsicGasOverflow
		}
		if total, overflow = math.SafeAdd(total, dataGas); overflow {
			return 0, ErrIntrinsicGasOverflow
		}
	}
	return total, nil
}

func dataGas(data []byte) (uint64, error) {
	var zeros uint64
	for _, b := range data {
		if b == 0 {
			zeros++
		}
	}
	nonZeros := uint64(len(data)) - zeros

	zeroGas, overflow := math.SafeMul(zeros, ZeroGasData)
	if overflow {
		return 0, ErrIntrinsicGasOverflow
	}
	nonZeroGas, overflow := math.SafeMul(nonZeros, NonZeroGasData)
	if overflow {
		return 0, ErrIntrinsicGasOverflow
	}
	gas, overflow := math.SafeAdd(zeroGas, nonZeroGas)
	if overflow {
		return 0, ErrIntrinsicGasOverflow
	}
	return gas, nil
}
