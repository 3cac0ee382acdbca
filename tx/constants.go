// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"fmt"

	"github.com/thor-tools/txkit/utils/crypto/secp256k1"
)

const (
	// TxGas is charged once per transaction.
	TxGas uint64 = 5000
	// ClauseGas is charged for every clause with a recipient.
	ClauseGas uint64 = 16000
	// ClauseGasContractCreation is charged for every clause without a
	// recipient.
	ClauseGasContractCreation uint64 = 48000
	// ZeroGasData is charged for every zero byte of clause data.
	ZeroGasData uint64 = 4
	// NonZeroGasData is charged for every non-zero byte of clause data.
	NonZeroGasData uint64 = 68
)

const (
	// SignatureLen is the length of a single party signature.
	SignatureLen = secp256k1.SignatureLen
	// DelegatedSignatureLen is the length of a complete sender and gas payer
	// signature.
	DelegatedSignatureLen = 2 * SignatureLen

	blockRefLen = 8
)

// Type identifies the fee model of a transaction and selects its wire layout.
type Type uint8

const (
	TypeLegacy     Type = 0x00
	TypeDynamicFee Type = 0x51
)

func (t Type) String() string {
	switch t {
	case TypeLegacy:
		return "legacy"
	case TypeDynamicFee:
		return "dynamicFee"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(t))
	}
}
