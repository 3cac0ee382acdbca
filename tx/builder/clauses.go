// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/tx"
)

const (
	tokenABIJSON = `[{
		"type": "function",
		"name": "transfer",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_to", "type": "address"},
			{"name": "_value", "type": "uint256"}
		],
		"outputs": [{"name": "success", "type": "bool"}]
	}]`

	nftABIJSON = `[{
		"type": "function",
		"name": "transferFrom",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_from", "type": "address"},
			{"name": "_to", "type": "address"},
			{"name": "_tokenId", "type": "uint256"}
		],
		"outputs": []
	}]`
)

var (
	tokenABI = mustParseABI(tokenABIJSON)
	nftABI   = mustParseABI(nftABIJSON)
)

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return parsed
}

// Transfer returns a clause sending [amount] wei of the native coin to [to].
func Transfer(to ids.Address, amount *uint256.Int) tx.Clause {
	return tx.NewClause(&to, amount, nil)
}

// TransferToken returns a clause moving [amount] of the VIP180 token at
// [token] to [to].
func TransferToken(token, to ids.Address, amount *uint256.Int) (tx.Clause, error) {
	return Call(token, tokenABI, "transfer", nil, common.Address(to), toBig(amount))
}

// TransferNFT returns a clause moving the non-fungible token [tokenID] of
// [contract] from [from] to [to].
func TransferNFT(contract, from, to ids.Address, tokenID *uint256.Int) (tx.Clause, error) {
	if contract == ids.EmptyAddress {
		return tx.Clause{}, fmt.Errorf("%w: empty contract address", tx.ErrInvalidDataType)
	}
	return Call(contract, nftABI, "transferFrom", nil, common.Address(from), common.Address(to), toBig(tokenID))
}

// Deploy returns a contract creation clause running [bytecode] with the
// constructor arguments [values] packed as [args].
func Deploy(bytecode []byte, args abi.Arguments, values ...interface{}) (tx.Clause, error) {
	if len(bytecode) == 0 {
		return tx.Clause{}, fmt.Errorf("%w: empty bytecode", tx.ErrInvalidDataType)
	}
	packed, err := args.Pack(values...)
	if err != nil {
		return tx.Clause{}, fmt.Errorf("%w: couldn't pack constructor arguments: %w", tx.ErrInvalidDataType, err)
	}
	data := make([]byte, 0, len(bytecode)+len(packed))
	data = append(data, bytecode...)
	data = append(data, packed...)
	return tx.NewClause(nil, nil, data), nil
}

// Call returns a clause invoking [method] of the contract at [to] described
// by [contractABI], attaching [value] wei.
func Call(to ids.Address, contractABI abi.ABI, method string, value *uint256.Int, args ...interface{}) (tx.Clause, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return tx.Clause{}, fmt.Errorf("%w: couldn't pack call to %q: %w", tx.ErrInvalidDataType, method, err)
	}
	return tx.NewClause(&to, value, data), nil
}

func toBig(v *uint256.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v.ToBig()
}
