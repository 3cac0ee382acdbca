// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/tx"
)

const storageABIJSON = `[{
	"type": "function",
	"name": "set",
	"stateMutability": "payable",
	"inputs": [{"name": "x", "type": "uint256"}],
	"outputs": []
}]`

var (
	token = ids.Address{0x01, 0x02}
	alice = ids.Address{0xaa}
	bob   = ids.Address{0xbb}
)

func word(s string) string {
	return strings.Repeat("0", 64-len(s)) + s
}

func TestTransfer(t *testing.T) {
	require := require.New(t)

	c := Transfer(bob, uint256.NewInt(1000))
	require.Equal(bob, *c.To)
	require.Equal(uint64(1000), c.Value.Uint64())
	require.Empty(c.Data)
	require.False(c.IsCreatingContract())
}

func TestTransferToken(t *testing.T) {
	require := require.New(t)

	c, err := TransferToken(token, bob, uint256.NewInt(0x2710))
	require.NoError(err)
	require.Equal(token, *c.To)
	require.True(c.Value.IsZero())
	require.Equal(
		"a9059cbb"+word(hex.EncodeToString(bob[:]))+word("2710"),
		hex.EncodeToString(c.Data),
	)
}

func TestTransferNFT(t *testing.T) {
	require := require.New(t)

	c, err := TransferNFT(token, alice, bob, uint256.NewInt(7))
	require.NoError(err)
	require.Equal(token, *c.To)
	require.Equal(
		"23b872dd"+word(hex.EncodeToString(alice[:]))+word(hex.EncodeToString(bob[:]))+word("7"),
		hex.EncodeToString(c.Data),
	)

	_, err = TransferNFT(ids.EmptyAddress, alice, bob, uint256.NewInt(7))
	require.ErrorIs(err, tx.ErrInvalidDataType)
}

func TestDeploy(t *testing.T) {
	require := require.New(t)

	uint256Type, err := abi.NewType("uint256", "", nil)
	require.NoError(err)
	args := abi.Arguments{{Name: "initial", Type: uint256Type}}
	bytecode := []byte{0x60, 0x80, 0x60, 0x40}

	c, err := Deploy(bytecode, args, big.NewInt(5))
	require.NoError(err)
	require.True(c.IsCreatingContract())
	require.Equal("60806040"+word("5"), hex.EncodeToString(c.Data))

	_, err = Deploy(bytecode, args, "not a number")
	require.ErrorIs(err, tx.ErrInvalidDataType)

	_, err = Deploy(nil, nil)
	require.ErrorIs(err, tx.ErrInvalidDataType)
}

func TestCall(t *testing.T) {
	require := require.New(t)

	storageABI, err := abi.JSON(strings.NewReader(storageABIJSON))
	require.NoError(err)

	c, err := Call(token, storageABI, "set", uint256.NewInt(3), big.NewInt(42))
	require.NoError(err)
	require.Equal(uint64(3), c.Value.Uint64())
	require.Equal("60fe47b1"+word("2a"), hex.EncodeToString(c.Data))

	_, err = Call(token, storageABI, "get", nil)
	require.ErrorIs(err, tx.ErrInvalidDataType)
}
