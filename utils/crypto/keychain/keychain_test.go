// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/utils/crypto/secp256k1"
	"github.com/thor-tools/txkit/utils/hashing"
)

func TestInMemoryGet(t *testing.T) {
	require := require.New(t)

	keys := secp256k1.TestKeys()
	kc := New(keys[0], keys[1])

	signer, ok := kc.Get(keys[0].Address())
	require.True(ok)
	require.Equal(keys[0].Address(), signer.Address())

	_, ok = kc.Get(keys[2].Address())
	require.False(ok)

	kc.Add(keys[2])
	_, ok = kc.Get(keys[2].Address())
	require.True(ok)
}

func TestInMemoryAddressesSorted(t *testing.T) {
	require := require.New(t)

	kc := New(secp256k1.TestKeys()...)
	addrs := kc.Addresses()
	require.Len(addrs, len(secp256k1.TestKeys()))
	for i := 1; i < len(addrs); i++ {
		require.Negative(addrs[i-1].Compare(addrs[i]))
	}
}

func TestInMemorySignHash(t *testing.T) {
	require := require.New(t)

	key := secp256k1.TestKeys()[1]
	kc := New(key)
	signer, ok := kc.Get(key.Address())
	require.True(ok)

	hash := hashing.ComputeBlake2b256([]byte("hello"))
	sig, err := signer.SignHash(hash)
	require.NoError(err)

	addr, err := secp256k1.RecoverAddress(hash, sig)
	require.NoError(err)
	require.Equal(key.Address(), addr)
}

func TestInMemoryZero(t *testing.T) {
	require := require.New(t)

	key, err := secp256k1.NewPrivateKey()
	require.NoError(err)
	addr := key.Address()

	kc := New(key)
	kc.Zero()

	require.Empty(kc.Addresses())
	_, ok := kc.Get(addr)
	require.False(ok)
	require.Equal(make([]byte, secp256k1.PrivateKeyLen), key.Bytes())
	require.NotEqual(ids.EmptyAddress, addr)
}
