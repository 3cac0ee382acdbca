// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/thor-tools/txkit/utils/hashing"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestIsValidPrivateKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected bool
	}{
		{
			name:     "valid",
			key:      "7582be841ca040aa940fff6c05773129e135623e41acce3e0b8ba520dc1ae26a",
			expected: true,
		},
		{
			name: "zero",
			key:  "0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name: "curve order",
			key:  "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		},
		{
			name:     "curve order minus one",
			key:      "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
			expected: true,
		},
		{
			name: "too short",
			key:  "7582be841ca040aa940fff6c05773129e135623e41acce3e0b8ba520dc1ae2",
		},
		{
			name: "too long",
			key:  "7582be841ca040aa940fff6c05773129e135623e41acce3e0b8ba520dc1ae26a00",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			b := mustDecodeHex(t, test.key)
			require.Equal(test.expected, IsValidPrivateKey(b))

			_, err := ToPrivateKey(b)
			if test.expected {
				require.NoError(err)
			} else {
				require.ErrorIs(err, ErrInvalidPrivateKey)
			}
		})
	}
}

func TestSignHashKnownVector(t *testing.T) {
	require := require.New(t)

	key := TestKeys()[0]
	require.Equal("0xd989829d88b0ed1b06edf5c50174ecfa64f14a64", key.Address().Hex())

	hash := mustDecodeHex(t, "2a1c25ce0d66f45276a5f308b99bf410e2fc7d5b6ea37a49f2ab9f1da9446478")
	sig, err := key.SignHash(hash)
	require.NoError(err)
	require.Equal(
		"f76f3c91a834165872aa9464fc55b03a13f46ea8d3b858e528fcceaf371ad6884193c3f313ff8effbb57fe4d1adc13dceb933bedbf9dbb528d2936203d5511df00",
		hex.EncodeToString(sig),
	)

	addr, err := RecoverAddress(hash, sig)
	require.NoError(err)
	require.Equal(key.Address(), addr)
	require.True(key.PublicKey().VerifyHash(hash, sig))
	require.False(TestKeys()[1].PublicKey().VerifyHash(hash, sig))
}

func TestSignHashInvalidHashLen(t *testing.T) {
	key := TestKeys()[0]
	_, err := key.SignHash([]byte{1, 2, 3})
	require.ErrorIs(t, err, hashing.ErrInvalidHashLen)
}

func TestRecoverPublicKeyErrors(t *testing.T) {
	key := TestKeys()[1]
	hash := hashing.ComputeBlake2b256([]byte("txkit"))
	sig, err := key.SignHash(hash)
	require.NoError(t, err)

	mutated := make([]byte, SignatureLen)
	copy(mutated, sig)
	var s secp256k1.ModNScalar
	s.SetByteSlice(sig[32:64])
	s.Negate()
	sBytes := s.Bytes()
	copy(mutated[32:64], sBytes[:])
	mutated[64] ^= 1

	badRecovery := make([]byte, SignatureLen)
	copy(badRecovery, sig)
	badRecovery[64] = 2

	tests := []struct {
		name        string
		hash        []byte
		sig         []byte
		expectedErr error
	}{
		{
			name:        "short signature",
			hash:        hash,
			sig:         sig[:64],
			expectedErr: ErrInvalidSigLen,
		},
		{
			name:        "high s",
			hash:        hash,
			sig:         mutated,
			expectedErr: ErrMutatedSig,
		},
		{
			name:        "bad recovery id",
			hash:        hash,
			sig:         badRecovery,
			expectedErr: ErrInvalidRecoveryID,
		},
		{
			name:        "short hash",
			hash:        hash[:31],
			sig:         sig,
			expectedErr: hashing.ErrInvalidHashLen,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := RecoverPublicKey(test.hash, test.sig)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestPublicKeyBytes(t *testing.T) {
	require := require.New(t)

	key := TestKeys()[4]
	pkBytes := key.PublicKey().Bytes()
	require.Len(pkBytes, PublicKeyLen)
	require.Equal(byte(0x04), pkBytes[0])
	// generator point
	require.Equal(
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		hex.EncodeToString(pkBytes[1:33]),
	)
	require.Equal("0x7e5f4552091a69125d5dfcb7b8c2659029395bdf", key.Address().Hex())
}

func TestNewPrivateKey(t *testing.T) {
	require := require.New(t)

	key, err := NewPrivateKey()
	require.NoError(err)
	require.True(IsValidPrivateKey(key.Bytes()))

	parsed, err := ToPrivateKey(key.Bytes())
	require.NoError(err)
	require.Equal(key.Address(), parsed.Address())
}

func TestPrivateKeyZero(t *testing.T) {
	require := require.New(t)

	b := mustDecodeHex(t, "40de805e918403683fb9a6081c3fba072cdc5c88232c62a9509165122488dab7")
	key, err := ToPrivateKey(b)
	require.NoError(err)
	require.Equal("0xa0dfd306598a627e8a5512647ce2b7282d1a2df5", key.Address().Hex())

	key.Zero()
	require.Equal(make([]byte, PrivateKeyLen), key.Bytes())
	// the caller's slice is left alone
	require.Equal(byte(0x40), b[0])
}
