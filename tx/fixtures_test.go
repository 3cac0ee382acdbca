// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/utils/crypto/secp256k1"
)

const (
	encodedClauses = "f840df947567d83b7b8d80addcb281a71d54fc7b3364ffed82271086000000606060df947567d83b7b8d80addcb281a71d54fc7b3364ffed824e2086000000606060"

	encodedUnsigned = "f8540184aabbccdd20" + encodedClauses + "81808252088083bc614ec0"
	signingHash     = "2a1c25ce0d66f45276a5f308b99bf410e2fc7d5b6ea37a49f2ab9f1da9446478"
	signature       = "f76f3c91a834165872aa9464fc55b03a13f46ea8d3b858e528fcceaf371ad6884193c3f313ff8effbb57fe4d1adc13dceb933bedbf9dbb528d2936203d5511df00"
	encodedSigned   = "f8970184aabbccdd20" + encodedClauses + "81808252088083bc614ec0b841" + signature
	txID            = "0xda90eaea52980bc4bb8d40cb2ff84d78433b3b4a6e7d50b75736c5e3e77b71ec"

	delegatedEncodedUnsigned = "f8550184aabbccdd20" + encodedClauses + "81808252088083bc614ec101"
	delegatedSigningHash     = "005fb0b47dfd16b7f2f61bb17df791242bc37ed1fffe9b05fa55fb0fe069f9a3"
	delegatedSignature       = "2cec617320e27c7ddd4058c048328ca7288914a4b9c9a663a0f7673b774b1f2c3e4366ddc5a03724ad9aad72c8805cb7972a927638eee40718e2eb4e580d322d01" +
		"24a1817609f0971ff356b0252958f6c1d8a23b872a14ac1ccaad88c2ce8d3aa535cdfb1d538e557e63735ab86051ecc2f8c5d2aa1cddd4129a23cbced6ab294b00"
	delegatedEncodedSigned = "f8d90184aabbccdd20" + encodedClauses + "81808252088083bc614ec101b882" + delegatedSignature
	delegatedTxID          = "0xd4d1ae152119bd7c9410844e70b82d6d42c15494f1d59b99f5808a90da403a98"

	unusedEncodedUnsigned = "f8610184aabbccdd20" + encodedClauses + "81808252088083bc614ecd01853078303030853078303030"
	unusedSigningHash     = "d6e8f162e3e08585ee8fcf81868e5bd57a59966fef218528339766ee2587726c"
	unusedTxID            = "0xd244b56d0ac6d05e6bb3c48867d3093e86414392d46e20f04ecaf026b6f8d20d"

	dynamicEncodedUnsigned = "51f8580184aabbccdd20" + encodedClauses + "0a843b9aca008252088083bc614ec0"
	dynamicSigningHash     = "5cebe9b423c03d31eba8175fce4e891c4cb92973e1ce7ff284a9958b58e19fcc"
	dynamicSignature       = "60bf49019a6763e4f4ed250638dbbc3a694c4d0ed6fdc4fd2f083652009676332641c6488381f9f8e61b6924bc8d2eca3a063717dc48f745525f0a9f4b11609901"
	dynamicEncodedSigned   = "51f89b0184aabbccdd20" + encodedClauses + "0a843b9aca008252088083bc614ec0b841" + dynamicSignature
	dynamicTxID            = "0x822863f541bd1b20cb7d38e4272ff94ef28cf4e9af1a2b8f9ed32e732c6a1380"

	fixtureIntrinsicGas = 37432
)

var (
	fixtureTo = ids.Address{
		0x75, 0x67, 0xd8, 0x3b, 0x7b, 0x8d, 0x80, 0xad, 0xdc, 0xb2,
		0x81, 0xa7, 0x1d, 0x54, 0xfc, 0x7b, 0x33, 0x64, 0xff, 0xed,
	}
	fixtureData = []byte{0x00, 0x00, 0x00, 0x60, 0x60, 0x60}

	senderKey   = secp256k1.TestKeys()[0]
	gasPayerKey = secp256k1.TestKeys()[1]
)

func fixtureBody() *Body {
	return &Body{
		ChainTag:   1,
		BlockRef:   BlockRefFromUint64(0xaabbccdd),
		Expiration: 32,
		Clauses: []Clause{
			NewClause(&fixtureTo, uint256.NewInt(10000), copyBytes(fixtureData)),
			NewClause(&fixtureTo, uint256.NewInt(20000), copyBytes(fixtureData)),
		},
		Fee:   LegacyFee(128),
		Gas:   21000,
		Nonce: 12345678,
	}
}

func delegatedFixtureBody() *Body {
	body := fixtureBody()
	body.Reserved.Features.SetDelegated(true)
	return body
}

func unusedFixtureBody() *Body {
	body := delegatedFixtureBody()
	body.Reserved.Unused = [][]byte{[]byte("0x000"), []byte("0x000")}
	return body
}

func dynamicFixtureBody() *Body {
	body := fixtureBody()
	body.Fee = DynamicFee(uint256.NewInt(1_000_000_000), uint256.NewInt(10))
	return body
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func mustID(t *testing.T, s string) ids.ID {
	t.Helper()
	id, err := ids.FromString(s)
	require.NoError(t, err)
	return id
}

// encodeFields encodes [fields] as an rlp list. Used to build malformed
// encodings field by field.
func encodeFields(t *testing.T, fields ...interface{}) []byte {
	t.Helper()
	b, err := rlp.EncodeToBytes(fields)
	require.NoError(t, err)
	return b
}

// legacyFields returns the fields of fixtureBody in encoding order.
func legacyFields(t *testing.T) []interface{} {
	return []interface{}{
		uint64(1),
		uint64(0xaabbccdd),
		uint64(32),
		rlp.RawValue(mustHex(t, encodedClauses)),
		uint64(128),
		uint64(21000),
		[]byte{},
		uint64(12345678),
		[]interface{}{},
	}
}

func replaceField(fields []interface{}, i int, v interface{}) []interface{} {
	cpy := append([]interface{}(nil), fields...)
	cpy[i] = v
	return cpy
}
