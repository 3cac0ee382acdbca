// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

const fixtureJSON = `{
	"chainTag": 1,
	"blockRef": "0x00000000aabbccdd",
	"expiration": 32,
	"clauses": [
		{"to": "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", "value": "10000", "data": "0x000000606060"},
		{"to": "0x7567D83b7b8d80ADdCb281A71d54Fc7B3364ffed", "value": "0x4e20", "data": "0x000000606060"}
	],
	"gasPriceCoef": 128,
	"gas": "21000",
	"dependsOn": null,
	"nonce": "12345678"
}`

func hexOrDecimal(v int64) *math.HexOrDecimal256 {
	return (*math.HexOrDecimal256)(big.NewInt(v))
}

func TestParseBodyFixture(t *testing.T) {
	require := require.New(t)

	var j BodyJSON
	require.NoError(json.Unmarshal([]byte(fixtureJSON), &j))

	body, err := ParseBody(&j)
	require.NoError(err)
	require.True(fixtureBody().Equal(body))

	var unmarshalled Body
	require.NoError(json.Unmarshal([]byte(fixtureJSON), &unmarshalled))
	require.True(fixtureBody().Equal(&unmarshalled))
}

func TestParseBodyFee(t *testing.T) {
	coef := uint8(7)

	tests := []struct {
		name        string
		body        BodyJSON
		expected    Fee
		expectedErr error
	}{
		{
			name:     "no fee fields",
			body:     BodyJSON{BlockRef: "0x0000000000000000"},
			expected: LegacyFee(0),
		},
		{
			name: "legacy",
			body: BodyJSON{
				BlockRef:     "0x0000000000000000",
				GasPriceCoef: &coef,
			},
			expected: LegacyFee(coef),
		},
		{
			name: "dynamic",
			body: BodyJSON{
				BlockRef:             "0x0000000000000000",
				MaxFeePerGas:         hexOrDecimal(1_000_000_000),
				MaxPriorityFeePerGas: hexOrDecimal(10),
			},
			expected: DynamicFee(uint256.NewInt(1_000_000_000), uint256.NewInt(10)),
		},
		{
			name: "legacy and dynamic",
			body: BodyJSON{
				BlockRef:             "0x0000000000000000",
				GasPriceCoef:         &coef,
				MaxFeePerGas:         hexOrDecimal(1),
				MaxPriorityFeePerGas: hexOrDecimal(1),
			},
			expectedErr: ErrInvalidField,
		},
		{
			name: "legacy and max fee",
			body: BodyJSON{
				BlockRef:     "0x0000000000000000",
				GasPriceCoef: &coef,
				MaxFeePerGas: hexOrDecimal(1),
			},
			expectedErr: ErrInvalidField,
		},
		{
			name: "only max fee",
			body: BodyJSON{
				BlockRef:     "0x0000000000000000",
				MaxFeePerGas: hexOrDecimal(1),
			},
			expectedErr: ErrInvalidField,
		},
		{
			name: "only max priority fee",
			body: BodyJSON{
				BlockRef:             "0x0000000000000000",
				MaxPriorityFeePerGas: hexOrDecimal(1),
			},
			expectedErr: ErrInvalidField,
		},
		{
			name: "negative max fee",
			body: BodyJSON{
				BlockRef:             "0x0000000000000000",
				MaxFeePerGas:         hexOrDecimal(-1),
				MaxPriorityFeePerGas: hexOrDecimal(1),
			},
			expectedErr: ErrInvalidField,
		},
		{
			name: "max fee above 256 bits",
			body: BodyJSON{
				BlockRef:             "0x0000000000000000",
				MaxFeePerGas:         (*math.HexOrDecimal256)(new(big.Int).Lsh(big.NewInt(1), 256)),
				MaxPriorityFeePerGas: hexOrDecimal(1),
			},
			expectedErr: ErrInvalidField,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			body, err := ParseBody(&test.body)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				return
			}
			require.True(test.expected.Equal(body.Fee), "expected %s got %s", test.expected, body.Fee)
		})
	}
}

func TestParseBodyRejects(t *testing.T) {
	badTo := "0x1234"
	shortID := "0x1234"
	validID := "0x" + signingHash

	tests := []struct {
		name        string
		body        BodyJSON
		expectedErr error
	}{
		{
			name:        "short block ref",
			body:        BodyJSON{BlockRef: "0xaabbccdd"},
			expectedErr: ErrInvalidField,
		},
		{
			name:        "unprefixed block ref",
			body:        BodyJSON{BlockRef: "00000000aabbccdd"},
			expectedErr: ErrInvalidField,
		},
		{
			name: "bad recipient",
			body: BodyJSON{
				BlockRef: "0x00000000aabbccdd",
				Clauses:  []ClauseJSON{{To: &badTo}},
			},
			expectedErr: ErrInvalidField,
		},
		{
			name: "negative value",
			body: BodyJSON{
				BlockRef: "0x00000000aabbccdd",
				Clauses:  []ClauseJSON{{Value: hexOrDecimal(-5)}},
			},
			expectedErr: ErrInvalidField,
		},
		{
			name: "short depends on",
			body: BodyJSON{
				BlockRef:  "0x00000000aabbccdd",
				DependsOn: &shortID,
			},
			expectedErr: ErrInvalidField,
		},
		{
			name: "untrimmed reserved",
			body: BodyJSON{
				BlockRef:  "0x00000000aabbccdd",
				DependsOn: &validID,
				Reserved: &ReservedJSON{
					Features: 1,
					Unused:   []hexutil.Bytes{{1}, {}},
				},
			},
			expectedErr: ErrInvalidField,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseBody(&test.body)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestBodyJSONRoundTrip(t *testing.T) {
	dependsOn := mustID(t, txID)
	delegatedWithDependency := unusedFixtureBody()
	delegatedWithDependency.DependsOn = &dependsOn
	contractCreation := dynamicFixtureBody()
	contractCreation.Clauses = append(contractCreation.Clauses, NewClause(nil, nil, []byte{0x60}))

	tests := []struct {
		name string
		body *Body
	}{
		{
			name: "legacy",
			body: fixtureBody(),
		},
		{
			name: "delegated with dependency",
			body: delegatedWithDependency,
		},
		{
			name: "dynamic fee contract creation",
			body: contractCreation,
		},
		{
			name: "empty",
			body: &Body{},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			b, err := json.Marshal(test.body)
			require.NoError(err)

			var parsed Body
			require.NoError(json.Unmarshal(b, &parsed))
			require.True(test.body.Equal(&parsed))
		})
	}
}

func TestTxJSON(t *testing.T) {
	require := require.New(t)

	signed, err := SignAsSenderAndGasPayer(delegatedFixtureBody(), senderKey.Bytes(), gasPayerKey.Bytes())
	require.NoError(err)

	b, err := json.Marshal(signed)
	require.NoError(err)

	var fields map[string]interface{}
	require.NoError(json.Unmarshal(b, &fields))
	require.Equal(delegatedTxID, fields["id"])
	require.Equal(senderKey.Address().String(), fields["origin"])
	require.Equal(gasPayerKey.Address().String(), fields["delegator"])
	require.Equal("0x"+delegatedSignature, fields["signature"])
	require.Equal(float64(fixtureIntrinsicGas), fields["intrinsicGas"])
	require.Equal(float64(len(delegatedEncodedSigned)/2), fields["size"])
	require.Equal("0x00000000aabbccdd", fields["blockRef"])

	unsigned, err := New(fixtureBody(), nil)
	require.NoError(err)
	j := unsigned.JSON()
	require.Nil(j.ID)
	require.Nil(j.Origin)
	require.Nil(j.Delegator)
	require.Empty(j.Signature)
}
