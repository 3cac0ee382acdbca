// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDString(t *testing.T) {
	require := require.New(t)

	id := ID{0xda, 0x90}
	require.Equal("0xda90000000000000000000000000000000000000000000000000000000000000", id.String())
	require.Equal(id.String(), id.Hex())

	parsed, err := FromString(id.String())
	require.NoError(err)
	require.Equal(id, parsed)
}

func TestFromStringErrors(t *testing.T) {
	tests := []struct {
		name  string
		idStr string
	}{
		{
			name:  "missing prefix",
			idStr: "da90000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:  "too short",
			idStr: "0xda90",
		},
		{
			name:  "not hex",
			idStr: "0xzz90000000000000000000000000000000000000000000000000000000000000",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := FromString(test.idStr)
			require.ErrorIs(t, err, ErrInvalidID)
		})
	}
}

func TestIDMarshalJSON(t *testing.T) {
	require := require.New(t)

	id := GenerateTestID()
	b, err := json.Marshal(id)
	require.NoError(err)
	require.Equal(`"`+id.String()+`"`, string(b))

	var parsed ID
	require.NoError(json.Unmarshal(b, &parsed))
	require.Equal(id, parsed)

	unchanged := parsed
	require.NoError(parsed.UnmarshalJSON([]byte("null")))
	require.Equal(unchanged, parsed)

	require.ErrorIs(parsed.UnmarshalJSON([]byte("0x00")), errMissingQuotes)
}

func TestIDPrefix(t *testing.T) {
	require := require.New(t)

	id := GenerateTestID()
	require.Equal(id.Prefix(1), id.Prefix(1))
	require.NotEqual(id.Prefix(1), id.Prefix(2))
	require.NotEqual(id, id.Prefix())
}

func TestIDCompare(t *testing.T) {
	require := require.New(t)

	require.Zero(ID{1}.Compare(ID{1}))
	require.Negative(ID{1}.Compare(ID{2}))
	require.Positive(ID{2}.Compare(ID{1}))
}
