// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelRoundTrip(t *testing.T) {
	levels := []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo}
	for _, level := range levels {
		t.Run(level.String(), func(t *testing.T) {
			require := require.New(t)

			parsed, err := ToLevel(level.LowerString())
			require.NoError(err)
			require.Equal(level, parsed)

			b, err := json.Marshal(level)
			require.NoError(err)

			var unmarshalled Level
			require.NoError(json.Unmarshal(b, &unmarshalled))
			require.Equal(level, unmarshalled)
		})
	}
}

func TestToLevelUnknown(t *testing.T) {
	_, err := ToLevel("loud")
	require.Error(t, err)
}

func TestLevelOrdering(t *testing.T) {
	require := require.New(t)

	require.Less(Verbo, Debug)
	require.Less(Debug, Trace)
	require.Less(Trace, Info)
	require.Less(Info, Warn)
	require.Less(Warn, Error)
	require.Less(Error, Fatal)
	require.Less(Fatal, Off)
}
