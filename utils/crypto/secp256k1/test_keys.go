// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import "encoding/hex"

func TestKeys() []*PrivateKey {
	var (
		keyStrings = []string{
			"7582be841ca040aa940fff6c05773129e135623e41acce3e0b8ba520dc1ae26a",
			"40de805e918403683fb9a6081c3fba072cdc5c88232c62a9509165122488dab7",
			"99f0500549792796c14fed62011a51081dc5b5e68fe8bd8a13b86be829c4fd36",
			"f8bd6f8ecf6f7fa6dcbc6e3c7e1d9e9cbfaa1a4a6ac5a45e5ce0d7e6f14e1f7a",
			"0000000000000000000000000000000000000000000000000000000000000001",
		}
		keys = make([]*PrivateKey, len(keyStrings))
	)

	for i, key := range keyStrings {
		privKeyBytes, err := hex.DecodeString(key)
		if err != nil {
			panic(err)
		}

		keys[i], err = ToPrivateKey(privKeyBytes)
		if err != nil {
			panic(err)
		}
	}
	return keys
}
