// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/utils/hashing"
)

// SigningHash returns the blake2b-256 hash of the unsigned encoding of
// [body], type prefix included. This is what the sender signs.
func SigningHash(body *Body) (ids.ID, error) {
	b, err := Encode(body, nil)
	if err != nil {
		return ids.Empty, err
	}
	return hashing.ComputeBlake2b256Array(b), nil
}

// ComputeID returns the id of a transaction with [signingHash] sent by
// [origin].
func ComputeID(signingHash ids.ID, origin ids.Address) ids.ID {
	return hashing.ComputeBlake2b256Array(signingHash[:], origin[:])
}

// GasPayerHash returns the hash the gas payer signs to sponsor the
// transaction with [signingHash] sent by [origin]. It equals the transaction
// id.
func GasPayerHash(signingHash ids.ID, origin ids.Address) ids.ID {
	return ComputeID(signingHash, origin)
}
