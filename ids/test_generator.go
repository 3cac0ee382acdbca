// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import "sync/atomic"

var offset = uint64(0)

// GenerateTestID returns a new ID that should only be used for testing
func GenerateTestID() ID {
	return Empty.Prefix(atomic.AddUint64(&offset, 1))
}

// GenerateTestAddress returns a new Address that should only be used for
// testing
func GenerateTestAddress() Address {
	var addr Address
	id := GenerateTestID()
	copy(addr[:], id[:AddressLen])
	return addr
}
