// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"sort"
	"sync"

	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/utils/crypto/secp256k1"
)

var (
	_ Keychain = (*InMemory)(nil)
	_ Signer   = (*secp256k1.PrivateKey)(nil)
)

// Signer implements functions for a keychain to return its main address and
// to sign a hash
type Signer interface {
	SignHash([]byte) ([]byte, error)
	Address() ids.Address
}

// Keychain maintains a set of addresses together with their corresponding
// signers
type Keychain interface {
	// The returned Signer can provide a signature for [addr]
	Get(addr ids.Address) (Signer, bool)
	// Returns the addresses for which the accessor keeps an associated signer
	Addresses() []ids.Address
}

// InMemory is a Keychain backed by private keys held in process memory.
type InMemory struct {
	lock sync.RWMutex
	keys map[ids.Address]*secp256k1.PrivateKey
}

func New(keys ...*secp256k1.PrivateKey) *InMemory {
	kc := &InMemory{
		keys: make(map[ids.Address]*secp256k1.PrivateKey, len(keys)),
	}
	for _, key := range keys {
		kc.Add(key)
	}
	return kc
}

// Add a new key to the key chain. If a key for the same address is already
// present, it is replaced.
func (kc *InMemory) Add(key *secp256k1.PrivateKey) {
	kc.lock.Lock()
	defer kc.lock.Unlock()

	kc.keys[key.Address()] = key
}

func (kc *InMemory) Get(addr ids.Address) (Signer, bool) {
	kc.lock.RLock()
	defer kc.lock.RUnlock()

	key, ok := kc.keys[addr]
	if !ok {
		return nil, false
	}
	return key, true
}

// Addresses returns the held addresses in ascending byte order.
func (kc *InMemory) Addresses() []ids.Address {
	kc.lock.RLock()
	defer kc.lock.RUnlock()

	addrs := make([]ids.Address, 0, len(kc.keys))
	for addr := range kc.keys {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return addrs[i].Compare(addrs[j]) < 0
	})
	return addrs
}

// Zero wipes every held key and empties the keychain.
func (kc *InMemory) Zero() {
	kc.lock.Lock()
	defer kc.lock.Unlock()

	for addr, key := range kc.keys {
		key.Zero()
		delete(kc.keys, addr)
	}
}
