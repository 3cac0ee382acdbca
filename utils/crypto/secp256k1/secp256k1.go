// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/utils/hashing"
)

const (
	// SignatureLen is the number of bytes in a secp2561k recoverable signature
	SignatureLen = 65

	// PrivateKeyLen is the number of bytes in a secp2561k recoverable private
	// key
	PrivateKeyLen = 32

	// PublicKeyLen is the number of bytes in an uncompressed secp2561k public
	// key
	PublicKeyLen = 65

	// from the decred library:
	// compactSigMagicOffset is a value used when creating the compact signature
	// recovery code inherited from Bitcoin and has no meaning, but has been
	// retained for compatibility.  For historical purposes, it was originally
	// picked to avoid a binary representation that would allow compact
	// signatures to be mistaken for other components.
	compactSigMagicOffset = 27
)

var (
	ErrInvalidPrivateKey = errors.New("invalid secp256k1 private key")
	ErrInvalidSigLen     = errors.New("invalid signature length")
	ErrInvalidRecoveryID = errors.New("invalid signature recovery id")
	ErrMutatedSig        = errors.New("signature was mutated from its original format")
	ErrRecoverFailed     = errors.New("failed to recover public key")

	errCompressed = errors.New("wasn't expecting a compressed key")
)

// IsValidPrivateKey returns true if [b] is a 32 byte scalar in [1, N).
func IsValidPrivateKey(b []byte) bool {
	if len(b) != PrivateKeyLen {
		return false
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	return !overflow && !s.IsZero()
}

func NewPrivateKey() (*PrivateKey, error) {
	k, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &PrivateKey{sk: k}, nil
}

// ToPrivateKey validates [b] and parses it as a private key. [b] is copied.
func ToPrivateKey(b []byte) (*PrivateKey, error) {
	if !IsValidPrivateKey(b) {
		return nil, ErrInvalidPrivateKey
	}
	return &PrivateKey{
		sk:    secp256k1.PrivKeyFromBytes(b),
		bytes: append([]byte(nil), b...),
	}, nil
}

// RecoverPublicKey returns the public key that produced [sig] over [hash].
// [sig] has the format [r || s || v].
func RecoverPublicKey(hash, sig []byte) (*PublicKey, error) {
	if err := verifySignatureFormat(sig); err != nil {
		return nil, err
	}
	if len(hash) != hashing.HashLen {
		return nil, fmt.Errorf("%w: expected %d bytes but got %d", hashing.ErrInvalidHashLen, hashing.HashLen, len(hash))
	}

	rawSig, err := sigToRawSig(sig)
	if err != nil {
		return nil, err
	}

	rawPubkey, compressed, err := ecdsa.RecoverCompact(rawSig, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecoverFailed, err)
	}
	if compressed {
		return nil, errCompressed
	}
	return &PublicKey{pk: rawPubkey}, nil
}

// RecoverAddress returns the address of the key that produced [sig] over
// [hash].
func RecoverAddress(hash, sig []byte) (ids.Address, error) {
	pk, err := RecoverPublicKey(hash, sig)
	if err != nil {
		return ids.Address{}, err
	}
	return pk.Address(), nil
}

type PublicKey struct {
	pk    *secp256k1.PublicKey
	addr  ids.Address
	bytes []byte
}

// VerifyHash returns true if [sig] over [hash] was produced by this key.
func (k *PublicKey) VerifyHash(hash, sig []byte) bool {
	pk, err := RecoverPublicKey(hash, sig)
	if err != nil {
		return false
	}
	return k.Address() == pk.Address()
}

func (k *PublicKey) Address() ids.Address {
	if k.addr == ids.EmptyAddress {
		addr, err := ids.ToAddress(hashing.PubkeyBytesToAddress(k.Bytes()))
		if err != nil {
			panic(err)
		}
		k.addr = addr
	}
	return k.addr
}

// Bytes returns the uncompressed encoding of the key.
func (k *PublicKey) Bytes() []byte {
	if k.bytes == nil {
		k.bytes = k.pk.SerializeUncompressed()
	}
	return k.bytes
}

type PrivateKey struct {
	sk    *secp256k1.PrivateKey
	pk    *PublicKey
	bytes []byte
}

func (k *PrivateKey) PublicKey() *PublicKey {
	if k.pk == nil {
		k.pk = &PublicKey{pk: k.sk.PubKey()}
	}
	return k.pk
}

func (k *PrivateKey) Address() ids.Address {
	return k.PublicKey().Address()
}

// SignHash deterministically signs the 32 byte [hash]. The result has the
// format [r || s || v] with v in {0, 1}.
func (k *PrivateKey) SignHash(hash []byte) ([]byte, error) {
	if len(hash) != hashing.HashLen {
		return nil, fmt.Errorf("%w: expected %d bytes but got %d", hashing.ErrInvalidHashLen, hashing.HashLen, len(hash))
	}
	sig := ecdsa.SignCompact(k.sk, hash, false) // returns [v || r || s]
	return rawSigToSig(sig)
}

func (k *PrivateKey) Bytes() []byte {
	if k.bytes == nil {
		k.bytes = k.sk.Serialize()
	}
	return k.bytes
}

// Zero overwrites the key material. The key must not be used afterwards.
func (k *PrivateKey) Zero() {
	k.sk.Zero()
	for i := range k.bytes {
		k.bytes[i] = 0
	}
	k.bytes = nil
}

// raw sig has format [v || r || s] whereas the sig has format [r || s || v]
func rawSigToSig(sig []byte) ([]byte, error) {
	if len(sig) != SignatureLen {
		return nil, ErrInvalidSigLen
	}
	recCode := sig[0]
	copy(sig, sig[1:])
	sig[SignatureLen-1] = recCode - compactSigMagicOffset
	return sig, nil
}

// sig has format [r || s || v] whereas the raw sig has format [v || r || s]
func sigToRawSig(sig []byte) ([]byte, error) {
	if len(sig) != SignatureLen {
		return nil, ErrInvalidSigLen
	}
	newSig := make([]byte, SignatureLen)
	newSig[0] = sig[SignatureLen-1] + compactSigMagicOffset
	copy(newSig[1:], sig)
	return newSig, nil
}

// verifies the signature format in format [r || s || v]
func verifySignatureFormat(sig []byte) error {
	if len(sig) != SignatureLen {
		return ErrInvalidSigLen
	}
	if sig[SignatureLen-1] > 1 {
		return ErrInvalidRecoveryID
	}

	var s secp256k1.ModNScalar
	s.SetByteSlice(sig[32:64])
	if s.IsOverHalfOrder() {
		return ErrMutatedSig
	}
	return nil
}
