// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"fmt"
	"sync"

	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/utils/crypto/secp256k1"
	"github.com/thor-tools/txkit/utils/hashing"
)

// SignatureState reports which signatures a transaction carries.
type SignatureState uint8

const (
	Unsigned SignatureState = iota
	// SenderSigned is the intermediate state of a delegated transaction
	// carrying only the sender signature.
	SenderSigned
	// GasPayerSigned is the intermediate state of a delegated transaction
	// carrying only the gas payer signature. It can't be told apart from
	// SenderSigned once encoded.
	GasPayerSigned
	Signed
)

func (s SignatureState) String() string {
	switch s {
	case Unsigned:
		return "unsigned"
	case SenderSigned:
		return "senderSigned"
	case GasPayerSigned:
		return "gasPayerSigned"
	case Signed:
		return "signed"
	default:
		return "unknown"
	}
}

// Tx is an immutable transaction. Signing returns a new Tx.
type Tx struct {
	body        Body
	senderSig   []byte
	gasPayerSig []byte
	// sponsored is the sender the gas payer signed for while the sender
	// signature is missing.
	sponsored *ids.Address

	bytesOnce sync.Once
	bytes     []byte

	hashOnce    sync.Once
	signingHash ids.ID

	originOnce sync.Once
	origin     ids.Address
	originErr  error
}

// New returns a transaction of [body] carrying [signature]. A single
// signature on a delegated body is taken to be the sender's. Neither argument
// is retained.
func New(body *Body, signature []byte) (*Tx, error) {
	if err := body.Verify(); err != nil {
		return nil, err
	}
	if err := verifySignatureLen(body.IsDelegated(), len(signature)); err != nil {
		return nil, err
	}

	var senderSig, gasPayerSig []byte
	switch len(signature) {
	case SignatureLen:
		senderSig = copyBytes(signature)
	case DelegatedSignatureLen:
		senderSig = copyBytes(signature[:SignatureLen])
		gasPayerSig = copyBytes(signature[SignatureLen:])
	}
	return newTx(body.Copy(), senderSig, gasPayerSig), nil
}

// Parse decodes a transaction from its canonical encoding.
func Parse(b []byte, hasSignature bool) (*Tx, error) {
	body, signature, err := Decode(b, hasSignature)
	if err != nil {
		return nil, err
	}
	return New(body, signature)
}

// newTx takes ownership of its arguments.
func newTx(body Body, senderSig, gasPayerSig []byte) *Tx {
	return &Tx{
		body:        body,
		senderSig:   senderSig,
		gasPayerSig: gasPayerSig,
	}
}

// Body returns a copy of the transaction body.
func (t *Tx) Body() Body {
	return t.body.Copy()
}

func (t *Tx) Type() Type {
	return t.body.Type()
}

func (t *Tx) IsDelegated() bool {
	return t.body.IsDelegated()
}

func (t *Tx) SignatureState() SignatureState {
	switch {
	case t.senderSig == nil && t.gasPayerSig == nil:
		return Unsigned
	case !t.IsDelegated(), t.senderSig != nil && t.gasPayerSig != nil:
		return Signed
	case t.senderSig != nil:
		return SenderSigned
	default:
		return GasPayerSigned
	}
}

// IsSigned returns true if the transaction carries every signature its
// delegation mode requires.
func (t *Tx) IsSigned() bool {
	return t.SignatureState() == Signed
}

// Signature returns the sender signature followed by the gas payer
// signature. It is nil if the transaction is unsigned.
//
// In the GasPayerSigned state only the gas payer signature is returned. The
// wire format can't tell it apart from a sender signature, so it should be
// passed to the sender out of band rather than through Bytes and Parse.
func (t *Tx) Signature() []byte {
	if t.senderSig == nil && t.gasPayerSig == nil {
		return nil
	}
	sig := make([]byte, 0, len(t.senderSig)+len(t.gasPayerSig))
	sig = append(sig, t.senderSig...)
	return append(sig, t.gasPayerSig...)
}

// Bytes returns the canonical encoding, signature included. It is assumed
// the result is not modified. A GasPayerSigned transaction encodes its lone
// signature in the sender's slot, so Parse reads it back as SenderSigned
// with a meaningless origin.
func (t *Tx) Bytes() []byte {
	t.bytesOnce.Do(func() {
		t.bytes = encode(&t.body, t.Signature())
	})
	return t.bytes
}

// UnsignedBytes returns the canonical encoding without signature.
func (t *Tx) UnsignedBytes() []byte {
	return encode(&t.body, nil)
}

// Size is the length of the canonical encoding.
func (t *Tx) Size() int {
	return len(t.Bytes())
}

func (t *Tx) SigningHash() ids.ID {
	t.hashOnce.Do(func() {
		t.signingHash = hashing.ComputeBlake2b256Array(t.UnsignedBytes())
	})
	return t.signingHash
}

// ID returns the transaction id. It is only available once the transaction
// is signed.
func (t *Tx) ID() (ids.ID, error) {
	if !t.IsSigned() {
		return ids.Empty, fmt.Errorf("%w: id of %s transaction", ErrUnavailable, t.SignatureState())
	}
	origin, err := t.Origin()
	if err != nil {
		return ids.Empty, err
	}
	return ComputeID(t.SigningHash(), origin), nil
}

// Origin returns the address that signed as sender. It is available as soon
// as the sender signature is present.
func (t *Tx) Origin() (ids.Address, error) {
	if t.senderSig == nil {
		return ids.EmptyAddress, fmt.Errorf("%w: origin of %s transaction", ErrUnavailable, t.SignatureState())
	}
	t.originOnce.Do(func() {
		hash := t.SigningHash()
		t.origin, t.originErr = secp256k1.RecoverAddress(hash[:], t.senderSig)
		if t.originErr != nil {
			t.originErr = &FieldError{
				Field:  "signature",
				Reason: "couldn't recover sender",
				Err:    ErrInvalidField,
				Cause:  t.originErr,
			}
		}
	})
	return t.origin, t.originErr
}

// GasPayer returns the address that signed as gas payer.
func (t *Tx) GasPayer() (ids.Address, error) {
	if !t.IsDelegated() {
		return ids.EmptyAddress, ErrNotDelegated
	}
	if !t.IsSigned() {
		return ids.EmptyAddress, fmt.Errorf("%w: gas payer of %s transaction", ErrUnavailable, t.SignatureState())
	}
	origin, err := t.Origin()
	if err != nil {
		return ids.EmptyAddress, err
	}
	hash := GasPayerHash(t.SigningHash(), origin)
	gasPayer, err := secp256k1.RecoverAddress(hash[:], t.gasPayerSig)
	if err != nil {
		return ids.EmptyAddress, &FieldError{
			Field:  "signature",
			Reason: "couldn't recover gas payer",
			Err:    ErrInvalidField,
			Cause:  err,
		}
	}
	return gasPayer, nil
}

func (t *Tx) IntrinsicGas() (uint64, error) {
	return t.body.IntrinsicGas()
}

func copyBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}
