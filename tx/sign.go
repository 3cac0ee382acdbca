// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"fmt"

	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/utils/crypto/secp256k1"
)

var _ HashSigner = (*secp256k1.PrivateKey)(nil)

// Sign returns [body] signed by [privateKey]. [body] must not be delegated.
func Sign(body *Body, privateKey []byte) (*Tx, error) {
	t, err := New(body, nil)
	if err != nil {
		return nil, err
	}
	return t.Sign(privateKey)
}

// SignAsSender returns the delegated [body] carrying only the signature of
// [senderKey].
func SignAsSender(body *Body, senderKey []byte) (*Tx, error) {
	t, err := New(body, nil)
	if err != nil {
		return nil, err
	}
	return t.SignAsSender(senderKey)
}

// SignAsGasPayer returns the delegated [body] carrying only the signature of
// [gasPayerKey] sponsoring [sender]. Use (*Tx).SignAsGasPayer to complete a
// transaction the sender already signed.
func SignAsGasPayer(sender ids.Address, body *Body, gasPayerKey []byte) (*Tx, error) {
	t, err := New(body, nil)
	if err != nil {
		return nil, err
	}
	return t.SignAsGasPayer(sender, gasPayerKey)
}

// SignAsSenderAndGasPayer returns the delegated [body] signed by both
// parties.
func SignAsSenderAndGasPayer(body *Body, senderKey, gasPayerKey []byte) (*Tx, error) {
	t, err := New(body, nil)
	if err != nil {
		return nil, err
	}
	return t.SignAsSenderAndGasPayer(senderKey, gasPayerKey)
}

// HashSigner produces recoverable signatures over 32 byte hashes.
type HashSigner interface {
	SignHash(hash []byte) ([]byte, error)
	Address() ids.Address
}

func (t *Tx) Sign(privateKey []byte) (*Tx, error) {
	key, err := toPrivateKey("private key", privateKey)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	return t.SignWith(key)
}

func (t *Tx) SignAsSender(senderKey []byte) (*Tx, error) {
	key, err := toPrivateKey("sender key", senderKey)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	return t.SignAsSenderWith(key)
}

// SignAsGasPayer adds the signature of [gasPayerKey] sponsoring [sender]. If
// the sender signature is already present it must belong to [sender].
func (t *Tx) SignAsGasPayer(sender ids.Address, gasPayerKey []byte) (*Tx, error) {
	key, err := toPrivateKey("gas payer key", gasPayerKey)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	return t.SignAsGasPayerWith(sender, key)
}

func (t *Tx) SignAsSenderAndGasPayer(senderKey, gasPayerKey []byte) (*Tx, error) {
	sender, err := toPrivateKey("sender key", senderKey)
	if err != nil {
		return nil, err
	}
	defer sender.Zero()

	gasPayer, err := toPrivateKey("gas payer key", gasPayerKey)
	if err != nil {
		return nil, err
	}
	defer gasPayer.Zero()

	switch {
	case !t.IsDelegated():
		return nil, fmt.Errorf("%w: use Sign instead", ErrNotDelegated)
	case t.SignatureState() != Unsigned:
		return nil, ErrAlreadySigned
	}

	signingHash := t.SigningHash()
	senderSig, err := signHash(sender, signingHash)
	if err != nil {
		return nil, err
	}
	gasPayerSig, err := signHash(gasPayer, GasPayerHash(signingHash, sender.Address()))
	if err != nil {
		return nil, err
	}
	return newTx(t.body, senderSig, gasPayerSig), nil
}

// SignWith returns the transaction signed by [signer]. The transaction must
// not be delegated.
func (t *Tx) SignWith(signer HashSigner) (*Tx, error) {
	switch {
	case t.IsDelegated():
		return nil, fmt.Errorf("%w: sign as sender and gas payer instead", ErrDelegated)
	case t.SignatureState() != Unsigned:
		return nil, ErrAlreadySigned
	}

	sig, err := signHash(signer, t.SigningHash())
	if err != nil {
		return nil, err
	}
	return newTx(t.body, sig, nil), nil
}

// SignAsSenderWith adds the sender signature of [signer] to the delegated
// transaction.
func (t *Tx) SignAsSenderWith(signer HashSigner) (*Tx, error) {
	switch {
	case !t.IsDelegated():
		return nil, fmt.Errorf("%w: use Sign instead", ErrNotDelegated)
	case t.senderSig != nil:
		return nil, ErrAlreadySigned
	}

	signingHash := t.SigningHash()
	sig, err := signHash(signer, signingHash)
	if err != nil {
		return nil, err
	}
	if t.sponsored != nil {
		origin, err := secp256k1.RecoverAddress(signingHash[:], sig)
		if err != nil {
			return nil, invalidField("signature", signer.Address(), err.Error())
		}
		if origin != *t.sponsored {
			return nil, invalidField("sender", origin, fmt.Sprintf("gas payer sponsored %s", *t.sponsored))
		}
	}
	return newTx(t.body, sig, t.gasPayerSig), nil
}

// SignAsGasPayerWith adds the gas payer signature of [signer] sponsoring
// [sender] to the delegated transaction.
func (t *Tx) SignAsGasPayerWith(sender ids.Address, signer HashSigner) (*Tx, error) {
	switch {
	case !t.IsDelegated():
		return nil, fmt.Errorf("%w: use Sign instead", ErrNotDelegated)
	case t.gasPayerSig != nil:
		return nil, ErrAlreadySigned
	}

	if t.senderSig != nil {
		origin, err := t.Origin()
		if err != nil {
			return nil, err
		}
		if origin != sender {
			return nil, invalidField("sender", sender, fmt.Sprintf("transaction was signed by %s", origin))
		}
	}

	sig, err := signHash(signer, GasPayerHash(t.SigningHash(), sender))
	if err != nil {
		return nil, err
	}
	signed := newTx(t.body, t.senderSig, sig)
	if t.senderSig == nil {
		signed.sponsored = &sender
	}
	return signed, nil
}

func signHash(signer HashSigner, hash ids.ID) ([]byte, error) {
	sig, err := signer.SignHash(hash[:])
	if err != nil {
		return nil, err
	}
	if len(sig) != SignatureLen {
		return nil, invalidField("signature", len(sig), fmt.Sprintf("signer of %s returned a malformed signature", signer.Address()))
	}
	return sig, nil
}

func toPrivateKey(role string, b []byte) (*secp256k1.PrivateKey, error) {
	key, err := secp256k1.ToPrivateKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, role)
	}
	return key, nil
}
