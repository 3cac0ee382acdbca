// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"

	"github.com/thor-tools/txkit/ids"
)

// rlp list headers start at this byte; anything below it in the first
// position is a type prefix.
const rlpListPrefix = 0xc0

var (
	errEmptyInput       = errors.New("empty input")
	errMissingSignature = errors.New("missing signature")
)

// Encode returns the canonical encoding of [body] followed by [signature].
// An empty [signature] is omitted from the encoding.
func Encode(body *Body, signature []byte) ([]byte, error) {
	if err := body.Verify(); err != nil {
		return nil, err
	}
	if err := verifySignatureLen(body.IsDelegated(), len(signature)); err != nil {
		return nil, err
	}
	return encode(body, signature), nil
}

// encode assumes [body] and [signature] were verified.
func encode(body *Body, signature []byte) []byte {
	w := rlp.NewEncoderBuffer(nil)
	offset := w.List()
	w.WriteUint64(uint64(body.ChainTag))
	w.WriteUint64(body.BlockRef.Uint64())
	w.WriteUint64(uint64(body.Expiration))

	clausesOffset := w.List()
	for i := range body.Clauses {
		encodeClause(w, &body.Clauses[i])
	}
	w.ListEnd(clausesOffset)

	switch body.Fee.Type() {
	case TypeDynamicFee:
		w.WriteBigInt(body.Fee.maxPriorityFeePerGas.ToBig())
		w.WriteBigInt(body.Fee.maxFeePerGas.ToBig())
	default:
		w.WriteUint64(uint64(body.Fee.gasPriceCoef))
	}

	w.WriteUint64(body.Gas)
	if body.DependsOn != nil {
		w.WriteBytes(body.DependsOn[:])
	} else {
		w.WriteBytes(nil)
	}
	w.WriteUint64(body.Nonce)
	body.Reserved.encode(w)

	if len(signature) > 0 {
		w.WriteBytes(signature)
	}
	w.ListEnd(offset)

	b := w.ToBytes()
	_ = w.Flush()
	if body.Type() == TypeDynamicFee {
		return append([]byte{byte(TypeDynamicFee)}, b...)
	}
	return b
}

func encodeClause(w rlp.EncoderBuffer, c *Clause) {
	offset := w.List()
	if c.To != nil {
		w.WriteBytes(c.To[:])
	} else {
		w.WriteBytes(nil)
	}
	w.WriteBigInt(c.Value.ToBig())
	w.WriteBytes(c.Data)
	w.ListEnd(offset)
}

// Decode parses a canonical encoding. If [hasSignature] is true the encoding
// must end with a non-empty signature, which is returned. Every failure
// matches ErrDecode.
func Decode(b []byte, hasSignature bool) (*Body, []byte, error) {
	body, signature, err := decode(b, hasSignature)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return body, signature, nil
}

func decode(b []byte, hasSignature bool) (*Body, []byte, error) {
	if len(b) == 0 {
		return nil, nil, decodeError("transaction", errEmptyInput)
	}

	typ := TypeLegacy
	payload := b
	if b[0] < rlpListPrefix {
		if Type(b[0]) != TypeDynamicFee {
			return nil, nil, invalidField("type", Type(b[0]), "unknown transaction type")
		}
		typ = TypeDynamicFee
		payload = b[1:]
	}

	_, rest, err := rlp.SplitList(payload)
	if err != nil {
		return nil, nil, decodeError("transaction", err)
	}
	if len(rest) != 0 {
		return nil, nil, invalidField("transaction", len(rest), "unexpected trailing bytes")
	}

	s := rlp.NewStream(bytes.NewReader(payload), uint64(len(payload)))
	if _, err := s.List(); err != nil {
		return nil, nil, decodeError("transaction", err)
	}

	body := &Body{}
	if body.ChainTag, err = s.Uint8(); err != nil {
		return nil, nil, decodeError("chainTag", err)
	}
	blockRef, err := s.Uint64()
	if err != nil {
		return nil, nil, decodeError("blockRef", err)
	}
	body.BlockRef = BlockRefFromUint64(blockRef)
	if body.Expiration, err = s.Uint32(); err != nil {
		return nil, nil, decodeError("expiration", err)
	}
	if body.Clauses, err = decodeClauses(s); err != nil {
		return nil, nil, err
	}

	switch typ {
	case TypeDynamicFee:
		maxPriorityFeePerGas, err := decodeUint256(s, "maxPriorityFeePerGas")
		if err != nil {
			return nil, nil, err
		}
		maxFeePerGas, err := decodeUint256(s, "maxFeePerGas")
		if err != nil {
			return nil, nil, err
		}
		body.Fee = DynamicFee(&maxFeePerGas, &maxPriorityFeePerGas)
	default:
		gasPriceCoef, err := s.Uint8()
		if err != nil {
			return nil, nil, decodeError("gasPriceCoef", err)
		}
		body.Fee = LegacyFee(gasPriceCoef)
	}

	if body.Gas, err = s.Uint64(); err != nil {
		return nil, nil, decodeError("gas", err)
	}
	dependsOn, err := s.Bytes()
	if err != nil {
		return nil, nil, decodeError("dependsOn", err)
	}
	switch len(dependsOn) {
	case 0:
	case ids.IDLen:
		id := ids.ID{}
		copy(id[:], dependsOn)
		body.DependsOn = &id
	default:
		return nil, nil, invalidField("dependsOn", hexutil.Bytes(dependsOn), "expected 32 bytes or empty")
	}
	if body.Nonce, err = s.Uint64(); err != nil {
		return nil, nil, decodeError("nonce", err)
	}
	if body.Reserved, err = decodeReserved(s); err != nil {
		return nil, nil, err
	}

	var signature []byte
	if hasSignature {
		signature, err = s.Bytes()
		switch {
		case err == rlp.EOL:
			return nil, nil, decodeError("signature", errMissingSignature)
		case err != nil:
			return nil, nil, decodeError("signature", err)
		case len(signature) == 0:
			return nil, nil, invalidField("signature", nil, "signed encoding carries an empty signature")
		}
		if err := verifySignatureLen(body.IsDelegated(), len(signature)); err != nil {
			return nil, nil, err
		}
	}
	if err := s.ListEnd(); err != nil {
		return nil, nil, decodeError("transaction", err)
	}
	return body, signature, nil
}

func decodeClauses(s *rlp.Stream) ([]Clause, error) {
	if _, err := s.List(); err != nil {
		return nil, decodeError("clauses", err)
	}
	var clauses []Clause
	for i := 0; ; i++ {
		if _, _, err := s.Kind(); err == rlp.EOL {
			break
		} else if err != nil {
			return nil, decodeError("clauses", err)
		}

		clause, err := decodeClause(s, fmt.Sprintf("clauses[%d]", i))
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	if err := s.ListEnd(); err != nil {
		return nil, decodeError("clauses", err)
	}
	return clauses, nil
}

func decodeClause(s *rlp.Stream, field string) (Clause, error) {
	var c Clause
	if _, err := s.List(); err != nil {
		return c, decodeError(field, err)
	}

	to, err := s.Bytes()
	if err != nil {
		return c, decodeError(field+".to", err)
	}
	switch len(to) {
	case 0:
	case ids.AddressLen:
		addr := ids.Address{}
		copy(addr[:], to)
		c.To = &addr
	default:
		return c, invalidField(field+".to", hexutil.Bytes(to), "expected 20 bytes or empty")
	}

	if c.Value, err = decodeUint256(s, field+".value"); err != nil {
		return c, err
	}
	data, err := s.Bytes()
	if err != nil {
		return c, decodeError(field+".data", err)
	}
	if len(data) > 0 {
		c.Data = data
	}

	if err := s.ListEnd(); err != nil {
		return c, decodeError(field, err)
	}
	return c, nil
}

func decodeUint256(s *rlp.Stream, field string) (uint256.Int, error) {
	v, err := s.BigInt()
	if err != nil {
		return uint256.Int{}, decodeError(field, err)
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return uint256.Int{}, invalidField(field, v, "exceeds 256 bits")
	}
	return *u, nil
}

// verifySignatureLen returns an error if no signature state of a
// transaction is [n] bytes long.
func verifySignatureLen(delegated bool, n int) error {
	switch {
	case n == 0, n == SignatureLen:
		return nil
	case n == DelegatedSignatureLen && delegated:
		return nil
	case n == DelegatedSignatureLen:
		return invalidField("signature", n, "a transaction that is not delegated carries a single signature")
	default:
		return invalidField("signature", n, fmt.Sprintf("expected 0, %d or %d bytes", SignatureLen, DelegatedSignatureLen))
	}
}
