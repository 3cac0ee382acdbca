// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"

	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/utils/wrappers"
)

var (
	errNegative = errors.New("must not be negative")
	errTooLarge = errors.New("exceeds 256 bits")

	_ json.Marshaler   = (*Body)(nil)
	_ json.Unmarshaler = (*Body)(nil)
	_ json.Marshaler   = (*Tx)(nil)
)

// ClauseJSON is the loosely typed form of a clause accepted from callers.
type ClauseJSON struct {
	To    *string               `json:"to"`
	Value *math.HexOrDecimal256 `json:"value"`
	Data  string                `json:"data"`
}

type ReservedJSON struct {
	Features uint32          `json:"features,omitempty"`
	Unused   []hexutil.Bytes `json:"unused,omitempty"`
}

// BodyJSON is the loosely typed form of a transaction body. At most one fee
// model may be given. Without any fee field the legacy model with a zero
// coefficient applies.
type BodyJSON struct {
	ChainTag             uint8                 `json:"chainTag"`
	BlockRef             string                `json:"blockRef"`
	Expiration           uint32                `json:"expiration"`
	Clauses              []ClauseJSON          `json:"clauses"`
	GasPriceCoef         *uint8                `json:"gasPriceCoef,omitempty"`
	MaxFeePerGas         *math.HexOrDecimal256 `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *math.HexOrDecimal256 `json:"maxPriorityFeePerGas,omitempty"`
	Gas                  math.HexOrDecimal64   `json:"gas"`
	DependsOn            *string               `json:"dependsOn"`
	Nonce                math.HexOrDecimal64   `json:"nonce"`
	Reserved             *ReservedJSON         `json:"reserved,omitempty"`
}

// TxJSON is the formatted view of a transaction. Derived fields are omitted
// while unavailable.
type TxJSON struct {
	ID        *ids.ID      `json:"id,omitempty"`
	Type      Type         `json:"type"`
	Origin    *ids.Address `json:"origin,omitempty"`
	Delegator *ids.Address `json:"delegator,omitempty"`
	Size      int          `json:"size"`
	BodyJSON
	IntrinsicGas uint64        `json:"intrinsicGas"`
	Signature    hexutil.Bytes `json:"signature,omitempty"`
}

// ParseClause validates [c]. Malformed input is reported as
// ErrInvalidField.
func ParseClause(c *ClauseJSON) (Clause, error) {
	return parseClause(c, "clause", invalidField)
}

// ParseBody validates [j] and builds the body it describes. Malformed input
// is reported as ErrInvalidField.
func ParseBody(j *BodyJSON) (*Body, error) {
	errs := wrappers.Errs{}

	blockRef, err := parseBlockRef(j.BlockRef)
	errs.Add(err)
	clauses, err := parseClauses(j.Clauses, invalidField)
	errs.Add(err)
	fee, err := parseFee(j)
	errs.Add(err)
	dependsOn, err := parseDependsOn(j.DependsOn)
	errs.Add(err)
	reserved, err := parseReserved(j.Reserved)
	errs.Add(err)
	if errs.Errored() {
		return nil, errs.Err
	}

	return &Body{
		ChainTag:   j.ChainTag,
		BlockRef:   blockRef,
		Expiration: j.Expiration,
		Clauses:    clauses,
		Fee:        fee,
		Gas:        uint64(j.Gas),
		DependsOn:  dependsOn,
		Nonce:      uint64(j.Nonce),
		Reserved:   reserved,
	}, nil
}

// IntrinsicGasOfJSON validates [clauses] and returns their intrinsic gas.
// Malformed input is reported as ErrInvalidDataType.
func IntrinsicGasOfJSON(clauses []ClauseJSON) (uint64, error) {
	parsed, err := parseClauses(clauses, invalidDataType)
	if err != nil {
		return 0, err
	}
	return IntrinsicGas(parsed...)
}

// JSON returns the loosely typed form of [b].
func (b *Body) JSON() BodyJSON {
	j := BodyJSON{
		ChainTag:   b.ChainTag,
		BlockRef:   b.BlockRef.String(),
		Expiration: b.Expiration,
		Clauses:    make([]ClauseJSON, len(b.Clauses)),
		Gas:        math.HexOrDecimal64(b.Gas),
		Nonce:      math.HexOrDecimal64(b.Nonce),
	}
	for i := range b.Clauses {
		j.Clauses[i] = b.Clauses[i].JSON()
	}
	switch b.Fee.Type() {
	case TypeDynamicFee:
		j.MaxFeePerGas = (*math.HexOrDecimal256)(b.Fee.maxFeePerGas.ToBig())
		j.MaxPriorityFeePerGas = (*math.HexOrDecimal256)(b.Fee.maxPriorityFeePerGas.ToBig())
	default:
		coef := b.Fee.gasPriceCoef
		j.GasPriceCoef = &coef
	}
	if b.DependsOn != nil {
		dependsOn := b.DependsOn.String()
		j.DependsOn = &dependsOn
	}
	if !b.Reserved.IsEmpty() {
		j.Reserved = &ReservedJSON{
			Features: uint32(b.Reserved.Features),
		}
		for _, u := range b.Reserved.Unused {
			j.Reserved.Unused = append(j.Reserved.Unused, hexutil.Bytes(u))
		}
	}
	return j
}

func (b *Body) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.JSON())
}

func (b *Body) UnmarshalJSON(data []byte) error {
	var j BodyJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	parsed, err := ParseBody(&j)
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}

func (c *Clause) JSON() ClauseJSON {
	j := ClauseJSON{
		Value: (*math.HexOrDecimal256)(c.Value.ToBig()),
		Data:  hexutil.Encode(c.Data),
	}
	if c.To != nil {
		to := c.To.String()
		j.To = &to
	}
	return j
}

// JSON returns the formatted view of [t]. Size and Signature follow Bytes,
// so a GasPayerSigned transaction reports its gas payer signature alone.
func (t *Tx) JSON() TxJSON {
	j := TxJSON{
		Type:     t.Type(),
		Size:     t.Size(),
		BodyJSON: t.body.JSON(),
	}
	if id, err := t.ID(); err == nil {
		j.ID = &id
	}
	if origin, err := t.Origin(); err == nil {
		j.Origin = &origin
	}
	if gasPayer, err := t.GasPayer(); err == nil {
		j.Delegator = &gasPayer
	}
	// intrinsic gas of a typed clause list can't overflow for any encodable
	// size
	j.IntrinsicGas, _ = t.IntrinsicGas()
	j.Signature = t.Signature()
	return j
}

func (t *Tx) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.JSON())
}

type errorFunc func(field string, value interface{}, reason string) error

func parseClauses(clauses []ClauseJSON, newErr errorFunc) ([]Clause, error) {
	if len(clauses) == 0 {
		return nil, nil
	}
	parsed := make([]Clause, len(clauses))
	for i := range clauses {
		c, err := parseClause(&clauses[i], fmt.Sprintf("clauses[%d]", i), newErr)
		if err != nil {
			return nil, err
		}
		parsed[i] = c
	}
	return parsed, nil
}

func parseClause(c *ClauseJSON, field string, newErr errorFunc) (Clause, error) {
	var clause Clause
	if c.To != nil {
		to, err := ids.AddressFromString(*c.To)
		if err != nil {
			return clause, newErr(field+".to", *c.To, "invalid address")
		}
		clause.To = &to
	}
	if c.Value != nil {
		value, err := toUint256((*big.Int)(c.Value))
		if err != nil {
			return clause, newErr(field+".value", (*big.Int)(c.Value), err.Error())
		}
		clause.Value = value
	}
	data, err := parseHexData(c.Data)
	if err != nil {
		return clause, newErr(field+".data", c.Data, "invalid hex data")
	}
	if len(data) > 0 {
		clause.Data = data
	}
	return clause, nil
}

// parseHexData accepts hex with or without 0x prefix. The empty string is
// empty data.
func parseHexData(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}

func parseBlockRef(s string) (BlockRef, error) {
	var br BlockRef
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != blockRefLen {
		return br, invalidField("blockRef", s, "expected 0x prefixed 8 byte hex")
	}
	copy(br[:], b)
	return br, nil
}

func parseDependsOn(s *string) (*ids.ID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := ids.FromString(*s)
	if err != nil {
		return nil, invalidField("dependsOn", *s, "expected 0x prefixed 32 byte hex")
	}
	return &id, nil
}

func parseFee(j *BodyJSON) (Fee, error) {
	hasDynamic := j.MaxFeePerGas != nil || j.MaxPriorityFeePerGas != nil
	switch {
	case j.GasPriceCoef != nil && hasDynamic:
		return Fee{}, invalidField("gasPriceCoef", *j.GasPriceCoef, "can't be combined with maxFeePerGas or maxPriorityFeePerGas")
	case j.GasPriceCoef != nil:
		return LegacyFee(*j.GasPriceCoef), nil
	case !hasDynamic:
		return Fee{}, nil
	case j.MaxFeePerGas == nil:
		return Fee{}, invalidField("maxFeePerGas", nil, "required with maxPriorityFeePerGas")
	case j.MaxPriorityFeePerGas == nil:
		return Fee{}, invalidField("maxPriorityFeePerGas", nil, "required with maxFeePerGas")
	}

	maxFeePerGas, err := toUint256((*big.Int)(j.MaxFeePerGas))
	if err != nil {
		return Fee{}, invalidField("maxFeePerGas", (*big.Int)(j.MaxFeePerGas), err.Error())
	}
	maxPriorityFeePerGas, err := toUint256((*big.Int)(j.MaxPriorityFeePerGas))
	if err != nil {
		return Fee{}, invalidField("maxPriorityFeePerGas", (*big.Int)(j.MaxPriorityFeePerGas), err.Error())
	}
	return DynamicFee(&maxFeePerGas, &maxPriorityFeePerGas), nil
}

func parseReserved(j *ReservedJSON) (Reserved, error) {
	var r Reserved
	if j == nil {
		return r, nil
	}
	r.Features = Features(j.Features)
	for _, u := range j.Unused {
		r.Unused = append(r.Unused, []byte(u))
	}
	return r, r.Verify()
}

func toUint256(v *big.Int) (uint256.Int, error) {
	if v.Sign() < 0 {
		return uint256.Int{}, errNegative
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return uint256.Int{}, errTooLarge
	}
	return *u, nil
}
