// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"bytes"

	"github.com/holiman/uint256"

	"github.com/thor-tools/txkit/ids"
)

// Clause is a single instruction of a transaction. A nil To creates a
// contract from Data.
type Clause struct {
	To    *ids.Address
	Value uint256.Int
	Data  []byte
}

// NewClause returns a clause that sends [value] to [to] with [data].
func NewClause(to *ids.Address, value *uint256.Int, data []byte) Clause {
	c := Clause{Data: data}
	if to != nil {
		addr := *to
		c.To = &addr
	}
	if value != nil {
		c.Value = *value
	}
	return c
}

func (c *Clause) IsCreatingContract() bool {
	return c.To == nil
}

// Copy returns a clause that shares no memory with [c].
func (c *Clause) Copy() Clause {
	cpy := Clause{
		Value: c.Value,
	}
	if c.To != nil {
		to := *c.To
		cpy.To = &to
	}
	if len(c.Data) > 0 {
		cpy.Data = append([]byte(nil), c.Data...)
	}
	return cpy
}

func (c *Clause) Equal(o *Clause) bool {
	if (c.To == nil) != (o.To == nil) {
		return false
	}
	if c.To != nil && *c.To != *o.To {
		return false
	}
	return c.Value.Eq(&o.Value) && bytes.Equal(c.Data, o.Data)
}
