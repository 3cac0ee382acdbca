// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
)

// DelegationFeature marks a transaction whose gas is paid by a second
// signer.
const DelegationFeature Features = 1

// Features is a bitmask of optional transaction behaviors. Unknown bits are
// carried through encoding untouched.
type Features uint32

func (f Features) IsDelegated() bool {
	return f&DelegationFeature == DelegationFeature
}

func (f *Features) SetDelegated(delegated bool) {
	if delegated {
		*f |= DelegationFeature
	} else {
		*f &^= DelegationFeature
	}
}

// Reserved is the forward compatible extension slot of a transaction. The
// zero value carries no data.
type Reserved struct {
	Features Features
	// Unused holds opaque elements following the features. The last element
	// must not be empty.
	Unused [][]byte
}

func (r *Reserved) IsEmpty() bool {
	return r.Features == 0 && len(r.Unused) == 0
}

// Verify returns an error if [r] has no canonical encoding.
func (r *Reserved) Verify() error {
	if n := len(r.Unused); n > 0 && len(r.Unused[n-1]) == 0 {
		return invalidField("reserved.unused", n-1, "trailing element must not be empty")
	}
	return nil
}

func (r *Reserved) Copy() Reserved {
	cpy := Reserved{Features: r.Features}
	if len(r.Unused) > 0 {
		cpy.Unused = make([][]byte, len(r.Unused))
		for i, u := range r.Unused {
			cpy.Unused[i] = append([]byte{}, u...)
		}
	}
	return cpy
}

func (r *Reserved) Equal(o *Reserved) bool {
	if r.Features != o.Features || len(r.Unused) != len(o.Unused) {
		return false
	}
	for i := range r.Unused {
		if !bytes.Equal(r.Unused[i], o.Unused[i]) {
			return false
		}
	}
	return true
}

// encode writes the trimmed reserved list. Assumes [r] was verified.
func (r *Reserved) encode(w rlp.EncoderBuffer) {
	offset := w.List()
	if len(r.Unused) > 0 || r.Features != 0 {
		w.WriteUint64(uint64(r.Features))
	}
	for _, u := range r.Unused {
		w.WriteBytes(u)
	}
	w.ListEnd(offset)
}

// decodeReserved reads the reserved list and rejects any encoding the
// encoder would not have produced.
func decodeReserved(s *rlp.Stream) (Reserved, error) {
	var r Reserved
	if _, err := s.List(); err != nil {
		return r, decodeError("reserved", err)
	}

	lastEmpty := false
	for i := 0; ; i++ {
		if _, _, err := s.Kind(); err == rlp.EOL {
			break
		} else if err != nil {
			return r, decodeError("reserved", err)
		}

		if i == 0 {
			features, err := s.Uint32()
			if err != nil {
				return r, decodeError("reserved.features", err)
			}
			r.Features = Features(features)
			lastEmpty = features == 0
			continue
		}

		u, err := s.Bytes()
		if err != nil {
			return r, decodeError("reserved.unused", err)
		}
		r.Unused = append(r.Unused, u)
		lastEmpty = len(u) == 0
	}
	if lastEmpty {
		return r, invalidField("reserved", hexutil.Uint64(r.Features), "trailing empty element must be trimmed")
	}
	if err := s.ListEnd(); err != nil {
		return r, decodeError("reserved", err)
	}
	return r, nil
}
