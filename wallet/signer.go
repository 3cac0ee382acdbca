// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/tx"
	"github.com/thor-tools/txkit/utils/crypto/keychain"
	"github.com/thor-tools/txkit/utils/logging"
)

const (
	senderRole   = "sender"
	gasPayerRole = "gas_payer"
)

var _ Signer = (*txSigner)(nil)

type Signer interface {
	// SignUnsigned wraps [body] in a transaction and signs it as Sign does.
	SignUnsigned(ctx context.Context, body *tx.Body, origin, gasPayer ids.Address) (*tx.Tx, error)
	// Sign adds every missing signature the keychain holds a key for. The
	// sender signature is made by [origin]. On delegated transactions the gas
	// payer signature is made by [gasPayer], which is ignored otherwise.
	// Signatures already present are kept.
	Sign(ctx context.Context, t *tx.Tx, origin, gasPayer ids.Address) (*tx.Tx, error)
}

type txSigner struct {
	kc      keychain.Keychain
	log     logging.Logger
	metrics *metrics
}

func NewSigner(kc keychain.Keychain, log logging.Logger, reg prometheus.Registerer) (Signer, error) {
	m, err := newMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("couldn't register wallet metrics: %w", err)
	}
	return &txSigner{
		kc:      kc,
		log:     log,
		metrics: m,
	}, nil
}

func (s *txSigner) SignUnsigned(ctx context.Context, body *tx.Body, origin, gasPayer ids.Address) (*tx.Tx, error) {
	t, err := tx.New(body, nil)
	if err != nil {
		return nil, err
	}
	return s.Sign(ctx, t, origin, gasPayer)
}

func (s *txSigner) Sign(ctx context.Context, t *tx.Tx, origin, gasPayer ids.Address) (*tx.Tx, error) {
	state := t.SignatureState()
	hasSender := state == tx.SenderSigned || state == tx.Signed
	hasGasPayer := state == tx.GasPayerSigned || state == tx.Signed

	if !t.IsDelegated() {
		if hasSender {
			return t, nil
		}
		return s.sign(ctx, t, senderRole, origin, func(signer keychain.Signer) (*tx.Tx, error) {
			return t.SignWith(signer)
		})
	}

	var err error
	if !hasSender {
		t, err = s.sign(ctx, t, senderRole, origin, func(signer keychain.Signer) (*tx.Tx, error) {
			return t.SignAsSenderWith(signer)
		})
		if err != nil {
			return nil, err
		}
	}
	if !hasGasPayer {
		current := t
		t, err = s.sign(ctx, t, gasPayerRole, gasPayer, func(signer keychain.Signer) (*tx.Tx, error) {
			return current.SignAsGasPayerWith(origin, signer)
		})
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

// sign applies [signFunc] with the key of [addr]. If the keychain doesn't
// hold that key, [t] is returned unchanged.
func (s *txSigner) sign(
	ctx context.Context,
	t *tx.Tx,
	role string,
	addr ids.Address,
	signFunc func(keychain.Signer) (*tx.Tx, error),
) (*tx.Tx, error) {
	signer, ok := s.kc.Get(addr)
	if !ok {
		s.log.Debug("skipping signature",
			zap.String("role", role),
			zap.Stringer("address", addr),
			zap.String("reason", "no key held"),
		)
		return t, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	signed, err := signFunc(signer)
	if err != nil {
		s.metrics.signFailures.Inc()
		s.log.Warn("failed to sign transaction",
			zap.String("role", role),
			zap.Stringer("address", addr),
			zap.Error(err),
		)
		return nil, err
	}

	s.metrics.signatures.WithLabelValues(role).Inc()
	s.log.Verbo("signed transaction",
		zap.String("role", role),
		zap.Stringer("address", addr),
		zap.Stringer("state", signed.SignatureState()),
	)
	return signed, nil
}
