// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thor-tools/txkit/ids"
	"github.com/thor-tools/txkit/tx"
	"github.com/thor-tools/txkit/utils/crypto/keychain"
	"github.com/thor-tools/txkit/utils/crypto/secp256k1"
	"github.com/thor-tools/txkit/wallet"
)

const (
	signatureKey = "signature"
	signedKey    = "signed"
)

var errMissingSenderKey = errors.New("no sender key configured")

func encodeCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "encode [body.json | @file | -]",
		Short: "Encodes a JSON transaction body",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			body, err := a.readBody(c, args)
			if err != nil {
				return err
			}
			sigStr, err := c.Flags().GetString(signatureKey)
			if err != nil {
				return err
			}
			var sig []byte
			if sigStr != "" {
				sig, err = hexutil.Decode(sigStr)
				if err != nil {
					return fmt.Errorf("%w: %s: %w", tx.ErrInvalidField, signatureKey, err)
				}
			}
			t, err := tx.New(body, sig)
			if err != nil {
				return err
			}
			return a.printTx(c, t)
		},
	}
	c.Flags().String(signatureKey, "", "Hex encoded signature to append")
	return c
}

func decodeCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "decode [0x... | @file | -]",
		Short: "Decodes an encoded transaction",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			input, err := readInput(c, args)
			if err != nil {
				return err
			}
			b, err := hexutil.Decode(strings.TrimSpace(string(input)))
			if err != nil {
				return fmt.Errorf("%w: %w", tx.ErrDecode, err)
			}
			signed, err := c.Flags().GetBool(signedKey)
			if err != nil {
				return err
			}
			t, err := tx.Parse(b, signed)
			if err != nil {
				return err
			}
			a.log.Debug("decoded transaction",
				zap.Stringer("type", t.Type()),
				zap.Stringer("state", t.SignatureState()),
			)
			return printJSON(c, t.JSON())
		},
	}
	c.Flags().Bool(signedKey, false, "Whether the encoding ends with a signature")
	return c
}

func hashCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hash [body.json | @file | -]",
		Short: "Prints the signing hash of a JSON transaction body",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			body, err := a.readBody(c, args)
			if err != nil {
				return err
			}
			hash, err := tx.SigningHash(body)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), hash)
			return err
		},
	}
}

func gasCommand(*app) *cobra.Command {
	return &cobra.Command{
		Use:   "gas [clauses.json | @file | -]",
		Short: "Prints the intrinsic gas of a JSON clause list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			input, err := readInput(c, args)
			if err != nil {
				return err
			}
			var clauses []tx.ClauseJSON
			if err := json.Unmarshal(input, &clauses); err != nil {
				return fmt.Errorf("%w: %w", tx.ErrInvalidDataType, err)
			}
			gas, err := tx.IntrinsicGasOfJSON(clauses)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), gas)
			return err
		},
	}
}

func signCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sign [body.json | @file | -]",
		Short: "Signs a JSON transaction body with the configured keys",
		Long: "Signs a JSON transaction body with the configured keys. A delegated " +
			"body is signed by the gas payer too if its key is configured.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			body, err := a.readBody(c, args)
			if err != nil {
				return err
			}
			if len(a.config.SenderKey) == 0 {
				return errMissingSenderKey
			}

			kc := keychain.New()
			defer kc.Zero()

			senderKey, err := secp256k1.ToPrivateKey(a.config.SenderKey)
			if err != nil {
				return err
			}
			kc.Add(senderKey)

			gasPayer := ids.EmptyAddress
			if len(a.config.GasPayerKey) > 0 {
				gasPayerKey, err := secp256k1.ToPrivateKey(a.config.GasPayerKey)
				if err != nil {
					return err
				}
				kc.Add(gasPayerKey)
				gasPayer = gasPayerKey.Address()
			}

			signer, err := wallet.NewSigner(kc, a.log, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			t, err := signer.SignUnsigned(c.Context(), body, senderKey.Address(), gasPayer)
			if err != nil {
				return err
			}

			if id, err := t.ID(); err == nil {
				a.log.Info("signed transaction",
					zap.Stringer("txID", id),
					zap.Int("size", t.Size()),
				)
			} else {
				a.log.Warn("transaction is partially signed",
					zap.Stringer("state", t.SignatureState()),
				)
			}
			return a.printTx(c, t)
		},
	}
}
