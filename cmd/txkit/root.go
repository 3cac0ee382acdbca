// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thor-tools/txkit/config"
	"github.com/thor-tools/txkit/tx"
	"github.com/thor-tools/txkit/utils/logging"
)

// app holds the state shared by every command once flags are parsed.
type app struct {
	config config.Config
	log    logging.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{
		log: logging.NoLog{},
	}
	c := &cobra.Command{
		Use:           "txkit",
		Short:         "Encodes, decodes, hashes and signs VeChainThor transactions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return a.init(c)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.log.Stop()
		},
	}
	config.AddFlags(c.PersistentFlags())
	c.AddCommand(
		encodeCommand(a),
		decodeCommand(a),
		hashCommand(a),
		gasCommand(a),
		signCommand(a),
	)
	return c
}

func (a *app) init(c *cobra.Command) error {
	v, err := config.BuildViper(c.Flags(), nil)
	if err != nil {
		return err
	}
	a.config, err = config.GetConfig(v)
	if err != nil {
		return err
	}
	a.log, err = logging.New("txkit", a.config.Logging)
	return err
}

// readInput returns the command input. "-" or no argument reads stdin, a
// leading @ names a file, anything else is the input itself.
func readInput(c *cobra.Command, args []string) ([]byte, error) {
	switch {
	case len(args) == 0 || args[0] == "-":
		return io.ReadAll(c.InOrStdin())
	case strings.HasPrefix(args[0], "@"):
		return os.ReadFile(args[0][1:])
	default:
		return []byte(args[0]), nil
	}
}

// readBody parses the JSON body input and applies the configured chain tag.
func (a *app) readBody(c *cobra.Command, args []string) (*tx.Body, error) {
	input, err := readInput(c, args)
	if err != nil {
		return nil, err
	}
	var j tx.BodyJSON
	if err := json.Unmarshal(input, &j); err != nil {
		return nil, fmt.Errorf("%w: %w", tx.ErrInvalidField, err)
	}
	body, err := tx.ParseBody(&j)
	if err != nil {
		return nil, err
	}
	if a.config.ChainTag != nil {
		body.ChainTag = *a.config.ChainTag
	}
	return body, nil
}

func (a *app) printTx(c *cobra.Command, t *tx.Tx) error {
	if a.config.Output == config.OutputJSON {
		return printJSON(c, t.JSON())
	}
	return printHex(c, t.Bytes())
}

func printJSON(c *cobra.Command, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), string(b))
	return err
}

func printHex(c *cobra.Command, b []byte) error {
	_, err := fmt.Fprintf(c.OutOrStdout(), "0x%x\n", b)
	return err
}
