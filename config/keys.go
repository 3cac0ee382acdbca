// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey        = "config-file"
	LogLevelKey          = "log-level"
	LogDisplayLevelKey   = "log-display-level"
	LogFormatKey         = "log-format"
	LogDirKey            = "log-dir"
	LogMaxSizeKey        = "log-max-size"
	LogMaxFilesKey       = "log-max-files"
	LogMaxAgeKey         = "log-max-age"
	LogCompressKey       = "log-compress"
	ChainTagKey          = "chain-tag"
	PrivateKeyKey        = "private-key"
	PrivateKeyFileKey    = "private-key-file"
	GasPayerKeyKey       = "gas-payer-key"
	GasPayerKeyFileKey   = "gas-payer-key-file"
	OutputKey            = "output"
	EnvPrefix            = "txkit"
	defaultDisplayLevel  = "warn"
	defaultLogLevel      = "info"
	defaultOutputFormat  = "hex"
	defaultLogMaxSizeMB  = 8
	defaultLogMaxFiles   = 7
	defaultLogMaxAgeDays = 0
)
