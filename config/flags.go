// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AddFlags registers every configuration key on [fs].
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Specifies a config file. Supports json, yaml and toml")

	// Logging
	fs.String(LogLevelKey, defaultLogLevel, "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, defaultDisplayLevel, "The log display level. Logs at or above this level are written to stderr")
	fs.String(LogFormatKey, "plain", "The log format. Should be one of {plain, json}")
	fs.String(LogDirKey, "", "Logging directory. File logging is disabled if empty")
	fs.Uint(LogMaxSizeKey, defaultLogMaxSizeMB, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Uint(LogMaxFilesKey, defaultLogMaxFiles, "The maximum number of old log files to retain")
	fs.Uint(LogMaxAgeKey, defaultLogMaxAgeDays, "The maximum number of days to retain old log files. 0 retains them forever")
	fs.Bool(LogCompressKey, false, "Enables the compression of rotated log files through gzip")

	// Transaction
	fs.Uint8(ChainTagKey, 0, "Overrides the chain tag of the transaction body. Ignored unless set")

	// Keys
	fs.String(PrivateKeyKey, "", "Hex encoded private key of the sender")
	fs.String(PrivateKeyFileKey, "", "Path to a file holding the hex encoded private key of the sender")
	fs.String(GasPayerKeyKey, "", "Hex encoded private key of the gas payer of a delegated transaction")
	fs.String(GasPayerKeyFileKey, "", "Path to a file holding the hex encoded private key of the gas payer")

	// Output
	fs.String(OutputKey, defaultOutputFormat, "Output format. Should be one of {hex, json}")
}

// BuildFlagSet returns a flag set holding every configuration key.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("txkit", pflag.ContinueOnError)
	AddFlags(fs)
	return fs
}

// BuildViper parses [args] with [fs] and returns the resulting viper
// environment. Flags that were already parsed are not parsed again.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if !fs.Parsed() {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}
