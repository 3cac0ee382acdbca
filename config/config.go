// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/thor-tools/txkit/utils/crypto/secp256k1"
	"github.com/thor-tools/txkit/utils/logging"
)

var (
	ErrConflictingKeys    = errors.New("key given both inline and as a file")
	ErrUnknownOutput      = errors.New("unknown output format")
	ErrInvalidChainTag    = errors.New("chain tag must fit in a byte")
	errInvalidKeyEncoding = errors.New("private key must be hex encoded")
)

// Output selects how commands print transactions.
type Output string

const (
	OutputHex  Output = "hex"
	OutputJSON Output = "json"
)

type Config struct {
	Logging logging.Config
	// ChainTag is nil unless the chain tag is overridden.
	ChainTag *uint8
	// SenderKey is empty if no sender key is configured.
	SenderKey []byte
	// GasPayerKey is empty if no gas payer key is configured.
	GasPayerKey []byte
	Output      Output
}

// GetConfig reads every configuration key from [v].
func GetConfig(v *viper.Viper) (Config, error) {
	var (
		config Config
		err    error
	)
	config.Logging, err = GetLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	config.ChainTag, err = getChainTag(v)
	if err != nil {
		return Config{}, err
	}
	config.SenderKey, config.GasPayerKey, err = GetSigningKeys(v)
	if err != nil {
		return Config{}, err
	}
	config.Output, err = getOutput(v)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

func GetLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.DefaultConfig()

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(v.GetString(LogDisplayLevelKey))
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey))
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.Directory = os.ExpandEnv(v.GetString(LogDirKey))
	loggingConfig.MaxSize = int(v.GetUint(LogMaxSizeKey))
	loggingConfig.MaxFiles = int(v.GetUint(LogMaxFilesKey))
	loggingConfig.MaxAge = int(v.GetUint(LogMaxAgeKey))
	loggingConfig.Compress = v.GetBool(LogCompressKey)
	return loggingConfig, nil
}

// GetSigningKeys returns the configured sender and gas payer keys. A key that
// is not configured is returned empty.
func GetSigningKeys(v *viper.Viper) ([]byte, []byte, error) {
	senderKey, err := getKey(v, PrivateKeyKey, PrivateKeyFileKey)
	if err != nil {
		return nil, nil, err
	}
	gasPayerKey, err := getKey(v, GasPayerKeyKey, GasPayerKeyFileKey)
	if err != nil {
		return nil, nil, err
	}
	return senderKey, gasPayerKey, nil
}

func getKey(v *viper.Viper, key, fileKey string) ([]byte, error) {
	keyStr := v.GetString(key)
	keyFile := v.GetString(fileKey)
	switch {
	case keyStr != "" && keyFile != "":
		return nil, fmt.Errorf("%w: %s and %s", ErrConflictingKeys, key, fileKey)
	case keyFile != "":
		b, err := os.ReadFile(os.ExpandEnv(keyFile))
		if err != nil {
			return nil, fmt.Errorf("couldn't read %s: %w", fileKey, err)
		}
		keyStr = string(b)
	case keyStr == "":
		return nil, nil
	}

	keyStr = strings.TrimPrefix(strings.TrimSpace(keyStr), "0x")
	keyBytes, err := hex.DecodeString(keyStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errInvalidKeyEncoding, key, err)
	}
	if !secp256k1.IsValidPrivateKey(keyBytes) {
		return nil, fmt.Errorf("%w: %s", secp256k1.ErrInvalidPrivateKey, key)
	}
	return keyBytes, nil
}

func getChainTag(v *viper.Viper) (*uint8, error) {
	if !v.IsSet(ChainTagKey) {
		return nil, nil
	}
	chainTag := v.GetUint(ChainTagKey)
	if chainTag > 0xff {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChainTag, chainTag)
	}
	tag := uint8(chainTag)
	return &tag, nil
}

func getOutput(v *viper.Viper) (Output, error) {
	switch output := Output(strings.ToLower(v.GetString(OutputKey))); output {
	case OutputHex, OutputJSON:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}
}
