// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingWriterConfig configures the on-disk log file. An empty Directory
// disables file output.
type RotatingWriterConfig struct {
	MaxSize   int    `json:"maxSize"` // in megabytes
	MaxFiles  int    `json:"maxFiles"`
	MaxAge    int    `json:"maxAge"` // in days
	Directory string `json:"directory"`
	Compress  bool   `json:"compress"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool   `json:"disableWriterDisplaying"`
	LogLevel                Level  `json:"logLevel"`
	DisplayLevel            Level  `json:"displayLevel"`
	LogFormat               Format `json:"logFormat"`
}

func DefaultConfig() Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:  8,
			MaxFiles: 7,
			MaxAge:   0,
		},
		LogLevel:     Info,
		DisplayLevel: Info,
		LogFormat:    Plain,
	}
}

// New returns a logger named [name] that displays to stderr and, when a
// directory is configured, writes rotated JSON files to [name].log.
func New(name string, config Config) (Logger, error) {
	consoleCore := NewWrappedCore(config.DisplayLevel, nopCloser{os.Stderr}, config.LogFormat.ConsoleEncoder())
	consoleCore.WriterDisabled = config.DisableWriterDisplaying
	cores := []WrappedCore{consoleCore}

	if config.Directory != "" {
		if err := os.MkdirAll(config.Directory, 0o750); err != nil {
			return nil, err
		}
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, name+".log"),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxFiles,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		cores = append(cores, NewWrappedCore(config.LogLevel, rw, config.LogFormat.FileEncoder()))
	}
	return NewLogger(name, cores...), nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
