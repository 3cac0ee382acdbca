// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Format modes available
const (
	Plain Format = iota
	JSON
)

var errUnknownFormat = errors.New("unknown format")

// Format of displayed logs
type Format int

// ToFormat chooses a format mode
func ToFormat(f string) (Format, error) {
	switch strings.ToUpper(f) {
	case "PLAIN":
		return Plain, nil
	case "JSON":
		return JSON, nil
	default:
		return Plain, fmt.Errorf("%w: %q", errUnknownFormat, f)
	}
}

func (f Format) MarshalJSON() ([]byte, error) {
	switch f {
	case Plain:
		return []byte(`"PLAIN"`), nil
	case JSON:
		return []byte(`"JSON"`), nil
	default:
		return nil, errUnknownFormat
	}
}

func (f Format) ConsoleEncoder() zapcore.Encoder {
	if f == JSON {
		return zapcore.NewJSONEncoder(newEncoderConfig(jsonLevelEncoder))
	}
	return zapcore.NewConsoleEncoder(newEncoderConfig(levelEncoder))
}

func (Format) FileEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(newEncoderConfig(jsonLevelEncoder))
}

func newEncoderConfig(encodeLevel zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}

func jsonLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).LowerString())
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("01-02|15:04:05.000") + "]")
}
