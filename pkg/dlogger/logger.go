// Package dlogger exposes a simple zap logger, with log levels
package dlogger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelInfo sets the log level to info
	LogLevelInfo = "info"

	// LogLevelDebug sets the log level to debug
	LogLevelDebug = "debug"

	// LogLevelNone sets logger to no logging
	LogLevelNone = "none"

	// FormatConsole renders human readable lines for operators
	FormatConsole = "console"

	// FormatJSON renders one JSON document per log entry
	FormatJSON = "json"
)

type options struct {
	format string
	output []string
}

// Option tunes the logger built by GetLogger
type Option func(*options)

// Format selects the encoding: console (default) or json
func Format(format string) Option {
	return func(o *options) {
		if format != "" {
			o.format = format
		}
	}
}

// Output selects zap sink URLs (e.g. "stdout", "stderr", a file path). Empty paths are ignored.
func Output(paths ...string) Option {
	return func(o *options) {
		var sinks []string
		for _, path := range paths {
			if path != "" {
				sinks = append(sinks, path)
			}
		}
		if len(sinks) > 0 {
			o.output = sinks
		}
	}
}

// GetLogger returns a zap logger with the specified level
func GetLogger(logLevel string, opts ...Option) (*zap.Logger, error) {
	if logLevel == LogLevelNone {
		return zap.NewNop(), nil
	}
	o := options{format: FormatConsole, output: []string{"stdout"}}
	for _, apply := range opts {
		apply(&o)
	}

	var lvl zapcore.Level
	err := lvl.UnmarshalText([]byte(logLevel))
	if err != nil {
		return nil, err
	}

	zapConfig := zap.NewProductionConfig()
	if o.format == FormatConsole {
		zapConfig.Encoding = FormatConsole
		zapConfig.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		zapConfig.EncoderConfig.CallerKey = ""
		zapConfig.DisableStacktrace = true
		zapConfig.Sampling = nil
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	zapConfig.OutputPaths = o.output
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// MustGetLogger returns a zap logger with the specified level or panics
func MustGetLogger(logLevel string, opts ...Option) *zap.Logger {
	l, err := GetLogger(logLevel, opts...)
	if err != nil {
		panic(err)
	}
	return l
}
