// Package log builds the zap loggers used by the pagetracker binaries.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	logLevel    string
	development bool
}

type Option func(o *options)

func WithLogLevel(lv string) Option {
	return Option(func(o *options) {
		o.logLevel = lv
	})
}

// WithDevelopment switches to the human-readable console encoder with
// callers and stack traces on warnings.
func WithDevelopment(dev bool) Option {
	return Option(func(o *options) {
		o.development = dev
	})
}

func NewLogger(opts ...Option) (*zap.Logger, error) {
	options := options{
		logLevel: "info",
	}

	for _, e := range opts {
		e(&options)
	}

	var al zap.AtomicLevel
	err := al.UnmarshalText([]byte(options.logLevel))
	if err != nil {
		return nil, fmt.Errorf("al.UnmarshalText: level=%s, %w", options.logLevel, err)
	}

	var zc zap.Config
	if options.development {
		zc = zap.NewDevelopmentConfig()
		zc.Level = al
	} else {
		encConfig := zap.NewProductionEncoderConfig()
		encConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		zc = zap.Config{
			DisableCaller:     true,
			DisableStacktrace: true,
			Level:             al,
			Development:       false,
			Encoding:          "json",
			EncoderConfig:     encConfig,
			OutputPaths:       []string{"stderr"},
			ErrorOutputPaths:  []string{"stderr"},
		}
	}

	zl, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("zap.Build: %w", err)
	}
	return zl, nil
}

func Must(zl *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return zl
}
