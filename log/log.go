// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package log

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	std = newZapLogger(NewOptions())
	mu  sync.RWMutex
)

// Init initializes logger with specified options.
func Init(opts *Options) error {
	l, err := buildZapLogger(opts)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	std = l

	return nil
}

// InitLogger initializes a console logger, at debug level when debug is set.
func InitLogger(debug bool) error {
	opts := NewOptions()
	if debug {
		opts.Level = zapcore.DebugLevel.String()
		opts.EnableColor = true
	}

	return Init(opts)
}

func newZapLogger(opts *Options) *zap.Logger {
	l, err := buildZapLogger(opts)
	if err != nil {
		panic(err)
	}

	return l
}

func buildZapLogger(opts *Options) (*zap.Logger, error) {
	if opts == nil {
		opts = NewOptions()
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(opts.Level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	format := strings.ToLower(opts.Format)
	encodeLevel := zapcore.CapitalLevelEncoder
	// when output to local path, with color is forbidden
	if format == consoleFormat && opts.EnableColor {
		encodeLevel = zapcore.CapitalColorLevelEncoder
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     timeEncoder,
		EncodeDuration: milliSecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	loggerConfig := &zap.Config{
		Level:             zap.NewAtomicLevelAt(zapLevel),
		DisableCaller:     opts.DisableCaller,
		DisableStacktrace: opts.DisableStacktrace,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      opts.OutputPaths,
		ErrorOutputPaths: opts.ErrorOutputPaths,
	}

	l, err := loggerConfig.Build(zap.AddStacktrace(zapcore.PanicLevel), zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	l = l.Named(opts.Name)
	zap.RedirectStdLog(l)

	return l, nil
}

func logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return std
}

// SugarLogger returns the global sugared logger.
func SugarLogger() *zap.SugaredLogger {
	return logger().Sugar()
}

// Flush flushes any buffered log entries. Applications should take care to call before exiting.
func Flush() { _ = logger().Sync() }

// Debug method output debug level log.
func Debug(msg string, keysAndValues ...interface{}) {
	SugarLogger().Debugw(msg, keysAndValues...)
}

// Debugf method output debug level log.
func Debugf(format string, v ...interface{}) {
	SugarLogger().Debugf(format, v...)
}

// Info method output info level log.
func Info(msg string, keysAndValues ...interface{}) {
	SugarLogger().Infow(msg, keysAndValues...)
}

// Infow is an alias of Info.
func Infow(msg string, keysAndValues ...interface{}) {
	SugarLogger().Infow(msg, keysAndValues...)
}

// Infof method output info level log.
func Infof(format string, v ...interface{}) {
	SugarLogger().Infof(format, v...)
}

// Warn method output warning level log.
func Warn(msg string, keysAndValues ...interface{}) {
	SugarLogger().Warnw(msg, keysAndValues...)
}

// Warnf method output warning level log.
func Warnf(format string, v ...interface{}) {
	SugarLogger().Warnf(format, v...)
}

// Error method output error level log.
func Error(msg string, keysAndValues ...interface{}) {
	SugarLogger().Errorw(msg, keysAndValues...)
}

// Errorw is an alias of Error.
func Errorw(msg string, keysAndValues ...interface{}) {
	SugarLogger().Errorw(msg, keysAndValues...)
}

// Errorf method output error level log.
func Errorf(format string, v ...interface{}) {
	SugarLogger().Errorf(format, v...)
}

// Fatal method output Fatalw level log.
func Fatal(msg string, keysAndValues ...interface{}) {
	SugarLogger().Fatalw(msg, keysAndValues...)
}

// Fatalf method output fatal level log.
func Fatalf(format string, v ...interface{}) {
	SugarLogger().Fatalf(format, v...)
}
