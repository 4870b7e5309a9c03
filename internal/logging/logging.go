// SPDX-License-Identifier: EPL-2.0

// Package logging builds the zap loggers used by the command line tool.
package logging

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at level (debug, info, warn or
// error). It starts from zap's production encoder settings with ISO8601
// timestamps, and tags every entry with a fresh run_id.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(lvl),
	)

	return zap.New(core, zap.AddCaller()).With(zap.String("run_id", NewRunID())), nil
}

// NewRunID returns an identifier for one invocation.
func NewRunID() string {
	return uuid.NewString()
}
