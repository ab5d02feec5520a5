// Package logging builds the process-wide logr.Logger.
package logging

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// New returns the logger and a flush func to defer.
//
// With debug set, a zap development logger writes everything down to V(1)
// to stderr. Otherwise the interactive dashboard discards logs, because
// stderr shares the screen with it, and the plain report only surfaces
// warnings and errors.
func New(debug, interactive bool) (logr.Logger, func(), error) {
	if !debug && interactive {
		return logr.Discard(), func() {}, nil
	}

	zapConfig := zap.NewDevelopmentConfig()
	if debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	zapLog, err := zapConfig.Build()
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("build logger: %w", err)
	}
	return zapr.NewLogger(zapLog).WithName("sysdash"), func() { _ = zapLog.Sync() }, nil
}
