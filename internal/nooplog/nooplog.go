// Package nooplog provides a silent implementation of
// agentuity/go-common/logger.Logger so the library stays quiet by default
// (it is a library, not a CLI) when a caller does not supply one through
// Options.
package nooplog

import (
	"context"

	"github.com/agentuity/go-common/logger"
)

type noop struct{}

// New returns a logger.Logger that discards everything written to it.
func New() logger.Logger {
	return noop{}
}

var _ logger.Logger = noop{}

func (noop) With(metadata map[string]interface{}) logger.Logger { return noop{} }
func (noop) WithPrefix(prefix string) logger.Logger             { return noop{} }
func (noop) WithContext(ctx context.Context) logger.Logger      { return noop{} }
func (noop) Stack(next logger.Logger) logger.Logger             { return noop{} }
func (noop) Trace(msg string, args ...interface{})              {}
func (noop) Debug(msg string, args ...interface{})              {}
func (noop) Info(msg string, args ...interface{})               {}
func (noop) Warn(msg string, args ...interface{})               {}
func (noop) Error(msg string, args ...interface{})              {}
func (noop) Fatal(msg string, args ...interface{})              {}
