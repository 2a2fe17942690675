// Package logger provides no-op, testing and recording loggers for the hostelmatch library.
package logger

import "github.com/arloliu/hostelmatch/types"

// NopLogger discards every entry. It is the engine's logger when no
// WithLogger option is given, and Fatal never exits.
//
// Example:
//
//	engine, err := hostelmatch.NewEngine(cfg, hostelmatch.WithLogger(logger.NewNop()))
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// nop is shared; NopLogger holds no state.
var nop = &NopLogger{}

// NewNop returns the shared no-op logger.
func NewNop() *NopLogger {
	return nop
}

// With returns the receiver; there is nothing to attach fields to.
func (n *NopLogger) With(...any) *NopLogger { return n }

func (*NopLogger) Debug(string, ...any) {}
func (*NopLogger) Info(string, ...any)  {}
func (*NopLogger) Warn(string, ...any)  {}
func (*NopLogger) Error(string, ...any) {}
func (*NopLogger) Fatal(string, ...any) {}
