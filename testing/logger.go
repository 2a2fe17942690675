package testing

import (
	"testing"

	"github.com/arloliu/hostelmatch/internal/logger"
	"github.com/arloliu/hostelmatch/types"
)

// NewTestLogger creates a logger that writes to the test log.
// This is useful for seeing engine output during test runs.
func NewTestLogger(tb testing.TB) types.Logger {
	return logger.NewTest(tb)
}
