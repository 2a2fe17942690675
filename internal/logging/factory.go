package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/hostelmatch/types"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New builds a logger for the given format and level.
//
// Text output goes through log/slog's text handler; JSON output goes through a
// zap production encoder.
//
// Parameters:
//   - w: Destination
//   - format: FormatText or FormatJSON
//   - level: "debug", "info", "warn" or "error"
//
// Returns:
//   - types.Logger: Configured logger
//   - error: Unknown format or level
func New(w io.Writer, format, level string) (types.Logger, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}

		return NewSlog(slog.New(slog.NewTextHandler(w, HandlerOptions(lvl)))), nil
	case FormatJSON:
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(w),
			lvl,
		)

		return NewZap(zap.New(core)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
