// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log formats accepted by SetupLogger.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// SetupLogger returns a logger writing to w (os.Stderr when nil) at the
// given level. The text format uses zerolog's console writer; debug level
// adds the caller and the process ID.
func SetupLogger(level, format string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.Nop(), fmt.Errorf("pipeline: unknown log level %q", level)
	}
	if w == nil {
		w = os.Stderr
	}
	switch format {
	case LogFormatJSON, "":
	case LogFormatText:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("pipeline: unknown log format %q", format)
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if lvl == zerolog.DebugLevel {
		ctx = ctx.Caller().Int("pid", os.Getpid())
	}
	return ctx.Logger(), nil
}
