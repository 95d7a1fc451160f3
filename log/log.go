package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

var (
	G = GetLogger

	// L is the process-wide entry. Configure sets its output and level.
	L = logrus.NewEntry(logrus.StandardLogger())
)

type loggerKey struct{}

// Configure points L at out and enables debug output when verbose is set.
func Configure(out io.Writer, verbose bool) *logrus.Entry {
	L.Logger.SetOutput(out)
	if verbose {
		L.Logger.SetLevel(logrus.DebugLevel)
	} else {
		L.Logger.SetLevel(logrus.InfoLevel)
	}
	return L
}

// WithLogger stores a publication-scoped entry, usually L with the target
// document attached, in ctx.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the entry stored in ctx, or L.
func GetLogger(ctx context.Context) *logrus.Entry {
	if logger, ok := ctx.Value(loggerKey{}).(*logrus.Entry); ok {
		return logger
	}
	return L
}
