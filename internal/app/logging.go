package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// NewLogger returns a text logger writing to w at the named level
// (debug, info, warn or error) and installs it as the slog default.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger, nil
}
