package logging

import (
	"log/slog"
	"strings"
)

// LevelFromString maps a configured level name ("DEBUG", "INFO", "WARN",
// "ERROR", any case) to its slog level. Unset or unknown names fall back
// to info.
func LevelFromString(str *string) slog.Level {
	if str == nil {
		return slog.LevelInfo
	}
	switch strings.ToUpper(*str) {
	case slog.LevelDebug.String():
		return slog.LevelDebug
	case slog.LevelInfo.String():
		return slog.LevelInfo
	case slog.LevelWarn.String():
		return slog.LevelWarn
	case slog.LevelError.String():
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
