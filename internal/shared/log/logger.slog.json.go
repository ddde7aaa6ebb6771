package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joshuarp/vrf-coordinator/internal/shared/config"
)

const defaultServiceName = "vrf-coordinator"

func NewJSONLogger(cfg config.ConfigProvider) *slog.Logger {
	service := strings.TrimSpace(cfg.GetString("logging.service"))
	if service == "" {
		service = defaultServiceName
	}
	return newJSONLogger(os.Stdout, cfg.GetString("logging.level"), service)
}

func newJSONLogger(w io.Writer, level, service string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, attr.Value.Time().UTC().Format(time.RFC3339))
			}
			return attr
		},
	})

	return slog.New(handler).With(slog.String("service", service))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
