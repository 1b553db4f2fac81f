package filtermodel

import (
	"log/slog"
)

// logger is used by models built without WithLogger. It's never nil.
var logger = slog.Default()

// SetLogger sets the logger used by models built without WithLogger.
// Models already built keep theirs. A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}
