package alphagen

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the generator's logger instance.  It is a no-op logger
// unless SetLogger was called first.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the generator's logger.  This must be called
// before Build or Generate.
func SetLogger(l *zap.Logger) {
	logger = l
}
