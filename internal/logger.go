package internal

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// The active logger. Library code produces no output until SetLogger is called.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger replaces the logger used by the mesh pipeline and the search. Pass
// nil to restore the silent default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

func Logger() *zap.Logger {
	return loggerPtr.Load()
}
