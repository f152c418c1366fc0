package meshlog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop().Sugar()
)

// SetLogger installs the logger used by every tetmesh package. Passing nil
// restores the no-op default.
func SetLogger(l *zap.SugaredLogger) {
	mu.Lock()
	defer mu.Unlock()

	if l == nil {
		log = zap.NewNop().Sugar()
		return
	}
	log = l
}

// L returns the currently installed logger.
func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()

	return log
}
