package systems

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs the logger systems report through.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
