// Package goroutine launches background work with panic containment.
package goroutine

import (
	"runtime/debug"

	"fixtrack/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic inside fn is logged with
// its stack trace instead of taking down the process. The name tags the
// log entry so the failing worker can be identified.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", r,
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
