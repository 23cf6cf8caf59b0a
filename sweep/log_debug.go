//go:build debug

package sweep

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[sweep DEBUG] ", log.LstdFlags)

// debugf logs debug messages when the debug build tag is enabled.
func debugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
