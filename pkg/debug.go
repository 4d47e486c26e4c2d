package nextversion

import "log"

var debug bool

// SetDebug toggles debug-level diagnostics on the standard logger.
func SetDebug(v bool) { debug = v }

func debugf(format string, v ...any) {
	if debug {
		log.Printf(format, v...)
	}
}
