// Package contract reports programming errors. A violated contract is a bug
// in the caller, so the process logs the message and panics instead of
// returning an error.
package contract

import "log"

// Require panics with msg when cond is false.
func Require(cond bool, msg string) {
	if !cond {
		log.Panicf("contract violation: %s", msg)
	}
}

// Failf always panics. Use it in the unreachable branch of a switch.
func Failf(format string, args ...any) {
	log.Panicf("contract violation: "+format, args...)
}
