//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext derives a context that ends on an interrupt.
// Windows has no SIGTERM. Call stop() when done.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
