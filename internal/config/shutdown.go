package config

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

var isShouldShutdown atomic.Bool

// StartListeningForShutdownSignal flips the shutdown flag on SIGINT/SIGTERM so
// background workers can stop between iterations.
func StartListeningForShutdownSignal() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-signals
		isShouldShutdown.Store(true)
		log.Info("Shutdown flag set")
	}()
}

func IsShouldShutdown() bool {
	return isShouldShutdown.Load()
}
