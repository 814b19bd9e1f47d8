// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var terminationSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// commandContext is cancelled on SIGINT or SIGTERM, which also terminates the running child process
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), terminationSignals...)
}
