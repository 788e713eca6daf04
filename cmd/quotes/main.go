package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signalContext()
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// signalContext is cancelled on Ctrl-C so in-flight requests are abandoned
// instead of the process being killed mid-write.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
