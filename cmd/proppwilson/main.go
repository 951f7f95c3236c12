// Command proppwilson draws exact samples of the 2D Ising model with
// coupling from the past.
//
//	proppwilson sweep -n 32 --samples 200 > 32.txt
//	proppwilson stats 32.txt
//	proppwilson snapshot -n 64 --dt -0.1
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
