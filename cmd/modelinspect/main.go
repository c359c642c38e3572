// SPDX-License-Identifier: MIT

// Command modelinspect loads a YAML model fixture and prints its views.
//
//	modelinspect views testdata/transport.yaml
//	modelinspect show testdata/transport.yaml --view count
//	modelinspect show testdata/transport.yaml --view symbols -e demand -v x --aggregate sum --unite-cols 1
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "modelinspect:", err)
		os.Exit(1)
	}
}
