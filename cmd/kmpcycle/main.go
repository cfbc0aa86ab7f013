// Command kmpcycle reports whether its argument is a cyclic string.
//
//	$ kmpcycle abcabcabc
//	[0, 0, 0, 1, 2, 3, 4, 5, 6]
//	true
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(os.Args[0], logger).Execute(); err != nil {
		_ = logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
