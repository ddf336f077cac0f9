// Command truenetwork opens the TrueNetwork landing page in a window.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[truenetwork] %v\n", err)
		os.Exit(1)
	}
}
