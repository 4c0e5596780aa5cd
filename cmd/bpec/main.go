// Command bpec trains, applies, and inspects byte-level BPE tokenizers.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/agentstation/bpec"
)

var (
	// Version information (set by build flags).
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, bpec.ErrInvalidArgument) {
			_ = cmd.Usage()
		}
		os.Exit(1)
	}
}
