package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpec"
	"github.com/agentstation/bpec/internal/repl"
	"github.com/agentstation/bpec/internal/tokfile"
)

var replLoad string

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively tokenize lines from stdin",
		Long: `Repl loads a saved tokenizer and starts an interactive session: each
line read from stdin is tokenized, reported with its compression ratio
and encode time, then round-trip-verified by decoding.`,
		Example: `  bpec repl --load tokenizer.bin`,
		RunE:    runRepl,
	}

	cmd.Flags().StringVarP(&replLoad, "load", "l", "", "Tokenizer file to load (required)")

	return cmd
}

func runRepl(_ *cobra.Command, args []string) error {
	if replLoad == "" {
		return fmt.Errorf("%w: --load is required", bpec.ErrInvalidArgument)
	}

	f, err := os.Open(replLoad)
	if err != nil {
		return bpec.NewIOError("open", replLoad, err)
	}
	defer f.Close()

	v, rules, err := tokfile.Load(f)
	if err != nil {
		return err
	}

	session := &repl.Session{
		Vocab: v,
		Rules: rules,
		In:    os.Stdin,
		Out:   os.Stdout,
	}
	return session.Run()
}
