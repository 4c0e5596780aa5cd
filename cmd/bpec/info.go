package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpec"
	"github.com/agentstation/bpec/internal/tokfile"
)

var infoLoad string

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show a tokenizer file's vocabulary and merge-rule counts",
		Example: `  bpec info --load tokenizer.bin`,
		RunE:    runInfo,
	}

	cmd.Flags().StringVarP(&infoLoad, "load", "l", "", "Tokenizer file to inspect (required)")

	return cmd
}

func runInfo(_ *cobra.Command, args []string) error {
	if infoLoad == "" {
		return fmt.Errorf("%w: --load is required", bpec.ErrInvalidArgument)
	}

	f, err := os.Open(infoLoad)
	if err != nil {
		return bpec.NewIOError("open", infoLoad, err)
	}
	defer f.Close()

	v, rules, err := tokfile.Load(f)
	if err != nil {
		return err
	}

	fmt.Printf("Tokenizer file: %s\n", infoLoad)
	fmt.Printf("Vocabulary size: %d\n", v.Size())
	fmt.Printf("Merge rules: %d\n", rules.Len())
	if rules.Len() > 0 {
		first := rules.At(0)
		last := rules.At(rules.Len() - 1)
		fmt.Printf("First merge: (%d,%d)->%d\n", first.Left, first.Right, first.Result)
		fmt.Printf("Last merge:  (%d,%d)->%d\n", last.Left, last.Right, last.Result)
	}

	return nil
}
