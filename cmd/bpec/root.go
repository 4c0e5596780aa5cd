package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootCmd is the base command when bpec is invoked with no subcommand.
var rootCmd = &cobra.Command{
	Use:   "bpec",
	Short: "Train and apply byte-level BPE tokenizers",
	Long: `bpec trains a byte-pair-encoding tokenizer directly from raw bytes
and lets you apply the result to new text.

Available operations:
  train  - Learn a vocabulary and merge rules from a corpus
  encode - Apply merge rules to tokenize text
  decode - Reverse a token sequence back to bytes
  info   - Show a tokenizer file's vocabulary and merge-rule counts
  repl   - Interactively tokenize lines from stdin`,
	Example: `  # Train a tokenizer and save it
  bpec train --input corpus.txt --vocab-size 2048 --save tokenizer.bin

  # Load a saved tokenizer and tokenize text
  bpec encode --load tokenizer.bin "hello, world"

  # Inspect a saved tokenizer
  bpec info --load tokenizer.bin`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bpec version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit: %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:  %s\n", buildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newTrainCmd())
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newReplCmd())
}
