package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpec"
	"github.com/agentstation/bpec/internal/codec"
	"github.com/agentstation/bpec/internal/seqbuf"
	"github.com/agentstation/bpec/internal/tokfile"
)

var decLoad string

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [token_ids...]",
		Short: "Reverse a token sequence back to bytes",
		Long: `Decode reads a saved tokenizer's vocabulary and concatenates the byte
string for each given token ID, producing the original bytes.`,
		Example: `  bpec decode --load tokenizer.bin 104 256
  bpec encode --load tokenizer.bin "hi" | bpec decode --load tokenizer.bin`,
		RunE: runDecode,
	}

	cmd.Flags().StringVarP(&decLoad, "load", "l", "", "Tokenizer file to load vocabulary from (required)")

	return cmd
}

func runDecode(_ *cobra.Command, args []string) error {
	if decLoad == "" {
		return fmt.Errorf("%w: --load is required", bpec.ErrInvalidArgument)
	}

	f, err := os.Open(decLoad)
	if err != nil {
		return bpec.NewIOError("open", decLoad, err)
	}
	defer f.Close()

	v, _, err := tokfile.Load(f)
	if err != nil {
		return err
	}

	var tokens []int
	if len(args) > 0 {
		for _, arg := range args {
			tok, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("%w: invalid token ID %q", bpec.ErrInvalidArgument, arg)
			}
			tokens = append(tokens, tok)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			tok, err := strconv.Atoi(scanner.Text())
			if err != nil {
				return fmt.Errorf("%w: invalid token ID %q", bpec.ErrInvalidArgument, scanner.Text())
			}
			tokens = append(tokens, tok)
		}
		if err := scanner.Err(); err != nil {
			return bpec.NewIOError("read", "", err)
		}
	}

	if len(tokens) == 0 {
		return fmt.Errorf("%w: no token IDs provided", bpec.ErrInvalidArgument)
	}

	seq := &seqbuf.Sequence{Tokens: tokens}
	fmt.Println(string(codec.Decode(seq, v)))
	return nil
}
