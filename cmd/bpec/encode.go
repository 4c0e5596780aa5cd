package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpec"
	"github.com/agentstation/bpec/internal/codec"
	"github.com/agentstation/bpec/internal/merge"
	"github.com/agentstation/bpec/internal/metrics"
	"github.com/agentstation/bpec/internal/tokfile"
)

var (
	encLoad    string
	encOutput  string
	encCount   bool
	encMetrics bool
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Apply merge rules to tokenize text",
		Long: `Encode reads merge rules from a saved tokenizer file and applies them
to text, either given as an argument or read from stdin.`,
		Example: `  bpec encode --load tokenizer.bin "hello, world"
  echo "hello" | bpec encode --load tokenizer.bin`,
		RunE: runEncode,
	}

	cmd.Flags().StringVarP(&encLoad, "load", "l", "", "Tokenizer file to load merge rules from (required)")
	cmd.Flags().StringVarP(&encOutput, "output", "o", "space", "Output format: space, newline, json")
	cmd.Flags().BoolVar(&encCount, "count", false, "Show token count with output")
	cmd.Flags().BoolVar(&encMetrics, "metrics", false, "Show performance metrics")

	return cmd
}

func runEncode(_ *cobra.Command, args []string) error {
	if encLoad == "" {
		return fmt.Errorf("%w: --load is required", bpec.ErrInvalidArgument)
	}

	f, err := os.Open(encLoad)
	if err != nil {
		return bpec.NewIOError("open", encLoad, err)
	}
	defer f.Close()

	_, rules, err := tokfile.Load(f)
	if err != nil {
		return err
	}

	var input []byte
	if len(args) > 0 {
		input = []byte(strings.Join(args, " "))
	} else {
		var err error
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			return bpec.NewIOError("read", "", err)
		}
	}

	start := time.Now()
	seq := codec.Encode(input, rules)
	duration := time.Since(start)

	return printEncoded(seq.Tokens, input, duration, rules)
}

func printEncoded(tokens []int, input []byte, duration time.Duration, rules *merge.Rules) error {
	switch encOutput {
	case "json":
		out := map[string]any{"tokens": tokens}
		if encCount {
			out["count"] = len(tokens)
		}
		if encMetrics {
			out["metrics"] = map[string]any{
				"latency":     metrics.FormatLatency(duration),
				"tps":         metrics.TokensPerSecond(len(tokens), duration),
				"input_bytes": len(input),
			}
		}
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(data))
	case "newline":
		if encCount {
			fmt.Printf("count: %d\n", len(tokens))
		}
		for _, tok := range tokens {
			fmt.Println(tok)
		}
	case "space":
		if encCount {
			fmt.Printf("count: %d\n", len(tokens))
		}
		for i, tok := range tokens {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(tok)
		}
		fmt.Println()
	default:
		return fmt.Errorf("%w: unknown output format %q", bpec.ErrInvalidArgument, encOutput)
	}

	if encMetrics && encOutput != "json" {
		fmt.Println("metrics:")
		fmt.Printf("  latency: %s\n", metrics.FormatLatency(duration))
		fmt.Printf("  tps: %d\n", metrics.TokensPerSecond(len(tokens), duration))
		fmt.Printf("  input_bytes: %d\n", len(input))
	}
	return nil
}
