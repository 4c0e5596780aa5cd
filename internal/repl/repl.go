// Package repl implements the interactive "type a line, see its tokens"
// session: each line read from the input is encoded, reported with its
// compression ratio and encode time, then round-trip-verified by
// decoding. A round-trip mismatch is reported, not fatal.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/agentstation/bpec/internal/codec"
	"github.com/agentstation/bpec/internal/merge"
	"github.com/agentstation/bpec/internal/metrics"
	"github.com/agentstation/bpec/internal/vocab"
)

// Session reads lines from in, tokenizes each, and reports it to out. It
// runs until in is exhausted or a quit command is read.
type Session struct {
	Vocab *vocab.Vocabulary
	Rules *merge.Rules
	In    io.Reader
	Out   io.Writer
}

// Run executes the REPL loop. It returns nil on normal EOF.
func (s *Session) Run() error {
	fmt.Fprintln(s.Out, "Interactive tokenizer")
	fmt.Fprintf(s.Out, "Loaded vocabulary size: %d\n", s.Vocab.Size())
	fmt.Fprintf(s.Out, "Loaded merge rules: %d\n\n", s.Rules.Len())
	fmt.Fprintln(s.Out, "Type text to tokenize. Commands: quit, exit, :help.")
	fmt.Fprintln(s.Out)

	scanner := bufio.NewScanner(s.In)
	for {
		fmt.Fprint(s.Out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.Out, "\nEOF encountered, exiting.")
			return scanner.Err()
		}

		line := scanner.Text()
		switch line {
		case "quit", "exit":
			return nil
		case ":help":
			s.printHelp()
			continue
		case "":
			continue
		}

		s.tokenizeLine(line)
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.Out, "Commands:")
	fmt.Fprintln(s.Out, "  quit/exit    Leave the session")
	fmt.Fprintln(s.Out, "  :help        Show this message")
}

func (s *Session) tokenizeLine(line string) {
	input := []byte(line)

	start := time.Now()
	encoded := codec.Encode(input, s.Rules)
	encodeDuration := time.Since(start)

	fmt.Fprintf(s.Out, "Tokens (%d): %v\n", encoded.Len(), encoded.Tokens)
	fmt.Fprintf(s.Out, "Length bytes: %d\n", len(input))
	fmt.Fprintf(s.Out, "Token count: %d\n", encoded.Len())

	if encoded.Len() > 0 {
		fmt.Fprintf(s.Out, "Compression ratio: %.3fx\n", metrics.CompressionRatio(len(input), encoded.Len()))
	} else {
		fmt.Fprintln(s.Out, "Compression ratio: N/A")
	}
	fmt.Fprintf(s.Out, "Encode time: %s\n", metrics.FormatLatency(encodeDuration))

	decoded := codec.Decode(encoded, s.Vocab)
	match := string(decoded) == line
	fmt.Fprintf(s.Out, "Round-trip match: %s\n", yesNo(match))
	fmt.Fprintln(s.Out)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
