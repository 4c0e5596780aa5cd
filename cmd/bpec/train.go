package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpec"
	"github.com/agentstation/bpec/internal/config"
	"github.com/agentstation/bpec/internal/merge"
	"github.com/agentstation/bpec/internal/metrics"
	"github.com/agentstation/bpec/internal/seqbuf"
	"github.com/agentstation/bpec/internal/tokfile"
	"github.com/agentstation/bpec/internal/trainer"
	"github.com/agentstation/bpec/internal/vocab"
)

const (
	minVocabSize = 256
	maxVocabSize = 1 << 24
)

var (
	trainVocabSize int
	trainInput     string
	trainSave      string
	trainVerbose   bool
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Learn a vocabulary and merge rules from a corpus",
		Long: `Train reads a corpus of raw bytes and incrementally learns merge
rules until the vocabulary reaches the target size or no further merge is
possible.`,
		Example: `  bpec train --input corpus.txt --vocab-size 2048 --save tokenizer.bin`,
		RunE:    runTrain,
	}

	cmd.Flags().IntVarP(&trainVocabSize, "vocab-size", "v", 512, "Target vocabulary size (256-16777216)")
	cmd.Flags().StringVarP(&trainInput, "input", "i", "input.txt", "Training corpus path")
	cmd.Flags().StringVarP(&trainSave, "save", "s", "", "Save the trained tokenizer to this path")
	cmd.Flags().BoolVar(&trainVerbose, "verbose", false, "Log merge progress to stderr")

	return cmd
}

func runTrain(_ *cobra.Command, args []string) error {
	if trainVocabSize < minVocabSize || trainVocabSize > maxVocabSize {
		return fmt.Errorf("%w: vocab-size must be between %d and %d, got %d", bpec.ErrInvalidArgument, minVocabSize, maxVocabSize, trainVocabSize)
	}

	corpus, err := os.ReadFile(trainInput)
	if err != nil {
		return bpec.NewIOError("read", trainInput, err)
	}

	logLevel := slog.LevelWarn
	if trainVerbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	v := vocab.New(trainVocabSize)
	v.InitBase()
	seq := seqbuf.FromBytes(corpus)
	initialLength := seq.Len()
	rules := merge.New(trainVocabSize - 256)

	start := time.Now()
	err = trainer.Train(v, seq, trainVocabSize, rules, config.WithLogger(logger))
	duration := time.Since(start)

	if err != nil && !errors.Is(err, bpec.ErrNoMorePairs) {
		return err
	}

	fmt.Printf("Trained vocabulary: %d tokens (%d merges)\n", v.Size(), rules.Len())
	fmt.Printf("Sequence length: %d -> %d tokens\n", initialLength, seq.Len())
	fmt.Printf("Compression ratio: %.2fx\n", metrics.CompressionRatio(initialLength, seq.Len()))
	fmt.Printf("Training time: %s\n", metrics.FormatLatency(duration))
	if errors.Is(err, bpec.ErrNoMorePairs) {
		fmt.Println("Training stopped early: no more mergeable pairs")
	}

	if trainSave != "" {
		f, err := os.Create(trainSave)
		if err != nil {
			return bpec.NewIOError("open", trainSave, err)
		}
		defer f.Close()
		if err := tokfile.Save(f, v, rules); err != nil {
			return err
		}
		fmt.Printf("Saved tokenizer to %s\n", trainSave)
	}

	return nil
}
