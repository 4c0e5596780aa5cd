// Package bpec implements the training, encoding, and decoding core of a
// byte-level byte-pair-encoding (BPE) tokenizer.
//
// # Overview
//
// bpec learns a subword vocabulary directly from raw bytes: it starts from
// the 256 single-byte tokens and repeatedly merges the most frequent
// adjacent pair of tokens until a target vocabulary size is reached. The
// interesting part is the incremental trainer in internal/trainer, which
// keeps each merge step near-linear in the number of positions it actually
// touches instead of rescanning the whole corpus per merge.
//
// # Basic usage
//
//	vocab := vocab.New(targetSize)
//	vocab.InitBase()
//	seq := seqbuf.FromBytes(corpus)
//	rules := merge.New(targetSize - 256)
//	err := trainer.Train(vocab, seq, targetSize, rules)
//
//	encoded := codec.Encode(text, rules)
//	decoded := codec.Decode(encoded, vocab)
//
// # Error handling
//
// Errors surfaced across package boundaries are typed so callers can
// distinguish capacity exhaustion, I/O failures, and corrupt tokenizer
// files with errors.As / errors.Is rather than string matching.
package bpec

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that don't carry extra structured detail.
var (
	// ErrNoMorePairs indicates training stopped because the sequence admits
	// no further merges. This is a normal termination condition, not a
	// failure; callers that care can check it, most won't.
	ErrNoMorePairs = errors.New("bpec: no more pairs to merge")

	// ErrCorruptTokenizer indicates a tokenizer file failed a structural
	// invariant check: bad magic, unsupported version, or a merge rule whose
	// result ID is not 256+i or not greater than both source IDs. A file
	// that ends early is reported as an *IOError, not as this error.
	ErrCorruptTokenizer = errors.New("bpec: corrupt tokenizer file")

	// ErrInvalidArgument indicates a CLI or API argument failed validation.
	ErrInvalidArgument = errors.New("bpec: invalid argument")
)

// CapacityError reports that an append-only arena (vocabulary or merge
// rule list) has reached its fixed capacity.
type CapacityError struct {
	Component string // "vocabulary" or "merge rules"
	Size      int    // current size at the time of the failed append
	Capacity  int    // the fixed capacity that was exceeded
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("bpec: %s capacity exceeded (size=%d, capacity=%d)", e.Component, e.Size, e.Capacity)
}

// IOError wraps a failure reading or writing a tokenizer file or training
// corpus, recording the operation and path for diagnostics.
type IOError struct {
	Op   string // "read", "write", "open"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("bpec: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("bpec: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// NewIOError constructs an *IOError.
func NewIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}

// ConfigError reports that a functional option was given an invalid value.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bpec: invalid config %s=%v", e.Field, e.Value)
}
