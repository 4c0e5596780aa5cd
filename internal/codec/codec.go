// Package codec applies a trained merge list to new text (encode) and
// reverses a token sequence back to bytes (decode). Each rule is folded
// into a dense token slice with a two-cursor read/write rewrite.
package codec

import (
	"github.com/agentstation/bpec/internal/merge"
	"github.com/agentstation/bpec/internal/seqbuf"
	"github.com/agentstation/bpec/internal/vocab"
)

// Encode tokenizes raw to the base byte alphabet, then rewrites it in
// place by applying every rule in rules, in stored order: wherever the
// sequence holds rule.Left immediately followed by rule.Right, both are
// replaced by rule.Result. Rule order is significant and must match the
// order the rules were learned in.
func Encode(raw []byte, rules *merge.Rules) *seqbuf.Sequence {
	seq := seqbuf.FromBytes(raw)
	for i := 0; i < rules.Len(); i++ {
		r := rules.At(i)
		applyRule(seq, r.Left, r.Right, r.Result)
	}
	return seq
}

// applyRule rewrites seq in place, replacing every non-overlapping
// left-to-right occurrence of (left, right) with result.
func applyRule(seq *seqbuf.Sequence, left, right, result int) {
	tokens := seq.Tokens
	write := 0
	for read := 0; read < len(tokens); read++ {
		if read < len(tokens)-1 && tokens[read] == left && tokens[read+1] == right {
			tokens[write] = result
			write++
			read++
			continue
		}
		tokens[write] = tokens[read]
		write++
	}
	seq.Tokens = tokens[:write]
}

// Decode concatenates the vocabulary bytes for each token in seq, in
// order, reproducing the original corpus for any sequence produced by
// Encode with the same vocabulary and rules.
func Decode(seq *seqbuf.Sequence, v *vocab.Vocabulary) []byte {
	total := 0
	for _, id := range seq.Tokens {
		total += len(v.Bytes(id))
	}
	out := make([]byte, 0, total)
	for _, id := range seq.Tokens {
		out = append(out, v.Bytes(id)...)
	}
	return out
}
