// Package vocab holds the append-only vocabulary of byte-string tokens
// learned during BPE training.
package vocab

import "github.com/agentstation/bpec"

// baseTokenCount is the number of single-byte tokens every vocabulary
// starts with: one per possible byte value.
const baseTokenCount = 256

// Vocabulary is an ordered, append-only sequence of tokens indexed by
// insertion order. Token IDs 0..255 are always the 256 single-byte tokens;
// IDs 256 and above are learned merges. Indices are stable once assigned.
type Vocabulary struct {
	tokens   [][]byte
	capacity int
}

// New allocates a vocabulary with room for up to capacity tokens.
func New(capacity int) *Vocabulary {
	return &Vocabulary{
		tokens:   make([][]byte, 0, capacity),
		capacity: capacity,
	}
}

// InitBase appends the 256 single-byte tokens in order 0..255. Callers
// normally call this once, immediately after New.
func (v *Vocabulary) InitBase() {
	for b := 0; b < baseTokenCount; b++ {
		v.tokens = append(v.tokens, []byte{byte(b)})
	}
}

// Add appends a new owned copy of bytes to the vocabulary and returns its
// token ID. It returns a *bpec.CapacityError if the vocabulary is already
// at capacity.
func (v *Vocabulary) Add(b []byte) (int, error) {
	if len(v.tokens) >= v.capacity {
		return -1, &bpec.CapacityError{Component: "vocabulary", Size: len(v.tokens), Capacity: v.capacity}
	}
	owned := make([]byte, len(b))
	copy(owned, b)
	v.tokens = append(v.tokens, owned)
	return len(v.tokens) - 1, nil
}

// Size returns the current number of tokens in the vocabulary.
func (v *Vocabulary) Size() int { return len(v.tokens) }

// Capacity returns the maximum number of tokens the vocabulary can hold.
func (v *Vocabulary) Capacity() int { return v.capacity }

// Bytes returns the byte string owned by token id. The returned slice
// must be treated as read-only; callers that need to mutate it should
// copy first.
func (v *Vocabulary) Bytes(id int) []byte { return v.tokens[id] }

// Merged returns a freshly allocated byte string equal to the
// concatenation of token left's bytes followed by token right's bytes.
// This is the byte payload for a new merge-result token, never a
// vocabulary entry by itself.
func (v *Vocabulary) Merged(left, right int) []byte {
	l, r := v.tokens[left], v.tokens[right]
	out := make([]byte, 0, len(l)+len(r))
	out = append(out, l...)
	out = append(out, r...)
	return out
}
