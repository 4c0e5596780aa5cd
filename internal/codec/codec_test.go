package codec

import (
	"testing"

	"github.com/agentstation/bpec/internal/merge"
	"github.com/agentstation/bpec/internal/vocab"
)

func baseVocab() *vocab.Vocabulary {
	v := vocab.New(300)
	v.InitBase()
	return v
}

func TestEncodeAppliesRulesInOrder(t *testing.T) {
	v := baseVocab()
	newID, _ := v.Add(v.Merged(int('a'), int('b')))

	rules := merge.New(1)
	if err := rules.Append(int('a'), int('b'), newID); err != nil {
		t.Fatalf("Append: %v", err)
	}

	seq := Encode([]byte("ababc"), rules)
	want := []int{newID, newID, int('c')}
	if len(seq.Tokens) != len(want) {
		t.Fatalf("Tokens = %v, want %v", seq.Tokens, want)
	}
	for i := range want {
		if seq.Tokens[i] != want[i] {
			t.Fatalf("Tokens = %v, want %v", seq.Tokens, want)
		}
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	rules := merge.New(0)
	seq := Encode(nil, rules)
	if seq.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", seq.Len())
	}
}

func TestDecodeReversesEncode(t *testing.T) {
	v := baseVocab()
	ab, _ := v.Add(v.Merged(int('a'), int('b')))
	abab, _ := v.Add(v.Merged(ab, ab))

	rules := merge.New(2)
	if err := rules.Append(int('a'), int('b'), ab); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := rules.Append(ab, ab, abab); err != nil {
		t.Fatalf("Append: %v", err)
	}

	seq := Encode([]byte("abab"), rules)
	if len(seq.Tokens) != 1 || seq.Tokens[0] != abab {
		t.Fatalf("Tokens = %v, want [%d]", seq.Tokens, abab)
	}

	got := Decode(seq, v)
	if string(got) != "abab" {
		t.Fatalf("Decode = %q, want %q", got, "abab")
	}
}

func TestDecodeEmptySequence(t *testing.T) {
	v := baseVocab()
	rules := merge.New(0)
	seq := Encode(nil, rules)
	got := Decode(seq, v)
	if len(got) != 0 {
		t.Fatalf("Decode = %q, want empty", got)
	}
}
