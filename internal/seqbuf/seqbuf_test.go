package seqbuf

import "testing"

func TestFromBytes(t *testing.T) {
	s := FromBytes([]byte("ab"))
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	want := []int{int('a'), int('b')}
	for i, tok := range s.Tokens {
		if tok != want[i] {
			t.Fatalf("Tokens[%d] = %d, want %d", i, tok, want[i])
		}
	}
}

func TestFromBytesEmpty(t *testing.T) {
	s := FromBytes(nil)
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}
