package tokfile

import (
	"bytes"
	"errors"
	"testing"

	"github.com/agentstation/bpec"
	"github.com/agentstation/bpec/internal/merge"
	"github.com/agentstation/bpec/internal/vocab"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	v := vocab.New(300)
	v.InitBase()
	ab, err := v.Add(v.Merged(int('a'), int('b')))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	rules := merge.New(1)
	if err := rules.Append(int('a'), int('b'), ab); err != nil {
		t.Fatalf("Append: %v", err)
	}

	var buf bytes.Buffer
	if err := Save(&buf, v, rules); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loadedVocab, loadedRules, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loadedVocab.Size() != v.Size() {
		t.Fatalf("loaded vocab size = %d, want %d", loadedVocab.Size(), v.Size())
	}
	if string(loadedVocab.Bytes(ab)) != "ab" {
		t.Fatalf("loaded token %d = %q, want %q", ab, loadedVocab.Bytes(ab), "ab")
	}
	if loadedRules.Len() != 1 {
		t.Fatalf("loaded rules.Len() = %d, want 1", loadedRules.Len())
	}
	got := loadedRules.At(0)
	if got.Left != int('a') || got.Right != int('b') || got.Result != ab {
		t.Fatalf("loaded rule = %+v", got)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("XXXX")
	_, _, err := Load(buf)
	if !errors.Is(err, bpec.ErrCorruptTokenizer) {
		t.Fatalf("err = %v, want ErrCorruptTokenizer", err)
	}
}

func TestLoadRejectsBadVersion(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(magic[:])
	if err := writeU32(&buf, 99); err != nil {
		t.Fatalf("writeU32: %v", err)
	}
	_, _, err := Load(&buf)
	if !errors.Is(err, bpec.ErrCorruptTokenizer) {
		t.Fatalf("err = %v, want ErrCorruptTokenizer", err)
	}
}

func TestLoadRejectsTruncatedFile(t *testing.T) {
	v := vocab.New(256)
	v.InitBase()
	rules := merge.New(0)

	var buf bytes.Buffer
	if err := Save(&buf, v, rules); err != nil {
		t.Fatalf("Save: %v", err)
	}
	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-10])
	_, _, err := Load(truncated)
	var ioErr *bpec.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("err = %v, want *bpec.IOError", err)
	}
}
