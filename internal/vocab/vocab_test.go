package vocab

import (
	"bytes"
	"errors"
	"testing"

	"github.com/agentstation/bpec"
)

func TestInitBaseCoversAllBytes(t *testing.T) {
	v := New(512)
	v.InitBase()

	if v.Size() != 256 {
		t.Fatalf("Size() = %d, want 256", v.Size())
	}
	for b := 0; b < 256; b++ {
		got := v.Bytes(b)
		if !bytes.Equal(got, []byte{byte(b)}) {
			t.Fatalf("token %d bytes = %v, want [%d]", b, got, b)
		}
	}
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	v := New(258)
	v.InitBase()

	id, err := v.Add([]byte("ab"))
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if id != 256 {
		t.Fatalf("id = %d, want 256", id)
	}

	id2, err := v.Add([]byte("cd"))
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if id2 != 257 {
		t.Fatalf("id2 = %d, want 257", id2)
	}
}

func TestAddCapacityExceeded(t *testing.T) {
	v := New(256)
	v.InitBase()

	_, err := v.Add([]byte("x"))
	if err == nil {
		t.Fatal("expected CapacityExceeded error, got nil")
	}
	var capErr *bpec.CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("error = %v, want *bpec.CapacityError", err)
	}
	if capErr.Component != "vocabulary" {
		t.Fatalf("Component = %q, want %q", capErr.Component, "vocabulary")
	}
}

func TestMergedConcatenatesBytes(t *testing.T) {
	v := New(256)
	v.InitBase()

	merged := v.Merged(int('a'), int('b'))
	if !bytes.Equal(merged, []byte("ab")) {
		t.Fatalf("Merged = %q, want %q", merged, "ab")
	}
}
