package merge

import (
	"errors"
	"testing"

	"github.com/agentstation/bpec"
)

func TestAppendOrderAndResultID(t *testing.T) {
	r := New(2)

	if err := r.Append(97, 98, 256); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := r.Append(256, 256, 257); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	for i, rule := range r.All() {
		want := 256 + i
		if rule.Result != want {
			t.Fatalf("rule %d Result = %d, want %d", i, rule.Result, want)
		}
		if rule.Left >= rule.Result || rule.Right >= rule.Result {
			t.Fatalf("rule %d sources not strictly less than result: %+v", i, rule)
		}
	}
}

func TestAppendCapacityExceeded(t *testing.T) {
	r := New(1)
	if err := r.Append(0, 1, 256); err != nil {
		t.Fatalf("Append: %v", err)
	}
	err := r.Append(2, 3, 257)
	var capErr *bpec.CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("error = %v, want *bpec.CapacityError", err)
	}
}
