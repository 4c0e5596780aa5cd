// Package merge holds the ordered, append-only list of BPE merge rules
// learned during training.
package merge

import "github.com/agentstation/bpec"

// Rule records that token Left followed by token Right was replaced with
// token Result during training.
type Rule struct {
	Left   int
	Right  int
	Result int
}

// Rules is the ordered sequence of merge rules produced by a training
// run. Append order is the canonical order of application during
// encoding: rules must be applied in the order they were learned.
type Rules struct {
	rules    []Rule
	capacity int
}

// New allocates a rule list with room for up to capacity rules.
func New(capacity int) *Rules {
	if capacity < 0 {
		capacity = 0
	}
	return &Rules{rules: make([]Rule, 0, capacity), capacity: capacity}
}

// Append records a new merge rule. It returns a *bpec.CapacityError if the
// list is already at capacity.
func (r *Rules) Append(left, right, result int) error {
	if len(r.rules) >= r.capacity {
		return &bpec.CapacityError{Component: "merge rules", Size: len(r.rules), Capacity: r.capacity}
	}
	r.rules = append(r.rules, Rule{Left: left, Right: right, Result: result})
	return nil
}

// Len returns the number of rules recorded so far.
func (r *Rules) Len() int { return len(r.rules) }

// At returns the rule at position i, in application order.
func (r *Rules) At(i int) Rule { return r.rules[i] }

// All returns the full rule slice, in application order. The returned
// slice aliases internal storage and must be treated as read-only.
func (r *Rules) All() []Rule { return r.rules }
