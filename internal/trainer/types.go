package trainer

import "github.com/agentstation/bpec/internal/config"

// seqNode is one position in the working sequence, held in a doubly linked
// list threaded through prev/next arena indices rather than pointers so the
// whole sequence lives in one contiguous slice. A node is logically removed
// by clearing active rather than by shrinking the slice, since every other
// node's prev/next still refers to it by index.
type seqNode struct {
	tokenID  int
	prev     int
	next     int
	occIndex int // the occurrence this node is currently the left half of, or -1
	active   bool
}

// occurrence records one (left, right) adjacency: a node that currently
// starts a live instance of some pair. Occurrences for the same pair form a
// doubly linked list rooted at that pair's pairEntry.occHead, so merging a
// pair can walk exactly its occurrences instead of rescanning the sequence.
type occurrence struct {
	pairIndex int
	leftNode  int
	prevOcc   int
	nextOcc   int
	active    bool
}

// pairEntry is the aggregate state for one distinct adjacent token pair:
// its current count and the head of its occurrence list. heapIndex caches
// the entry's current slot in the trainer's heap so count changes can
// resift in O(log n) instead of searching the heap for the element to move.
type pairEntry struct {
	tokenLeft  int
	tokenRight int
	count      int
	heapIndex  int
	occHead    int
	nextFree   int
	inUse      bool
}

// Trainer holds the arenas and indexes the incremental trainer needs: the
// sequence's linked-list nodes, the occurrence and pair-entry pools (each
// with its own free list so a merge's released slots are reused instead of
// growing the arena forever), the pair lookup map, and the count-ordered
// heap over live pairs.
type Trainer struct {
	nodes     []seqNode
	head      int
	liveCount int

	occs        []occurrence
	occFreeHead int

	pairs        []pairEntry
	pairFreeHead int

	pmap *pairMap
	heap []int

	settings *config.Settings
}
