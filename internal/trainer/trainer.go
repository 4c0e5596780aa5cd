// Package trainer implements the incremental byte-pair-encoding trainer:
// instead of rescanning the whole sequence to find the next merge, it keeps
// a pair-count heap and an occurrence list per pair so each merge touches
// only the positions the merge actually changes. Indices into arena slices
// stand in for pointers throughout, so a merge's released slots are
// tracked with free lists rather than returned to a garbage collector.
package trainer

import (
	"sort"

	"github.com/agentstation/bpec"
	"github.com/agentstation/bpec/internal/config"
	"github.com/agentstation/bpec/internal/merge"
	"github.com/agentstation/bpec/internal/seqbuf"
	"github.com/agentstation/bpec/internal/vocab"
)

func newTrainer(seq *seqbuf.Sequence, settings *config.Settings) *Trainer {
	n := seq.Len()
	t := &Trainer{
		head:         -1,
		liveCount:    n,
		occFreeHead:  -1,
		pairFreeHead: -1,
		pmap:         newPairMap(max(n*2, 16)),
		settings:     settings,
	}
	if n == 0 {
		return t
	}

	t.nodes = make([]seqNode, n)
	for i, tok := range seq.Tokens {
		node := &t.nodes[i]
		node.tokenID = tok
		if i == 0 {
			node.prev = -1
		} else {
			node.prev = i - 1
		}
		if i == n-1 {
			node.next = -1
		} else {
			node.next = i + 1
		}
		node.occIndex = -1
		node.active = true
	}
	t.head = 0

	for idx := t.head; idx != -1; idx = t.nodes[idx].next {
		t.addPairForNode(idx)
	}
	return t
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// removeOccurrence detaches an occurrence from its pair's list and returns
// its slot to the pool, decrementing the pair's live count. updateHeap is
// false when the caller (mergePair) is about to release the whole pair
// entry anyway and a heap resift would be wasted work.
func (t *Trainer) removeOccurrence(occIndex int, updateHeap bool) {
	occ := &t.occs[occIndex]
	if !occ.active {
		return
	}
	pairIndex := occ.pairIndex
	entry := &t.pairs[pairIndex]

	if occ.prevOcc != -1 {
		t.occs[occ.prevOcc].nextOcc = occ.nextOcc
	} else {
		entry.occHead = occ.nextOcc
	}
	if occ.nextOcc != -1 {
		t.occs[occ.nextOcc].prevOcc = occ.prevOcc
	}
	if t.nodes[occ.leftNode].occIndex == occIndex {
		t.nodes[occ.leftNode].occIndex = -1
	}

	occ.active = false
	entry.count--
	if entry.count < 0 {
		entry.count = 0
	}

	t.releaseOcc(occIndex)

	if updateHeap {
		t.heapUpdate(pairIndex)
	}
}

func (t *Trainer) detachOccurrenceForNode(nodeIndex int) {
	if nodeIndex == -1 {
		return
	}
	node := &t.nodes[nodeIndex]
	if !node.active {
		return
	}
	if node.occIndex != -1 {
		t.removeOccurrence(node.occIndex, true)
	}
}

// addPairForNode records (or refreshes) the occurrence of the pair formed
// by nodeIndex and its current right neighbor. It is the only place a
// pair-entry gets created or a pair's count incremented, so every position
// that could start a pair funnels through here after any edit to the list.
func (t *Trainer) addPairForNode(nodeIndex int) {
	if nodeIndex == -1 {
		return
	}

	left := &t.nodes[nodeIndex]
	if !left.active {
		left.occIndex = -1
		return
	}

	rightIndex := left.next
	if rightIndex == -1 {
		left.occIndex = -1
		return
	}

	right := &t.nodes[rightIndex]
	if !right.active {
		left.occIndex = -1
		return
	}

	pairIndex, ok := t.pmap.Get(left.tokenID, right.tokenID)
	if !ok {
		pairIndex = t.acquirePairEntry()
		entry := &t.pairs[pairIndex]
		entry.tokenLeft = left.tokenID
		entry.tokenRight = right.tokenID
		t.pmap.Set(left.tokenID, right.tokenID, pairIndex)
	}

	if left.occIndex != -1 {
		t.removeOccurrence(left.occIndex, true)
	}

	entry := &t.pairs[pairIndex]
	occIdx := t.acquireOcc()
	occ := &t.occs[occIdx]
	occ.pairIndex = pairIndex
	occ.leftNode = nodeIndex
	occ.prevOcc = -1
	occ.nextOcc = entry.occHead
	occ.active = true

	if entry.occHead != -1 {
		t.occs[entry.occHead].prevOcc = occIdx
	}
	entry.occHead = occIdx
	entry.count++
	left.occIndex = occIdx

	t.heapUpdate(pairIndex)
}

// mergePair rewrites every live occurrence of pairIndex in place: the left
// node absorbs the right node's token under newTokenID and is relinked
// around the now-dead right node, then the pair table is refreshed at the
// merge point and its new left neighbor. Indexes into t.pairs are taken
// fresh on each use rather than cached, since addPairForNode below can grow
// that slice and invalidate any pointer taken before the call.
func (t *Trainer) mergePair(pairIndex int, newTokenID int) {
	rightToken := t.pairs[pairIndex].tokenRight

	// Detach every occurrence first, then visit their left nodes in sequence
	// order (node indices keep their relative order in the list), so an
	// overlapping run such as "aaa" merges greedily from the left.
	var lefts []int
	for t.pairs[pairIndex].occHead != -1 {
		occIdx := t.pairs[pairIndex].occHead
		lefts = append(lefts, t.occs[occIdx].leftNode)
		t.removeOccurrence(occIdx, false)
	}
	sort.Ints(lefts)

	for _, leftIdx := range lefts {
		if !t.nodes[leftIdx].active {
			continue
		}
		rightIdx := t.nodes[leftIdx].next
		if rightIdx == -1 {
			continue
		}
		if !t.nodes[rightIdx].active || t.nodes[rightIdx].tokenID != rightToken {
			continue
		}

		prevIdx := t.nodes[leftIdx].prev
		nextIdx := t.nodes[rightIdx].next

		if prevIdx != -1 {
			t.detachOccurrenceForNode(prevIdx)
		}
		t.detachOccurrenceForNode(rightIdx)

		t.nodes[leftIdx].tokenID = newTokenID
		t.nodes[leftIdx].next = nextIdx
		if nextIdx != -1 {
			t.nodes[nextIdx].prev = leftIdx
		}
		if prevIdx != -1 {
			t.nodes[prevIdx].next = leftIdx
		} else {
			t.head = leftIdx
		}

		t.nodes[rightIdx].active = false
		t.nodes[rightIdx].prev = -1
		t.nodes[rightIdx].next = -1
		t.nodes[rightIdx].occIndex = -1
		t.liveCount--

		if prevIdx != -1 {
			t.addPairForNode(prevIdx)
		}
		t.addPairForNode(leftIdx)
	}
}

// Train grows vocab from its current size to targetVocabSize by repeatedly
// merging the most frequent adjacent pair in seq, recording each accepted
// merge as a rule in rules. seq is rewritten in place to the final,
// post-merge token sequence. Training stops early, returning
// bpec.ErrNoMorePairs, if the sequence runs out of mergeable pairs before
// reaching targetVocabSize — most callers can treat that as a normal
// outcome rather than a failure.
func Train(v *vocab.Vocabulary, seq *seqbuf.Sequence, targetVocabSize int, rules *merge.Rules, opts ...config.Option) error {
	settings, err := config.Apply(opts...)
	if err != nil {
		return err
	}

	initialLength := seq.Len()
	t := newTrainer(seq, settings)

	settings.Logger.Debug("training started",
		"initial_vocab_size", v.Size(),
		"target_vocab_size", targetVocabSize,
		"sequence_length", initialLength,
	)

	merges := 0
	var stoppedEarly error
	for v.Size() < targetVocabSize {
		if t.liveCount < 2 {
			stoppedEarly = bpec.ErrNoMorePairs
			break
		}

		pairIndex := t.heapPopMax()
		if pairIndex == -1 {
			stoppedEarly = bpec.ErrNoMorePairs
			break
		}

		entry := t.pairs[pairIndex]
		if !entry.inUse || entry.count == 0 {
			t.releasePairEntry(pairIndex)
			continue
		}

		leftToken := entry.tokenLeft
		rightToken := entry.tokenRight
		occurrenceCount := entry.count

		mergedBytes := v.Merged(leftToken, rightToken)
		newIdx, err := v.Add(mergedBytes)
		if err != nil {
			return err
		}
		if err := rules.Append(leftToken, rightToken, newIdx); err != nil {
			return err
		}

		t.mergePair(pairIndex, newIdx)
		t.pmap.Delete(leftToken, rightToken)
		t.releasePairEntry(pairIndex)

		merges++
		if settings.ProgressInterval > 0 && merges%settings.ProgressInterval == 0 {
			settings.Logger.Debug("merge accepted",
				"merge", merges,
				"left", leftToken,
				"right", rightToken,
				"result", newIdx,
				"count", occurrenceCount,
				"vocab_size", v.Size(),
			)
		}
	}

	pos := 0
	for idx := t.head; idx != -1; idx = t.nodes[idx].next {
		if !t.nodes[idx].active {
			continue
		}
		seq.Tokens[pos] = t.nodes[idx].tokenID
		pos++
	}
	seq.Tokens = seq.Tokens[:pos]

	settings.Logger.Debug("training complete",
		"merges", merges,
		"initial_length", initialLength,
		"final_length", seq.Len(),
		"final_vocab_size", v.Size(),
	)

	return stoppedEarly
}
