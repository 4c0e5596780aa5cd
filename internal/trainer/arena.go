package trainer

// acquireOcc pops an occurrence slot off the free list, or appends a fresh
// one if the free list is empty. append handles arena growth; the only
// state we still manage by hand is the free list itself.
func (t *Trainer) acquireOcc() int {
	if t.occFreeHead != -1 {
		idx := t.occFreeHead
		occ := &t.occs[idx]
		t.occFreeHead = occ.nextOcc
		occ.prevOcc = -1
		occ.nextOcc = -1
		occ.active = true
		return idx
	}
	t.occs = append(t.occs, occurrence{pairIndex: -1, leftNode: -1, prevOcc: -1, nextOcc: -1, active: true})
	return len(t.occs) - 1
}

func (t *Trainer) releaseOcc(index int) {
	occ := &t.occs[index]
	occ.active = false
	occ.nextOcc = t.occFreeHead
	occ.prevOcc = -1
	t.occFreeHead = index
}

// acquirePairEntry pops a pair-entry slot off the free list, or appends a
// fresh one. Appending may reallocate t.pairs's backing array, so callers
// must not hold a *pairEntry taken before this call across it — index into
// t.pairs again afterward instead.
func (t *Trainer) acquirePairEntry() int {
	if t.pairFreeHead != -1 {
		idx := t.pairFreeHead
		entry := &t.pairs[idx]
		t.pairFreeHead = entry.nextFree
		entry.heapIndex = -1
		entry.occHead = -1
		entry.count = 0
		entry.tokenLeft = -1
		entry.tokenRight = -1
		entry.nextFree = -1
		entry.inUse = true
		return idx
	}
	t.pairs = append(t.pairs, pairEntry{
		tokenLeft:  -1,
		tokenRight: -1,
		heapIndex:  -1,
		occHead:    -1,
		nextFree:   -1,
		inUse:      true,
	})
	return len(t.pairs) - 1
}

func (t *Trainer) releasePairEntry(index int) {
	entry := &t.pairs[index]
	entry.inUse = false
	entry.heapIndex = -1
	entry.occHead = -1
	entry.count = 0
	entry.tokenLeft = -1
	entry.tokenRight = -1
	entry.nextFree = t.pairFreeHead
	t.pairFreeHead = index
}
