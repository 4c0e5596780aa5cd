package trainer

// The pair heap is an array-backed max-heap over pair-entry arena indices,
// keyed by each entry's live count. Each pairEntry caches its own slot in
// heapIndex so both "increase-key" and "decrease-key" are O(log n) sifts
// instead of a linear search for the element to move. Pair counts go up as
// well as down during training, so a plain container/heap push/pop isn't
// enough on its own; the cached index is what makes an arbitrary entry's
// count update cheap.

func (t *Trainer) heapLess(a, b int) bool {
	return t.pairs[a].count < t.pairs[b].count
}

func (t *Trainer) heapSwap(i, j int) {
	a, b := t.heap[i], t.heap[j]
	t.heap[i], t.heap[j] = b, a
	t.pairs[a].heapIndex = j
	t.pairs[b].heapIndex = i
}

func (t *Trainer) heapSiftUp(idx int) {
	for idx > 0 {
		parent := (idx - 1) / 2
		if !t.heapLess(t.heap[parent], t.heap[idx]) {
			break
		}
		t.heapSwap(idx, parent)
		idx = parent
	}
}

func (t *Trainer) heapSiftDown(idx int) {
	n := len(t.heap)
	for {
		left := idx*2 + 1
		right := left + 1
		largest := idx
		if left < n && t.heapLess(t.heap[largest], t.heap[left]) {
			largest = left
		}
		if right < n && t.heapLess(t.heap[largest], t.heap[right]) {
			largest = right
		}
		if largest == idx {
			break
		}
		t.heapSwap(idx, largest)
		idx = largest
	}
}

func (t *Trainer) heapPush(pairIndex int) {
	idx := len(t.heap)
	t.heap = append(t.heap, pairIndex)
	t.pairs[pairIndex].heapIndex = idx
	t.heapSiftUp(idx)
}

// heapRemoveAt removes the entry currently at heap slot idx, filling the
// hole with the last element and re-settling it in both directions (the
// replacement's count relative to its new neighbors is unknown).
func (t *Trainer) heapRemoveAt(idx int) {
	last := len(t.heap) - 1
	removed := t.heap[idx]
	t.heap[idx] = t.heap[last]
	t.heap = t.heap[:last]
	if idx < len(t.heap) {
		t.pairs[t.heap[idx]].heapIndex = idx
		t.heapSiftDown(idx)
		t.heapSiftUp(idx)
	}
	t.pairs[removed].heapIndex = -1
}

// heapUpdate restores the heap invariant for pairIndex after its count has
// changed. If the entry's count has dropped to zero it is evicted from the
// heap entirely (heapIndex=-1): count>0 must hold iff heapIndex!=-1.
func (t *Trainer) heapUpdate(pairIndex int) {
	entry := &t.pairs[pairIndex]
	if entry.count <= 0 {
		if entry.heapIndex != -1 {
			t.heapRemoveAt(entry.heapIndex)
		}
		entry.heapIndex = -1
		return
	}
	if entry.heapIndex == -1 {
		t.heapPush(pairIndex)
		return
	}
	idx := entry.heapIndex
	t.heapSiftUp(idx)
	t.heapSiftDown(idx)
}

// heapPopMax removes and returns the pair-entry index with the largest
// count, or -1 if the heap is empty.
func (t *Trainer) heapPopMax() int {
	if len(t.heap) == 0 {
		return -1
	}
	top := t.heap[0]
	t.heapRemoveAt(0)
	return top
}
