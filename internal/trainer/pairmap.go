package trainer

// pairMap is an open-addressing hash map from a packed (left,right) token
// pair key to a pair-entry arena index. It keeps its load factor below
// 0.75 and grows by doubling; deletions use backward-shift so that a
// later probe chain never breaks.
type pairMap struct {
	keys   []uint64
	values []int // -1 means empty slot
	size   int
}

const emptySlot int = -1

func newPairMap(capacityHint int) *pairMap {
	cap := nextPow2(capacityHint)
	if cap < 16 {
		cap = 16
	}
	m := &pairMap{
		keys:   make([]uint64, cap),
		values: make([]int, cap),
	}
	for i := range m.values {
		m.values[i] = emptySlot
	}
	return m
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func packPairKey(left, right int) uint64 {
	return uint64(uint32(left))<<32 | uint64(uint32(right))
}

// hash64 is the MurmurHash3 64-bit finalizer (fmix64) over the packed key;
// avalanches well enough for the small, short-lived key space a BPE
// training run produces.
func hash64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

func (m *pairMap) slotFor(key uint64) int {
	mask := len(m.values) - 1
	idx := int(hash64(key)) & mask
	for m.values[idx] != emptySlot && m.keys[idx] != key {
		idx = (idx + 1) & mask
	}
	return idx
}

func (m *pairMap) Get(left, right int) (int, bool) {
	idx := m.slotFor(packPairKey(left, right))
	if m.values[idx] == emptySlot {
		return 0, false
	}
	return m.values[idx], true
}

func (m *pairMap) Set(left, right int, value int) {
	if (m.size+1)*4 >= len(m.values)*3 {
		m.rehash(len(m.values) * 2)
	}
	key := packPairKey(left, right)
	idx := m.slotFor(key)
	if m.values[idx] == emptySlot {
		m.size++
	}
	m.keys[idx] = key
	m.values[idx] = value
}

func (m *pairMap) Delete(left, right int) {
	key := packPairKey(left, right)
	mask := len(m.values) - 1
	idx := int(hash64(key)) & mask
	for m.values[idx] != emptySlot && m.keys[idx] != key {
		idx = (idx + 1) & mask
	}
	if m.values[idx] == emptySlot {
		return
	}
	m.values[idx] = emptySlot
	m.size--

	// Backward-shift delete: re-home every entry in the probe chain that
	// follows, since removing a slot in open addressing can otherwise
	// strand a later entry behind the new hole.
	next := (idx + 1) & mask
	for m.values[next] != emptySlot {
		rekey := m.keys[next]
		revalue := m.values[next]
		m.values[next] = emptySlot

		slot := int(hash64(rekey)) & mask
		for m.values[slot] != emptySlot {
			slot = (slot + 1) & mask
		}
		m.keys[slot] = rekey
		m.values[slot] = revalue

		next = (next + 1) & mask
	}
}

func (m *pairMap) rehash(newCapacity int) {
	newCapacity = nextPow2(newCapacity)
	fresh := &pairMap{
		keys:   make([]uint64, newCapacity),
		values: make([]int, newCapacity),
	}
	for i := range fresh.values {
		fresh.values[i] = emptySlot
	}
	mask := newCapacity - 1
	for i, v := range m.values {
		if v == emptySlot {
			continue
		}
		key := m.keys[i]
		slot := int(hash64(key)) & mask
		for fresh.values[slot] != emptySlot {
			slot = (slot + 1) & mask
		}
		fresh.keys[slot] = key
		fresh.values[slot] = v
		fresh.size++
	}
	*m = *fresh
}
