package list

const (
	defaultArenaChunkSize = 64
	minArenaChunkSize     = 8
	// The sentinel always occupies the first slot of an arena.
	sentinelIdx uint32 = 0
)

// nodeRef is a stable handle of a node inside its arena.
// A released slot bumps its generation, so every handle
// still pointing at it becomes detectably stale.
type nodeRef struct {
	idx uint32
	gen uint32
}

// nodeArena owns all the nodes of one list.
// Nodes are stored in fixed size chunks. Chunks are never reallocated
// after creation, then the address of a live node value is stable.
// Released slots are recycled before a new chunk is allocated.
type nodeArena[T comparable] struct {
	chunks    [][]nodeElement[T]
	chunkSize uint32
	allocated uint32 // High water mark of the slots ever handed out.
	recycled  []uint32
}

func newNodeArena[T comparable](chunkSize uint32) *nodeArena[T] {
	if chunkSize < minArenaChunkSize {
		chunkSize = minArenaChunkSize
	}
	arena := &nodeArena[T]{
		chunkSize: chunkSize,
		chunks:    make([][]nodeElement[T], 0, 4),
		recycled:  make([]uint32, 0, chunkSize),
	}
	// Default constructed node is the self-looped sentinel.
	idx := arena.allocate()
	root := arena.node(idx)
	root.prev, root.next = idx, idx
	return arena
}

func (arena *nodeArena[T]) allocate() uint32 {
	var idx uint32
	if rl := len(arena.recycled); rl > 0 {
		idx = arena.recycled[rl-1]
		arena.recycled = arena.recycled[:rl-1]
	} else {
		if arena.allocated/arena.chunkSize >= uint32(len(arena.chunks)) {
			arena.chunks = append(arena.chunks, make([]nodeElement[T], arena.chunkSize))
		}
		idx = arena.allocated
		arena.allocated++
	}
	e := arena.node(idx)
	e.inUse = true
	return idx
}

// alloc creates a value node with both links unset.
// The caller has to finish the wiring.
func (arena *nodeArena[T]) alloc(v T) uint32 {
	idx := arena.allocate()
	e := arena.node(idx)
	e.value = v
	e.prev, e.next = idx, idx
	return idx
}

func (arena *nodeArena[T]) release(idx uint32) {
	if idx == sentinelIdx {
		return
	}
	e := arena.node(idx)
	if e == nil || !e.inUse {
		return
	}
	var zero T
	// Avoid memory leaks, the value may hold references.
	e.value = zero
	e.prev, e.next = sentinelIdx, sentinelIdx
	e.inUse = false
	e.gen++
	arena.recycled = append(arena.recycled, idx)
}

func (arena *nodeArena[T]) node(idx uint32) *nodeElement[T] {
	if arena == nil || idx/arena.chunkSize >= uint32(len(arena.chunks)) {
		return nil
	}
	return &arena.chunks[idx/arena.chunkSize][idx%arena.chunkSize]
}

func (arena *nodeArena[T]) ref(idx uint32) nodeRef {
	return nodeRef{idx: idx, gen: arena.node(idx).gen}
}

// lookup resolves the handle into a live node.
func (arena *nodeArena[T]) lookup(ref nodeRef) (*nodeElement[T], bool) {
	if arena == nil || ref.idx >= arena.allocated {
		return nil, false
	}
	e := arena.node(ref.idx)
	if e == nil || !e.inUse || e.gen != ref.gen {
		return nil, false
	}
	return e, true
}

// live returns the number of slots in use, sentinel included.
func (arena *nodeArena[T]) live() int64 {
	if arena == nil {
		return 0
	}
	return int64(arena.allocated) - int64(len(arena.recycled))
}

func (arena *nodeArena[T]) free() {
	if arena == nil {
		return
	}
	arena.chunks = nil
	arena.recycled = nil
	arena.allocated = 0
}
