package list

// nodeElement is a slot of the list's node arena.
// The first slot of an arena is the sentinel (self-looped when
// the arena is created), the others are value nodes.
// Links are slot indices, they are used for traversal and splicing
// only and never own the neighbours.
type nodeElement[T comparable] struct {
	prev, next uint32
	gen        uint32
	inUse      bool
	value      T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}
