package list

// Iterator is a forward cursor over the nodes of a list.
// The zero value is the null iterator, it is not dereferenceable
// and moving it returns itself.
// An iterator is invalidated exactly when its node is erased.
type Iterator[T comparable] struct {
	arena *nodeArena[T]
	ref   nodeRef
}

func newIterator[T comparable](arena *nodeArena[T], idx uint32) Iterator[T] {
	if arena == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{arena: arena, ref: arena.ref(idx)}
}

func (it Iterator[T]) node() (*nodeElement[T], bool) {
	return it.arena.lookup(it.ref)
}

// Valid reports whether the iterator references a live node, End() included.
func (it Iterator[T]) Valid() bool {
	_, ok := it.node()
	return ok
}

// IsEnd reports whether the iterator references the sentinel.
func (it Iterator[T]) IsEnd() bool {
	return it.Valid() && it.ref.idx == sentinelIdx
}

// Next follows the next link.
func (it Iterator[T]) Next() Iterator[T] {
	e, ok := it.node()
	if !ok {
		return it
	}
	return newIterator(it.arena, e.next)
}

// Prev follows the prev link.
func (it Iterator[T]) Prev() Iterator[T] {
	e, ok := it.node()
	if !ok {
		return it
	}
	return newIterator(it.arena, e.prev)
}

// Equal compares the identity of the referenced nodes.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.arena == other.arena && it.ref == other.ref
}

func (it Iterator[T]) Value() (T, error) {
	var zero T
	e, ok := it.node()
	if !ok {
		return zero, ErrIteratorInvalid
	}
	if it.ref.idx == sentinelIdx {
		return zero, ErrIteratorEnd
	}
	return e.value, nil
}

// Ptr gives mutable access to the value. It returns nil for End(),
// null and stale iterators. The pointer is stable until the node is erased.
func (it Iterator[T]) Ptr() *T {
	e, ok := it.node()
	if !ok || it.ref.idx == sentinelIdx {
		return nil
	}
	return &e.value
}

func (it Iterator[T]) Set(v T) error {
	p := it.Ptr()
	if p == nil {
		if it.IsEnd() {
			return ErrIteratorEnd
		}
		return ErrIteratorInvalid
	}
	*p = v
	return nil
}

// ReverseIterator inverts the moves of the Iterator. Next follows the
// prev link and Prev follows the next link.
type ReverseIterator[T comparable] struct {
	base Iterator[T]
}

// Base returns the forward iterator of the same node.
func (it ReverseIterator[T]) Base() Iterator[T] {
	return it.base
}

func (it ReverseIterator[T]) Valid() bool {
	return it.base.Valid()
}

func (it ReverseIterator[T]) IsEnd() bool {
	return it.base.IsEnd()
}

func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{base: it.base.Prev()}
}

func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{base: it.base.Next()}
}

func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return it.base.Equal(other.base)
}

func (it ReverseIterator[T]) Value() (T, error) {
	return it.base.Value()
}

func (it ReverseIterator[T]) Ptr() *T {
	return it.base.Ptr()
}

func (it ReverseIterator[T]) Set(v T) error {
	return it.base.Set(v)
}
