package list

import (
	"errors"
)

// Note that the linked list is not thread safe.
// The caller has to serialize the access to the same list.

var (
	ErrIteratorEnd     = errors.New("[linked-list] dereference the end iterator")
	ErrIteratorInvalid = errors.New("[linked-list] null or stale iterator")
	ErrIndexOutOfRange = errors.New("[linked-list] index out of range")
	ErrBrokenLink      = errors.New("[linked-list] broken link")
	ErrSizeMismatch    = errors.New("[linked-list] size mismatch")
)

// LinkedList is the sentinel based doubly linked list interface.
// The list is either in classic mode, the sentinel terminates the ring
// and End() is reachable from Begin(), or in circular mode, the sentinel
// is detached and the last value node links to the first one directly.
type LinkedList[T comparable] interface {
	// Len returns the number of value nodes.
	Len() int64
	// Empty reports whether Begin() equals End().
	Empty() bool

	// Begin returns the iterator of the first value node or End() if the list is empty.
	Begin() Iterator[T]
	// End returns the iterator of the sentinel. It is a boundary marker, not a data slot.
	End() Iterator[T]
	// RBegin returns the reverse iterator of the last value node or REnd() if the list is empty.
	RBegin() ReverseIterator[T]
	// REnd returns the reverse iterator of the sentinel.
	REnd() ReverseIterator[T]
	// Front returns the value of the first value node and true, or false if the list is empty.
	Front() (T, bool)
	// Back returns the value of the last value node and true, or false if the list is empty.
	Back() (T, bool)
	// At returns the iterator of the value node at index, walking from the nearer end.
	At(index int64) (Iterator[T], error)

	// PushBack inserts v before End() and returns the new iterator.
	PushBack(v T) Iterator[T]
	// PushFront inserts v after End() and returns the new iterator.
	PushFront(v T) Iterator[T]
	// PopBack erases the last value node and returns its value. No-op on empty list.
	PopBack() (T, bool)
	// PopFront erases the first value node and returns its value. No-op on empty list.
	PopFront() (T, bool)
	// InsertBefore splices a new value node immediately before pos, End() included.
	// It returns the null iterator if pos does not belong to the list.
	InsertBefore(pos Iterator[T], v T) Iterator[T]
	// InsertAfter splices a new value node immediately after pos, End() included.
	// It returns the null iterator if pos does not belong to the list.
	InsertAfter(pos Iterator[T], v T) Iterator[T]
	// Erase unsplices and releases the node of pos and returns the iterator of the
	// node that followed it. Erasing End() or an iterator not belonging to the list
	// is a no-op that returns End().
	Erase(pos Iterator[T]) Iterator[T]
	// Clear pops all the value nodes.
	Clear()

	// Foreach iterates at most Len() value nodes from Begin(). The visited node
	// may be erased by fn. The iteration stops at the first error returned by fn.
	Foreach(fn func(idx int64, it Iterator[T]) error) error
	// ReverseForeach is Foreach in reverse order from RBegin().
	ReverseForeach(fn func(idx int64, it ReverseIterator[T]) error) error
	// Values returns a copy of all the values in traversal order.
	Values() []T

	// Find returns the iterator of the first value equal to v or End().
	Find(v T) Iterator[T]
	// FindFunc returns the iterator of the first value matching pred or End().
	FindFunc(pred func(v T) bool) Iterator[T]
	// Remove erases every value equal to v and returns the count.
	Remove(v T) int64
	// RemoveFunc erases every value matching pred and returns the count.
	RemoveFunc(pred func(v T) bool) int64
	// Unique erases the adjacent duplicates, keeping the first of each run.
	Unique() int64
	// UniqueFunc is Unique with a customized equality.
	UniqueFunc(eq func(a, b T) bool) int64

	// Merge interleaves the values of other into the list. Both lists must be
	// arranged in non-decreasing order by less. The receiver's values are kept
	// ahead of other's equal values and other is left empty.
	Merge(other LinkedList[T], less func(a, b T) bool)
	// Sort reorders the list by insertion sort, where cmp(a, b) reports whether
	// a may precede b. It is stable for a non-strict (<=) comparator.
	Sort(cmp func(a, b T) bool)

	// Circular switches between the circular mode and the classic mode.
	// Entering the circular mode on an empty list is a no-op.
	Circular(enable bool)
	// IsCircular reports whether the sentinel is detached.
	IsCircular() bool

	// Clone returns a deep copy in classic mode.
	Clone() LinkedList[T]
	// Assign replaces the values by a copy of src's values.
	Assign(src LinkedList[T])
	// Move returns a new list adopting the nodes and leaves the receiver empty.
	// Iterators follow their nodes into the new list.
	Move() LinkedList[T]
	// MoveFrom releases the receiver's nodes and adopts src's, leaving src empty.
	MoveFrom(src LinkedList[T])
	// Swap exchanges the nodes and modes of two lists.
	Swap(other LinkedList[T])
	// Free releases all the nodes. A freed list behaves like a fresh one when reused.
	Free()

	// Equal reports whether both lists have the same length and equal values in order.
	Equal(other LinkedList[T]) bool
	NotEqual(other LinkedList[T]) bool
	// Less, Greater, LessEqual, GreaterEqual and Compare order lists by length only.
	Less(other LinkedList[T]) bool
	Greater(other LinkedList[T]) bool
	LessEqual(other LinkedList[T]) bool
	GreaterEqual(other LinkedList[T]) bool
	Compare(other LinkedList[T]) int

	// Validate walks the nodes and reports all the broken link invariants.
	Validate() error
}
