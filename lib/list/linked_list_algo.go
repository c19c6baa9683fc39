package list

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
)

func (l *doublyLinkedList[T]) Unique() int64 {
	return l.UniqueFunc(func(a, b T) bool {
		return a == b
	})
}

func (l *doublyLinkedList[T]) UniqueFunc(eq func(a, b T) bool) int64 {
	if l.arena == nil || eq == nil || l.len < 2 {
		return 0
	}
	restore := l.classicScope()
	defer restore()

	removed := int64(0)
	prev := l.root().next
	for idx := l.node(prev).next; idx != sentinelIdx; {
		if eq(l.node(prev).value, l.node(idx).value) {
			idx = l.erase(idx)
			removed++
			continue
		}
		prev, idx = idx, l.node(idx).next
	}
	return removed
}

// Merge walks the receiver with it and the source with jt.
// The jt value is copied in front of it when it reaches the end or
// the jt value sorts strictly before the it value, otherwise it advances.
// Ties keep the receiver's values first.
func (l *doublyLinkedList[T]) Merge(other LinkedList[T], less func(a, b T) bool) {
	src, ok := other.(*doublyLinkedList[T])
	if !ok || src == nil || src == l || less == nil || src.arena == nil || src.len == 0 {
		// avoid type mismatch and self merge
		return
	}
	l.lazyInit()
	restoreDst := l.classicScope()
	restoreSrc := src.classicScope()

	merged := src.len
	it, jt := l.root().next, src.root().next
	for jt != sentinelIdx {
		v := src.node(jt).value
		if it == sentinelIdx || less(v, l.node(it).value) {
			l.insertBefore(it, v)
			jt = src.erase(jt)
			continue
		}
		it = l.node(it).next
	}
	src.Clear()

	restoreSrc()
	restoreDst()
	l.logger.Debug("[linked-list] merged", zap.Int64("merged", merged), zap.Int64("len", l.len))
}

// Sort is an insertion sort. The prefix ending at sortedTail is sorted.
// Each key is compared with the prefix from its start, and relinked in
// front of the first element that must not precede it.
// Nodes are relinked rather than reallocated, so the iterators stay valid.
func (l *doublyLinkedList[T]) Sort(cmp func(a, b T) bool) {
	if l.arena == nil || cmp == nil || l.len < 2 {
		return
	}
	restore := l.classicScope()
	defer restore()

	root := l.root()
	relinked := 0
	sortedTail := root.next
	for key := l.node(sortedTail).next; key != sentinelIdx; key = l.node(sortedTail).next {
		kv := l.node(key).value
		pos := root.next
		for pos != key && cmp(l.node(pos).value, kv) {
			pos = l.node(pos).next
		}
		if pos == key {
			sortedTail = key
			continue
		}
		l.unlink(key)
		l.relinkBetween(key, l.node(pos).prev, pos)
		relinked++
	}
	l.logger.Debug("[linked-list] sorted", zap.Int64("len", l.len), zap.Int("relinked", relinked))
}

// SortOrdered sorts the list in non-decreasing order, stably.
func SortOrdered[T infra.OrderedKey](l LinkedList[T]) {
	if l == nil {
		return
	}
	l.Sort(func(a, b T) bool {
		return infra.AscOrderedKeyComparator(a, b) <= 0
	})
}

// MergeOrdered merges the non-decreasing src into the non-decreasing dst.
func MergeOrdered[T infra.OrderedKey](dst, src LinkedList[T]) {
	if dst == nil || src == nil {
		return
	}
	dst.Merge(src, func(a, b T) bool {
		return infra.AscOrderedKeyComparator(a, b) < 0
	})
}

func (l *doublyLinkedList[T]) Validate() error {
	if l.arena == nil {
		if l.len != 0 || l.circular {
			return infra.WrapErrorStackWithMessage(ErrSizeMismatch, fmt.Sprintf("released list with len %d", l.len))
		}
		return nil
	}

	var (
		errs  error
		root  = l.root()
		limit = int64(l.arena.allocated) // Guards a corrupted ring.
	)
	if l.circular {
		if l.len == 0 {
			errs = infra.AppendErrorStack(errs, fmt.Errorf("%w: circular mode with no value node", ErrBrokenLink))
		}
		first, last := root.next, root.prev
		if first == sentinelIdx || last == sentinelIdx {
			errs = infra.AppendErrorStack(errs, fmt.Errorf("%w: detached root references itself", ErrBrokenLink))
		} else if l.node(last).next != first || l.node(first).prev != last {
			errs = infra.AppendErrorStack(errs, fmt.Errorf("%w: last %d and first %d are not linked", ErrBrokenLink, last, first))
		}
		idx := first
		for i := int64(0); i < l.len && errs == nil; i++ {
			e := l.node(idx)
			if idx == sentinelIdx || !e.inUse {
				errs = infra.AppendErrorStack(errs, fmt.Errorf("%w: step %d reaches slot %d", ErrBrokenLink, i, idx))
				break
			}
			if l.node(e.next).prev != idx {
				errs = infra.AppendErrorStack(errs, fmt.Errorf("%w: slot %d next %d links back to %d", ErrBrokenLink, idx, e.next, l.node(e.next).prev))
			}
			idx = e.next
		}
		if errs == nil && idx != first {
			errs = infra.AppendErrorStack(errs, fmt.Errorf("%w: ring of %d nodes does not return to the first", ErrBrokenLink, l.len))
		}
	} else {
		count := int64(0)
		idx := sentinelIdx
		for step := int64(0); step <= limit; step++ {
			e := l.node(idx)
			if !e.inUse {
				errs = infra.AppendErrorStack(errs, fmt.Errorf("%w: released slot %d is linked", ErrBrokenLink, idx))
				break
			}
			if l.node(e.next).prev != idx {
				errs = infra.AppendErrorStack(errs, fmt.Errorf("%w: slot %d next %d links back to %d", ErrBrokenLink, idx, e.next, l.node(e.next).prev))
			}
			idx = e.next
			if idx == sentinelIdx {
				break
			}
			count++
		}
		if idx != sentinelIdx {
			errs = infra.AppendErrorStack(errs, fmt.Errorf("%w: the ring is not terminated by the root", ErrBrokenLink))
		}
		if count != l.len {
			errs = infra.AppendErrorStack(errs, fmt.Errorf("%w: counted %d, len %d", ErrSizeMismatch, count, l.len))
		}
	}
	if live := l.arena.live() - 1; live != l.len {
		errs = infra.AppendErrorStack(errs, fmt.Errorf("%w: %d live slots, len %d", ErrSizeMismatch, live, l.len))
	}
	if errs != nil {
		l.logger.ErrorStack(errs, "[linked-list] validate failed")
	}
	return errs
}
