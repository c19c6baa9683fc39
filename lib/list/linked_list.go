package list

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/lib/xlog"
)

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

// The sentinel (root) is the first slot of the arena.
// Classic mode:
//
//	root <-> e1 <-> e2 <-> ... <-> en <-> root
//
// Circular mode, the root is detached but still caches the first
// and the last value nodes, so the classic mode can be restored:
//
//	e1 <-> e2 <-> ... <-> en <-> e1
//	root.next == e1, root.prev == en
type doublyLinkedList[T comparable] struct {
	arena     *nodeArena[T]
	logger    xlog.XLogger
	len       int64
	chunkSize uint32
	circular  bool
}

func NewLinkedList[T comparable](opts ...ListOption) LinkedList[T] {
	opt := &listOption{}
	for _, o := range opts {
		if err := o(opt); err != nil {
			panic(err)
		}
	}
	if opt.logger == nil {
		opt.logger = xlog.NewNopXLogger()
	}
	if opt.chunkSize == 0 {
		opt.chunkSize = defaultArenaChunkSize
	}
	l := &doublyLinkedList[T]{
		logger:    opt.logger,
		chunkSize: opt.chunkSize,
	}
	return l.lazyInit()
}

// lazyInit makes the moved-from or freed list reusable.
func (l *doublyLinkedList[T]) lazyInit() *doublyLinkedList[T] {
	if l.arena == nil {
		l.arena = newNodeArena[T](l.chunkSize)
		l.len = 0
		l.circular = false
	}
	if l.logger == nil {
		l.logger = xlog.NewNopXLogger()
	}
	return l
}

func (l *doublyLinkedList[T]) root() *nodeElement[T] {
	return l.arena.node(sentinelIdx)
}

func (l *doublyLinkedList[T]) node(idx uint32) *nodeElement[T] {
	return l.arena.node(idx)
}

func (l *doublyLinkedList[T]) iter(idx uint32) Iterator[T] {
	return newIterator(l.arena, idx)
}

// resolve checks that pos is a live node of this list and returns its slot.
func (l *doublyLinkedList[T]) resolve(pos Iterator[T]) (uint32, bool) {
	if l.arena == nil || pos.arena != l.arena {
		return 0, false
	}
	if _, ok := l.arena.lookup(pos.ref); !ok {
		return 0, false
	}
	return pos.ref.idx, true
}

func (l *doublyLinkedList[T]) Len() int64 {
	if l == nil {
		return 0
	}
	return l.len
}

func (l *doublyLinkedList[T]) Empty() bool {
	return l.Begin().Equal(l.End())
}

func (l *doublyLinkedList[T]) Begin() Iterator[T] {
	if l.arena == nil {
		return Iterator[T]{}
	}
	return l.iter(l.root().next)
}

func (l *doublyLinkedList[T]) End() Iterator[T] {
	if l.arena == nil {
		return Iterator[T]{}
	}
	return l.iter(sentinelIdx)
}

func (l *doublyLinkedList[T]) RBegin() ReverseIterator[T] {
	if l.arena == nil {
		return ReverseIterator[T]{}
	}
	return ReverseIterator[T]{base: l.iter(l.root().prev)}
}

func (l *doublyLinkedList[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: l.End()}
}

func (l *doublyLinkedList[T]) Front() (T, bool) {
	var zero T
	if l.arena == nil || l.len == 0 {
		return zero, false
	}
	return l.node(l.root().next).value, true
}

func (l *doublyLinkedList[T]) Back() (T, bool) {
	var zero T
	if l.arena == nil || l.len == 0 {
		return zero, false
	}
	return l.node(l.root().prev).value, true
}

func (l *doublyLinkedList[T]) At(index int64) (Iterator[T], error) {
	if l.arena == nil || index < 0 || index >= l.len {
		return Iterator[T]{}, infra.WrapErrorStackWithMessage(
			ErrIndexOutOfRange,
			fmt.Sprintf("index %d, len %d", index, l.len),
		)
	}
	// Both walks are bounded by the length, they are safe in the circular mode.
	if index < l.len/2 {
		idx := l.root().next
		for i := int64(0); i < index; i++ {
			idx = l.node(idx).next
		}
		return l.iter(idx), nil
	}
	idx := l.root().prev
	for i := l.len - 1; i > index; i-- {
		idx = l.node(idx).prev
	}
	return l.iter(idx), nil
}

// linkBetween allocates a value node and splices it between prev and next.
// It never touches the root's cache in the circular mode.
func (l *doublyLinkedList[T]) linkBetween(prev, next uint32, v T) uint32 {
	idx := l.arena.alloc(v)
	l.relinkBetween(idx, prev, next)
	l.len++
	return idx
}

func (l *doublyLinkedList[T]) relinkBetween(idx, prev, next uint32) {
	e := l.node(idx)
	e.prev, e.next = prev, next
	l.node(prev).next = idx
	l.node(next).prev = idx
}

// unlink unsplices the node without releasing it.
// The root's cache is repaired if it references the node.
func (l *doublyLinkedList[T]) unlink(idx uint32) (prev, next uint32) {
	e := l.node(idx)
	prev, next = e.prev, e.next
	l.node(prev).next = next
	l.node(next).prev = prev
	if l.circular {
		root := l.root()
		if root.next == idx {
			root.next = next
		}
		if root.prev == idx {
			root.prev = prev
		}
	}
	return prev, next
}

func (l *doublyLinkedList[T]) insertBefore(at uint32, v T) uint32 {
	root := l.root()
	if l.circular && at == sentinelIdx {
		// Between the last and the first, as the new last one.
		idx := l.linkBetween(root.prev, root.next, v)
		root.prev = idx
		return idx
	}
	idx := l.linkBetween(l.node(at).prev, at, v)
	if l.circular && root.next == at {
		root.next = idx
	}
	return idx
}

func (l *doublyLinkedList[T]) insertAfter(at uint32, v T) uint32 {
	root := l.root()
	if l.circular && at == sentinelIdx {
		// Between the last and the first, as the new first one.
		idx := l.linkBetween(root.prev, root.next, v)
		root.next = idx
		return idx
	}
	idx := l.linkBetween(at, l.node(at).next, v)
	if l.circular && root.prev == at {
		root.prev = idx
	}
	return idx
}

// erase releases a value node and returns the slot that followed it.
func (l *doublyLinkedList[T]) erase(idx uint32) uint32 {
	if l.circular && l.len == 1 {
		// The ring dissolves, back to an empty classic list.
		root := l.root()
		root.prev, root.next = sentinelIdx, sentinelIdx
		l.circular = false
		l.arena.release(idx)
		l.len--
		return sentinelIdx
	}
	_, next := l.unlink(idx)
	l.arena.release(idx)
	l.len--
	return next
}

func (l *doublyLinkedList[T]) InsertBefore(pos Iterator[T], v T) Iterator[T] {
	at, ok := l.resolve(pos)
	if !ok {
		return Iterator[T]{}
	}
	return l.iter(l.insertBefore(at, v))
}

func (l *doublyLinkedList[T]) InsertAfter(pos Iterator[T], v T) Iterator[T] {
	at, ok := l.resolve(pos)
	if !ok {
		return Iterator[T]{}
	}
	return l.iter(l.insertAfter(at, v))
}

func (l *doublyLinkedList[T]) Erase(pos Iterator[T]) Iterator[T] {
	at, ok := l.resolve(pos)
	if !ok || at == sentinelIdx {
		return l.End()
	}
	return l.iter(l.erase(at))
}

func (l *doublyLinkedList[T]) PushBack(v T) Iterator[T] {
	l.lazyInit()
	return l.iter(l.insertBefore(sentinelIdx, v))
}

func (l *doublyLinkedList[T]) PushFront(v T) Iterator[T] {
	l.lazyInit()
	return l.iter(l.insertAfter(sentinelIdx, v))
}

func (l *doublyLinkedList[T]) PopBack() (T, bool) {
	var zero T
	if l.arena == nil || l.len == 0 {
		return zero, false
	}
	idx := l.root().prev
	v := l.node(idx).value
	l.erase(idx)
	return v, true
}

func (l *doublyLinkedList[T]) PopFront() (T, bool) {
	var zero T
	if l.arena == nil || l.len == 0 {
		return zero, false
	}
	idx := l.root().next
	v := l.node(idx).value
	l.erase(idx)
	return v, true
}

func (l *doublyLinkedList[T]) Clear() {
	for l.len > 0 {
		l.PopFront()
	}
}

// Foreach, allows to remove the visited element while iterating.
func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, it Iterator[T]) error) error {
	if l.arena == nil || fn == nil || l.len == 0 {
		return nil
	}
	var (
		iterator       = l.Begin()
		n              = l.len
		idx      int64 = 0
	)
	for ; idx < n && iterator.Valid() && !iterator.IsEnd(); idx++ {
		next := iterator.Next()
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = next
	}
	return nil
}

// ReverseForeach, allows to remove the visited element while iterating.
func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, it ReverseIterator[T]) error) error {
	if l.arena == nil || fn == nil || l.len == 0 {
		return nil
	}
	var (
		iterator       = l.RBegin()
		n              = l.len
		idx      int64 = 0
	)
	for ; idx < n && iterator.Valid() && !iterator.IsEnd(); idx++ {
		next := iterator.Next()
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = next
	}
	return nil
}

func (l *doublyLinkedList[T]) Values() []T {
	if l.arena == nil || l.len == 0 {
		return []T{}
	}
	values := make([]T, 0, l.len)
	for i, idx := int64(0), l.root().next; i < l.len; i, idx = i+1, l.node(idx).next {
		values = append(values, l.node(idx).value)
	}
	return values
}

func (l *doublyLinkedList[T]) Find(v T) Iterator[T] {
	return l.FindFunc(func(e T) bool {
		return e == v
	})
}

func (l *doublyLinkedList[T]) FindFunc(pred func(v T) bool) Iterator[T] {
	if l.arena == nil || pred == nil {
		return l.End()
	}
	// Bounded by the length, so the ring without terminator is fine.
	for i, idx := int64(0), l.root().next; i < l.len; i, idx = i+1, l.node(idx).next {
		if pred(l.node(idx).value) {
			return l.iter(idx)
		}
	}
	return l.End()
}

func (l *doublyLinkedList[T]) Remove(v T) int64 {
	return l.RemoveFunc(func(e T) bool {
		return e == v
	})
}

func (l *doublyLinkedList[T]) RemoveFunc(pred func(v T) bool) int64 {
	if l.arena == nil || pred == nil || l.len == 0 {
		return 0
	}
	restore := l.classicScope()
	defer restore()

	removed := int64(0)
	for idx := l.root().next; idx != sentinelIdx; {
		if pred(l.node(idx).value) {
			idx = l.erase(idx)
			removed++
			continue
		}
		idx = l.node(idx).next
	}
	return removed
}

// detach unlinks the root, the first and the last value nodes
// are linked to each other directly.
func (l *doublyLinkedList[T]) detach() {
	root := l.root()
	first, last := root.next, root.prev
	l.node(last).next = first
	l.node(first).prev = last
	l.circular = true
}

// attach puts the root back between the cached last and first value nodes.
func (l *doublyLinkedList[T]) attach() {
	root := l.root()
	first, last := root.next, root.prev
	l.node(last).next = sentinelIdx
	l.node(first).prev = sentinelIdx
	l.circular = false
}

// classicScope runs the terminator dependent algorithms in the classic mode
// and re-enters the circular mode if the list is still not empty.
func (l *doublyLinkedList[T]) classicScope() (restore func()) {
	if !l.circular {
		return func() {}
	}
	l.attach()
	return func() {
		if l.len > 0 {
			l.detach()
		}
	}
}

func (l *doublyLinkedList[T]) Circular(enable bool) {
	if l.arena == nil {
		return
	}
	if enable {
		if l.circular || l.len == 0 {
			return
		}
		l.detach()
		l.logger.Debug("[linked-list] enter circular mode", zap.Int64("len", l.len))
		return
	}
	if !l.circular {
		return
	}
	l.attach()
	l.logger.Debug("[linked-list] enter classic mode", zap.Int64("len", l.len))
}

func (l *doublyLinkedList[T]) IsCircular() bool {
	return l.circular
}

func (l *doublyLinkedList[T]) Clone() LinkedList[T] {
	dst := &doublyLinkedList[T]{
		logger:    l.logger,
		chunkSize: l.chunkSize,
	}
	dst.lazyInit()
	for _, v := range l.Values() {
		dst.insertBefore(sentinelIdx, v)
	}
	return dst
}

func (l *doublyLinkedList[T]) Assign(src LinkedList[T]) {
	s, ok := src.(*doublyLinkedList[T])
	if !ok || s == nil || s == l {
		// avoid type mismatch and self assignment
		return
	}
	values := s.Values()
	l.lazyInit()
	l.Clear()
	for _, v := range values {
		l.insertBefore(sentinelIdx, v)
	}
}

func (l *doublyLinkedList[T]) Move() LinkedList[T] {
	dst := &doublyLinkedList[T]{
		arena:     l.arena,
		logger:    l.logger,
		len:       l.len,
		chunkSize: l.chunkSize,
		circular:  l.circular,
	}
	dst.lazyInit()
	l.arena, l.len, l.circular = nil, 0, false
	return dst
}

func (l *doublyLinkedList[T]) MoveFrom(src LinkedList[T]) {
	s, ok := src.(*doublyLinkedList[T])
	if !ok || s == nil || s == l {
		return
	}
	l.Free()
	l.arena, l.len, l.circular = s.arena, s.len, s.circular
	s.arena, s.len, s.circular = nil, 0, false
}

func (l *doublyLinkedList[T]) Swap(other LinkedList[T]) {
	o, ok := other.(*doublyLinkedList[T])
	if !ok || o == nil || o == l {
		return
	}
	l.arena, o.arena = o.arena, l.arena
	l.len, o.len = o.len, l.len
	l.circular, o.circular = o.circular, l.circular
}

func (l *doublyLinkedList[T]) Free() {
	if l.arena == nil {
		return
	}
	if l.circular {
		// Otherwise the erase loop cannot terminate.
		l.attach()
	}
	n := l.len
	l.Clear()
	l.arena.free()
	l.arena = nil
	l.logger.Debug("[linked-list] freed", zap.Int64("released", n))
}

func (l *doublyLinkedList[T]) Equal(other LinkedList[T]) bool {
	o, ok := other.(*doublyLinkedList[T])
	if !ok || o == nil {
		return false
	}
	if o == l {
		return true
	}
	if l.len != o.len {
		return false
	}
	if l.len == 0 {
		return true
	}
	for i, x, y := int64(0), l.root().next, o.root().next; i < l.len; i++ {
		if l.node(x).value != o.node(y).value {
			return false
		}
		x, y = l.node(x).next, o.node(y).next
	}
	return true
}

func (l *doublyLinkedList[T]) NotEqual(other LinkedList[T]) bool {
	return !l.Equal(other)
}

func (l *doublyLinkedList[T]) Compare(other LinkedList[T]) int {
	if other == nil {
		return cmp.Compare(l.len, 0)
	}
	return cmp.Compare(l.len, other.Len())
}

func (l *doublyLinkedList[T]) Less(other LinkedList[T]) bool {
	return l.Compare(other) < 0
}

func (l *doublyLinkedList[T]) Greater(other LinkedList[T]) bool {
	return l.Compare(other) > 0
}

func (l *doublyLinkedList[T]) LessEqual(other LinkedList[T]) bool {
	return l.Compare(other) <= 0
}

func (l *doublyLinkedList[T]) GreaterEqual(other LinkedList[T]) bool {
	return l.Compare(other) >= 0
}
