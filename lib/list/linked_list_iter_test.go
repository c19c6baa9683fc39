package list

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestIterator_Null(t *testing.T) {
	var it Iterator[int]
	require.False(t, it.Valid())
	require.False(t, it.IsEnd())
	require.True(t, it.Next().Equal(it))
	require.True(t, it.Prev().Equal(it))
	_, err := it.Value()
	require.ErrorIs(t, err, ErrIteratorInvalid)
	require.Nil(t, it.Ptr())
	require.ErrorIs(t, it.Set(1), ErrIteratorInvalid)
}

func TestIterator_End(t *testing.T) {
	dlist := newIntList(1)
	end := dlist.End()
	require.True(t, end.Valid())
	require.True(t, end.IsEnd())
	_, err := end.Value()
	require.ErrorIs(t, err, ErrIteratorEnd)
	require.Nil(t, end.Ptr())
	require.ErrorIs(t, end.Set(1), ErrIteratorEnd)

	require.True(t, end.Next().Equal(dlist.Begin()))
	require.True(t, end.Prev().Equal(dlist.Begin()))
	require.True(t, dlist.Begin().Next().Equal(end))
}

func TestIterator_Stale(t *testing.T) {
	dlist := newIntList(1, 2)
	it := dlist.Begin()
	dlist.Erase(it)
	require.False(t, it.Valid())
	_, err := it.Value()
	require.ErrorIs(t, err, ErrIteratorInvalid)
	require.True(t, it.Next().Equal(it))

	t.Log("freed list invalidates everything")
	it = dlist.Begin()
	end := dlist.End()
	dlist.Free()
	require.False(t, it.Valid())
	require.False(t, end.Valid())
}

func TestIterator_MutableAccess(t *testing.T) {
	type song struct {
		title string
		plays int
	}
	dlist := NewLinkedList[song]()
	it := dlist.PushBack(song{title: "a"})
	dlist.PushBack(song{title: "b"})

	it.Ptr().plays++
	require.NoError(t, it.Set(song{title: "A", plays: it.Ptr().plays + 1}))
	v, err := it.Value()
	require.NoError(t, err)
	require.Equal(t, song{title: "A", plays: 2}, v)

	// The address is stable across insertions.
	p := it.Ptr()
	for i := 0; i < 200; i++ {
		dlist.PushFront(song{title: "x"})
	}
	require.Same(t, p, it.Ptr())
}

func TestIterator_ForwardAndReverse(t *testing.T) {
	dlist := newIntList(lo.Range(5)...)

	forward := make([]int, 0, 5)
	for it := dlist.Begin(); !it.Equal(dlist.End()); it = it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		forward = append(forward, v)
	}
	require.Equal(t, lo.Range(5), forward)

	reverse := make([]int, 0, 5)
	for it := dlist.RBegin(); !it.Equal(dlist.REnd()); it = it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		reverse = append(reverse, v)
	}
	require.Equal(t, []int{4, 3, 2, 1, 0}, reverse)

	t.Log("reverse decrement mirrors forward increment")
	rit := dlist.REnd().Prev()
	v, err := rit.Value()
	require.NoError(t, err)
	require.Equal(t, 0, v)
	require.True(t, rit.Base().Equal(dlist.Begin()))
	require.True(t, dlist.End().Prev().Equal(dlist.RBegin().Base()))

	require.NoError(t, dlist.RBegin().Set(40))
	back, ok := dlist.Back()
	require.True(t, ok)
	require.Equal(t, 40, back)
	require.Equal(t, 40, *dlist.RBegin().Ptr())
	require.True(t, dlist.RBegin().Valid())
	require.True(t, dlist.REnd().IsEnd())
}

func TestIterator_CrossList(t *testing.T) {
	a := newIntList(1)
	b := newIntList(1)
	require.False(t, a.Begin().Equal(b.Begin()), "identity, not value")
	require.True(t, a.Begin().Equal(a.Find(1)))
}
