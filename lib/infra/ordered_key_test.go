package infra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAscOrderedKeyComparator(t *testing.T) {
	require.Equal(t, int64(-1), AscOrderedKeyComparator(1, 2))
	require.Equal(t, int64(1), AscOrderedKeyComparator(uint8(3), uint8(2)))
	require.Equal(t, int64(0), AscOrderedKeyComparator("a", "a"))
	require.Equal(t, int64(-1), AscOrderedKeyComparator("a", "b"))

	nan := math.NaN()
	require.Equal(t, int64(-1), AscOrderedKeyComparator(nan, -math.MaxFloat64))
	require.Equal(t, int64(1), AscOrderedKeyComparator(0.0, nan))
	require.Equal(t, int64(0), AscOrderedKeyComparator(nan, nan))
}

func TestDescOrderedKeyComparator(t *testing.T) {
	var cmp OrderedKeyComparator[int] = DescOrderedKeyComparator[int]
	require.Equal(t, int64(1), cmp(1, 2))
	require.Equal(t, int64(-1), cmp(2, 1))
	require.Equal(t, int64(0), cmp(2, 2))
}
