package list_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/cons/persistent/list"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSlice(t *testing.T) {
	assert.Nil(t, list.Nil[int]().ToSlice())
	assert.Equal(t, []int{1, 2, 3}, list.Of(1, 2, 3).ToSlice())
}

func TestCopyInto(t *testing.T) {
	l := list.Of(1, 2, 3)
	buf := []int{9, 9, 9, 9, 9}
	got := l.CopyInto(buf)
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("CopyInto mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 0, 9}, buf); diff != "" {
		t.Errorf("expected buffer to be filled and terminated (-want +got):\n%s", diff)
	}
	exact := make([]int, 3)
	got = l.CopyInto(exact)
	assert.Same(t, &exact[0], &got[0], "buffer of exact size should be used")
	small := []int{7}
	got = l.CopyInto(small)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSubList(t *testing.T) {
	l := list.Of("a", "b", "c", "d")
	s, err := l.SubList(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, s)
	s, err = l.SubList(0, 4)
	require.NoError(t, err)
	assert.Equal(t, l.ToSlice(), s)
	s, err = l.SubList(2, 2)
	require.NoError(t, err)
	assert.Empty(t, s)
	for _, r := range [][2]int{{-1, 2}, {0, 5}, {3, 2}} {
		_, err = l.SubList(r[0], r[1])
		if !errors.Is(err, list.ErrInvalidRange) {
			t.Errorf("expected SubList(%d,%d) to fail, error is %v", r[0], r[1], err)
		}
		assert.True(t, errors.Is(err, list.ErrIndexOutOfRange))
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", list.Nil[int]().Join(", "))
	assert.Equal(t, "1", list.Of(1).Join(", "))
	assert.Equal(t, "1 | 2 | 3", list.Of(1, 2, 3).Join(" | "))
	assert.Equal(t, "1,2,3", fmt.Sprint(list.Of(1, 2, 3)))
	assert.Equal(t, "[a b];[]", list.Of([]string{"a", "b"}, nil).Join(";"))
}

func TestMutationIsRejected(t *testing.T) {
	var m list.Mutable[int] = list.Of(1, 2, 3)
	_, err := m.Set(0, 5)
	assert.True(t, errors.Is(err, list.ErrUnsupportedMutation))
	err = m.Insert(0, 5)
	assert.True(t, errors.Is(err, list.ErrUnsupportedMutation))
	_, err = m.Remove(0)
	assert.True(t, errors.Is(err, list.ErrUnsupportedMutation))
	assert.Equal(t, "1,2,3", fmt.Sprint(m))
}

func TestSequenceProtocol(t *testing.T) {
	var seq list.Sequence[int] = list.Of(4, 5, 6)
	assert.Equal(t, 3, seq.Len())
	x, err := seq.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 5, x)
	n := 0
	for range seq.All() {
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, 2, seq.IndexFunc(func(x int) bool { return x == 6 }))
	assert.Equal(t, -1, seq.IndexFunc(func(x int) bool { return x == 7 }))
	var nested list.Sequence[[]int] = list.Of([]int{1}, []int{2, 3})
	assert.Equal(t, 1, nested.IndexFunc(func(x []int) bool { return len(x) == 2 }))
}

type shape interface {
	Area() float64
}

type square float64

func (s square) Area() float64 { return float64(s * s) }

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := list.Of[any](square(1), square(2), nil)
	shapes, err := list.Convert[shape](l)
	require.NoError(t, err)
	assert.Equal(t, 3, shapes.Len())
	sq, _ := shapes.Get(1)
	assert.Equal(t, 4.0, sq.Area())
	//
	mixed := list.Of[any](square(1), "circle", square(3))
	_, err = list.Convert[shape](mixed)
	if !errors.Is(err, list.ErrTypeMismatch) {
		t.Errorf("expected conversion of mixed list to fail, error is %v", err)
	}
	_, err = list.Convert[int](list.Of[any](1, nil))
	assert.True(t, errors.Is(err, list.ErrTypeMismatch), "nil is not an int")
}

func TestConvertToSameType(t *testing.T) {
	l := list.Of(1, 2)
	same, err := list.Convert[int](l)
	require.NoError(t, err)
	if same != l {
		t.Error("expected conversion to the element type to return the list itself")
	}
	ints, err := list.Convert[int](list.Of[any](1, 2))
	require.NoError(t, err)
	assert.True(t, list.Equal(l, ints))
	empty, err := list.Convert[string](list.Nil[any]())
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}
