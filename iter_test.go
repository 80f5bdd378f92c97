package dynarray

import (
	"reflect"
	"testing"
)

func TestAtMatchesGet(t *testing.T) {
	a := New[int](-1, nil)
	fill(t, a, 5, 6, 7)

	for i := 0; i < a.Len(); i++ {
		if a.At(i) != a.Get(i) {
			t.Errorf("At(%d) = %d, Get(%d) = %d", i, a.At(i), i, a.Get(i))
		}
	}
	for _, i := range []int{-1, 3, 4, 1000} {
		if a.At(i) != -1 {
			t.Errorf("At(%d) = %d, want sentinel -1", i, a.At(i))
		}
	}
}

func TestGetPastCapacityPanics(t *testing.T) {
	a := New[int](-1, nil)
	fill(t, a, 1)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic reading past capacity")
		}
	}()
	a.Get(a.Capacity())
}

func TestSentinelIndistinguishable(t *testing.T) {
	a := New[int](0, nil)
	fill(t, a, 0)
	if a.At(0) != a.At(1) {
		t.Error("stored zero and sentinel zero should read the same")
	}
}

func TestBeginEnd(t *testing.T) {
	a := New[int](-1, nil)
	if !a.Begin().Equal(a.End()) {
		t.Error("Begin() != End() on empty array")
	}

	fill(t, a, 3, 1, 4, 1, 5)
	var got []int
	for it, end := a.Begin(), a.End(); !it.Equal(end); it = it.Next() {
		if it.Index() != len(got) {
			t.Errorf("Index() = %d, want %d", it.Index(), len(got))
		}
		got = append(got, it.Value())
	}
	if !reflect.DeepEqual(got, []int{3, 1, 4, 1, 5}) {
		t.Errorf("iterated %v, want [3 1 4 1 5]", got)
	}
}

func TestForEach(t *testing.T) {
	a := New[int](-1, nil)
	fill(t, a, 10, 20, 30)

	type visit struct{ index, value int }
	var visits []visit
	index := 0
	ForEach(a, func(v int, idx *int) {
		visits = append(visits, visit{*idx, v})
		*idx++
	}, &index)

	want := []visit{{0, 10}, {1, 20}, {2, 30}}
	if !reflect.DeepEqual(visits, want) {
		t.Errorf("visits = %v, want %v", visits, want)
	}
	if index != 3 {
		t.Errorf("context index = %d, want 3", index)
	}
}

func TestForEachEmpty(t *testing.T) {
	var a Array[int]
	called := false
	ForEach(&a, func(int, struct{}) { called = true }, struct{}{})
	if called {
		t.Error("visitor called on empty array")
	}
}

func TestAll(t *testing.T) {
	a := New[string]("", nil)
	for _, s := range []string{"a", "b", "c", "d"} {
		if err := a.PushBack(s); err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	for i, s := range a.All() {
		if i == 3 {
			break
		}
		got = append(got, s)
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("All() with break = %v, want [a b c]", got)
	}
}

func TestSlice(t *testing.T) {
	a := New[int](-1, nil)
	if a.Slice() != nil {
		t.Error("Slice() on empty array should be nil")
	}

	fill(t, a, 1, 2)
	s := a.Slice()
	if cap(s) != 2 {
		t.Errorf("cap(Slice()) = %d, want 2", cap(s))
	}
	s[0] = 100
	if a.Get(0) != 100 {
		t.Error("Slice() should share storage with the array")
	}
}
