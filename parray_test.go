package parray

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEmptySequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	s := New[int]()
	if s.Len() != 0 || !s.IsEmpty() {
		t.Errorf("expected new sequence to be empty, has length %d", s.Len())
	}
	if _, err := s.Get(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected get on empty sequence to be out of bounds, got %v", err)
	}
	var zero Seq[string]
	if zero.Len() != 0 {
		t.Errorf("expected zero value to behave like an empty sequence")
	}
	if err := zero.Check(); err != nil {
		t.Error(err)
	}
}

func TestBuildAndIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	s := FromSlice([]int{10, 20, 30, 40, 50})
	if s.Len() != 5 {
		t.Errorf("expected length 5, got %d", s.Len())
	}
	if x, _ := s.Get(0); x != 10 {
		t.Errorf("expected s[0] = 10, got %d", x)
	}
	if x, _ := s.Get(4); x != 50 {
		t.Errorf("expected s[4] = 50, got %d", x)
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}

func TestSetPersistence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	s := FromSlice([]int{10, 20, 30, 40, 50})
	s2, err := s.Set(2, 99)
	if err != nil {
		t.Fatal(err)
	}
	if got := s2.Slice(); !reflect.DeepEqual(got, []int{10, 20, 99, 40, 50}) {
		t.Errorf("expected modified version [10 20 99 40 50], got %v", got)
	}
	if got := s.Slice(); !reflect.DeepEqual(got, []int{10, 20, 30, 40, 50}) {
		t.Errorf("expected original version unchanged, got %v", got)
	}
}

func TestInsertAtMiddle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	s := FromSlice([]int{10, 20, 30, 40, 50})
	s3, err := s.Insert(2, 77)
	if err != nil {
		t.Fatal(err)
	}
	if s3.Len() != 6 {
		t.Errorf("expected length 6 after insert, got %d", s3.Len())
	}
	if got := s3.Slice(); !reflect.DeepEqual(got, []int{10, 20, 77, 30, 40, 50}) {
		t.Errorf("expected [10 20 77 30 40 50], got %v", got)
	}
}

func TestDeleteAtHead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	s := FromSlice([]int{10, 20, 30, 40, 50})
	s4, err := s.Delete(0)
	if err != nil {
		t.Fatal(err)
	}
	if got := s4.Slice(); !reflect.DeepEqual(got, []int{20, 30, 40, 50}) {
		t.Errorf("expected [20 30 40 50], got %v", got)
	}
}

func TestSplitAndConcat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	s := FromSlice([]int{10, 20, 30, 40, 50})
	a, b, err := s.Split(2)
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Slice(); !reflect.DeepEqual(got, []int{10, 20}) {
		t.Errorf("expected left [10 20], got %v", got)
	}
	if got := b.Slice(); !reflect.DeepEqual(got, []int{30, 40, 50}) {
		t.Errorf("expected right [30 40 50], got %v", got)
	}
	joined, err := a.Concat(b)
	if err != nil {
		t.Fatal(err)
	}
	if got := joined.Slice(); !reflect.DeepEqual(got, []int{10, 20, 30, 40, 50}) {
		t.Errorf("expected rejoined [10 20 30 40 50], got %v", got)
	}
}

func TestOutOfBoundsLeavesSequenceUnchanged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	s := FromSlice([]int{10, 20, 30, 40, 50})
	if _, err := s.Get(5); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected out-of-bounds error, got %v", err)
	}
	if _, err := s.Set(5, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected out-of-bounds error from set, got %v", err)
	}
	if _, err := s.Insert(6, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected out-of-bounds error from insert, got %v", err)
	}
	if _, err := s.Delete(5); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected out-of-bounds error from delete, got %v", err)
	}
	if _, _, err := s.Split(6); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected out-of-bounds error from split, got %v", err)
	}
	if got := s.Slice(); !reflect.DeepEqual(got, []int{10, 20, 30, 40, 50}) {
		t.Errorf("expected sequence unchanged after errors, got %v", got)
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	if _, err := NewWith[int](Config{LeafCap: 1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected leaf cap 1 to be rejected, got %v", err)
	}
	if _, err := FromSliceWith(Config{LeafCap: -3}, []int{1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected negative leaf cap to be rejected, got %v", err)
	}
	if _, err := NewWith[int](Config{Ownership: Ownership(7)}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected unknown ownership to be rejected, got %v", err)
	}
}

func TestConcatRejectsMixedOwnership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	a, _ := FromSliceWith(Config{Ownership: Shared}, []int{1, 2})
	b, _ := FromSliceWith(Config{Ownership: Local}, []int{3})
	if _, err := a.Concat(b); !errors.Is(err, ErrIncompatibleConfig) {
		t.Errorf("expected mixed-ownership concat to be rejected, got %v", err)
	}
	c, _ := FromSliceWith(Config{LeafCap: 64}, []int{3})
	if _, err := a.Concat(c); !errors.Is(err, ErrIncompatibleConfig) {
		t.Errorf("expected mixed-leaf-cap concat to be rejected, got %v", err)
	}
}

func TestPushAndPrepend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	s := New[int]()
	for i := 1; i <= 30; i++ {
		s = s.Push(i * 10)
	}
	s = s.Prepend(5)
	if s.Len() != 31 {
		t.Errorf("expected length 31, got %d", s.Len())
	}
	if x, _ := s.Get(0); x != 5 {
		t.Errorf("expected prepended element at index 0, got %d", x)
	}
	if x, _ := s.Get(30); x != 300 {
		t.Errorf("expected last pushed element at index 30, got %d", x)
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}

func TestFromSliceRoundtrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	xs := make([]int, 537)
	for i := range xs {
		xs[i] = i * 3
	}
	for _, leafCap := range []int{2, 3, 10, 64} {
		s, err := FromSliceWith(Config{LeafCap: leafCap}, xs)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(s.Slice(), xs) {
			t.Errorf("roundtrip mismatch for leaf cap %d", leafCap)
		}
		if err := s.Check(); err != nil {
			t.Errorf("leaf cap %d: %v", leafCap, err)
		}
	}
}

func TestSharedHandlesAcrossGoroutines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	xs := make([]int, 1000)
	for i := range xs {
		xs[i] = i
	}
	s := FromSlice(xs)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(h Seq[int]) {
			defer wg.Done()
			for i := 0; i < h.Len(); i += 97 {
				if x, err := h.Get(i); err != nil || x != i {
					t.Errorf("concurrent read mismatch at %d: %d, %v", i, x, err)
					return
				}
			}
		}(s.Clone())
	}
	wg.Wait()
}

func TestFootprintGrowsWithContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	small := FromSlice([]int{1, 2, 3})
	large := FromSlice(make([]int, 10000))
	if small.Footprint() <= 0 {
		t.Errorf("expected positive footprint, got %d", small.Footprint())
	}
	if large.Footprint() <= small.Footprint() {
		t.Errorf("expected footprint to grow with content: %d <= %d",
			large.Footprint(), small.Footprint())
	}
}
