package parray

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// pushN appends 0..n-1 one by one, the workload that degenerates an
// unbalanced rope into a right-leaning spine.
func pushN(t *testing.T, cfg Config, n int) Seq[int] {
	t.Helper()
	s, err := NewWith[int](cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		s = s.Push(i)
	}
	return s
}

func TestAutoRebalanceBoundsHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	s := pushN(t, Config{LeafCap: 2}, 1024)
	if err := s.Check(); err != nil {
		t.Fatal(err)
	}
	spine := pushN(t, Config{LeafCap: 2, DisableAutoRebalance: true}, 1024)
	// Between two root rebuilds the right spine still grows linearly, so
	// no tight bound holds right after an append storm; but the periodic
	// rebuilds must keep the tree far away from the full degenerate spine.
	if h, d := s.height(), spine.height(); h > d/2 {
		t.Errorf("expected auto-rebalance to cut tree height, got %d of %d", h, d)
	}
	for i := 0; i < 1024; i += 101 {
		if x, err := s.Get(i); err != nil || x != i {
			t.Errorf("expected s[%d] = %d after rebalances, got %d, %v", i, i, x, err)
		}
	}
}

func TestDisabledAutoRebalanceDegenerates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	s := pushN(t, Config{LeafCap: 2, DisableAutoRebalance: true}, 256)
	if err := s.Check(); err != nil {
		t.Fatal(err)
	}
	degenerated := s.height()
	rebalanced := s.Rebalance()
	if err := rebalanced.Check(); err != nil {
		t.Fatal(err)
	}
	if rebalanced.height() >= degenerated {
		t.Errorf("expected explicit rebalance to lower height, %d -> %d",
			degenerated, rebalanced.height())
	}
	// appending splits each full leaf into runs of 1 and 2, which leaves
	// 255 leaves: ⌈log₂(255)⌉ + 1 = 9; the bound of 10 allows one level of slack
	if h := rebalanced.height(); h > 10 {
		t.Errorf("expected near-minimal height after rebuild, got %d", h)
	}
	// both versions hold the same elements
	for i := 0; i < 256; i += 37 {
		a, _ := s.Get(i)
		b, _ := rebalanced.Get(i)
		if a != b || a != i {
			t.Errorf("mismatch at %d: %d vs %d", i, a, b)
		}
	}
}

func TestRebalanceSharesLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	s := pushN(t, Config{LeafCap: 2, DisableAutoRebalance: true}, 64)
	rebalanced := s.Rebalance()
	// the rebuilt tree reuses the original leaves, so they now have two
	// owners and in-place mutation of either handle must copy them out
	if err := s.SetMut(0, -1); err != nil {
		t.Fatal(err)
	}
	if x, _ := rebalanced.Get(0); x != 0 {
		t.Errorf("expected rebalanced version to keep original element, got %d", x)
	}
	if x, _ := s.Get(0); x != -1 {
		t.Errorf("expected mutated handle to see new element, got %d", x)
	}
}

func TestRebalanceOfSmallSequences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parray")
	defer teardown()
	//
	empty := New[int]()
	if r := empty.Rebalance(); !r.IsEmpty() {
		t.Errorf("expected rebalance of empty sequence to stay empty")
	}
	one := FromSlice([]int{7})
	r := one.Rebalance()
	if x, _ := r.Get(0); x != 7 {
		t.Errorf("expected singleton to survive rebalance, got %d", x)
	}
	if err := r.Check(); err != nil {
		t.Error(err)
	}
}
