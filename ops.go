package parray

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// This file holds the pure path algorithms: positional descent plus the
// path-copying implementations of set, insert, delete, split and concat.
// All of them return freshly owned nodes and leave their input trees
// untouched; nodes of the input that survive into the result are retained
// at the point of reuse.

// locate descends to the leaf holding index i and returns the leaf and the
// offset within it. Descent is iterative; the caller guarantees i < size.
func (s Seq[T]) locate(n *node[T], i int) (*node[T], int) {
	for !n.isLeaf() {
		if i < n.weight {
			n = n.left
		} else {
			i -= n.weight
			n = n.right
		}
	}
	assert(i < len(n.items), "descent beyond leaf boundary")
	return n, i
}

// setNode replaces the element at index i and returns the new subtree
// root. Weights on the path are unchanged; the untouched sibling of every
// branch on the edit path is shared into the result.
func (s Seq[T]) setNode(n *node[T], i int, x T) *node[T] {
	if n.isLeaf() {
		items := append([]T(nil), n.items...)
		items[i] = x
		return newLeaf(items)
	}
	if i < n.weight {
		left := s.setNode(n.left, i, x)
		return newBranchWeight(n.weight, left, retain(n.right, s.shared()))
	}
	right := s.setNode(n.right, i-n.weight, x)
	return newBranchWeight(n.weight, retain(n.left, s.shared()), right)
}

// insertNode inserts x before index i (0 ≤ i ≤ size) and returns the new
// subtree root. A leaf that would exceed the leaf cap is split at the
// midpoint into a two-leaf branch.
func (s Seq[T]) insertNode(n *node[T], i int, x T) *node[T] {
	if n.isLeaf() {
		if len(n.items) < s.leafCap() {
			return newLeaf(spliceAt(n.items, i, x))
		}
		left, right := splitLeafRun(n.items, i, x, s.leafCap())
		return newBranchWeight(len(left), newLeaf(left), newLeaf(right))
	}
	if i < n.weight {
		left := s.insertNode(n.left, i, x)
		return newBranchWeight(n.weight+1, left, retain(n.right, s.shared()))
	}
	right := s.insertNode(n.right, i-n.weight, x)
	return newBranchWeight(n.weight, retain(n.left, s.shared()), right)
}

// deleteNode removes the element at index i and returns the new subtree
// root. The lowest branch whose child runs empty collapses to the sibling,
// so empty leaves never survive below the root.
func (s Seq[T]) deleteNode(n *node[T], i int) *node[T] {
	if n.isLeaf() {
		return newLeaf(removeAt(n.items, i))
	}
	if i < n.weight {
		left := s.deleteNode(n.left, i)
		if left.size() == 0 {
			return retain(n.right, s.shared())
		}
		return newBranchWeight(n.weight-1, left, retain(n.right, s.shared()))
	}
	right := s.deleteNode(n.right, i-n.weight)
	if right.size() == 0 {
		return retain(n.left, s.shared())
	}
	return newBranchWeight(n.weight, retain(n.left, s.shared()), right)
}

// splitNode splits the subtree right before index i and returns both
// halves as freshly owned roots. The caller guarantees 0 < i < size, so
// leaf splits never produce an empty half.
func (s Seq[T]) splitNode(n *node[T], i int) (*node[T], *node[T]) {
	if n.isLeaf() {
		assert(i > 0 && i < len(n.items), "leaf split at run boundary")
		left := append([]T(nil), n.items[:i]...)
		right := append([]T(nil), n.items[i:]...)
		return newLeaf(left), newLeaf(right)
	}
	if i == n.weight {
		return retain(n.left, s.shared()), retain(n.right, s.shared())
	}
	if i < n.weight {
		ll, lr := s.splitNode(n.left, i)
		return ll, s.concatNodes(lr, retain(n.right, s.shared()))
	}
	rl, rr := s.splitNode(n.right, i-n.weight)
	return s.concatNodes(retain(n.left, s.shared()), rl), rr
}

// concatNodes joins two owned subtrees. An empty side yields the other
// side unchanged; otherwise the result is a single new branch on top.
func (s Seq[T]) concatNodes(a, b *node[T]) *node[T] {
	an, bn := a.size(), b.size()
	if an == 0 {
		return b
	}
	if bn == 0 {
		return a
	}
	return newBranchWeight(an, a, b)
}

// --- Leaf run helpers ------------------------------------------------------

// spliceAt returns a fresh run with x inserted before index i.
func spliceAt[T any](items []T, i int, x T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, x)
	out = append(out, items[i:]...)
	return out
}

// removeAt returns a fresh run without the element at index i.
func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out
}

// splitLeafRun splices x into a full run and splits the combined run at
// the midpoint. The left half gets the first (cap+1)/2 elements, the right
// half the rest, with x landing in whichever half its position selects.
func splitLeafRun[T any](items []T, i int, x T, leafCap int) ([]T, []T) {
	assert(len(items) == leafCap, "leaf split requires a full run")
	combined := spliceAt(items, i, x)
	m := (leafCap + 1) / 2
	left := combined[:m:m]
	right := combined[m:]
	return left, right
}
