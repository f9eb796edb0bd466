package parray

// The *Mut variants mutate the receiver's tree in place wherever the edit
// path runs through uniquely owned nodes, and fall back to the persistent
// path-copy starting at the first shared node. Observable semantics are
// identical to the persistent variants; only allocation and copy counts
// differ. A handle that was cloned, or whose subtrees were shared into
// another version, regains in-place speed as the shared parts get copied
// out on first mutation.
//
// Ownership transfer convention for the recursive helpers: they take a
// node owned by the caller's slot and return the node that slot should
// reference afterwards. When the returned node differs from the input, the
// caller releases its reference to the input.

// SetMut replaces the element at index i by x, editing uniquely owned
// nodes in place. It returns an out-of-bounds error for i ≥ Len().
func (s *Seq[T]) SetMut(i int, x T) error {
	if i < 0 || i >= s.length {
		return indexError(i, s.length)
	}
	n := s.root
	if !unique(n, s.shared()) {
		root := s.setNode(n, i, x)
		release(n, s.shared())
		s.root = root
		return nil
	}
	for {
		if n.isLeaf() {
			n.items[i] = x
			return nil
		}
		var child *node[T]
		if i < n.weight {
			child = n.left
		} else {
			i -= n.weight
			child = n.right
		}
		if unique(child, s.shared()) {
			n = child
			continue
		}
		cloned := s.setNode(child, i, x)
		if child == n.left {
			n.left = cloned
		} else {
			n.right = cloned
		}
		release(child, s.shared())
		return nil
	}
}

// InsertMut inserts x before index i (0 ≤ i ≤ Len()), editing uniquely
// owned nodes in place.
func (s *Seq[T]) InsertMut(i int, x T) error {
	if i < 0 || i > s.length {
		return indexError(i, s.length)
	}
	root := s.rootOrEmpty()
	updated := s.insertNodeMut(root, i, x)
	if updated != root && s.root != nil {
		release(s.root, s.shared())
	}
	s.root = updated
	s.length++
	if s.autoRebalance() {
		s.rebalanceRootMut()
	}
	return nil
}

// DeleteMut removes the element at index i, editing uniquely owned nodes
// in place. It returns an out-of-bounds error for i ≥ Len().
func (s *Seq[T]) DeleteMut(i int) error {
	if i < 0 || i >= s.length {
		return indexError(i, s.length)
	}
	updated := s.deleteNodeMut(s.root, i)
	if updated != s.root {
		release(s.root, s.shared())
	}
	s.root = updated
	s.length--
	if s.autoRebalance() {
		s.rebalanceRootMut()
	}
	return nil
}

// PushMut appends x at the back, editing uniquely owned nodes in place.
func (s *Seq[T]) PushMut(x T) {
	err := s.InsertMut(s.length, x)
	assert(err == nil, "push index cannot be out of bounds")
}

// PrependMut inserts x at the front, editing uniquely owned nodes in
// place.
func (s *Seq[T]) PrependMut(x T) {
	err := s.InsertMut(0, x)
	assert(err == nil, "prepend index cannot be out of bounds")
}

// insertNodeMut inserts x before index i under n, mutating in place while
// nodes on the path are uniquely owned.
func (s Seq[T]) insertNodeMut(n *node[T], i int, x T) *node[T] {
	if !unique(n, s.shared()) {
		return s.insertNode(n, i, x)
	}
	if n.isLeaf() {
		if len(n.items) < s.leafCap() {
			n.items = spliceAt(n.items, i, x)
			return n
		}
		// overflow: the leaf itself turns into a branch over two fresh runs
		left, right := splitLeafRun(n.items, i, x, s.leafCap())
		n.items = nil
		n.weight = len(left)
		n.left = newLeaf(left)
		n.right = newLeaf(right)
		return n
	}
	if i < n.weight {
		updated := s.insertNodeMut(n.left, i, x)
		if updated != n.left {
			release(n.left, s.shared())
			n.left = updated
		}
		n.weight++
	} else {
		updated := s.insertNodeMut(n.right, i-n.weight, x)
		if updated != n.right {
			release(n.right, s.shared())
			n.right = updated
		}
	}
	return n
}

// deleteNodeMut removes the element at index i under n, mutating in place
// while nodes on the path are uniquely owned. Like the persistent delete,
// the lowest branch whose child runs empty collapses to the sibling; the
// sibling's ownership transfers from the dropped branch to the caller's
// slot.
func (s Seq[T]) deleteNodeMut(n *node[T], i int) *node[T] {
	if !unique(n, s.shared()) {
		return s.deleteNode(n, i)
	}
	if n.isLeaf() {
		n.items = removeAt(n.items, i)
		return n
	}
	if i < n.weight {
		updated := s.deleteNodeMut(n.left, i)
		if updated.size() == 0 {
			return n.right
		}
		if updated != n.left {
			release(n.left, s.shared())
			n.left = updated
		}
		n.weight--
		return n
	}
	updated := s.deleteNodeMut(n.right, i-n.weight)
	if updated.size() == 0 {
		return n.left
	}
	if updated != n.right {
		release(n.right, s.shared())
		n.right = updated
	}
	return n
}

// rebalanceRootMut applies the root imbalance check to the handle's own
// root, swapping in a rebuilt tree when needed.
func (s *Seq[T]) rebalanceRootMut() {
	if s.root == nil || !s.unbalanced(s.root) {
		return
	}
	rebuilt := s.rebuild(s.root)
	release(s.root, s.shared())
	s.root = rebuilt
}
