package symcalc

// Handle is an opaque, stable index identifying a node within an Arena. A
// handle stays valid until its slot is freed or the arena is cleared.
type Handle int32

// InvalidHandle is returned alongside a non-nil error.
const InvalidHandle Handle = -1

// DefaultCapacity bounds the slot pool of an arena built with NewArena.
const DefaultCapacity = 1 << 20

// Arena owns every expression node in a slot pool. Slots are either free or
// hold exactly one well-formed node; freed slots are reused most recent
// first. An Arena must not be written to from multiple goroutines.
type Arena struct {
	nodes []Node
	free  []Handle // LIFO stack of reusable slots
	limit int
}

func NewArena() *Arena { return NewArenaSize(DefaultCapacity) }

// NewArenaSize builds an arena holding at most limit nodes.
func NewArenaSize(limit int) *Arena {
	if limit < 1 {
		limit = 1
	}
	return &Arena{limit: limit}
}

// alloc places n in a slot and returns its handle. O(1).
func (a *Arena) alloc(n Node) (Handle, error) {
	if len(a.free) > 0 {
		h := a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		a.nodes[h] = n
		return h, nil
	}
	if len(a.nodes) >= a.limit {
		return InvalidHandle, ErrOutOfMemory
	}
	a.nodes = append(a.nodes, n)
	return Handle(len(a.nodes) - 1), nil
}

// At returns the node addressed by h, or ErrInvalidIndex if h is out of
// range or its slot is free. The returned pointer is invalidated by the next
// allocation; callers that build nodes must copy first.
func (a *Arena) At(h Handle) (*Node, error) {
	if h < 0 || int(h) >= len(a.nodes) || a.nodes[h].Kind == KindFree {
		return nil, ErrInvalidIndex
	}
	return &a.nodes[h], nil
}

// node is At for internal traversals, where an invalid handle means a bug in
// the engine itself rather than a runtime condition.
func (a *Arena) node(h Handle) Node {
	n, err := a.At(h)
	if err != nil {
		panic(ErrInvalidIndex)
	}
	return *n
}

// Free releases the slot's owned payload and returns the slot to the free
// list. It does not touch the node's children: with structural sharing
// another parent may still reference them, so recursive freeing is the
// caller's problem only when it can prove sole ownership. Prefer Clear.
func (a *Arena) Free(h Handle) error {
	if _, err := a.At(h); err != nil {
		return err
	}
	a.nodes[h] = Node{Kind: KindFree}
	a.free = append(a.free, h)
	return nil
}

// Clear frees every occupied slot. All outstanding handles become invalid;
// the arena itself stays usable.
func (a *Arena) Clear() {
	a.nodes = a.nodes[:0]
	a.free = a.free[:0]
}

// Len reports the number of occupied slots.
func (a *Arena) Len() int { return len(a.nodes) - len(a.free) }

// Cap reports the slot limit.
func (a *Arena) Cap() int { return a.limit }
