package Trees

import (
	Go_Utils "github.com/g-m-twostay/topsum"
	"golang.org/x/exp/constraints"
)

// Treap is a multiset of integers kept as a binary search tree on value and a
// max heap on random priority, which keeps the expected depth D at O(log n).
// Every node also tracks the size and the sum of its subtree, so both Size
// and Sum are O(1) and SumOfNGreatest never enumerates the elements it adds up.
// Equal values are kept to the right of each other.
// T is the type of the values and of their sums, S is the type of the indexes
// used as handles and for the sizes of subtrees. Pick S wide enough for the
// largest size the multiset will reach, and T wide enough for the largest sum.
// Nodes live in one slice; handles are indexes into it and are reused after
// removal.
type Treap[T constraints.Integer, S constraints.Unsigned] struct {
	base[T, S]
	rg     *Go_Utils.Rand
	pieces [2]S // roots handed out by the last Split, until Merge takes them back.
}

// New returns an empty Treap with room for hint elements. Priorities are drawn
// from a generator seeded with seed, so equal seeds and equal operation
// sequences give equal shapes.
func New[T constraints.Integer, S constraints.Unsigned](hint S, seed uint64) *Treap[T, S] {
	ifs := make([]node[T, S], 1, uint64(hint)+1)
	return &Treap[T, S]{base: base[T, S]{ifs: ifs}, rg: Go_Utils.NewRand(seed)}
}

// Insert [Multiset.Insert]. The new node is merged between the values < v and
// the values >= v, so equal values already present may end up on either side of it.
// Time: expected O(log n)
func (u *Treap[T, S]) Insert(v T) S {
	i := u.alloc(v, u.rg.Uint32())
	lo, hi := u.split(u.root, v)
	u.setRoot(u.merge(u.merge(lo, i), hi))
	return i
}

// Find [Multiset.Find]
// Time: O(D); Space: O(1)
func (u *Treap[T, S]) Find(v T) (S, bool) {
	i := u.find(v)
	return i, i != 0
}

// Has [Multiset.Has]
// Time: O(D); Space: O(1)
func (u *Treap[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Value [Multiset.Value]
// Time: O(1)
func (u *Treap[T, S]) Value(h S) (T, bool) {
	if !u.live(h) {
		return *new(T), false
	}
	return u.ifs[h].v, true
}

// Remove [Multiset.Remove]. The occurrence removed is the first one met on the
// search path for v.
// Time: expected O(log n)
func (u *Treap[T, S]) Remove(v T) error {
	i := u.find(v)
	if i == 0 {
		log.Debugf("remove %v: not present among %v elements", v, u.Size())
		return ErrNotFound
	}
	u.unlink(i)
	return nil
}

// RemoveAt [Multiset.RemoveAt]
// Time: expected O(log n)
func (u *Treap[T, S]) RemoveAt(h S) error {
	if !u.live(h) {
		log.Debugf("remove handle %v: not a live node", h)
		return ErrStaleHandle
	}
	if top := u.top(h); top != u.root {
		log.Debugf("remove handle %v: held by the detached subtree at %v", h, top)
		return ErrStaleHandle
	}
	u.unlink(h)
	return nil
}

// SumOfNGreatest [Multiset.SumOfNGreatest]. n=0 gives 0.
// Recursive. Time: expected O(log n)
func (u *Treap[T, S]) SumOfNGreatest(n S) T {
	return u.sumOfNGreatest(u.root, n)
}

// Minimum [Multiset.Minimum]
// Time: O(D); Space: O(1)
func (u *Treap[T, S]) Minimum() (T, bool) {
	curI := u.root
	if curI == 0 {
		return *new(T), false
	}
	for u.ifs[curI].l != 0 {
		curI = u.ifs[curI].l
	}
	return u.ifs[curI].v, true
}

// Maximum [Multiset.Maximum]
// Time: O(D); Space: O(1)
func (u *Treap[T, S]) Maximum() (T, bool) {
	curI := u.root
	if curI == 0 {
		return *new(T), false
	}
	for u.ifs[curI].r != 0 {
		curI = u.ifs[curI].r
	}
	return u.ifs[curI].v, true
}

// KLargest [Multiset.KLargest]
// Returns (x,true) if 1<=k<=Size(), otherwise (0,false).
// Time: O(D); Space: O(1)
func (u *Treap[T, S]) KLargest(k S) (T, bool) {
	if k == 0 || k > u.Size() {
		return *new(T), false
	}
	for curI := u.root; curI != 0; {
		cur := &u.ifs[curI]
		if rsz := u.ifs[cur.r].sz; k <= rsz {
			curI = cur.r
		} else if k == rsz+1 {
			return cur.v, true
		} else {
			k -= rsz + 1
			curI = cur.l
		}
	}
	return *new(T), false
}

// Clear the treap, keeping the allocated slice. Handles issued before are invalid
// and may name new elements after later inserts.
// Time: O(1)
func (u *Treap[T, S]) Clear() {
	u.clrIfs()
	u.pieces = [2]S{}
}

// Split detaches every element: lo gets the values < pivot and hi the values
// >= pivot. The treap is empty afterward until Merge puts the pieces back.
// Handles into the pieces can't be removed meanwhile, and Check still counts
// the pieces' nodes. Splitting again before Merge abandons the outstanding pieces.
// Recursive. Time: expected O(log n)
func (u *Treap[T, S]) Split(pivot T) (lo, hi Piece[T, S]) {
	l, r := u.split(u.root, pivot)
	u.setRoot(0)
	u.ifs[l].p, u.ifs[r].p = 0, 0
	u.ifs[0].p = 0
	u.pieces = [2]S{l, r}
	return Piece[T, S]{u, l}, Piece[T, S]{u, r}
}

// Merge makes lo and hi the contents of the treap. Both pieces must come from
// the last Split on u, u must be empty and lo's values must all be <= hi's
// values, otherwise the treap is left as it was and an error is returned.
// Recursive. Time: expected O(log n)
func (u *Treap[T, S]) Merge(lo, hi Piece[T, S]) error {
	if lo.u != u || hi.u != u {
		return ErrForeignPiece
	}
	if u.root != 0 {
		return ErrNotDetached
	}
	if got := [2]S{lo.root, hi.root}; got != u.pieces && got != [2]S{u.pieces[1], u.pieces[0]} {
		log.Debugf("merge: pieces %v aren't those of the last split %v", got, u.pieces)
		return ErrForeignPiece
	}
	if lmax, ok := lo.Maximum(); ok {
		if hmin, ok := hi.Minimum(); ok && lmax > hmin {
			log.Debugf("merge: lower piece max %v above upper piece min %v", lmax, hmin)
			return ErrOverlap
		}
	}
	u.setRoot(u.merge(lo.root, hi.root))
	u.pieces = [2]S{}
	return nil
}

// Piece is a detached part of a Treap produced by Split. It reads the owner's
// slice, so it's only meaningful until the owner is modified again.
type Piece[T constraints.Integer, S constraints.Unsigned] struct {
	u    *Treap[T, S]
	root S
}

func (p Piece[T, S]) Size() S {
	return p.u.ifs[p.root].sz
}

func (p Piece[T, S]) Sum() T {
	return p.u.ifs[p.root].sum
}

func (p Piece[T, S]) Minimum() (T, bool) {
	if p.root == 0 {
		return *new(T), false
	}
	curI := p.root
	for p.u.ifs[curI].l != 0 {
		curI = p.u.ifs[curI].l
	}
	return p.u.ifs[curI].v, true
}

func (p Piece[T, S]) Maximum() (T, bool) {
	if p.root == 0 {
		return *new(T), false
	}
	curI := p.root
	for p.u.ifs[curI].r != 0 {
		curI = p.u.ifs[curI].r
	}
	return p.u.ifs[curI].v, true
}

// Values of the piece in ascending order.
func (p Piece[T, S]) Values() []T {
	vs := make([]T, 0, p.Size())
	p.u.walk(p.root, func(v T) bool {
		vs = append(vs, v)
		return true
	}, nil)
	return vs
}
