package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the Treap. The zero value is meaningful: ifs[0] is the nil node,
// a zero size, zero sum loopback that every absent child points to.
// l and r own the children, p is only a back reference for walking up.
type node[T constraints.Integer, S constraints.Unsigned] struct {
	l, r, p S
	sz      S // 0 marks a freed slot.
	pri     uint32
	v, sum  T
}

type base[T constraints.Integer, S constraints.Unsigned] struct {
	root, free S            //free is the beginning of the linked list that contains all the free indexes, in which case we use l as next.
	ifs        []node[T, S] //0 is loopback nil. all index is based on ifs
}

// pull recomputes sz and sum of i from its children and points the children back at i.
func (u *base[T, S]) pull(i S) {
	n := &u.ifs[i]
	l, r := &u.ifs[n.l], &u.ifs[n.r]
	n.sz = l.sz + r.sz + 1
	n.sum = l.sum + r.sum + n.v
	if n.l != 0 {
		l.p = i
	}
	if n.r != 0 {
		r.p = i
	}
}

// adds a free index
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = node[T, S]{l: u.free}
	u.free = a
}

// gets a free index, 0 when there's none.
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a detached single node holding v.
func (u *base[T, S]) alloc(v T, pri uint32) S {
	n := node[T, S]{sz: 1, pri: pri, v: v, sum: v}
	if i := u.popFree(); i != 0 {
		u.ifs[i] = n
		return i
	}
	u.ifs = append(u.ifs, n)
	return S(len(u.ifs) - 1)
}

// live reports whether h names an allocated node.
func (u *base[T, S]) live(h S) bool {
	return h != 0 && uint64(h) < uint64(len(u.ifs)) && u.ifs[h].sz != 0
}

// top of the subtree holding the live node h, following parent links.
// Time: O(D)
func (u *base[T, S]) top(h S) S {
	for u.ifs[h].p != 0 {
		h = u.ifs[h].p
	}
	return h
}

func (u *base[T, S]) setRoot(i S) {
	u.root = i
	u.ifs[i].p = 0
	u.ifs[0].p = 0
}

func (u *base[T, S]) Size() S {
	return u.ifs[u.root].sz
}

func (u *base[T, S]) Sum() T {
	return u.ifs[u.root].sum
}

func (u *base[T, S]) clrIfs() {
	u.ifs = u.ifs[:1]
	u.ifs[0] = node[T, S]{}
	u.root, u.free = 0, 0
}
