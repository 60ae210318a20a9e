package Trees

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Check [Multiset.Check]. Besides the per node properties it makes sure every
// slot of the slice is either reachable or on the free list. Pieces out since
// the last Split are checked and counted as reachable.
// Recursive. Time: O(n)
func (u *Treap[T, S]) Check() error {
	reached := 0
	for _, r := range [3]S{u.root, u.pieces[0], u.pieces[1]} {
		if r == 0 {
			continue
		}
		if p := u.ifs[r].p; p != 0 {
			return &InvariantError{uint64(r), "parent of root", p, 0}
		}
		n, err := u.check(r, 0, 0, false, false)
		if err != nil {
			return err
		}
		reached += n
	}
	freed := 0
	for a := u.free; a != 0; a = u.ifs[a].l {
		if u.ifs[a].sz != 0 {
			return &InvariantError{uint64(a), "size of free slot", u.ifs[a].sz, 0}
		}
		if freed++; freed > len(u.ifs) {
			return &InvariantError{uint64(a), "free list length", freed, len(u.ifs) - 1}
		}
	}
	if reached+freed != len(u.ifs)-1 {
		return &InvariantError{uint64(u.root), "reachable plus free slots", reached + freed, len(u.ifs) - 1}
	}
	return nil
}

// check the subtree rooting at i where every value must be >= lo (if hasLo) and <= hi (if hasHi).
// Values equal to a node may sit on either side of it, since merge doesn't
// look at values. Returns the number of nodes in the subtree.
func (u *Treap[T, S]) check(i S, lo, hi T, hasLo, hasHi bool) (int, error) {
	if i == 0 {
		return 0, nil
	}
	cur := u.ifs[i]
	switch {
	case cur.sz == 0:
		return 0, &InvariantError{uint64(i), "liveness", "freed", "live"}
	case hasLo && cur.v < lo:
		return 0, &InvariantError{uint64(i), "value", cur.v, fmt.Sprintf(">= %v", lo)}
	case hasHi && cur.v > hi:
		return 0, &InvariantError{uint64(i), "value", cur.v, fmt.Sprintf("<= %v", hi)}
	}
	for _, c := range [2]S{cur.l, cur.r} {
		if c == 0 {
			continue
		}
		if u.ifs[c].p != i {
			return 0, &InvariantError{uint64(c), "parent", u.ifs[c].p, i}
		}
		if u.ifs[c].pri > cur.pri {
			return 0, &InvariantError{uint64(c), "priority", u.ifs[c].pri, fmt.Sprintf("<= %d", cur.pri)}
		}
	}
	l, r := u.ifs[cur.l], u.ifs[cur.r]
	if want := l.sz + r.sz + 1; cur.sz != want {
		return 0, &InvariantError{uint64(i), "count", cur.sz, want}
	}
	if want := l.sum + r.sum + cur.v; cur.sum != want {
		return 0, &InvariantError{uint64(i), "sum", cur.sum, want}
	}
	ln, err := u.check(cur.l, lo, cur.v, hasLo, true)
	if err != nil {
		return 0, err
	}
	rn, err := u.check(cur.r, cur.v, hi, true, hasHi)
	if err != nil {
		return 0, err
	}
	return ln + rn + 1, nil
}

// Corrupt reports whether Check finds anything wrong.
func (u *Treap[T, S]) Corrupt() bool {
	return u.Check() != nil
}

// Dump writes the tree to w, one node per line, children indented under their parent.
func (u *Treap[T, S]) Dump(w io.Writer) error {
	return u.dump(w, u.root, 0, "root")
}

func (u *Treap[T, S]) dump(w io.Writer, i S, d int, side string) error {
	if i == 0 {
		return nil
	}
	cur := &u.ifs[i]
	if _, err := fmt.Fprintf(w, "%s%s #%d value: %v count: %v sum: %v priority: %d\n",
		strings.Repeat("  ", d), side, i, cur.v, cur.sz, cur.sum, cur.pri); err != nil {
		return err
	}
	if err := u.dump(w, cur.l, d+1, "left"); err != nil {
		return err
	}
	return u.dump(w, cur.r, d+1, "right")
}

// NodeSnapshot is a copy of one reachable node. Absent links are 0.
type NodeSnapshot[T constraints.Integer, S constraints.Unsigned] struct {
	Handle   S      `codec:"handle"`
	Value    T      `codec:"value"`
	Priority uint32 `codec:"priority"`
	Count    S      `codec:"count"`
	Sum      T      `codec:"sum"`
	Left     S      `codec:"left"`
	Right    S      `codec:"right"`
	Parent   S      `codec:"parent"`
}

// Snapshot is a plain copy of a Treap's reachable nodes in ascending order of value.
type Snapshot[T constraints.Integer, S constraints.Unsigned] struct {
	Root  S                    `codec:"root"`
	Size  S                    `codec:"size"`
	Sum   T                    `codec:"sum"`
	Nodes []NodeSnapshot[T, S] `codec:"nodes"`
}

// Snapshot copies the reachable nodes for inspection or encoding.
// Time: O(n)
func (u *Treap[T, S]) Snapshot() Snapshot[T, S] {
	s := Snapshot[T, S]{Root: u.root, Size: u.Size(), Sum: u.Sum(), Nodes: make([]NodeSnapshot[T, S], 0, u.Size())}
	var st []S
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		n := &u.ifs[curI]
		s.Nodes = append(s.Nodes, NodeSnapshot[T, S]{curI, n.v, n.pri, n.sz, n.sum, n.l, n.r, n.p})
		for c := n.r; c != 0; c = u.ifs[c].l {
			st = append(st, c)
		}
	}
	return s
}
