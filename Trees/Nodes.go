package Trees

// merge the subtrees rooting at a and b, every value under a must be <= every value under b.
// The root with the strictly greater priority stays on top. The returned root
// may carry a stale p; whoever attaches it fixes that.
// Recursive. Time: expected O(log n)
func (u *base[T, S]) merge(a, b S) S {
	if a == 0 {
		return b
	} else if b == 0 {
		return a
	}
	if u.ifs[a].pri > u.ifs[b].pri {
		m := u.merge(u.ifs[a].r, b)
		u.ifs[a].r = m
		u.pull(a)
		return a
	} else {
		m := u.merge(a, u.ifs[b].l)
		u.ifs[b].l = m
		u.pull(b)
		return b
	}
}

// split the subtree rooting at i into values < pivot and values >= pivot.
// Equal values go right, matching find and insert.
// Recursive. Time: expected O(log n)
func (u *base[T, S]) split(i S, pivot T) (lo, hi S) {
	if i == 0 {
		return 0, 0
	}
	if u.ifs[i].v < pivot {
		rl, rr := u.split(u.ifs[i].r, pivot)
		u.ifs[i].r = rl
		u.pull(i)
		return i, rr
	} else {
		ll, lr := u.split(u.ifs[i].l, pivot)
		u.ifs[i].l = lr
		u.pull(i)
		return ll, i
	}
}

// find the first node holding v on the search path, 0 if there's none.
// Time: O(D); Space: O(1)
func (u *base[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if cur := &u.ifs[curI]; cur.v == v {
			return curI
		} else if cur.v > v {
			curI = cur.l
		} else {
			curI = cur.r
		}
	}
	return 0
}

// unlink node i: every ancestor loses one element and i's value, then the
// merged children take i's slot. Merging conserves sz and sum, so the
// ancestors need no recomputation.
func (u *base[T, S]) unlink(i S) {
	n := u.ifs[i]
	for curI := n.p; curI != 0; curI = u.ifs[curI].p {
		u.ifs[curI].sz--
		u.ifs[curI].sum -= n.v
	}
	m := u.merge(n.l, n.r)
	if n.p == 0 {
		u.setRoot(m)
	} else {
		if u.ifs[n.p].l == i {
			u.ifs[n.p].l = m
		} else {
			u.ifs[n.p].r = m
		}
		if m != 0 {
			u.ifs[m].p = n.p
		}
	}
	u.addFree(i)
}

// sumOfNGreatest in the subtree rooting at i. Descends right first since the
// right side holds the larger values, and only into subtrees that are partly
// covered by n.
// Recursive. Time: expected O(log n)
func (u *base[T, S]) sumOfNGreatest(i S, n S) (total T) {
	cur := &u.ifs[i]
	if n == 0 || i == 0 {
		return 0
	} else if n >= cur.sz {
		return cur.sum
	}
	total = u.sumOfNGreatest(cur.r, n)
	if rsz := u.ifs[cur.r].sz; n <= rsz {
		return
	} else {
		n -= rsz
	}
	total += cur.v
	if n--; n == 0 {
		return
	}
	return total + u.sumOfNGreatest(cur.l, n)
}
