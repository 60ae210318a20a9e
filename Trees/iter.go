package Trees

// walk the subtree rooting at curI in order with a stack of pending nodes.
// st is used as the stack and returned so the caller can reuse it.
func (u *base[T, S]) walk(curI S, f func(T) bool, st []S) []S {
	for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(u.ifs[curI].v) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// Walk calls f on the values in ascending order until f returns false.
// st is an optional buffer for the traversal stack, the grown buffer is returned.
// Time: O(n); Space: O(D)
func (u *Treap[T, S]) Walk(f func(T) bool, st []S) []S {
	return u.walk(u.root, f, st)
}

// InOrder [Multiset.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *Treap[T, S]) InOrder() func() (T, bool) {
	var st []S
	curI := u.root
	return func() (r T, has bool) {
		for ; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
		if len(st) == 0 {
			return
		}
		top := st[len(st)-1]
		st = st[:len(st)-1]
		curI = u.ifs[top].r
		return u.ifs[top].v, true
	}
}
