package Queues

// Ring is a circular Window over a slice allocated once.
type Ring[T any] struct {
	sz, head uint
	content  []T
}

// MakeRing returns an empty Ring holding at most n items; n must be > 0.
func MakeRing[T any](n uint) *Ring[T] {
	return &Ring[T]{0, 0, make([]T, n)}
}

func (u *Ring[T]) Empty() bool {
	return u.sz == 0
}

func (u *Ring[T]) Size() uint {
	return u.sz
}

func (u *Ring[T]) Cap() uint {
	return uint(len(u.content))
}

func (u *Ring[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

// tail is where the next item goes.
func (u *Ring[T]) tail() uint {
	return (u.head + u.sz) % uint(len(u.content))
}

// Push [Window.Slide] with the evicted item dropped.
func (u *Ring[T]) Push(item T) {
	u.Slide(item)
}

// Slide [Window.Slide]
// Time: O(1)
func (u *Ring[T]) Slide(item T) (evicted T, full bool) {
	if full = u.sz == uint(len(u.content)); full {
		evicted = u.content[u.head]
		u.content[u.head] = item
		u.head = (u.head + 1) % uint(len(u.content))
		return
	}
	u.content[u.tail()] = item
	u.sz++
	return
}

func (u *Ring[T]) Pop() (item T, e error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

// Peek the oldest item, the zero value when empty.
func (u *Ring[T]) Peek() (item T) {
	if u.Empty() {
		return
	}
	return u.content[u.head]
}
