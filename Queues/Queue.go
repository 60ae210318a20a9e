package Queues

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

// Window is a Queue of fixed capacity that gives up its oldest item when full.
type Window[T any] interface {
	Queue[T]
	// Slide pushes item and returns the item it pushed out, if the window was full.
	Slide(item T) (evicted T, full bool)
	Size() uint
	Cap() uint
	Clear()
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
