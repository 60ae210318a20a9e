package Trees

import "golang.org/x/exp/constraints"

// Multiset represents an ordered collection of integers that may hold the same
// value more than once. Every occurrence is a distinct element with its own
// handle of type S. Receivers that has a bool as a second return value
// indicates whether the first return value is defined; when it's false the
// first value is the zero value and shouldn't be used.
// Implementations aren't safe for concurrent use; Methods implemented
// recursively should be noted, otherwise functions are implemented iteratively.
type Multiset[T constraints.Integer, S constraints.Unsigned] interface {
	//Insert v, always succeeds. The returned handle stays valid until the
	//element is removed.
	Insert(v T) S
	//Remove one occurrence of v. Which one is unspecified when v is duplicated.
	//Returns ErrNotFound if there's none.
	Remove(v T) error
	//RemoveAt removes the element behind handle h. Returns ErrStaleHandle if h
	//doesn't name a live element.
	RemoveAt(h S) error
	//Find the handle of some occurrence of v.
	Find(v T) (S, bool)
	//Has element v.
	Has(v T) bool
	//Value behind handle h.
	Value(h S) (T, bool)
	//Minimum element.
	Minimum() (T, bool)
	//Maximum element.
	Maximum() (T, bool)
	//KLargest element, 1<=k<=Size().
	KLargest(k S) (T, bool)
	//SumOfNGreatest returns the sum of the n largest elements; Sum() when n>=Size().
	SumOfNGreatest(n S) T
	//Sum of all elements.
	Sum() T
	//Size of the multiset, counting duplicates.
	Size() S
	//InOrder returns a closure f acting like an iterator over the elements in
	//ascending order: val, valid=f(). val is meaningful only if valid is true.
	//valid can't turn true after it first became false. The multiset must not
	//be modified during the iteration.
	InOrder() func() (T, bool)
	//Check walks the whole structure and reports the first violated property.
	Check() error
}
