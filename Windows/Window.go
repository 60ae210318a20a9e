package Windows

import (
	"fmt"
	"math"
	"strings"

	"github.com/g-m-twostay/topsum/Queues"
	"github.com/g-m-twostay/topsum/Trees"
	"github.com/pkg/errors"
)

// maxLength bounds the window so its handles fit in uint32 on every platform.
const maxLength = math.MaxInt32

// EvictMode selects how the value leaving the window is taken out of the multiset.
type EvictMode uint8

const (
	// EvictByValue removes some occurrence of the outgoing value.
	EvictByValue EvictMode = iota
	// EvictByHandle removes the exact node inserted for the outgoing position.
	EvictByHandle
)

func (m EvictMode) String() string {
	switch m {
	case EvictByValue:
		return "value"
	case EvictByHandle:
		return "handle"
	}
	return fmt.Sprintf("EvictMode(%d)", uint8(m))
}

// ParseEvictMode is the inverse of EvictMode.String.
func ParseEvictMode(s string) (EvictMode, error) {
	switch strings.ToLower(s) {
	case "", "value":
		return EvictByValue, nil
	case "handle":
		return EvictByHandle, nil
	}
	return 0, errors.Wrapf(ErrBadParameter, "unknown evict mode %q", s)
}

type Config struct {
	// Length of every window, at least 1.
	Length int
	// Exclude is how many of the largest values are left out of a window's cost.
	// 0 keeps everything, Length or more leaves nothing.
	Exclude int
	// Seed for the multiset's priorities.
	Seed  uint64
	Evict EvictMode
	// Check the multiset's invariants after every step. O(L) per step.
	Check bool
}

func (c Config) validate() error {
	switch {
	case c.Length < 1 || c.Length > maxLength:
		return errors.Wrapf(ErrBadParameter, "window length %d", c.Length)
	case c.Exclude < 0:
		return errors.Wrapf(ErrBadParameter, "excluding %d values", c.Exclude)
	case c.Evict > EvictByHandle:
		return errors.Wrapf(ErrBadParameter, "evict mode %v", c.Evict)
	}
	return nil
}

// slot remembers what was inserted for one position of the window.
type slot struct {
	v int64
	h uint32
}

// Window slides over a sequence one value at a time and keeps the smallest
// cost seen, the cost of a full window being its sum minus the sum of its
// Exclude largest values.
type Window struct {
	cfg  Config
	set  *Trees.Treap[int64, uint32]
	ring *Queues.Ring[slot]
	k    uint32
	best int64
	full int // windows seen
}

func New(cfg Config) (*Window, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	k := uint32(min(cfg.Exclude, cfg.Length))
	log.Debugf("window of %d excluding %d, evicting by %v", cfg.Length, k, cfg.Evict)
	return &Window{
		cfg:  cfg,
		set:  Trees.New[int64, uint32](uint32(cfg.Length), cfg.Seed),
		ring: Queues.MakeRing[slot](uint(cfg.Length)),
		k:    k,
	}, nil
}

// Push v as the newest value. Once the window is full, the oldest value is
// removed first and the cost of the new window is returned with ready set.
// Time: expected O(log L)
func (u *Window) Push(v int64) (cost int64, ready bool, err error) {
	if u.ring.Size() == u.ring.Cap() {
		out := u.ring.Peek()
		if u.cfg.Evict == EvictByHandle {
			err = u.set.RemoveAt(out.h)
		} else {
			err = u.set.Remove(out.v)
		}
		if err != nil {
			return 0, false, errors.Wrapf(err, "evicting %d after %d windows", out.v, u.full)
		}
	}
	u.ring.Slide(slot{v, u.set.Insert(v)})
	if u.cfg.Check {
		if err = u.set.Check(); err != nil {
			log.Errorf("multiset corrupt after pushing %d: %v", v, err)
			return 0, false, errors.Wrapf(err, "after %d windows", u.full)
		}
	}
	if u.ring.Size() < u.ring.Cap() {
		return 0, false, nil
	}
	cost = u.set.Sum() - u.set.SumOfNGreatest(u.k)
	if u.full++; u.full == 1 || cost < u.best {
		u.best = cost
		log.Tracef("window %d: new best %d, holding %v", u.full, cost, logClosure(u.describe))
	}
	return cost, true, nil
}

// Best cost over the full windows seen so far; false before the first one.
func (u *Window) Best() (int64, bool) {
	return u.best, u.full > 0
}

// Windows returns how many full windows were seen.
func (u *Window) Windows() int {
	return u.full
}

// Set gives read access to the multiset holding the current window.
func (u *Window) Set() *Trees.Treap[int64, uint32] {
	return u.set
}

func (u *Window) describe() string {
	var b strings.Builder
	b.WriteByte('[')
	u.set.Walk(func(v int64) bool {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
		return b.Len() < 256
	}, nil)
	b.WriteByte(']')
	return b.String()
}

// Solve slides a window configured by cfg over seq and returns the smallest cost.
func Solve(seq []int64, cfg Config) (int64, error) {
	if len(seq) < cfg.Length {
		return 0, errors.Wrapf(ErrBadParameter, "window length %d longer than the sequence of %d", cfg.Length, len(seq))
	}
	w, err := New(cfg)
	if err != nil {
		return 0, err
	}
	for _, v := range seq {
		if _, _, err = w.Push(v); err != nil {
			return 0, err
		}
	}
	best, _ := w.Best()
	log.Debugf("%d windows, best %d", w.Windows(), best)
	return best, nil
}
