package Windows

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedInput is the cause of every error about unreadable input text.
	ErrMalformedInput = errors.New("malformed input")
	// ErrBadParameter is the cause of every error about out of range N, L or K.
	ErrBadParameter = errors.New("bad parameter")
)

// Problem is one instance: the minimum over all windows of length L of Seq of
// the window sum without its K largest values.
type Problem struct {
	N, L, K int
	Seq     []int64
}

// Validate the parameters against each other.
func (p Problem) Validate() error {
	switch {
	case p.N != len(p.Seq):
		return errors.Wrapf(ErrBadParameter, "N is %d but the sequence holds %d values", p.N, len(p.Seq))
	case p.L < 1:
		return errors.Wrapf(ErrBadParameter, "window length %d, want at least 1", p.L)
	case p.L > p.N:
		return errors.Wrapf(ErrBadParameter, "window length %d longer than the sequence of %d", p.L, p.N)
	case p.K < 0:
		return errors.Wrapf(ErrBadParameter, "excluding %d values", p.K)
	}
	return nil
}

// Config for solving p with the given options.
func (p Problem) Config(seed uint64, evict EvictMode, check bool) Config {
	return Config{Length: p.L, Exclude: p.K, Seed: seed, Evict: evict, Check: check}
}

// ReadProblem reads whitespace separated integers from r: N, L and K, then N
// values. Anything after the N values is ignored.
func ReadProblem(r io.Reader) (p Problem, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	sc.Split(bufio.ScanWords)
	read := func(what string) (int64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, errors.Wrapf(err, "reading %s", what)
			}
			return 0, errors.Wrapf(ErrMalformedInput, "input ended before %s", what)
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrMalformedInput, "%s: %v", what, err)
		}
		return v, nil
	}
	var head [3]int64
	for i, what := range [3]string{"N", "L", "K"} {
		if head[i], err = read(what); err != nil {
			return
		}
	}
	if head[0] < 0 || head[0] > maxLength {
		return p, errors.Wrapf(ErrBadParameter, "sequence length %d", head[0])
	}
	p.N, p.L, p.K = int(head[0]), int(head[1]), int(head[2])
	if head[1] != int64(p.L) || head[2] != int64(p.K) {
		return p, errors.Wrapf(ErrBadParameter, "L %d or K %d out of range", head[1], head[2])
	}
	// N is only a claim until the values are read.
	p.Seq = make([]int64, 0, min(p.N, 1<<16))
	for i := range p.N {
		var v int64
		if v, err = read("value " + strconv.Itoa(i+1)); err != nil {
			return
		}
		p.Seq = append(p.Seq, v)
	}
	log.Debugf("read N=%d L=%d K=%d", p.N, p.L, p.K)
	return p, p.Validate()
}
