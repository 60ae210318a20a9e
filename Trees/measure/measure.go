package main

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/topsum/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var (
	bSeqN  = 1 << 16
	bWinL  = 1 << 4
	bExclK = bWinL / 4
)
var _R rand.Rand = *rand.New(rand.NewSource(0))

var __r1 int64

func seq() []int64 {
	s := make([]int64, bSeqN)
	for i := range s {
		s[i] = _R.Int63n(1 << 20)
	}
	return s
}

func BenchmarkTreap(b *testing.B) {
	all := seq()
	b.ResetTimer()
	for range b.N {
		tree := Trees.New[int64, uint32](uint32(bWinL), 0)
		for _, v := range all[:bWinL] {
			tree.Insert(v)
		}
		for i := bWinL; i < len(all); i++ {
			if err := tree.Remove(all[i-bWinL]); err != nil {
				b.Fatal(err)
			}
			tree.Insert(all[i])
			__r1 = tree.Sum() - tree.SumOfNGreatest(uint32(bExclK))
		}
	}
}

type item struct {
	v  int64
	at int
}

func BenchmarkBTree(b *testing.B) {
	all := seq()
	b.ResetTimer()
	for range b.N {
		tree := btree.NewG[item](32, func(x, y item) bool {
			return x.v < y.v || x.v == y.v && x.at < y.at
		})
		var sum int64
		for i, v := range all[:bWinL] {
			tree.ReplaceOrInsert(item{v, i})
			sum += v
		}
		for i := bWinL; i < len(all); i++ {
			tree.Delete(item{all[i-bWinL], i - bWinL})
			tree.ReplaceOrInsert(item{all[i], i})
			sum += all[i] - all[i-bWinL]
			k, top := bExclK, int64(0)
			tree.Descend(func(it item) bool {
				if k == 0 {
					return false
				}
				top += it.v
				k--
				return true
			})
			__r1 = sum - top
		}
	}
}

type llrbInt int64

func (a llrbInt) Less(b llrb.Item) bool {
	return a < b.(llrbInt)
}

func BenchmarkLLRB(b *testing.B) {
	all := seq()
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		var sum int64
		for _, v := range all[:bWinL] {
			tree.InsertNoReplace(llrbInt(v))
			sum += v
		}
		for i := bWinL; i < len(all); i++ {
			tree.Delete(llrbInt(all[i-bWinL]))
			tree.InsertNoReplace(llrbInt(all[i]))
			sum += all[i] - all[i-bWinL]
			k, top := bExclK, int64(0)
			tree.DescendLessOrEqual(tree.Max(), func(it llrb.Item) bool {
				if k == 0 {
					return false
				}
				top += int64(it.(llrbInt))
				k--
				return true
			})
			__r1 = sum - top
		}
	}
}

const bNumSteps = 8

func main() {
	testing.Init()
	for _, bench := range []struct {
		name string
		f    func(*testing.B)
	}{{"treap", BenchmarkTreap}, {"btree", BenchmarkBTree}, {"llrb", BenchmarkLLRB}} {
		var cs []float64
		for i := range bNumSteps {
			bWinL = 1 << (4 + i)
			bExclK = bWinL / 4
			br := testing.Benchmark(bench.f)
			cs = append(cs, float64(br.NsPerOp())/float64(bSeqN-bWinL))
			fmt.Printf("%s L=%d: %.1fns/step\n", bench.name, bWinL, cs[i])
		}
		var sum float64 = 0
		for _, v := range cs {
			sum += v
		}
		avg := sum / float64(len(cs))
		sum = 0
		for _, v := range cs {
			a := v - avg
			sum += a * a
		}
		fmt.Printf("%s average: %fns/step, stddev: %fns/step\n", bench.name, avg, math.Sqrt(sum/float64(len(cs))))
	}
}
