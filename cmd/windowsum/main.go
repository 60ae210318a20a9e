// windowsum reads N L K and a sequence of N integers and prints the smallest,
// over every window of L consecutive values, of the window's sum without its
// K largest values.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/g-m-twostay/topsum/Trees"
	"github.com/g-m-twostay/topsum/Windows"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
)

var log = btclog.Disabled

// setupLogging hands every package a subsystem logger writing to w.
func setupLogging(w io.Writer, level btclog.Level) {
	backend := btclog.NewBackend(w)
	log = backend.Logger("MAIN")
	trap := backend.Logger("TRAP")
	wndw := backend.Logger("WNDW")
	for _, l := range []btclog.Logger{log, trap, wndw} {
		l.SetLevel(level)
	}
	Trees.UseLogger(trap)
	Windows.UseLogger(wndw)
}

// dump writes a JSON snapshot of the multiset to path.
func dump(path string, set *Trees.Treap[int64, uint32]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	jh := &codec.JsonHandle{}
	jh.Indent = 2
	if err := codec.NewEncoder(f, jh).Encode(set.Snapshot()); err != nil {
		return err
	}
	return f.Close()
}

// run solves the problem read from in and writes the answer to out.
func run(cfg *config, in io.Reader, out io.Writer) error {
	p, err := Windows.ReadProblem(bufio.NewReader(in))
	if err != nil {
		return errors.Wrap(err, "reading problem")
	}
	w, err := Windows.New(p.Config(cfg.Seed, cfg.evict, cfg.Check))
	if err != nil {
		return err
	}
	for _, v := range p.Seq {
		if _, _, err := w.Push(v); err != nil {
			return err
		}
	}
	best, _ := w.Best()
	log.Infof("%d windows of %d, excluding %d, best %d", w.Windows(), p.L, p.K, best)
	if cfg.DumpFile != "" {
		if err := dump(cfg.DumpFile, w.Set()); err != nil {
			return errors.Wrapf(err, "dumping to %s", cfg.DumpFile)
		}
	}
	_, err = fmt.Fprintln(out, best)
	return err
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	setupLogging(os.Stderr, cfg.level)

	in := io.Reader(os.Stdin)
	if cfg.InFile != "" {
		f, err := os.Open(cfg.InFile)
		if err != nil {
			log.Errorf("Failed to open file %v: %v", cfg.InFile, err)
			return err
		}
		defer f.Close()
		in = f
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	return run(cfg, in, out)
}

func main() {
	if err := realMain(); err != nil {
		if isHelp(err) {
			os.Exit(0)
		}
		// go-flags already printed its own errors.
		if _, ok := err.(*flags.Error); !ok {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
