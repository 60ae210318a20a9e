package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/g-m-twostay/topsum/Windows"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultDebugLevel = "off"
	defaultEvict      = "value"
)

// config defines the configuration options for windowsum.
//
// See loadConfig for details on the configuration load process.
type config struct {
	InFile     string `short:"i" long:"infile" description:"File holding N L K and the sequence -- Reads stdin when empty"`
	Seed       uint64 `long:"seed" description:"Seed for the multiset's priorities"`
	Evict      string `long:"evict" description:"How the value leaving the window is removed: value or handle"`
	Check      bool   `long:"check" description:"Check the multiset's invariants after every step"`
	DumpFile   string `long:"dump" description:"Write a JSON snapshot of the final multiset to this file"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`

	evict Windows.EvictMode
	level btclog.Level
}

// isHelp reports whether err only means the help message was shown.
func isHelp(err error) bool {
	e, ok := err.(*flags.Error)
	return ok && e.Type == flags.ErrHelp
}

// loadConfig initializes and parses the config using command line options.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		Evict:      defaultEvict,
		DebugLevel: defaultDebugLevel,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if !isHelp(err) {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	if cfg.evict, err = Windows.ParseEvictMode(cfg.Evict); err != nil {
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	level, ok := btclog.LevelFromString(strings.ToLower(cfg.DebugLevel))
	if !ok {
		err := fmt.Errorf("the specified debug level [%v] is invalid", cfg.DebugLevel)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}
	cfg.level = level

	return &cfg, remainingArgs, nil
}
