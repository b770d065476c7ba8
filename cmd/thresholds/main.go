package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bdragon300/growth-hash/chained"
	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("thresholds")

var stderrLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

type Options struct {
	LogLevel string `short:"l" long:"loglevel" default:"info" description:"set the logging level [debug, info, notice, warning, error, critical]"`
}

type Trace struct {
	Inserts    int     `short:"n" long:"inserts" default:"10000000" description:"how many sequential integer keys to insert"`
	Capacity   int     `short:"c" long:"capacity" default:"16" description:"initial capacity hint, rounded up to a power of 2"`
	LoadFactor float64 `short:"f" long:"load-factor" default:"0.75" description:"load factor in range (0, 1]"`
	Presize    bool    `short:"p" long:"presize" description:"size the table for all inserts at creation, ignores --capacity"`

	out io.Writer
}

type Capacity struct {
	LoadFactor float64 `short:"f" long:"load-factor" default:"0.75" description:"load factor in range (0, 1]"`
	Args       struct {
		Entries int `positional-arg-name:"entries" required:"yes"`
	} `positional-args:"yes"`

	out io.Writer
}

var (
	opts        Options
	traceCmd    = Trace{out: os.Stdout}
	capacityCmd = Capacity{out: os.Stdout}
	parser      = flags.NewParser(&opts, flags.Default)
)

func main() {
	parser.AddCommand("trace",
		"print capacity and threshold progression",
		"The trace command inserts integer keys 0..N-1 and prints the table capacity and threshold every time the table grows",
		&traceCmd)
	parser.AddCommand("capacity",
		"print capacity needed to avoid growth",
		"The capacity command prints the initial capacity that holds the given entries count without growing",
		&capacityCmd)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if err := setupLogging(opts.LogLevel); err != nil {
			return err
		}
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return fmt.Errorf("bad log level %q: %w", level, err)
	}
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), stderrLogFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}

func (x *Trace) Execute(args []string) error {
	if x.Inserts < 0 {
		return fmt.Errorf("inserts must be non-negative, got %d", x.Inserts)
	}
	capacity := x.Capacity
	if x.Presize {
		capacity = chained.CapacityFor(x.Inserts, x.LoadFactor)
		log.Debugf("Presized capacity for %d inserts: %d", x.Inserts, capacity)
	}
	table, err := chained.NewHashTable(capacity, x.LoadFactor)
	if err != nil {
		log.Error(err)
		return err
	}

	log.Infof("Inserting %d keys, capacity %d, load factor %v", x.Inserts, table.Cap(), table.LoadFactor())
	for _, tr := range chained.Trace(table, x.Inserts) {
		fmt.Fprintf(x.out, "threshold: %d | table: %d | inserts: %d\n", tr.Threshold, tr.Capacity, tr.Inserts)
	}
	log.Infof("Done, %d entries, %d grows", table.Len(), table.Grows())
	return nil
}

func (x *Capacity) Execute(args []string) error {
	if x.Args.Entries < 0 {
		return fmt.Errorf("entries must be non-negative, got %d", x.Args.Entries)
	}
	// Validate the load factor the same way the table does
	if _, err := chained.NewHashTable(1, x.LoadFactor); err != nil {
		log.Error(err)
		return err
	}
	fmt.Fprintln(x.out, chained.CapacityFor(x.Args.Entries, x.LoadFactor))
	return nil
}
