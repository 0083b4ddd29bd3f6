package main

import (
	"fmt"
	"io"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lucasgdosr/deque/v2"
	"github.com/lucasgdosr/deque/v2/internal/logger"
)

type growOptions struct {
	n          int
	shareEvery int
	runs       int
}

func (o *growOptions) bind(fs *pflag.FlagSet) {
	fs.IntVar(&o.n, "n", 1_000_000, "elements drained into the deque per run")
	fs.IntVar(&o.shareEvery, "share-every", 0, "clone the deque every this many elements while draining (0 disables)")
	fs.IntVar(&o.runs, "runs", 3, "number of runs")
}

func (o *growOptions) validate() error {
	if o.n <= 0 {
		return errors.NotValidf("--n %d", o.n)
	}
	if o.shareEvery < 0 {
		return errors.NotValidf("--share-every %d", o.shareEvery)
	}
	if o.runs <= 0 {
		return errors.NotValidf("--runs %d", o.runs)
	}
	return nil
}

func newGrowCmd() *cobra.Command {
	var opts growOptions
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Drain a sequence of unknown length into a deque while clones come and go",
		Long: `
grow appends --n elements through AppendSeq. With --share-every k, the
sequence clones the deque before every k-th element and drops the clone right
after it, so the next write always finds the storage shared and must copy.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return errors.Trace(err)
			}
			return runGrow(cmd.OutOrStdout(), opts)
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}

type growResult struct {
	elapsed  time.Duration
	grows    int
	clones   int
	capacity int
}

func runGrow(w io.Writer, opts growOptions) error {
	table := uitable.New()
	table.MaxColWidth = 50
	for _, col := range []int{1, 2, 3, 4, 5} {
		table.RightAlign(col)
	}
	table.AddRow("Run", "Elements", "ns/elem", "Grows", "Clones", "Capacity")

	for run := range opts.runs {
		r, err := growOnce(opts)
		if err != nil {
			return errors.Annotatef(err, "run %d", run)
		}
		perElem := float64(r.elapsed.Nanoseconds()) / float64(opts.n)
		logger.Info("grow run finished", "run", run, "elapsed", r.elapsed, "grows", r.grows, "clones", r.clones)
		table.AddRow(
			run,
			humanize.Comma(int64(opts.n)),
			humanize.FtoaWithDigits(perElem, 2),
			r.grows,
			humanize.Comma(int64(r.clones)),
			fmt.Sprintf("%s (%s)", humanize.Comma(int64(r.capacity)), humanize.IBytes(uint64(r.capacity)*uint64(unsafe.Sizeof(0)))),
		)
	}
	_, err := fmt.Fprintln(w, table)
	return errors.Trace(err)
}

func growOnce(opts growOptions) (growResult, error) {
	var r growResult
	d := deque.MakeDeque[int]()
	lastCap := 0
	seq := func(yield func(int) bool) {
		for i := range opts.n {
			var clone *deque.Deque[int]
			if opts.shareEvery > 0 && i%opts.shareEvery == 0 {
				clone = d.Clone()
				r.clones++
			}
			ok := yield(i)
			if clone != nil {
				clone.Reset()
			}
			if c := d.Cap(); c != lastCap {
				r.grows++
				lastCap = c
			}
			if !ok {
				return
			}
		}
	}

	start := time.Now()
	d.AppendSeq(seq)
	r.elapsed = time.Since(start)
	r.capacity = d.Cap()

	if d.Len() != opts.n {
		return r, errors.Errorf("drained %d elements, want %d", d.Len(), opts.n)
	}
	for i, v := range d.All() {
		if v != i {
			return r, errors.Errorf("element %d is %d", i, v)
		}
	}
	return r, nil
}
