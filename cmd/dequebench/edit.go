package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lucasgdosr/deque/v2"
	"github.com/lucasgdosr/deque/v2/internal/logger"
)

type editOptions struct {
	n    int
	ops  int
	seed uint64
}

func (o *editOptions) bind(fs *pflag.FlagSet) {
	fs.IntVar(&o.n, "n", 100_000, "deque length")
	fs.IntVar(&o.ops, "ops", 1_000, "insert/remove pairs per offset")
	fs.Uint64Var(&o.seed, "seed", 1, "seed for the element values")
}

func (o *editOptions) validate() error {
	if o.n <= 0 {
		return errors.NotValidf("--n %d", o.n)
	}
	if o.ops <= 0 {
		return errors.NotValidf("--ops %d", o.ops)
	}
	return nil
}

func newEditCmd() *cobra.Command {
	var opts editOptions
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Time interior insert/remove pairs at offsets across the deque",
		Long: `
edit inserts and then removes one element at a fixed fraction of the deque's
length. Cost should track min(offset, n-offset): cheap near either end and
most expensive in the middle.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return errors.Trace(err)
			}
			return runEdit(cmd.OutOrStdout(), opts)
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}

var editFractions = []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}

func runEdit(w io.Writer, opts editOptions) error {
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed))
	values := make([]int, opts.n)
	for i := range values {
		values[i] = rng.Int()
	}
	d := deque.CopySliceToDeque(values)
	// Start the ring off center so shifts cross the physical end of the buffer.
	d.Reserve(opts.n / 2)
	for range opts.n / 3 {
		d.PushBack(d.RemoveFirst())
	}

	table := uitable.New()
	table.MaxColWidth = 50
	for _, col := range []int{1, 2, 3} {
		table.RightAlign(col)
	}
	table.AddRow("Fraction", "Offset", "Min side", "ns/op")

	for _, f := range editFractions {
		at := int(f * float64(opts.n))
		start := time.Now()
		for i := range opts.ops {
			d.Insert(at, i)
			if got := d.Remove(at); got != i {
				return errors.Errorf("removed %d at offset %d, want %d", got, at, i)
			}
		}
		perOp := float64(time.Since(start).Nanoseconds()) / float64(opts.ops)
		logger.Debug("edit offset finished", "offset", at, "ns/op", perOp)
		table.AddRow(
			fmt.Sprintf("%.2f", f),
			humanize.Comma(int64(at)),
			humanize.Comma(int64(min(at, opts.n-at))),
			humanize.FtoaWithDigits(perOp, 1),
		)
	}
	_, err := fmt.Fprintln(w, table)
	return errors.Trace(err)
}
