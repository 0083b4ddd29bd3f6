package main

import (
	"io"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lucasgdosr/deque/v2/internal/logger"
)

type rootOptions struct {
	logLevel string
	noColor  bool
}

func (o *rootOptions) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.logLevel, "log-level", "info", "minimum log level: debug, info, warn or error")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored log output")
}

func (o *rootOptions) configureLogging(w io.Writer) error {
	level, ok := logger.ParseLevel(o.logLevel)
	if !ok {
		return errors.NotValidf("log level %q", o.logLevel)
	}
	logger.Configure(w, level, o.noColor)
	return nil
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:   "dequebench",
		Short: "Measure the copy-on-write deque cost model",
		Long: `
dequebench drives the deque through workloads whose cost the data structure
promises to bound, and reports what it observed.
`,
		Example: `  $ dequebench grow --n 1000000 --share-every 1000
  $ dequebench edit --n 100000 --ops 1000
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.configureLogging(cmd.ErrOrStderr())
		},
	}
	opts.bind(cmd.PersistentFlags())
	cmd.AddCommand(newGrowCmd(), newEditCmd())
	return cmd
}
