package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/kspace"
)

// options holds the flags shared by every subcommand.
type options struct {
	dim      int
	topology string
	format   string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "kspacedemo",
		Short: "Build Khalimsky cell stencils and apply them to mesh indices",
		Long: `kspacedemo builds stencils relatively to a reference cell of a
Cartesian mesh and prints the cells they reach, optionally shifted onto a
concrete mesh location.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				kspace.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			switch opts.format {
			case formatText, formatYAML:
				return nil
			default:
				return fmt.Errorf("unknown format %q, want %s or %s", opts.format, formatText, formatYAML)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&opts.dim, "dim", 2, "space dimension")
	pf.StringVar(&opts.topology, "topology", "full", "reference topology as an integer with bit i set when open along axis i, or full")
	pf.StringVar(&opts.format, "format", formatText, "output format: text or yaml")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log kspace debug records to stderr")

	root.AddCommand(
		newCellCmd(opts),
		newStencilCmd(opts),
		newProlongCmd(opts),
	)
	return root
}

// reference builds the reference cell selected by --dim and --topology.
func (o *options) reference() (kspace.CellND, error) {
	if o.topology == "full" {
		return kspace.MakeFull(o.dim)
	}
	t, err := strconv.ParseUint(o.topology, 0, 0)
	if err != nil {
		return kspace.CellND{}, fmt.Errorf("parse topology %q: %w", o.topology, err)
	}
	return kspace.Make(o.dim, uint(t))
}
