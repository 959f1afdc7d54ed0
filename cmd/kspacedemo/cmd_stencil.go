package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/kspace"
)

// operators maps the stencil names to their construction from a reference
// cell and an argument (distance or level count).
var operators = map[string]func(c kspace.CellND, n int) kspace.CellsND{
	"lower":        func(c kspace.CellND, _ int) kspace.CellsND { return c.LowerIncident() },
	"upper":        func(c kspace.CellND, _ int) kspace.CellsND { return c.UpperIncident() },
	"neighborhood": func(c kspace.CellND, n int) kspace.CellsND { return c.Neighborhood(n) },
	"proper":       func(c kspace.CellND, n int) kspace.CellsND { return c.ProperNeighborhood(n) },
	"up":           func(c kspace.CellND, n int) kspace.CellsND { return c.Up(n) },
	"down":         func(c kspace.CellND, n int) kspace.CellsND { return c.Down(n) },
}

func newStencilCmd(opts *options) *cobra.Command {
	var (
		at    []int
		level int
	)
	cmd := &cobra.Command{
		Use:   "stencil {lower|upper|neighborhood|proper|up|down} [n]",
		Short: "Build a stencil around the reference cell",
		Long: `Build a stencil around the reference cell and list its cells.

n is the distance of neighborhood and proper, and the level count of up
and down (default 1). With --at, every cell is also shifted onto the mesh
location of the reference given by --level and --at.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) == 2 {
				v, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("parse n %q: %w", args[1], err)
				}
				n = v
			}
			c, err := opts.reference()
			if err != nil {
				return err
			}
			r, err := buildStencil(c, args[0], n, level, at)
			if err != nil {
				return err
			}
			return writeStencil(cmd.OutOrStdout(), opts.format, r)
		},
	}
	cmd.Flags().IntSliceVar(&at, "at", nil, "mesh indices of the reference cell, one per axis")
	cmd.Flags().IntVar(&level, "level", 0, "mesh level of the reference cell")
	return cmd
}

func buildStencil(c kspace.CellND, op string, n, level int, at []int) (stencilReport, error) {
	build, ok := operators[op]
	if !ok {
		return stencilReport{}, fmt.Errorf("unknown operator %q", op)
	}
	s := build(c, n)

	r := stencilReport{
		Reference: kspace.TopologyString(c.Size(), c.Topology()),
		Operator:  op,
		Count:     s.Size(),
		Cells:     make([]cellReport, 0, s.Size()),
	}
	for _, cell := range s.Items() {
		cr := newCellReport(cell)
		if at != nil {
			if err := cr.locate(cell, level, at); err != nil {
				return stencilReport{}, err
			}
		}
		r.Cells = append(r.Cells, cr)
	}
	return r, nil
}
