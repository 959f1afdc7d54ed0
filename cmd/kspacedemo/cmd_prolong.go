package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/kspace"
)

// field is a 2-D array of face values indexed as [j][i].
type field [][]float64

func newField(n int) field {
	f := make(field, n)
	for j := range f {
		f[j] = make([]float64, n)
	}
	return f
}

// levels stores one field per mesh level.
type levels map[int]field

func (l levels) at(level int, index []int) *float64 {
	return &l[level][index[1]][index[0]]
}

// prolongReport holds the fields of one prolongation and restriction.
type prolongReport struct {
	Coarse     field `yaml:"coarse,flow"`
	Fine       field `yaml:"fine,flow"`
	Restricted field `yaml:"restricted,flow"`
}

func newProlongCmd(opts *options) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "prolong",
		Short: "Copy a coarse 2-D field to the finer level and average it back",
		Long: `Fill a size x size coarse field of faces, copy every value onto the
four children of its face one level finer, then restrict the fine field back
by averaging the children of each coarse face.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := prolongRestrict(cmd.Context(), size)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if opts.format == formatYAML {
				return writeYAML(w, r)
			}
			writeField(w, "coarse", r.Coarse)
			writeField(w, "fine", r.Fine)
			writeField(w, "restricted", r.Restricted)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 2, "coarse field size along each axis")
	return cmd
}

func prolongRestrict(ctx context.Context, size int) (prolongReport, error) {
	if size < 1 {
		return prolongReport{}, fmt.Errorf("size must be positive, got %d", size)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	u := levels{
		0: newField(size),
		1: newField(2 * size),
	}
	for j := range size {
		for i := range size {
			u[0][j][i] = float64(1 + i + j*size)
		}
	}

	face := kspace.MustMake(2, 0b11)
	children := face.Up(1)

	// Prolongation: each child receives the value of its parent.
	for j := range size {
		for i := range size {
			parent := *u.at(0, []int{i, j})
			ptrs, err := kspace.ShiftFuncEachND(children, u.at, 0, i, j)
			if err != nil {
				return prolongReport{}, err
			}
			for _, p := range ptrs {
				*p = parent
			}
		}
	}

	restricted := levels{0: newField(size), 1: u[1]}
	for j := range size {
		for i := range size {
			vals, err := kspace.ParallelShiftFuncEachND(ctx, children,
				func(_ context.Context, level int, index []int) (float64, error) {
					return *restricted.at(level, index), nil
				}, 0, []int{i, j})
			if err != nil {
				return prolongReport{}, err
			}
			sum := 0.0
			for _, v := range vals {
				sum += v
			}
			*restricted.at(0, []int{i, j}) = sum / float64(len(vals))
		}
	}

	return prolongReport{Coarse: u[0], Fine: u[1], Restricted: restricted[0]}, nil
}

// writeField prints f with the highest row first.
func writeField(w io.Writer, name string, f field) {
	fmt.Fprintf(w, "%s:\n", name)
	for j := len(f) - 1; j >= 0; j-- {
		for i, v := range f[j] {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%6.2f", v)
		}
		fmt.Fprintln(w)
	}
}
