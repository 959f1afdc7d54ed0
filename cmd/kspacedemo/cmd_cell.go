package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/kspace"
)

// cellInfo is the description printed by the cell command.
type cellInfo struct {
	Cell            string `yaml:"cell"`
	Topology        string `yaml:"topology"`
	SpaceDimension  int    `yaml:"space_dimension"`
	CellDimension   int    `yaml:"cell_dimension"`
	Directions      []int  `yaml:"directions,flow"`
	OrthoDirections []int  `yaml:"ortho_directions,flow"`
	LowerIncident   int    `yaml:"lower_incident"`
	UpperIncident   int    `yaml:"upper_incident"`
}

func newCellCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cell",
		Short: "Describe the reference cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.reference()
			if err != nil {
				return err
			}
			info, err := describeCell(c)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if opts.format == formatYAML {
				return writeYAML(w, info)
			}
			fmt.Fprintf(w, "%s\n", info.Cell)
			fmt.Fprintf(w, "topology %s, %d-cell in %d-D\n", info.Topology, info.CellDimension, info.SpaceDimension)
			fmt.Fprintf(w, "open along %v, closed along %v\n", info.Directions, info.OrthoDirections)
			fmt.Fprintf(w, "bounded by %d cells, bounds %d cells\n", info.LowerIncident, info.UpperIncident)
			return nil
		},
	}
}

func describeCell(c kspace.CellND) (cellInfo, error) {
	info := cellInfo{
		Cell:           c.String(),
		Topology:       kspace.TopologyString(c.Size(), c.Topology()),
		SpaceDimension: c.Size(),
		CellDimension:  c.Dimension(),
		LowerIncident:  c.LowerIncident().Size(),
		UpperIncident:  c.UpperIncident().Size(),
	}
	var err error
	info.Directions, err = directions(c.Direction)
	if err != nil {
		return cellInfo{}, err
	}
	info.OrthoDirections, err = directions(c.OrthoDirection)
	if err != nil {
		return cellInfo{}, err
	}
	return info, nil
}

// directions lists the axes returned by nth until it runs out.
func directions(nth func(int) (int, error)) ([]int, error) {
	out := []int{}
	for i := 0; ; i++ {
		axis, err := nth(i)
		if errors.Is(err, kspace.ErrDirectionOutOfRange) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, axis)
	}
}
