package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/kspace"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// cellReport describes one cell, optionally located on the mesh.
type cellReport struct {
	Topology      string `yaml:"topology"`
	CellDimension int    `yaml:"cell_dimension"`
	LevelShift    int    `yaml:"level_shift"`
	IndexShift    []int  `yaml:"index_shift,flow"`
	Level         *int   `yaml:"level,omitempty"`
	Indices       []int  `yaml:"indices,omitempty,flow"`
}

// stencilReport is the printed form of a set of cells.
type stencilReport struct {
	Reference string       `yaml:"reference"`
	Operator  string       `yaml:"operator"`
	Count     int          `yaml:"count"`
	Cells     []cellReport `yaml:"cells"`
}

func newCellReport(c kspace.CellND) cellReport {
	return cellReport{
		Topology:      kspace.TopologyString(c.Size(), c.Topology()),
		CellDimension: c.Dimension(),
		LevelShift:    c.LevelShift(),
		IndexShift:    c.IndexShift(),
	}
}

// locate fills the mesh location reached by r's cell from the reference at
// (level, at).
func (r *cellReport) locate(c kspace.CellND, level int, at []int) error {
	m, err := c.ShiftMeshCell(kspace.MeshCell{Topology: c.Origin(), Level: level, Indices: at})
	if err != nil {
		return err
	}
	r.Level = &m.Level
	r.Indices = m.Indices
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeStencil(w io.Writer, format string, r stencilReport) error {
	if format == formatYAML {
		return writeYAML(w, r)
	}
	fmt.Fprintf(w, "%s of %s: %d cells\n", r.Operator, r.Reference, r.Count)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TOPOLOGY\tDIM\tLEVEL\tSHIFT\tMESH")
	for _, c := range r.Cells {
		mesh := "-"
		if c.Level != nil {
			mesh = fmt.Sprintf("%d %v", *c.Level, c.Indices)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%v\t%s\n", c.Topology, c.CellDimension, c.LevelShift, c.IndexShift, mesh)
	}
	return tw.Flush()
}
