// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"fmt"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/fem"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
	"github.com/guptarohit/asciigraph"
)

// Diagram selects which of a beam's three internal-force series to plot.
type Diagram int

const (
	DiagramN Diagram = iota
	DiagramV
	DiagramM
)

// String names a diagram kind for use in filenames and labels outside the
// package (e.g. the CLI's per-beam PNG export).
func (d Diagram) String() string { return d.label() }

func (d Diagram) label() string {
	switch d {
	case DiagramN:
		return "N"
	case DiagramV:
		return "V"
	default:
		return "M"
	}
}

func (d Diagram) series(bf fem.BeamForces) []float64 {
	switch d {
	case DiagramN:
		return bf.N
	case DiagramV:
		return bf.V
	default:
		return bf.M
	}
}

// ASCIIBeamDiagram renders one of a beam's internal-force diagrams as a
// terminal-friendly ASCII plot (spec §3 "Reporting": diagrams must also be
// viewable without a GUI), via the asciigraph library the way a CLI tool
// in this pack's ecosystem would render a quick sparkline-style chart.
func ASCIIBeamDiagram(id mesh.BeamID, bf fem.BeamForces, kind Diagram) string {
	data := kind.series(bf)
	if len(data) < 2 {
		return fmt.Sprintf("beam %d: not enough stations to plot %s", id, kind.label())
	}
	caption := fmt.Sprintf("beam %d — %s diagram", id, kind.label())
	return asciigraph.Plot(data, asciigraph.Height(12), asciigraph.Width(60), asciigraph.Caption(caption))
}

// ASCIIAllDiagrams renders N, V and M one after another for a single beam.
func ASCIIAllDiagrams(id mesh.BeamID, bf fem.BeamForces) string {
	return ASCIIBeamDiagram(id, bf, DiagramN) + "\n\n" +
		ASCIIBeamDiagram(id, bf, DiagramV) + "\n\n" +
		ASCIIBeamDiagram(id, bf, DiagramM)
}
