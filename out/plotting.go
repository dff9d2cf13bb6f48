// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"fmt"
	"image/color"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/fem"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveBeamDiagramPNG renders one of a beam's internal-force diagrams
// (N, V or M against the beam's sampled stations) as a PNG/SVG/PDF file,
// the way the teacher's PlotDiagMoment drew an M22 diagram, rebuilt on
// gonum/plot's plotter.Line/Fill instead of gosl/plt's matplotlib bridge
// (spec §3 "Reporting").
func SaveBeamDiagramPNG(id int, bf fem.BeamForces, kind Diagram, filename string) error {
	data := kind.series(bf)
	if len(data) != len(bf.Stations) {
		return fmt.Errorf("beam %d: %s series length %d does not match station count %d", id, kind.label(), len(data), len(bf.Stations))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("beam %d — %s diagram", id, kind.label())
	p.X.Label.Text = "station (fraction of span)"
	p.Y.Label.Text = GetTexLabel(kind.label(), "N, Nm")

	zero := make(plotter.XYs, len(bf.Stations))
	curve := make(plotter.XYs, len(bf.Stations))
	for i, s := range bf.Stations {
		zero[i] = plotter.XY{X: s, Y: 0}
		curve[i] = plotter.XY{X: s, Y: data[i]}
	}

	poly := make(plotter.XYs, 0, 2*len(curve))
	poly = append(poly, curve...)
	for i := len(zero) - 1; i >= 0; i-- {
		poly = append(poly, zero[i])
	}
	fill, err := plotter.NewPolygon(poly)
	if err != nil {
		return err
	}
	fill.Color = color.RGBA{R: 100, G: 149, B: 237, A: 120}
	fill.LineStyle.Color = color.Transparent
	p.Add(fill)

	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	axis, err := plotter.NewLine(zero)
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Black
	p.Add(axis)

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
