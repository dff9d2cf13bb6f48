// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out implements spec component C7: turning a fem.Result into
// something a person (or a CI log) can read — a plain-text summary table,
// an ASCII diagram for a terminal, and a PNG diagram for a report.
// Adapted from the teacher's out package, which drove gosl/plt off a
// global Dom/Beams/GetRes time-series store; this engine carries no time
// axis and no global post-processing state, so the "Report" here reads
// directly from a fem.Result value instead (spec §3 "Reporting").
package out

import (
	"fmt"
	"strings"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/fem"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

// Report is the complete post-processed view of one solve: a text
// summary plus stable, sorted element id slices so every diagram/table
// renders the model in the same order it was built in.
type Report struct {
	Result   *fem.Result
	BeamIDs  []mesh.BeamID
	PlateIDs []mesh.PlateID
}

// NewReport orders a fem.Result's per-element maps into sorted id slices,
// the way mesh.Store.SortedBeamIDs/SortedPlateIDs order the model itself.
func NewReport(res *fem.Result) *Report {
	r := &Report{Result: res}
	for id := range res.BeamForces {
		r.BeamIDs = append(r.BeamIDs, id)
	}
	for id := range res.PlateForces {
		r.PlateIDs = append(r.PlateIDs, id)
	}
	sortBeamIDs(r.BeamIDs)
	sortPlateIDs(r.PlateIDs)
	return r
}

func sortBeamIDs(ids []mesh.BeamID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}

func sortPlateIDs(ids []mesh.PlateID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}

// Summary renders a one-line-per-governing-value plain-text report: the
// equilibrium residual, contact-iteration count, and each element's peak
// internal forces (spec §3 "Reporting": "a human-readable summary of
// governing values").
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "analysis kind: %v\n", r.Result.Kind)
	fmt.Fprintf(&b, "equilibrium residual: %.3e\n", r.Result.EquilibriumResidual)
	fmt.Fprintf(&b, "contact iterations: %d\n", r.Result.ContactIterations)
	for _, w := range r.Result.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}
	for _, id := range r.BeamIDs {
		bf := r.Result.BeamForces[id]
		fmt.Fprintf(&b, "beam %d: N_max=%.4g V_max=%.4g M_max=%.4g (ends: N1=%.4g M1=%.4g | N2=%.4g M2=%.4g)\n",
			id, bf.NMax, bf.VMax, bf.MMax, bf.N1, bf.M1, bf.N2, bf.M2)
	}
	for _, id := range r.PlateIDs {
		pf := r.Result.PlateForces[id]
		fmt.Fprintf(&b, "plate %d: Mx=%.4g My=%.4g Mxy=%.4g\n", id, pf.Mx, pf.My, pf.Mxy)
	}
	return b.String()
}
