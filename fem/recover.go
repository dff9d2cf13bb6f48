// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/loadcase"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

// loadSegment is one piecewise-linear stretch of a distributed load,
// expressed in the beam's local frame over the absolute range [a,b]
// (meters from node 1), with intensity q1 at a and q2 at b.
type loadSegment struct {
	a, b   float64
	q1, q2 float64
}

// segmentIntegral returns ∫ from 0 to upTo of this segment's contribution
// (zero outside [a,b]), via the closed-form antiderivative of a linear
// function — exact, no quadrature needed.
func (s loadSegment) segmentIntegral(upTo float64) float64 {
	lo, hi := s.a, upTo
	if hi > s.b {
		hi = s.b
	}
	if hi <= lo {
		return 0
	}
	span := s.b - s.a
	if span <= 0 {
		return 0
	}
	slope := (s.q2 - s.q1) / span
	// ∫(q1 + slope*(x-a)) dx from lo to hi
	return s.q1*(hi-lo) + 0.5*slope*((hi-s.a)*(hi-s.a)-(lo-s.a)*(lo-s.a))
}

func cumulative(segs []loadSegment, upTo float64) float64 {
	var sum float64
	for _, s := range segs {
		sum += s.segmentIntegral(upTo)
	}
	return sum
}

// beamLoadSegments gathers the beam's own attached load plus every
// weighted load-case distributed load and self-weight contribution
// targeting it, in the beam's local frame — the same inputs
// buildGlobalLoad folds into the equivalent nodal loads, kept here in
// piecewise form so internal forces can be sampled at arbitrary stations
// (spec §3 "diagrams sampled at a fixed number of stations").
func (d *domain) beamLoadSegments(m *mesh.Store, cases []*loadcase.Case, combo *loadcase.Combination, id mesh.BeamID) (axial, transverse []loadSegment) {
	el := d.beams[id]
	L := el.Length()
	b, _ := m.Beam(id)

	add := func(qxS, qyS, qxE, qyE, t0, t1 float64, local bool) {
		if !local {
			qxS, qyS = el.ProjectToLocal(qxS, qyS)
			qxE, qyE = el.ProjectToLocal(qxE, qyE)
		}
		a, bb := t0*L, t1*L
		if bb <= a {
			return
		}
		axial = append(axial, loadSegment{a: a, b: bb, q1: qxS, q2: qxE})
		transverse = append(transverse, loadSegment{a: a, b: bb, q1: qyS, q2: qyE})
	}

	if b.Load != nil {
		ld := b.Load
		add(ld.QxStart, ld.QyStart, ld.QxEnd, ld.QyEnd, ld.T0, ld.T1, ld.Local)
	}

	for _, c := range cases {
		w := caseFactor(combo, c)
		if w == 0 {
			continue
		}
		for _, dl := range c.DistributedLoads {
			if dl.Beam != id {
				continue
			}
			qyEnd := dl.QyStart
			if dl.QyEnd != nil {
				qyEnd = *dl.QyEnd
			}
			add(w*dl.QxStart, w*dl.QyStart, w*dl.QxEnd, w*qyEnd, dl.T0, dl.T1, dl.Frame == loadcase.Local)
		}
		if c.IncludeSelfWeight {
			mat, ok := m.Material(b.Material)
			if !ok {
				continue
			}
			qy := w * (-mat.Rho * b.Section.A * gravity)
			add(0, qy, 0, qy, 0, 1, false)
		}
	}
	return axial, transverse
}

// recoverBeamForces samples N/V/M at `stations` equally spaced fractional
// positions along the beam (plus every load-segment breakpoint, so
// discontinuities land on a sample), by superposing the solved end actions
// with the member's own span load (spec §3/§4.1).
func (d *domain) recoverBeamForces(m *mesh.Store, cases []*loadcase.Case, combo *loadcase.Combination, id mesh.BeamID, u []float64, stations int) (BeamForces, error) {
	el := d.beams[id]
	L := el.Length()
	forces := el.EndForcesLocal(u)
	n1, v1, m1 := forces[dofU1Index], forces[dofV1Index], forces[dofT1Index]
	n2, v2, m2 := forces[dofU2Index], forces[dofV2Index], forces[dofT2Index]

	axial, transverse := d.beamLoadSegments(m, cases, combo, id)

	fracs := stationFractions(stations, axial, transverse, L)
	bf := BeamForces{
		Beam:     id,
		Stations: make([]float64, len(fracs)),
		N:        make([]float64, len(fracs)),
		V:        make([]float64, len(fracs)),
		M:        make([]float64, len(fracs)),
		N1: n1, V1: v1, M1: m1,
		N2: n2, V2: v2, M2: m2,
	}

	// V(x) = -V1 - ∫0^x qy; N(x) = -N1 - ∫0^x qx; M(x) is V's antiderivative,
	// M(0) = -M1, integrated numerically over a fine sub-grid since V(x) is
	// already piecewise quadratic once the segments stack up.
	const subSteps = 64
	prevX, prevV, mRunning := 0.0, -v1, -m1
	for i, fr := range fracs {
		x := fr * L
		nAt := -n1 - cumulative(axial, x)
		vAt := -v1 - cumulative(transverse, x)
		if x > prevX {
			n := subSteps
			h := (x - prevX) / float64(n)
			for s := 1; s <= n; s++ {
				xs := prevX + h*float64(s)
				vs := -v1 - cumulative(transverse, xs)
				vPrev := prevV
				if s > 1 {
					xPrevS := prevX + h*float64(s-1)
					vPrev = -v1 - cumulative(transverse, xPrevS)
				}
				mRunning += 0.5 * (vPrev + vs) * h
			}
		}
		bf.N[i], bf.V[i], bf.M[i] = nAt, vAt, mRunning
		bf.Stations[i] = fr
		prevX, prevV = x, vAt
	}

	for _, v := range bf.N {
		if math.Abs(v) > math.Abs(bf.NMax) {
			bf.NMax = v
		}
	}
	for _, v := range bf.V {
		if math.Abs(v) > math.Abs(bf.VMax) {
			bf.VMax = v
		}
	}
	for _, v := range bf.M {
		if math.Abs(v) > math.Abs(bf.MMax) {
			bf.MMax = v
		}
	}
	return bf, nil
}

// local DOF indices, mirroring package ele's unexported order
// (u1,v1,θ1,u2,v2,θ2) without importing its unexported constants.
const (
	dofU1Index = 0
	dofV1Index = 1
	dofT1Index = 2
	dofV2Index = 4
	dofT2Index = 5
)

// stationFractions returns DefaultStationCount-or-more fractional positions
// in [0,1], always including 0, 1, and every load-segment breakpoint, so
// discontinuities in the diagrams land exactly on a sampled station.
func stationFractions(stations int, axial, transverse []loadSegment, L float64) []float64 {
	set := map[float64]bool{0: true, 1: true}
	for i := 1; i < stations; i++ {
		set[float64(i)/float64(stations-1)] = true
	}
	addBreak := func(x float64) {
		if L > 0 {
			set[x/L] = true
		}
	}
	for _, s := range axial {
		addBreak(s.a)
		addBreak(s.b)
	}
	for _, s := range transverse {
		addBreak(s.a)
		addBreak(s.b)
	}
	out := make([]float64, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	// simple insertion sort: station counts are always small (tens, not
	// thousands), so this stays cheap and avoids pulling in "sort" just
	// for one call site.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// recoverPlateForces evaluates the moment field m = D·κ at the element
// centroid, where DKT's linearly varying curvature field takes its mean
// value. Transverse shear is not recovered: Vx and Vy are left zero.
func (d *domain) recoverPlateForces(id mesh.PlateID, u []float64) PlateForces {
	p := d.plates[id]
	q := make([]float64, 9)
	for i, g := range p.DOFMap() {
		if g >= 0 {
			q[i] = u[g]
		}
	}
	kx, ky, kxy := p.CurvatureAt(1.0/3, 1.0/3, 1.0/3, q)
	dd, nu := p.FlexuralRigidity(), p.PoissonRatio()
	return PlateForces{
		Plate: id,
		Mx:    dd * (kx + nu*ky),
		My:    dd * (ky + nu*kx),
		Mxy:   dd * (1 - nu) / 2 * kxy,
	}
}
