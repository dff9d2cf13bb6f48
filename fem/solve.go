// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/errs"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/la"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/loadcase"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

// Solve assembles the global stiffness system for the given mesh and load
// cases/combination, applies boundary conditions, solves for displacements,
// recovers reactions and per-element internal forces, and runs the
// tension/compression-only contact iteration if the mesh carries any such
// ends (spec §4.4/§4.5, C6).
func Solve(m *mesh.Store, cases []*loadcase.Case, combo *loadcase.Combination, opts Options) (*Result, error) {
	if opts.GeomNonlinear {
		return nil, errs.New(errs.InvalidInput, "geometric nonlinearity is out of scope")
	}
	kind := m.InferAnalysisKind()
	if opts.Kind != nil {
		kind = *opts.Kind
	}

	d, err := buildDomain(m, kind)
	if err != nil {
		return nil, err
	}
	restrained := d.restrainedDOFs(m)

	var u, reactions []float64
	var residual float64
	maxPasses := MaxContactIterations
	if opts.SkipContactIter || len(d.contactActive) == 0 {
		maxPasses = 1
	}

	iterations := 0
	for pass := 1; pass <= maxPasses; pass++ {
		iterations = pass
		f, err := d.buildGlobalLoad(m, cases, combo)
		if err != nil {
			return nil, err
		}
		k := d.assembleStiffness()
		kFull := la.Clone(k)
		fFull := append([]float64(nil), f...)

		u, err = solveSystem(k, f, restrained, opts.BCMethod, d.nDOF)
		if err != nil {
			return nil, err
		}

		reactions = computeReactions(kFull, fFull, u)
		residual = equilibriumResidual(kFull, fFull, u, restrained)

		if len(d.contactActive) == 0 {
			break
		}
		changed, err := d.updateContactStates(m, u, kind)
		if err != nil {
			return nil, err
		}
		if !changed {
			break
		}
		if pass == maxPasses {
			return nil, errs.New(errs.ContactNonconvergent, "tension/compression-only iteration did not settle within %d passes", MaxContactIterations)
		}
	}

	res := &Result{
		Kind:              kind,
		Displacements:     u,
		Reactions:         reactions,
		BeamForces:        make(map[mesh.BeamID]BeamForces),
		PlateForces:       make(map[mesh.PlateID]PlateForces),
		EquilibriumResidual: residual,
		ContactIterations: iterations,
	}
	if residual > 1e-4 {
		res.Warnings = append(res.Warnings, "equilibrium residual above tolerance")
	}

	stations := opts.stationCount()
	for _, id := range d.beamIDs {
		bf, err := d.recoverBeamForces(m, cases, combo, id, u, stations)
		if err != nil {
			return nil, err
		}
		res.BeamForces[id] = bf
	}
	for _, id := range d.plateIDs {
		res.PlateForces[id] = d.recoverPlateForces(id, u)
	}
	return res, nil
}

// solveSystem applies boundary conditions per opts.BCMethod and dispatches
// to the dense or sparse solver based on system size (spec §4.4).
func solveSystem(k la.Mat, f []float64, restrained []int, method BCMethod, nDOF int) ([]float64, error) {
	if method == PenaltyBC {
		applyPenaltyBC(k, f, restrained)
		return dispatchSolve(k, f, nDOF)
	}

	free := eliminationFreeDOFs(nDOF, restrained)
	nf := len(free)
	kr := la.NewMat(nf, nf)
	fr := make([]float64, nf)
	for i, gi := range free {
		fr[i] = f[gi]
		for j, gj := range free {
			kr[i][j] = k[gi][gj]
		}
	}
	xr, err := dispatchSolve(kr, fr, nf)
	if err != nil {
		return nil, err
	}
	u := make([]float64, nDOF)
	for i, gi := range free {
		u[gi] = xr[i]
	}
	return u, nil
}

func dispatchSolve(k la.Mat, f []float64, n int) ([]float64, error) {
	if n <= DenseSolveDOFThreshold {
		x, rank, singular := la.DenseSolve(k, f)
		if singular {
			return nil, errs.Mechanism(rank, "stiffness matrix is singular at reduced DOF %d: the structure (or a released member) is a mechanism", rank)
		}
		return x, nil
	}
	sys := la.NewSparseSystem(n, n*8)
	sys.Start()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if k[i][j] != 0 {
				sys.Put(i, j, k[i][j])
			}
		}
	}
	x, err := sys.Solve(f, true)
	if err != nil {
		return nil, errs.Wrap(errs.MechanismDetected, err, "sparse solve failed")
	}
	return x, nil
}

// computeReactions returns R = K·u − f over the full (unconstrained)
// system; at free DOFs this is ~0, at restrained DOFs it is the support
// reaction (spec §4.4).
func computeReactions(k la.Mat, f, u []float64) []float64 {
	r := la.NewVec(len(f))
	la.Mul(r, 1, k, u)
	for i := range r {
		r[i] -= f[i]
	}
	return r
}

// equilibriumResidual is the relative norm of K·u − f restricted to the
// free DOFs (testable property 1).
func equilibriumResidual(k la.Mat, f, u []float64, restrained []int) float64 {
	isRestrained := make([]bool, len(f))
	for _, d := range restrained {
		isRestrained[d] = true
	}
	r := computeReactions(k, f, u)
	var num, den float64
	for i := range r {
		if isRestrained[i] {
			continue
		}
		num += r[i] * r[i]
		den += f[i] * f[i]
	}
	if den < 1e-300 {
		return math.Sqrt(num)
	}
	return math.Sqrt(num / den)
}
