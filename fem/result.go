// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"

// BeamForces is one beam's recovered internal-force diagrams, sampled at a
// fixed station count (spec §3).
type BeamForces struct {
	Beam mesh.BeamID

	Stations []float64 // fractional position 0..1 along the beam
	N, V, M  []float64 // normal force, shear, bending moment per station

	N1, V1, M1 float64
	N2, V2, M2 float64

	NMax, VMax, MMax float64 // absolute maxima over the sampled stations
}

// PlateForces is one plate's recovered bending moments at its centroid.
// Transverse shears are not computed: Vx and Vy are always zero.
type PlateForces struct {
	Plate                    mesh.PlateID
	Mx, My, Mxy              float64
	Vx, Vy                   float64
}

// Result is the solver's output (spec §3 "Solver result").
type Result struct {
	Kind mesh.AnalysisKind

	// Displacement and reaction vectors, one entry per global DOF
	// (DOFs-per-node = 3 for frames, 2 for trusses, 3 for plate bending).
	Displacements []float64
	Reactions     []float64

	BeamForces  map[mesh.BeamID]BeamForces
	PlateForces map[mesh.PlateID]PlateForces

	// EquilibriumResidual is ‖K·u − f‖ / ‖f‖ at the free DOFs, a
	// convergence/sanity diagnostic (testable property 1).
	EquilibriumResidual float64

	// ContactIterations is the number of contact-state passes performed
	// (1 if the model carries no tension/compression-only ends).
	ContactIterations int

	// Warnings carries any non-fatal NumericalWarning-kind issues found
	// during recovery (e.g. an unusually large equilibrium residual).
	Warnings []string
}
