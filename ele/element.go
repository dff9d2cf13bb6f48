// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ele implements spec component C5: the beam-with-releases and
// DKT plate element formulations, their local→global transforms, and the
// equivalent nodal load vectors produced from member loads. Adapted from
// the teacher's ele/solid/beam.go (an Euler-Bernoulli 2D/3D beam with
// distributed loads and moment/shear-diagram recovery): kept the same
// local-stiffness/transform/force-recovery shape, replaced the continuum
// residual-based AddToRhs/AddToKb element interface (meant for nonlinear,
// time-stepped solid/porous/seepage elements with internal variables) with
// a direct linear-elastic StiffnessGlobal/LoadGlobal pair, since this
// engine never iterates a residual — it assembles once (or re-assembles
// on a contact-iteration step) and solves K·u=f directly (spec §4.4/§4.5).
package ele

// Element is the minimal surface package fem needs from any element: its
// global stiffness matrix, its assembly map (the global DOF index each
// local row/column maps onto) and, if it carries a member load, the
// equivalent global load vector that load produces.
type Element interface {
	// DOFMap returns the global DOF index for each local DOF, in local
	// DOF order.
	DOFMap() []int

	// StiffnessGlobal returns the element's global stiffness matrix.
	StiffnessGlobal() [][]float64

	// LoadGlobal returns the element's equivalent global load vector from
	// any member load it carries (zero vector if it carries none).
	LoadGlobal() []float64
}
