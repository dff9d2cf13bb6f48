// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem implements spec component C6: DOF indexing, global stiffness
// assembly, boundary-condition application, the dense/sparse solve
// dispatch, reaction recovery and the tension/compression-only contact
// iteration. Adapted from the teacher's fem package (domain.go/solver.go),
// which built a time-stepping nonlinear FE domain from ele.Elements; this
// engine never iterates a residual over time steps, so the "Domain" here
// is a direct-stiffness assembly of the single linear system spec §4.4
// describes, rebuilt once per contact-iteration pass rather than per time
// step.
package fem

import "github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"

// DefaultStationCount is the minimum number of stations sampled along a
// beam's internal-force diagrams, matching spec §3's "fixed number of
// stations" requirement.
const DefaultStationCount = 21

// PenaltyFactor scales the diagonal penalty added for a restrained DOF
// when PenaltyBC is selected (spec §4.4 "apply supports either by
// elimination or by a large-diagonal penalty").
const PenaltyFactor = 1e12

// DenseSolveDOFThreshold is the system size, in DOFs, at or below which the
// dense Gaussian solver is used; above it, the sparse solver is used
// instead (spec §4.4 "dispatch to dense or sparse solve based on system
// size").
const DenseSolveDOFThreshold = 1000

// MaxContactIterations bounds the tension/compression-only outer loop
// (spec §4.5 "capped iteration count").
const MaxContactIterations = 20

// BCMethod selects how support restraints enter the linear system.
type BCMethod int

const (
	// EliminationBC removes restrained DOFs from the system entirely,
	// the default and numerically preferred method.
	EliminationBC BCMethod = iota
	// PenaltyBC keeps every DOF in the system and adds a large diagonal
	// stiffness at each restrained DOF instead.
	PenaltyBC
)

// Options configures a Solve call.
type Options struct {
	// Kind overrides the analysis kind inferred from the mesh (spec §3
	// "solve(mesh, {analysis: frame|truss|plate, ...})"); nil infers it
	// via mesh.Store.InferAnalysisKind.
	Kind            *mesh.AnalysisKind
	BCMethod        BCMethod
	StationCount    int  // 0 selects DefaultStationCount
	GeomNonlinear   bool // spec §8 Non-goals: rejected if true
	SkipContactIter bool // force a single pass even if contact ends are present (debugging aid)
}

func (o Options) stationCount() int {
	if o.StationCount <= 0 {
		return DefaultStationCount
	}
	return o.StationCount
}
