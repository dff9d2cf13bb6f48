// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optimize implements spec component C10: a criterion-driven
// search over the steel-profile catalog with the solver in the loop.
// Grounded on the teacher's LinearImplicit.Run time loop shape (a `for`
// loop with a cooperative early-return on error, a verbose/progress hook,
// and state it owns for the duration of the run) — generalised here from
// a time-stepping loop to a candidate-iteration loop, with no time axis
// and an explicit restore-on-any-exit guarantee spec §5 requires.
package optimize

import (
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/errs"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/fem"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/loadcase"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/steel"
)

// Criterion selects the optimizer's selection rule among feasible
// candidates (spec §4.7).
type Criterion int

const (
	CriterionWeight Criterion = iota
	CriterionDeflection
	CriterionUC
	CriterionStress // proxy for minimum mass, same rule as CriterionWeight
)

// ApplyFunc substitutes a candidate profile onto the optimizer's target
// beam(s); the caller decides what "target" means (one beam, several, a
// whole storey) since the optimizer only knows how to drive the solver,
// not the model's topology.
type ApplyFunc func(m *mesh.Store, profile *catalog.Profile) error

// ProgressFunc is invoked between candidate evaluations so a host can
// yield cooperatively (spec §5: "no locks", "suspend at those
// boundaries").
type ProgressFunc func(index, total int, profile *catalog.Profile)

// Constraints bounds the search: an optional catalog series restriction,
// the steel grade to check against, feasibility limits, and the density
// used for the weight/stress criteria (kg/m³, since a candidate profile
// carries only geometry, not material).
type Constraints struct {
	Catalog                *catalog.DB
	SeriesPrefix           string
	Grade                  catalog.Grade
	Density                float64
	MaxUC                  float64
	DeflectionLimitDivisor float64 // L/divisor, e.g. 250
	MemberLength           float64 // span used for the deflection limit
	UnbracedLength         float64 // L_buck for 6.3.1/6.3.2, metres; <= 0 skips those checks
}

// CandidateRecord is one tried profile's outcome (spec §4.7 "records the
// tried list").
type CandidateRecord struct {
	Profile       *catalog.Profile
	UCMax         float64
	MaxDeflection float64
	Feasible      bool
	Err           error
}

// OptimizationResult is OptimizeProfile's output.
type OptimizationResult struct {
	Feasible bool
	Chosen   *catalog.Profile
	Tried    []CandidateRecord
	Canceled bool
}

// OptimizeProfile iterates catalog candidates ascending by I_y (spec
// §4.7), evaluating each via applyFn + fem.Solve + steel checks, and
// selects the optimum per criterion among feasible candidates. The
// original section(s) are restored on every exit path — success,
// exhaustion, error, or cancellation (spec §5's restore-on-any-exit
// guarantee) — since applyFn mutates the live mesh in place.
func OptimizeProfile(m *mesh.Store, lc *loadcase.Case, applyFn ApplyFunc, beam *mesh.BeamID, criterion Criterion, cons Constraints, onProgress ProgressFunc, cancel <-chan struct{}) (OptimizationResult, error) {
	if cons.Catalog == nil {
		return OptimizationResult{}, errs.New(errs.InvalidInput, "optimizer requires a non-nil profile catalog")
	}

	snapshot := snapshotSections(m)
	defer restoreSections(m, snapshot)

	candidates := cons.Catalog.AscendingByI(cons.SeriesPrefix)
	if len(candidates) == 0 {
		return OptimizationResult{}, errs.New(errs.CatalogMiss, "no catalog candidates match series %q", cons.SeriesPrefix)
	}

	var result OptimizationResult
	for i, p := range candidates {
		select {
		case <-cancel:
			result.Canceled = true
			return result, nil
		default:
		}

		if onProgress != nil {
			onProgress(i, len(candidates), p)
		}

		rec := CandidateRecord{Profile: p}
		if err := applyFn(m, p); err != nil {
			rec.Err = err
			result.Tried = append(result.Tried, rec)
			continue
		}

		res, err := fem.Solve(m, []*loadcase.Case{lc}, nil, fem.Options{})
		if err != nil {
			rec.Err = err
			result.Tried = append(result.Tried, rec)
			continue
		}

		ucMax, maxDefl, err := evaluateCandidate(m, res, beam, cons)
		if err != nil {
			rec.Err = err
			result.Tried = append(result.Tried, rec)
			continue
		}
		rec.UCMax = ucMax
		rec.MaxDeflection = maxDefl

		deflLimit := cons.MemberLength / cons.DeflectionLimitDivisor
		rec.Feasible = ucMax <= cons.MaxUC && (cons.DeflectionLimitDivisor <= 0 || maxDefl <= deflLimit)

		result.Tried = append(result.Tried, rec)
	}

	chosen := selectBest(result.Tried, criterion, cons)
	if chosen == nil {
		result.Feasible = false
		return result, nil
	}
	result.Feasible = true
	result.Chosen = chosen.Profile
	return result, nil
}

func snapshotSections(m *mesh.Store) map[mesh.BeamID]catalog.Section {
	snap := make(map[mesh.BeamID]catalog.Section)
	for _, id := range m.SortedBeamIDs() {
		b, ok := m.Beam(id)
		if ok {
			snap[id] = b.Section
		}
	}
	return snap
}

func restoreSections(m *mesh.Store, snap map[mesh.BeamID]catalog.Section) {
	for id, sec := range snap {
		sec := sec
		m.UpdateBeam(id, mesh.BeamPatch{Section: &sec})
	}
}

func evaluateCandidate(m *mesh.Store, res *fem.Result, beam *mesh.BeamID, cons Constraints) (ucMax, maxDefl float64, err error) {
	if beam != nil {
		b, ok := m.Beam(*beam)
		if !ok {
			return 0, 0, errs.New(errs.InvalidInput, "target beam %d no longer exists", *beam)
		}
		bf, ok := res.BeamForces[*beam]
		if !ok {
			return 0, 0, errs.New(errs.InvalidInput, "beam %d has no recovered forces", *beam)
		}
		cr, err := steel.CheckBeam(b, bf, cons.Grade, cons.MemberLength, cons.DeflectionLimitDivisor, 100, cons.UnbracedLength)
		if err != nil {
			return 0, 0, err
		}
		return cr.UCMax, cr.MaxDeflection, nil
	}

	crs, err := steel.CheckAllBeams(m, res, cons.Grade, cons.DeflectionLimitDivisor, 100, cons.UnbracedLength)
	if err != nil {
		return 0, 0, err
	}
	for _, cr := range crs {
		if cr.UCMax > ucMax {
			ucMax = cr.UCMax
		}
		if cr.MaxDeflection > maxDefl {
			maxDefl = cr.MaxDeflection
		}
	}
	return ucMax, maxDefl, nil
}

func selectBest(tried []CandidateRecord, criterion Criterion, cons Constraints) *CandidateRecord {
	var best *CandidateRecord
	for i := range tried {
		rec := &tried[i]
		if !rec.Feasible {
			continue
		}
		if best == nil {
			best = rec
			continue
		}
		if isBetter(rec, best, criterion, cons) {
			best = rec
		}
	}
	return best
}

func isBetter(candidate, current *CandidateRecord, criterion Criterion, cons Constraints) bool {
	switch criterion {
	case CriterionDeflection:
		return candidate.MaxDeflection < current.MaxDeflection
	case CriterionUC:
		// closest to (but not exceeding) MaxUC: the larger UC_max wins
		// among feasible candidates, since feasibility already bounds it
		// at MaxUC.
		return candidate.UCMax > current.UCMax
	default: // CriterionWeight, CriterionStress: minimum mass per metre
		return cons.Density*candidate.Profile.Section.A < cons.Density*current.Profile.Section.A
	}
}
