// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/loadcase"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

func testCatalog(t *testing.T) *catalog.DB {
	t.Helper()
	raw := []byte(`[
		{"IPE 200": [{"shape_coords": [0.200,0.100,0.0056,0.0085,0.012], "shape_name": "i-parallel-flange", "synonyms": []}]},
		{"IPE 220": [{"shape_coords": [0.220,0.110,0.0059,0.0092,0.012], "shape_name": "i-parallel-flange", "synonyms": []}]},
		{"IPE 240": [{"shape_coords": [0.240,0.120,0.0062,0.0098,0.015], "shape_name": "i-parallel-flange", "synonyms": []}]}
	]`)
	db, err := catalog.Load(raw)
	require.NoError(t, err)
	return db
}

func simplySupportedMesh(t *testing.T, L float64) (*mesh.Store, mesh.BeamID) {
	t.Helper()
	m := mesh.NewStore()
	matID, err := m.AddMaterial(catalog.DefaultMaterial)
	require.NoError(t, err)
	n1, _ := m.AddNode(0, 0)
	n2, _ := m.AddNode(L, 0)
	require.NoError(t, m.SetSupport(n1, true, true, false))
	require.NoError(t, m.SetSupport(n2, false, true, false))
	sec := catalog.DefaultSections["IPE 200"]
	beamID, err := m.AddBeam(n1, n2, matID, sec, "IPE 200")
	require.NoError(t, err)
	return m, beamID
}

func TestOptimizeProfilePicksFeasibleCandidateAndRestoresOnSuccess(t *testing.T) {
	L := 6.0
	m, beamID := simplySupportedMesh(t, L)
	original, _ := m.Beam(beamID)

	c := loadcase.NewCase(loadcase.Live)
	c.AddPointLoad(loadcase.BeamTarget(beamID, 0.5), 0, -20000, 0)

	applyFn := func(ms *mesh.Store, p *catalog.Profile) error {
		sec := p.Section
		return ms.UpdateBeam(beamID, mesh.BeamPatch{Section: &sec})
	}

	cons := Constraints{
		Catalog:                testCatalog(t),
		SeriesPrefix:           "IPE",
		Grade:                  catalog.Grades["S235"],
		Density:                7850,
		MaxUC:                  1.0,
		DeflectionLimitDivisor: 250,
		MemberLength:           L,
	}

	result, err := OptimizeProfile(m, c, applyFn, &beamID, CriterionWeight, cons, nil, nil)
	require.NoError(t, err)
	require.True(t, result.Feasible)
	require.NotNil(t, result.Chosen)
	require.Len(t, result.Tried, 3)

	after, _ := m.Beam(beamID)
	require.Equal(t, original.Section, after.Section, "beam section must be restored after optimization")
}

func TestOptimizeProfileCancelStopsEarlyAndRestores(t *testing.T) {
	L := 6.0
	m, beamID := simplySupportedMesh(t, L)
	original, _ := m.Beam(beamID)

	c := loadcase.NewCase(loadcase.Live)
	c.AddPointLoad(loadcase.BeamTarget(beamID, 0.5), 0, -20000, 0)

	applyFn := func(ms *mesh.Store, p *catalog.Profile) error {
		sec := p.Section
		return ms.UpdateBeam(beamID, mesh.BeamPatch{Section: &sec})
	}

	cancel := make(chan struct{})
	close(cancel)

	cons := Constraints{
		Catalog:                testCatalog(t),
		Grade:                  catalog.Grades["S235"],
		Density:                7850,
		MaxUC:                  1.0,
		DeflectionLimitDivisor: 250,
		MemberLength:           L,
	}

	result, err := OptimizeProfile(m, c, applyFn, &beamID, CriterionWeight, cons, nil, cancel)
	require.NoError(t, err)
	require.True(t, result.Canceled)
	require.False(t, result.Feasible)

	after, _ := m.Beam(beamID)
	require.Equal(t, original.Section, after.Section, "beam section must be restored even when canceled")
}

func TestOptimizeProfileNoFeasibleCandidateReturnsFailureResult(t *testing.T) {
	L := 6.0
	m, beamID := simplySupportedMesh(t, L)

	c := loadcase.NewCase(loadcase.Live)
	c.AddPointLoad(loadcase.BeamTarget(beamID, 0.5), 0, -2_000_000, 0) // absurdly large load

	applyFn := func(ms *mesh.Store, p *catalog.Profile) error {
		sec := p.Section
		return ms.UpdateBeam(beamID, mesh.BeamPatch{Section: &sec})
	}

	cons := Constraints{
		Catalog:                testCatalog(t),
		Grade:                  catalog.Grades["S235"],
		Density:                7850,
		MaxUC:                  1.0,
		DeflectionLimitDivisor: 250,
		MemberLength:           L,
	}

	result, err := OptimizeProfile(m, c, applyFn, &beamID, CriterionUC, cons, nil, nil)
	require.NoError(t, err)
	require.False(t, result.Feasible)
	require.Nil(t, result.Chosen)
	require.Len(t, result.Tried, 3)
}

func TestOptimizeProfileProgressCallbackInvokedPerCandidate(t *testing.T) {
	L := 6.0
	m, beamID := simplySupportedMesh(t, L)

	c := loadcase.NewCase(loadcase.Live)
	c.AddPointLoad(loadcase.BeamTarget(beamID, 0.5), 0, -5000, 0)

	applyFn := func(ms *mesh.Store, p *catalog.Profile) error {
		sec := p.Section
		return ms.UpdateBeam(beamID, mesh.BeamPatch{Section: &sec})
	}

	cons := Constraints{
		Catalog:                testCatalog(t),
		Grade:                  catalog.Grades["S235"],
		Density:                7850,
		MaxUC:                  1.0,
		DeflectionLimitDivisor: 250,
		MemberLength:           L,
	}

	var calls int
	onProgress := func(index, total int, p *catalog.Profile) { calls++ }

	_, err := OptimizeProfile(m, c, applyFn, &beamID, CriterionDeflection, cons, onProgress, nil)
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}
