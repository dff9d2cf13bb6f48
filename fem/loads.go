// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/errs"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/la"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/loadcase"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

// gravity is the acceleration used for the optional self-weight load
// (spec §4 supplement: "IncludeSelfWeight").
const gravity = 9.81

// buildGlobalLoad assembles the global force vector for one combination:
// the mesh's always-on per-node loads, plus each case's point/distributed/
// thermal/self-weight contributions scaled by its combination factor.
// combo == nil means "apply cases[0] alone with factor 1" (a bare solve).
func (d *domain) buildGlobalLoad(m *mesh.Store, cases []*loadcase.Case, combo *loadcase.Combination) ([]float64, error) {
	f := la.NewVec(d.nDOF)

	for _, id := range d.nodeIDs {
		n, _ := m.Node(id)
		if v := d.dofAt(id, 0); v >= 0 {
			f[v] += n.Fx
		}
		if v := d.dofAt(id, 1); v >= 0 {
			f[v] += n.Fy
		}
		if v := d.dofAt(id, 2); v >= 0 {
			f[v] += n.Mz
		}
	}

	if combo == nil && len(cases) != 1 {
		return nil, errs.New(errs.InvalidInput, "a nil combination requires exactly one load case, got %d", len(cases))
	}

	for _, c := range cases {
		w := caseFactor(combo, c)
		if w == 0 {
			continue
		}
		if err := d.addCaseLoad(m, c, w, f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// caseFactor returns a case's weight in the combination, or 1 if combo is
// nil (a bare single-case solve).
func caseFactor(combo *loadcase.Combination, c *loadcase.Case) float64 {
	if combo == nil {
		return 1
	}
	return combo.Factors[c.ID]
}

func (d *domain) addCaseLoad(m *mesh.Store, c *loadcase.Case, weight float64, f []float64) error {
	for _, pl := range c.PointLoads {
		if err := d.addPointLoad(pl, weight, f); err != nil {
			return err
		}
	}
	for _, dl := range c.DistributedLoads {
		if err := d.addCaseDistributedLoad(dl, weight, f); err != nil {
			return err
		}
	}
	for _, tl := range c.ThermalLoads {
		b, ok := d.beams[tl.Beam]
		if !ok {
			return errs.New(errs.InvalidInput, "thermal load references unknown beam %d", tl.Beam)
		}
		scatterAdd(f, b.DOFMap(), b.ThermalLoadGlobal(tl.DeltaT, tl.DeltaTGrad), weight)
	}
	if c.IncludeSelfWeight {
		d.addSelfWeight(m, weight, f)
	}
	return nil
}

func (d *domain) addPointLoad(pl loadcase.PointLoad, weight float64, f []float64) error {
	if !pl.Target.OnBeam {
		id := pl.Target.Node
		if v := d.dofAt(id, 0); v >= 0 {
			f[v] += weight * pl.Fx
		}
		if v := d.dofAt(id, 1); v >= 0 {
			f[v] += weight * pl.Fy
		}
		if v := d.dofAt(id, 2); v >= 0 {
			f[v] += weight * pl.Mz
		}
		return nil
	}
	b, ok := d.beams[pl.Target.Beam]
	if !ok {
		return errs.New(errs.InvalidInput, "point load references unknown beam %d", pl.Target.Beam)
	}
	scatterAdd(f, b.DOFMap(), b.PointLoadGlobal(pl.Target.T, pl.Fx, pl.Fy, pl.Mz), weight)
	return nil
}

func (d *domain) addCaseDistributedLoad(dl loadcase.DistributedLoad, weight float64, f []float64) error {
	b, ok := d.beams[dl.Beam]
	if !ok {
		return errs.New(errs.InvalidInput, "distributed load references unknown beam %d", dl.Beam)
	}
	qyEnd := dl.QyStart
	if dl.QyEnd != nil {
		qyEnd = *dl.QyEnd
	}
	load := mesh.DistributedLoad{
		QyStart: dl.QyStart, QyEnd: qyEnd,
		QxStart: dl.QxStart, QxEnd: dl.QxEnd,
		T0: dl.T0, T1: dl.T1,
		Local: dl.Frame == loadcase.Local,
	}
	scatterAdd(f, b.DOFMap(), b.DistributedLoadGlobal(load), weight)
	return nil
}

func (d *domain) addSelfWeight(m *mesh.Store, weight float64, f []float64) {
	for _, id := range d.beamIDs {
		b, _ := m.Beam(id)
		mat, ok := m.Material(b.Material)
		if !ok {
			continue
		}
		qy := -mat.Rho * b.Section.A * gravity
		load := mesh.DistributedLoad{QyStart: qy, QyEnd: qy, T0: 0, T1: 1, Local: false}
		el := d.beams[id]
		scatterAdd(f, el.DOFMap(), el.DistributedLoadGlobal(load), weight)
	}
}

// scatterAdd adds weight*local[i] into f at global index dofMap[i],
// skipping any sentinel -1 entries (a DOF this analysis kind doesn't
// carry, e.g. the rotation DOF under a truss analysis).
func scatterAdd(f []float64, dofMap []int, local []float64, weight float64) {
	for i, g := range dofMap {
		if g < 0 {
			continue
		}
		f[g] += weight * local[i]
	}
}
