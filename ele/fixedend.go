// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/la"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

// consistentLoadLocal builds the raw (un-condensed) 6-vector of consistent
// nodal loads for this beam's own attached distributed load, in the local
// frame and in the applied-load convention (spec §4.1/§4.3: "equivalent
// nodal loads by integrating the shape functions against the member
// load"). Load-case loads (point loads mid-span, thermal loads) are
// case-specific rather than a fixed property of the element, so they are
// computed on demand by PointLoadGlobal/ThermalLoadGlobal instead of being
// baked in here.
func (b *Beam) consistentLoadLocal() []float64 {
	f := make([]float64, 6)
	if b.Load != nil {
		b.addDistributedLoad(f, *b.Load)
	}
	return f
}

// condensedGlobalFromRaw condenses a raw local load vector against this
// beam's release pattern and rotates the result to the global frame — the
// shared tail end of both the element's own load (LoadGlobal) and any
// case-specific load applied to it (PointLoadGlobal, ThermalLoadGlobal).
func (b *Beam) condensedGlobalFromRaw(fRaw []float64) []float64 {
	_, fCond := la.Condense(b.klRaw, fRaw, b.retained, b.condensed)
	t := b.TransformMatrix()
	tT := transpose6(t)
	out := la.NewVec(6)
	la.Mul(out, 1, tT, fCond)
	return out
}

// DistributedLoadGlobal returns the global-frame equivalent load vector for
// an arbitrary trapezoidal distributed load on this beam — used by package
// fem for load-case distributed loads and for the self-weight contribution,
// neither of which is a fixed property of the element the way Beam.Load is.
func (b *Beam) DistributedLoadGlobal(load mesh.DistributedLoad) []float64 {
	f := make([]float64, 6)
	b.addDistributedLoad(f, load)
	return b.condensedGlobalFromRaw(f)
}

// PointLoadGlobal returns the global-frame equivalent load vector for a
// point force/moment applied at fractional position t along this beam,
// given in the beam's local frame (px, py, mz).
func (b *Beam) PointLoadGlobal(t, px, py, mz float64) []float64 {
	return b.condensedGlobalFromRaw(EquivalentPointLoadLocal(b.L, t, px, py, mz))
}

// ThermalLoadGlobal returns the global-frame equivalent load vector for a
// uniform temperature change and/or through-depth gradient applied to this
// beam (spec §4.3).
func (b *Beam) ThermalLoadGlobal(deltaT, deltaTGrad float64) []float64 {
	f := make([]float64, 6)
	if deltaT != 0 {
		b.addThermalAxial(f, deltaT)
	}
	if deltaTGrad != 0 && b.Depth > 0 {
		b.addThermalGradient(f, deltaTGrad)
	}
	return b.condensedGlobalFromRaw(f)
}

// addDistributedLoad accumulates the consistent nodal load contribution of
// a trapezoidal member load into f. qx drives the axial DOFs through the
// linear shape functions, qy drives the transverse/rotation DOFs through
// the cubic Hermite shape functions (spec §4.1).
func (b *Beam) addDistributedLoad(f []float64, load mesh.DistributedLoad) {
	a := load.T0 * b.L
	bEnd := load.T1 * b.L
	if bEnd <= a {
		return
	}

	qxStart, qyStart := load.QxStart, load.QyStart
	qxEnd, qyEnd := load.QxEnd, load.QyEnd
	if !load.Local {
		qxStart, qyStart = b.projectGlobalLoad(load.QxStart, load.QyStart)
		qxEnd, qyEnd = b.projectGlobalLoad(load.QxEnd, load.QyEnd)
	}

	qx := func(x float64) float64 { return linearLoadAt(x, a, bEnd, qxStart, qxEnd) }
	qy := func(x float64) float64 { return linearLoadAt(x, a, bEnd, qyStart, qyEnd) }

	f[dofU1] += integrateOverRange(a, bEnd, func(x float64) float64 {
		n1, _ := linearN(x / b.L)
		return n1 * qx(x)
	})
	f[dofU2] += integrateOverRange(a, bEnd, func(x float64) float64 {
		_, n2 := linearN(x / b.L)
		return n2 * qx(x)
	})

	f[dofV1] += integrateOverRange(a, bEnd, func(x float64) float64 {
		h1, _, _, _ := hermiteV(x/b.L, b.L)
		return h1 * qy(x)
	})
	f[dofT1] += integrateOverRange(a, bEnd, func(x float64) float64 {
		_, h2, _, _ := hermiteV(x/b.L, b.L)
		return h2 * qy(x)
	})
	f[dofV2] += integrateOverRange(a, bEnd, func(x float64) float64 {
		_, _, h3, _ := hermiteV(x/b.L, b.L)
		return h3 * qy(x)
	})
	f[dofT2] += integrateOverRange(a, bEnd, func(x float64) float64 {
		_, _, _, h4 := hermiteV(x/b.L, b.L)
		return h4 * qy(x)
	})
}

// EquivalentPointLoadLocal returns the consistent nodal load vector for a
// point force/moment applied at fractional position t along the beam's
// local axis, expressed in the local frame. Px, Py are local-frame force
// components and Mz is a local applied moment; used by package fem for
// load-case point loads that target a location on a beam span rather than
// a node.
func EquivalentPointLoadLocal(L, t, px, py, mz float64) []float64 {
	f := make([]float64, 6)
	n1, n2 := linearN(t)
	f[dofU1] += n1 * px
	f[dofU2] += n2 * px

	h1, h2, h3, h4 := hermiteV(t, L)
	f[dofV1] += h1 * py
	f[dofT1] += h2 * py
	f[dofV2] += h3 * py
	f[dofT2] += h4 * py

	dh1, dh2, dh3, dh4 := hermiteVPrimeX(t, L)
	f[dofV1] += dh1 * mz
	f[dofT1] += dh2 * mz
	f[dofV2] += dh3 * mz
	f[dofT2] += dh4 * mz
	return f
}

// addThermalAxial accumulates the equivalent nodal force pair from a
// uniform temperature change ΔT: a free bar would elongate by α·ΔT·L;
// restraining that elongation takes an axial force E·A·α·ΔT, so the
// equivalent nodal loads in the applied-load convention are ∓E·A·α·ΔT at
// the two ends (standard initial-strain load vector for a bar element).
func (b *Beam) addThermalAxial(f []float64, deltaT float64) {
	n := b.E * b.A * b.Alpha * deltaT
	f[dofU1] -= n
	f[dofU2] += n
}

// addThermalGradient accumulates the equivalent nodal moment pair from a
// through-depth temperature gradient: the free thermal curvature is
// κ_th = α·ΔT_grad / depth, and restraining it takes a moment E·Iy·κ_th,
// applied with opposite sign at the two ends by the same initial-strain
// argument used for the axial case.
func (b *Beam) addThermalGradient(f []float64, deltaTGrad float64) {
	kappa := b.Alpha * deltaTGrad / b.Depth
	m := b.E * b.Iy * kappa
	f[dofT1] -= m
	f[dofT2] += m
}
