// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/errs"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/la"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

// Local DOF order: (u1, v1, θ1, u2, v2, θ2) and conjugate forces
// (N1, V1, M1, N2, V2, M2), as spec §4.1 defines.
const (
	dofU1 = 0
	dofV1 = 1
	dofT1 = 2
	dofU2 = 3
	dofV2 = 4
	dofT2 = 5
)

// Beam is a 2D Euler-Bernoulli beam element with optional end releases and
// an optional attached trapezoidal distributed load, adapted from the
// teacher's ele/solid/beam.go (which carries the same local/global split
// and distributed-load machinery for a 3D continuum-analysis beam).
type Beam struct {
	dofMap []int // 6 global DOF indices, local order above

	L          float64
	cosA, sinA float64

	E, A, Iy float64
	Ends     mesh.EndConnection
	Load     *mesh.DistributedLoad
	Alpha    float64 // thermal expansion coefficient
	Depth    float64 // section depth, for thermal gradient curvature

	klRaw       la.Mat    // un-condensed 6x6 local stiffness, kept to condense case-specific loads later
	klCondensed la.Mat    // condensed 6x6 local stiffness
	fEquivLocal []float64 // condensed 6-vector of consistent (applied-load convention) nodal loads, local frame, from the beam's own attached member load
	retained    []int
	condensed   []int
}

// NewBeam builds a Beam from node coordinates, material/section
// properties, end connections and an optional distributed load. dofMap
// gives the 6 global DOF indices for (u1,v1,θ1,u2,v2,θ2).
func NewBeam(x1, y1, x2, y2 float64, mat catalog.Material, sec catalog.Section, ends mesh.EndConnection, load *mesh.DistributedLoad, dofMap []int) (*Beam, error) {
	L := math.Hypot(x2-x1, y2-y1)
	if L <= 0 {
		return nil, errs.New(errs.InvalidInput, "beam length must be positive, got %v", L)
	}
	if len(dofMap) != 6 {
		return nil, errs.New(errs.InvalidInput, "beam dofMap must have 6 entries, got %d", len(dofMap))
	}
	b := &Beam{
		dofMap: append([]int(nil), dofMap...),
		L:      L,
		cosA:   (x2 - x1) / L,
		sinA:   (y2 - y1) / L,
		E:      mat.E,
		A:      sec.A,
		Iy:     sec.Iy,
		Ends:   ends,
		Load:   load,
		Alpha:  mat.Alpha,
		Depth:  sec.H,
	}
	if err := b.prepare(); err != nil {
		return nil, err
	}
	return b, nil
}

// prepare computes the release pattern's retained/condensed DOF sets and
// the condensed local stiffness and fixed-end load vector.
func (b *Beam) prepare() error {
	b.retained, b.condensed = releasePattern(b.Ends)
	if err := checkStability(b.retained, b.condensed, b.A); err != nil {
		return err
	}
	b.klRaw = klocal(b.E, b.A, b.Iy, b.L)
	fRaw := b.consistentLoadLocal()
	kCond, fCond := la.Condense(b.klRaw, fRaw, b.retained, b.condensed)
	b.klCondensed = kCond
	b.fEquivLocal = fCond
	return nil
}

// klocal returns the standard 6×6 Euler-Bernoulli local stiffness matrix
// for a beam with axial DOFs (spec §4.1).
func klocal(E, A, I, L float64) la.Mat {
	k := la.NewMat(6, 6)
	ea_l := E * A / L
	l2, l3 := L*L, L*L*L
	ei12 := 12 * E * I / l3
	ei6 := 6 * E * I / l2
	ei4 := 4 * E * I / L
	ei2 := 2 * E * I / L

	k[dofU1][dofU1] = ea_l
	k[dofU1][dofU2] = -ea_l
	k[dofU2][dofU1] = -ea_l
	k[dofU2][dofU2] = ea_l

	k[dofV1][dofV1] = ei12
	k[dofV1][dofT1] = ei6
	k[dofV1][dofV2] = -ei12
	k[dofV1][dofT2] = ei6

	k[dofT1][dofV1] = ei6
	k[dofT1][dofT1] = ei4
	k[dofT1][dofV2] = -ei6
	k[dofT1][dofT2] = ei2

	k[dofV2][dofV1] = -ei12
	k[dofV2][dofT1] = -ei6
	k[dofV2][dofV2] = ei12
	k[dofV2][dofT2] = -ei6

	k[dofT2][dofV1] = ei6
	k[dofT2][dofT1] = ei2
	k[dofT2][dofV2] = -ei6
	k[dofT2][dofT2] = ei4

	return k
}

// releasePattern splits the 6 local DOFs into retained/condensed sets
// from the beam's end connection modes (spec §4.1/§9: derived from the
// tagged variant, not four independent booleans).
func releasePattern(ends mesh.EndConnection) (retained, condensed []int) {
	allDofs := []int{dofU1, dofV1, dofT1, dofU2, dofV2, dofT2}
	releaseT1 := ends.Start.ReleasesMoment()
	releaseT2 := ends.End.ReleasesMoment()
	for _, d := range allDofs {
		switch d {
		case dofT1:
			if releaseT1 {
				condensed = append(condensed, d)
				continue
			}
		case dofT2:
			if releaseT2 {
				condensed = append(condensed, d)
				continue
			}
		}
		retained = append(retained, d)
	}
	return
}

// stabilityAreaEpsilon is the axial area below which a member is treated as
// carrying no usable axial stiffness. It sits well under package fem's
// contactInactiveAreaFactor-scaled residual area for any section this
// catalog can produce, so an open tension/compression-only member (which
// always arrives here with Fixed ends — see releaseOnlyEnds in package fem)
// never trips this check on its own.
const stabilityAreaEpsilon = 1e-15

// checkStability rejects a release configuration that leaves the member
// internally unstable. Releasing both end moments removes only the
// rotational DOFs; shear/axial DOFs are never condensed, so the member
// stays stable as long as its axial stiffness still ties the two ends
// together end-to-end. The only true mechanism is that combination with a
// degenerate (zero or ~zero) axial area: both moment releases of both ends
// together with both axial releases (spec §4.1) — reachable from a
// Hinge/Hinge end pair on a beam whose section has no real axial area.
func checkStability(retained, condensed []int, axialArea float64) error {
	bothMomentsReleased := len(condensed) == 2
	axialReleased := axialArea <= stabilityAreaEpsilon
	if bothMomentsReleased && axialReleased {
		return errs.New(errs.IncompatibleReleases, "beam releases both end moments and has no axial area (mechanism)")
	}
	return nil
}

// DOFMap implements Element.
func (b *Beam) DOFMap() []int { return b.dofMap }

// Length returns the member's span, for internal-force station sampling in
// package fem.
func (b *Beam) Length() float64 { return b.L }

// ProjectToLocal converts a global-frame (qx,qy) pair into the beam's local
// frame, for building the station-sampling load segments package fem needs
// outside of the equivalent-load machinery above.
func (b *Beam) ProjectToLocal(qx, qy float64) (qLocalX, qLocalY float64) {
	return b.projectGlobalLoad(qx, qy)
}

// TransformMatrix returns the 6×6 global→local rotation matrix T built
// from cosα, sinα (spec §4.1).
func (b *Beam) TransformMatrix() la.Mat {
	t := la.NewMat(6, 6)
	c, s := b.cosA, b.sinA
	block := [2][2]float64{{c, s}, {-s, c}}
	place := func(row, col int) {
		t[row][col] = block[0][0]
		t[row][col+1] = block[0][1]
		t[row+1][col] = block[1][0]
		t[row+1][col+1] = block[1][1]
	}
	place(0, 0)
	t[2][2] = 1
	place(3, 3)
	t[5][5] = 1
	return t
}

// StiffnessGlobal implements Element: K = Tᵀ·k_cond·T.
func (b *Beam) StiffnessGlobal() la.Mat {
	t := b.TransformMatrix()
	k := la.NewMat(6, 6)
	la.Congruence(k, 1, t, b.klCondensed)
	return k
}

// LoadGlobal implements Element: the member's global load contribution is
// Tᵀ·f_equiv (the condensed consistent nodal load vector, rotated to the
// global frame), assembled into the system RHS the same way StiffnessGlobal
// is assembled into K (spec §4.1/§4.4).
func (b *Beam) LoadGlobal() []float64 {
	t := b.TransformMatrix()
	tT := transpose6(t)
	f := la.NewVec(6)
	la.Mul(f, 1, tT, b.fEquivLocal)
	return f
}

// LocalStiffness returns the condensed 6×6 local stiffness matrix.
func (b *Beam) LocalStiffness() la.Mat { return b.klCondensed }

// EquivalentLoadLocal returns the condensed consistent nodal load vector in
// the local frame.
func (b *Beam) EquivalentLoadLocal() []float64 { return b.fEquivLocal }

// LocalDisplacements returns T·u_global for this element given the global
// displacement vector (spec §4.1 internal-force recovery step 1).
func (b *Beam) LocalDisplacements(uGlobal []float64) []float64 {
	ue := make([]float64, 6)
	for i, gd := range b.dofMap {
		if gd < 0 {
			continue // DOF this analysis kind doesn't carry (e.g. truss rotation)
		}
		ue[i] = uGlobal[gd]
	}
	t := b.TransformMatrix()
	ul := la.NewVec(6)
	la.Mul(ul, 1, t, ue)
	return ul
}

// EndForcesLocal returns the member's internal end actions
// (N1,V1,M1,N2,V2,M2) by superposing the force due to nodal displacements
// with the member's own span load: k_local·u_local − f_equiv (spec §4.1
// step 2, the classic "stiffness times displacement minus equivalent load"
// recovery formula).
func (b *Beam) EndForcesLocal(uGlobal []float64) []float64 {
	ul := b.LocalDisplacements(uGlobal)
	f := la.NewVec(6)
	la.Mul(f, 1, b.klCondensed, ul)
	for i := range f {
		f[i] -= b.fEquivLocal[i]
	}
	return f
}

func transpose6(t la.Mat) la.Mat {
	out := la.NewMat(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			out[i][j] = t[j][i]
		}
	}
	return out
}

// projectGlobalLoad projects a load's global-frame (qx,qy) pair onto the
// beam's local frame (perpendicular/parallel components), per spec §4.1:
// "Global-frame load vectors are first projected onto the beam local frame
// before integration."
func (b *Beam) projectGlobalLoad(qx, qy float64) (qLocalX, qLocalY float64) {
	qLocalX = qx*b.cosA + qy*b.sinA
	qLocalY = -qx*b.sinA + qy*b.cosA
	return
}
