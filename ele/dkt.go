// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/errs"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/la"
)

// Plate is a Discrete Kirchhoff Triangle (DKT) thin-plate bending element,
// the Batoz–Bathe–Ho formulation spec §4.2 calls for. DOFs per node are
// (w, θx = ∂w/∂y, θy = −∂w/∂x), 9 DOFs total, matching the teacher's shp
// package area-coordinate machinery adapted from 2D continuum shape
// functions to this plate's rotation-carrying ones.
type Plate struct {
	dofMap []int // 9 global DOF indices: (w,θx,θy) at node1, node2, node3

	geom dktGeom
	D    float64 // flexural rigidity, E*t^3/(12*(1-ν^2))
	nu   float64
	area float64

	k la.Mat // 9x9 stiffness; already expressed against the global (w,θx,θy) directions
}

// NewPlate builds a Plate element from the three node coordinates (CCW),
// material E/ν and thickness, and the 9 global DOF indices.
func NewPlate(x1, y1, x2, y2, x3, y3, E, nu, thickness float64, dofMap []int) (*Plate, error) {
	if len(dofMap) != 9 {
		return nil, errs.New(errs.InvalidInput, "plate dofMap must have 9 entries, got %d", len(dofMap))
	}
	area2 := (x2-x1)*(y3-y1) - (x3-x1)*(y2-y1)
	if area2 == 0 {
		return nil, errs.New(errs.InvalidInput, "plate nodes are collinear (zero area)")
	}
	p := &Plate{
		dofMap: append([]int(nil), dofMap...),
		geom:   newDKTGeom([3]float64{x1, x2, x3}, [3]float64{y1, y2, y3}),
		D:      E * thickness * thickness * thickness / (12 * (1 - nu*nu)),
		nu:     nu,
		area:   math.Abs(area2) / 2,
	}
	p.k = p.buildStiffness()
	return p, nil
}

// DOFMap implements ele.Element.
func (p *Plate) DOFMap() []int { return p.dofMap }

// StiffnessGlobal implements ele.Element. DKT's 9 DOFs are already defined
// against global (w,θx,θy) directions (plate bending never rotates into a
// separate "local" member frame the way a beam does), so this is also the
// element's local stiffness.
func (p *Plate) StiffnessGlobal() la.Mat { return p.k }

// LoadGlobal implements ele.Element. Plate self-weight/thermal effects are
// out of scope (spec §8 Non-goals); a plate carries no member load of its
// own, so this is always zero. Package fem has no plate edge-load type: a
// plate is loaded only through nodal loads at its corner nodes.
func (p *Plate) LoadGlobal() []float64 { return la.NewVec(9) }

// FlexuralRigidity exposes D for the moment recovery step in package fem
// (spec §4.2 "m = D·κ").
func (p *Plate) FlexuralRigidity() float64 { return p.D }

// PoissonRatio exposes ν for the moment recovery constitutive matrix.
func (p *Plate) PoissonRatio() float64 { return p.nu }

// Area returns the triangle's area.
func (p *Plate) Area() float64 { return p.area }

// CurvatureAt returns (κx, κy, κxy) at area coordinates (L1,L2,L3) given
// the element's local 9-vector of nodal DOFs (w,θx,θy) per node — used by
// package fem to recover moments at the element centroid (spec §4.2).
func (p *Plate) CurvatureAt(l1, l2, l3 float64, q []float64) (kx, ky, kxy float64) {
	b := p.geom.bMatrix(l1, l2, l3)
	for j := 0; j < 9; j++ {
		kx += b[0][j] * q[j]
		ky += b[1][j] * q[j]
		kxy += b[2][j] * q[j]
	}
	return
}

// dktGaussPoints are the standard 3-point interior Gauss rule for DKT,
// exact for the element's linearly-varying curvature field (spec §4.2
// "3-point Gauss rule").
var dktGaussPoints = [3][3]float64{
	{1.0 / 6, 1.0 / 6, 2.0 / 3},
	{1.0 / 6, 2.0 / 3, 1.0 / 6},
	{2.0 / 3, 1.0 / 6, 1.0 / 6},
}

func (p *Plate) buildStiffness() la.Mat {
	dMat := [3][3]float64{
		{p.D, p.D * p.nu, 0},
		{p.D * p.nu, p.D, 0},
		{0, 0, p.D * (1 - p.nu) / 2},
	}
	k := la.NewMat(9, 9)
	w := 1.0 / 3.0 // equal weights, sum to 1; scaled by area below
	for _, gp := range dktGaussPoints {
		b := p.geom.bMatrix(gp[0], gp[1], gp[2])
		// k += w * area * B^T D B
		var db [3][9]float64
		for i := 0; i < 3; i++ {
			for j := 0; j < 9; j++ {
				var s float64
				for m := 0; m < 3; m++ {
					s += dMat[i][m] * b[m][j]
				}
				db[i][j] = s
			}
		}
		for i := 0; i < 9; i++ {
			for j := 0; j < 9; j++ {
				var s float64
				for m := 0; m < 3; m++ {
					s += b[m][i] * db[m][j]
				}
				k[i][j] += w * p.area * s
			}
		}
	}
	la.Symmetrize(k)
	return k
}

// dktGeom carries the per-edge geometric coefficients the Batoz–Bathe–Ho
// formulation is built from, plus the constant area-coordinate gradients
// needed to differentiate the quadratic Hx/Hy interpolations.
type dktGeom struct {
	// a,b,c,dd,e indexed 0,1,2 for sides (2,3),(3,1),(1,2) respectively
	// (Batoz's sides 4,5,6).
	a, b, c, dd, e [3]float64
	// dL[i] = (∂Li/∂x, ∂Li/∂y), constant over the triangle.
	dLx, dLy [3]float64
}

func newDKTGeom(x, y [3]float64) dktGeom {
	var g dktGeom
	// side k (0,1,2) connects nodes (i,j): side0=(2,3) side1=(3,1) side2=(1,2)
	pairs := [3][2]int{{1, 2}, {2, 0}, {0, 1}}
	for k, pr := range pairs {
		i, j := pr[0], pr[1]
		xij := x[i] - x[j]
		yij := y[i] - y[j]
		l2 := xij*xij + yij*yij
		g.a[k] = -xij / l2
		g.b[k] = 0.75 * xij * yij / l2
		g.c[k] = (0.25*xij*xij - 0.5*yij*yij) / l2
		g.dd[k] = -yij / l2
		g.e[k] = (0.25*yij*yij - 0.5*xij*xij) / l2
	}
	area2 := (x[1]-x[0])*(y[2]-y[0]) - (x[2]-x[0])*(y[1]-y[0])
	// Li = (ai + bi*x + ci*y) / area2, with b1=y2-y3, c1=x3-x2, cyclic.
	g.dLx[0] = (y[1] - y[2]) / area2
	g.dLx[1] = (y[2] - y[0]) / area2
	g.dLx[2] = (y[0] - y[1]) / area2
	g.dLy[0] = (x[2] - x[1]) / area2
	g.dLy[1] = (x[0] - x[2]) / area2
	g.dLy[2] = (x[1] - x[0]) / area2
	return g
}

// hxHy returns the DKT Hx,Hy interpolation vectors (9 entries each, DOF
// order w1,θx1,θy1,w2,θx2,θy2,w3,θx3,θy3) and their derivatives with
// respect to L1,L2,L3, at area coordinates (l1,l2,l3). Hx interpolates the
// rotation field driving κxx = ∂βx/∂x, Hy the field driving κyy = ∂βy/∂y,
// following Batoz's closed form for the 6-node quadratic shape functions
// N1=L1(2L1−1), N2=L2(2L2−1), N3=L3(2L3−1), N4=4L2L3, N5=4L3L1, N6=4L1L2.
func (g dktGeom) hxCoeffs(l1, l2, l3 float64) (hx, hy [3][9]float64) {
	// dN/dL1, dN/dL2, dN/dL3 for each of N1..N6, since Hx/Hy are linear
	// combinations of N1..N6 with constant (geometry-only) coefficients,
	// their L-derivatives follow directly from dN/dLi.
	a := g.a
	b := g.b
	c := g.c
	dd := g.dd
	e := g.e

	// dN_k/dL1, dN_k/dL2, dN_k/dL3 for k=1..6 (index 0..5)
	dN := func(l1, l2, l3 float64) (d1, d2, d3 [6]float64) {
		d1[0] = 4*l1 - 1
		d2[1] = 4*l2 - 1
		d3[2] = 4*l3 - 1
		d2[3] = 4 * l3
		d3[3] = 4 * l2
		d3[4] = 4 * l1
		d1[4] = 4 * l3
		d1[5] = 4 * l2
		d2[5] = 4 * l1
		return
	}
	d1, d2, d3 := dN(l1, l2, l3)

	// Hx coefficients as linear combinations of N4,N5,N6,N1,N2,N3 (index
	// 3,4,5,0,1,2 respectively in the d1/d2/d3 arrays above).
	coeffHx := [9][6]float64{
		{0, 0, 0, 1.5 * a[2], 0, -1.5 * a[1]},
		{0, 0, 0, b[2], 0, b[1]},
		{1, 0, 0, -c[2], 0, -c[1]},
		{0, 0, 0, -1.5 * a[2], 1.5 * a[0], 0},
		{0, 0, 0, b[2], b[0], 0},
		{0, 1, 0, -c[2], -c[0], 0},
		{0, 0, 0, 0, -1.5 * a[0], 1.5 * a[1]},
		{0, 0, 0, 0, b[0], b[1]},
		{0, 0, 1, 0, -c[0], -c[1]},
	}
	coeffHy := [9][6]float64{
		{0, 0, 0, 1.5 * dd[2], 0, -1.5 * dd[1]},
		{-1, 0, 0, e[2], 0, e[1]},
		{0, 0, 0, -b[2], 0, -b[1]},
		{0, 0, 0, -1.5 * dd[2], 1.5 * dd[0], 0},
		{0, -1, 0, e[2], e[0], 0},
		{0, 0, 0, -b[2], -b[0], 0},
		{0, 0, 0, 0, -1.5 * dd[0], 1.5 * dd[1]},
		{0, 0, -1, 0, e[0], e[1]},
		{0, 0, 0, 0, -b[0], -b[1]},
	}

	for row := 0; row < 9; row++ {
		for n := 0; n < 6; n++ {
			cx := coeffHx[row][n]
			cy := coeffHy[row][n]
			if cx != 0 {
				hx[0][row] += cx * d1[n]
				hx[1][row] += cx * d2[n]
				hx[2][row] += cx * d3[n]
			}
			if cy != 0 {
				hy[0][row] += cy * d1[n]
				hy[1][row] += cy * d2[n]
				hy[2][row] += cy * d3[n]
			}
		}
	}
	return
}

// bMatrix returns the 3×9 curvature-displacement matrix [κx;κy;κxy] = B·q
// at area coordinates (l1,l2,l3), by the chain rule ∂/∂x = Σ ∂Li/∂x·∂/∂Li.
func (g dktGeom) bMatrix(l1, l2, l3 float64) [3][9]float64 {
	dhxdL, dhydL := g.hxCoeffs(l1, l2, l3)
	var b [3][9]float64
	for row := 0; row < 9; row++ {
		var dHxDx, dHxDy, dHyDx, dHyDy float64
		for li := 0; li < 3; li++ {
			dHxDx += dhxdL[li][row] * g.dLx[li]
			dHxDy += dhxdL[li][row] * g.dLy[li]
			dHyDx += dhydL[li][row] * g.dLx[li]
			dHyDy += dhydL[li][row] * g.dLy[li]
		}
		b[0][row] = dHxDx
		b[1][row] = dHyDy
		b[2][row] = dHxDy + dHyDx
	}
	return b
}
