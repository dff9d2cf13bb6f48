// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package la is the engine's linear-algebra kernel (spec component C1):
// dense matrix/vector helpers built on top of gosl/la, a dense Gaussian
// elimination solver for small systems, and static condensation of
// element-local stiffness matrices. Every element formulation in package
// ele and every assembly step in package fem goes through here rather than
// hand-rolling loops, the way the teacher's ele/solid/beam.go leans on
// gosl/la for every matrix operation (MatAlloc, MatMul, MatTrMul3,
// MatVecMul, VecFill) instead of writing its own double loops.
package la

import (
	gla "github.com/cpmech/gosl/la"
)

// Mat is a dense matrix stored row-major as [][]float64, matching gosl/la's
// convention throughout the teacher codebase.
type Mat = [][]float64

// NewMat allocates an m×n zeroed dense matrix.
func NewMat(m, n int) Mat { return gla.MatAlloc(m, n) }

// NewVec allocates an n-length zeroed vector.
func NewVec(n int) []float64 { return make([]float64, n) }

// Fill sets every entry of v to val.
func Fill(v []float64, val float64) { gla.VecFill(v, val) }

// MulAdd computes y += α·A·x.
func MulAdd(y []float64, alpha float64, a Mat, x []float64) {
	gla.MatVecMulAdd(y, alpha, a, x)
}

// Mul computes y = α·A·x.
func Mul(y []float64, alpha float64, a Mat, x []float64) {
	gla.MatVecMul(y, alpha, a, x)
}

// Congruence computes K = α·Tᵀ·Kl·T, the local→global stiffness transform
// used identically for beam and plate elements (spec §4.1 "Global element
// stiffness = Tᵀ·k_local·T").
func Congruence(k Mat, alpha float64, t, kl Mat) {
	gla.MatTrMul3(k, alpha, t, kl, t)
}

// Clone returns a deep copy of a.
func Clone(a Mat) Mat { return gla.MatClone(a) }

// Symmetrize averages a with its transpose in place, guarding against
// round-off asymmetry introduced by repeated floating point products
// (testable property 2 requires ‖K − Kᵀ‖ = 0 exactly at assembly time).
func Symmetrize(a Mat) {
	n := len(a)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			avg := 0.5 * (a[i][j] + a[j][i])
			a[i][j] = avg
			a[j][i] = avg
		}
	}
}

// Largest returns max(|a_ij|) over the whole matrix.
func Largest(a Mat) float64 {
	best := 0.0
	for _, row := range a {
		for _, v := range row {
			if v < 0 {
				v = -v
			}
			if v > best {
				best = v
			}
		}
	}
	return best
}

// MaxDiag returns the largest diagonal entry of a square matrix.
func MaxDiag(a Mat) float64 {
	best := 0.0
	for i := range a {
		if a[i][i] > best {
			best = a[i][i]
		}
	}
	return best
}

// Norm2 returns the Euclidean norm of v.
func Norm2(v []float64) float64 { return gla.VecNorm(v, 0) }
