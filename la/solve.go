// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"github.com/cpmech/gosl/chk"
	gla "github.com/cpmech/gosl/la"
)

// DenseSolve factorises and solves K·x = f with Gaussian elimination and
// partial pivoting, acceptable per spec §4.5 for small problems
// (≤ ~1000 DOFs). pivotRank, if a mechanism is found, is the 0-based DOF
// index where the pivot vanished; callers wrap it in an
// errs.Mechanism(rank, ...) error.
func DenseSolve(k Mat, f []float64) (x []float64, pivotRank int, singular bool) {
	n := len(k)
	a := Clone(k)
	b := append([]float64(nil), f...)
	for col := 0; col < n; col++ {
		piv := col
		best := abs(a[col][col])
		for r := col + 1; r < n; r++ {
			if v := abs(a[r][col]); v > best {
				best = v
				piv = r
			}
		}
		if best < 1e-10*Largest(k)+1e-300 {
			return nil, col, true
		}
		a[col], a[piv] = a[piv], a[col]
		b[col], b[piv] = b[piv], b[col]
		pv := a[col][col]
		for r := col + 1; r < n; r++ {
			factor := a[r][col] / pv
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}
	x = make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := b[i]
		for j := i + 1; j < n; j++ {
			s -= a[i][j] * x[j]
		}
		x[i] = s / a[i][i]
	}
	return x, -1, false
}

// SparseSystem is a growable symmetric sparse system assembled as a
// triplet list, mirroring the teacher's d.Kb *la.Triplet usage in
// fem/sol-lin-implicit.go (Start → Put* per element → factorise → solve).
type SparseSystem struct {
	n   int
	trip *gla.Triplet
}

// NewSparseSystem allocates a sparse n×n system with room for maxNZ
// nonzero entries before a Start() reset is required.
func NewSparseSystem(n, maxNZ int) *SparseSystem {
	s := &SparseSystem{n: n}
	s.trip = new(gla.Triplet)
	s.trip.Init(n, n, maxNZ)
	return s
}

// Start resets the triplet list for a fresh assembly pass.
func (s *SparseSystem) Start() { s.trip.Start() }

// Put adds a contribution to entry (i,j).
func (s *SparseSystem) Put(i, j int, val float64) { s.trip.Put(i, j, val) }

// Solve factorises and solves K·x = f with gosl's UMFPACK sparse LU
// solver, the InitR/Fact/SolveR sequence in the teacher's
// solve_linear_problem.
func (s *SparseSystem) Solve(f []float64, symmetric bool) (x []float64, err error) {
	solver := gla.GetSolver("umfpack")
	defer solver.Clean()
	err = solver.InitR(s.trip, symmetric, false, false)
	if err != nil {
		return nil, chk.Err("cannot initialise sparse solver:\n%v", err)
	}
	err = solver.Fact()
	if err != nil {
		return nil, err
	}
	x = make([]float64, s.n)
	err = solver.SolveR(x, f, false)
	if err != nil {
		return nil, chk.Err("sparse solve failed:\n%v", err)
	}
	return x, nil
}
