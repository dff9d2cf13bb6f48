// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

// Condense performs static condensation of a square stiffness matrix k and
// load vector f: DOFs listed in "retained" stay active, DOFs listed in
// "condensed" are eliminated assuming zero force demand is not imposed on
// them directly (they still receive a share of f through f_c).
//
//	k_cond = k_rr − k_rc · k_cc⁻¹ · k_cr
//	f_cond = f_r  − k_rc · k_cc⁻¹ · f_c
//
// kOut and fOut have the same dimension as k/f; entries on the condensed
// rows/columns are zero, matching spec §4.1 ("extending back to 6×6 by
// zero rows/columns on the condensed DOFs"). If f is nil, fOut is nil.
func Condense(k Mat, f []float64, retained, condensed []int) (kOut Mat, fOut []float64) {
	n := len(k)
	kOut = NewMat(n, n)
	if len(condensed) == 0 {
		for i := 0; i < n; i++ {
			copy(kOut[i], k[i])
		}
		if f != nil {
			fOut = append([]float64(nil), f...)
		}
		return
	}

	nc := len(condensed)
	kcc := NewMat(nc, nc)
	for a, i := range condensed {
		for b, j := range condensed {
			kcc[a][b] = k[i][j]
		}
	}
	kccInv, ok := Invert(kcc)
	if !ok {
		// A singular condensed block means the released DOFs carry no
		// stiffness of their own; fall back to treating them as simply
		// absent (zero contribution), which is the physically consistent
		// limit for a fully-released end.
		kccInv = NewMat(nc, nc)
	}

	for _, i := range retained {
		for _, j := range retained {
			kOut[i][j] = k[i][j]
		}
	}
	// subtract k_rc * kccInv * k_cr contribution row by row
	tmp := make([]float64, nc)
	for _, i := range retained {
		for a, c := range condensed {
			tmp[a] = k[i][c]
		}
		for _, j := range retained {
			var s float64
			for a := range condensed {
				var kccInvCol float64
				for b, c2 := range condensed {
					kccInvCol += kccInv[a][b] * k[c2][j]
					_ = c2
				}
				s += tmp[a] * kccInvCol
			}
			kOut[i][j] -= s
		}
	}

	if f != nil {
		fOut = make([]float64, n)
		for _, i := range retained {
			fOut[i] = f[i]
		}
		fc := make([]float64, nc)
		for a, c := range condensed {
			fc[a] = f[c]
		}
		corr := make([]float64, nc)
		for a := range condensed {
			var s float64
			for b := range condensed {
				s += kccInv[a][b] * fc[b]
			}
			corr[a] = s
		}
		for _, i := range retained {
			var s float64
			for a, c := range condensed {
				s += k[i][c] * corr[a]
			}
			fOut[i] -= s
		}
	}
	return
}

// Invert computes the inverse of a small dense matrix by Gauss-Jordan
// elimination with partial pivoting. Returns ok=false if a is singular to
// working precision instead of panicking.
func Invert(a Mat) (inv Mat, ok bool) {
	n := len(a)
	aug := NewMat(n, 2*n)
	for i := 0; i < n; i++ {
		copy(aug[i][:n], a[i])
		aug[i][n+i] = 1
	}
	for col := 0; col < n; col++ {
		piv := col
		best := abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if v := abs(aug[r][col]); v > best {
				best = v
				piv = r
			}
		}
		if best < 1e-13 {
			return nil, false
		}
		aug[col], aug[piv] = aug[piv], aug[col]
		pv := aug[col][col]
		for c := 0; c < 2*n; c++ {
			aug[col][c] /= pv
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for c := 0; c < 2*n; c++ {
				aug[r][c] -= factor * aug[col][c]
			}
		}
	}
	inv = NewMat(n, n)
	for i := 0; i < n; i++ {
		copy(inv[i], aug[i][n:])
	}
	return inv, true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
