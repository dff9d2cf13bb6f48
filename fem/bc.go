// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"

// restrainedDOFs returns the sorted list of global DOF indices held fixed
// by a support, skipping any sentinel -1 DOF this analysis kind doesn't
// carry (spec §4.4).
func (d *domain) restrainedDOFs(m *mesh.Store) []int {
	var out []int
	for _, id := range d.nodeIDs {
		n, _ := m.Node(id)
		if n.Support.X {
			if v := d.dofAt(id, 0); v >= 0 {
				out = append(out, v)
			}
		}
		if n.Support.Y {
			if v := d.dofAt(id, 1); v >= 0 {
				out = append(out, v)
			}
		}
		if n.Support.Rotation {
			if v := d.dofAt(id, 2); v >= 0 {
				out = append(out, v)
			}
		}
	}
	return out
}

// applyPenaltyBC adds PenaltyFactor*max-diagonal to each restrained DOF's
// diagonal entry and zeroes its coupling to the load vector's own demand
// at that DOF, per the penalty method (spec §4.4).
func applyPenaltyBC(k [][]float64, f []float64, restrained []int) {
	scale := 0.0
	for i := range k {
		if k[i][i] > scale {
			scale = k[i][i]
		}
	}
	penalty := scale * PenaltyFactor
	if penalty == 0 {
		penalty = PenaltyFactor
	}
	for _, dof := range restrained {
		k[dof][dof] += penalty
		f[dof] = 0
	}
}

// eliminationFreeDOFs returns the sorted list of free (non-restrained) DOFs.
func eliminationFreeDOFs(nDOF int, restrained []int) []int {
	isRestrained := make([]bool, nDOF)
	for _, d := range restrained {
		isRestrained[d] = true
	}
	var free []int
	for i := 0; i < nDOF; i++ {
		if !isRestrained[i] {
			free = append(free, i)
		}
	}
	return free
}
