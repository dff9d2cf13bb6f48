// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/la"

// assembleStiffness scatters every element's global stiffness into the
// system matrix, skipping any sentinel -1 DOF (a DOF this analysis kind
// doesn't carry) in either row or column (spec §4.4).
func (d *domain) assembleStiffness() la.Mat {
	k := la.NewMat(d.nDOF, d.nDOF)
	for _, id := range d.beamIDs {
		el, ok := d.beams[id]
		if !ok {
			continue
		}
		scatterMat(k, el.DOFMap(), el.StiffnessGlobal())
	}
	for _, id := range d.plateIDs {
		el, ok := d.plates[id]
		if !ok {
			continue
		}
		scatterMat(k, el.DOFMap(), el.StiffnessGlobal())
	}
	la.Symmetrize(k)
	return k
}

func scatterMat(k la.Mat, dofMap []int, kl la.Mat) {
	for i, gi := range dofMap {
		if gi < 0 {
			continue
		}
		for j, gj := range dofMap {
			if gj < 0 {
				continue
			}
			k[gi][gj] += kl[i][j]
		}
	}
}
