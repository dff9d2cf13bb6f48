// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"

// updateContactStates recovers each tension/compression-only member's
// current axial force from the just-solved displacement field and flips
// its active flag if the sign is inconsistent with its mode (spec §4.5).
// Reports whether any member's state changed — the caller keeps iterating
// (rebuilding and re-solving) until a pass changes nothing.
func (d *domain) updateContactStates(m *mesh.Store, u []float64, kind mesh.AnalysisKind) (bool, error) {
	changed := false
	for id := range d.contactActive {
		b, ok := m.Beam(id)
		if !ok {
			continue
		}
		el := d.beams[id]
		forces := el.EndForcesLocal(u)
		n := forces[dofU2Index] // positive = tension

		mode := b.Ends.Start
		if !mode.IsContact() {
			mode = b.Ends.End
		}
		want := true
		switch mode {
		case mesh.TensionOnly:
			want = n >= 0
		case mesh.CompressionOnly:
			want = n <= 0
		}
		if want != d.contactActive[id] {
			d.contactActive[id] = want
			changed = true
		}
	}
	if !changed {
		return false, nil
	}
	for id := range d.contactActive {
		if err := d.rebuildBeam(m, id); err != nil {
			return false, err
		}
	}
	return true, nil
}

// dofU2Index mirrors package ele's local DOF order (u1,v1,θ1,u2,v2,θ2)
// without importing its unexported constants.
const dofU2Index = 3
