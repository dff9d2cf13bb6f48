// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"testing"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

func simpleIPE200() (catalog.Material, catalog.Section) {
	return catalog.DefaultMaterial, catalog.DefaultSections["IPE 200"]
}

func TestBeamStiffnessIsSymmetric(t *testing.T) {
	mat, sec := simpleIPE200()
	ends := mesh.EndConnection{Start: mesh.Fixed, End: mesh.Fixed}
	b, err := NewBeam(0, 0, 6, 0, mat, sec, ends, nil, []int{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewBeam: %v", err)
	}
	k := b.StiffnessGlobal()
	for i := range k {
		for j := range k[i] {
			if math.Abs(k[i][j]-k[j][i]) > 1e-6 {
				t.Fatalf("K not symmetric at (%d,%d): %v vs %v", i, j, k[i][j], k[j][i])
			}
		}
	}
}

func TestBeamHorizontalAxialStiffness(t *testing.T) {
	mat, sec := simpleIPE200()
	ends := mesh.EndConnection{Start: mesh.Fixed, End: mesh.Fixed}
	b, err := NewBeam(0, 0, 6, 0, mat, sec, ends, nil, []int{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewBeam: %v", err)
	}
	k := b.StiffnessGlobal()
	want := mat.E * sec.A / 6.0
	if math.Abs(k[0][0]-want) > want*1e-9 {
		t.Fatalf("axial stiffness K[0][0] = %v, want %v", k[0][0], want)
	}
}

func TestBeamHingeReleasesEndMoment(t *testing.T) {
	mat, sec := simpleIPE200()
	ends := mesh.EndConnection{Start: mesh.Fixed, End: mesh.Hinge}
	b, err := NewBeam(0, 0, 6, 0, mat, sec, ends, nil, []int{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewBeam: %v", err)
	}
	kl := b.LocalStiffness()
	// condensed end-2 rotation row/col must be exactly zero
	for j := 0; j < 6; j++ {
		if kl[dofT2][j] != 0 || kl[j][dofT2] != 0 {
			t.Fatalf("condensed moment DOF not zeroed at row/col %d: %v", j, kl[dofT2][j])
		}
	}
}

func TestBeamUniformLoadEquivalentForcesSumToTotal(t *testing.T) {
	mat, sec := simpleIPE200()
	ends := mesh.EndConnection{Start: mesh.Fixed, End: mesh.Fixed}
	L := 6.0
	q := -1000.0 // N/m, local downward
	load := &mesh.DistributedLoad{QyStart: q, QyEnd: q, T0: 0, T1: 1, Local: true}
	b, err := NewBeam(0, 0, L, 0, mat, sec, ends, load, []int{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewBeam: %v", err)
	}
	f := b.EquivalentLoadLocal()
	total := f[dofV1] + f[dofV2]
	want := q * L
	if math.Abs(total-want) > math.Abs(want)*1e-9 {
		t.Fatalf("equivalent shear forces sum = %v, want %v", total, want)
	}
}

func TestBeamEndForcesRecoverZeroDisplacementFixedEndMoments(t *testing.T) {
	mat, sec := simpleIPE200()
	ends := mesh.EndConnection{Start: mesh.Fixed, End: mesh.Fixed}
	L := 6.0
	q := -1000.0
	load := &mesh.DistributedLoad{QyStart: q, QyEnd: q, T0: 0, T1: 1, Local: true}
	b, err := NewBeam(0, 0, L, 0, mat, sec, ends, load, []int{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewBeam: %v", err)
	}
	u := make([]float64, 6)
	f := b.EndForcesLocal(u)
	want := -q * L * L / 12
	if math.Abs(f[dofT1]-want) > math.Abs(want)*1e-6 {
		t.Fatalf("fixed-end moment at node1 = %v, want %v", f[dofT1], want)
	}
}

func TestNewBeamRejectsHingeHingeWithZeroArea(t *testing.T) {
	mat := catalog.DefaultMaterial
	sec := catalog.DefaultSections["IPE 200"]
	sec.A = 0
	ends := mesh.EndConnection{Start: mesh.Hinge, End: mesh.Hinge}
	if _, err := NewBeam(0, 0, 6, 0, mat, sec, ends, nil, []int{0, 1, 2, 3, 4, 5}); err == nil {
		t.Fatal("expected IncompatibleReleases error for hinge/hinge beam with zero axial area")
	}
}

func TestNewBeamHingeHingeWithRealAreaIsStable(t *testing.T) {
	mat, sec := simpleIPE200()
	ends := mesh.EndConnection{Start: mesh.Hinge, End: mesh.Hinge}
	if _, err := NewBeam(0, 0, 6, 0, mat, sec, ends, nil, []int{0, 1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("hinge/hinge beam with real axial area should remain stable: %v", err)
	}
}

func TestNewBeamRejectsZeroLength(t *testing.T) {
	mat, sec := simpleIPE200()
	ends := mesh.EndConnection{}
	if _, err := NewBeam(0, 0, 0, 0, mat, sec, ends, nil, []int{0, 1, 2, 3, 4, 5}); err == nil {
		t.Fatal("expected error for zero-length beam")
	}
}
