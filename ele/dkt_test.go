// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"testing"
)

func TestPlateStiffnessIsSymmetric(t *testing.T) {
	p, err := NewPlate(0, 0, 1, 0, 0, 1, 210e9, 0.3, 0.01, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatalf("NewPlate: %v", err)
	}
	k := p.StiffnessGlobal()
	for i := range k {
		for j := range k[i] {
			if math.Abs(k[i][j]-k[j][i]) > 1e-6 {
				t.Fatalf("K not symmetric at (%d,%d): %v vs %v", i, j, k[i][j], k[j][i])
			}
		}
	}
}

func TestPlateStiffnessIsPositiveSemiDefiniteDiagonal(t *testing.T) {
	p, err := NewPlate(0, 0, 2, 0, 0, 2, 210e9, 0.3, 0.02, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatalf("NewPlate: %v", err)
	}
	k := p.StiffnessGlobal()
	for i := 0; i < 9; i++ {
		if k[i][i] <= 0 {
			t.Fatalf("expected positive diagonal stiffness at DOF %d, got %v", i, k[i][i])
		}
	}
}

func TestNewPlateRejectsCollinearNodes(t *testing.T) {
	if _, err := NewPlate(0, 0, 1, 0, 2, 0, 210e9, 0.3, 0.01, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}); err == nil {
		t.Fatal("expected error for collinear plate nodes")
	}
}

func TestPlateRigidBodyTranslationProducesZeroEnergy(t *testing.T) {
	p, err := NewPlate(0, 0, 1, 0, 0, 1, 210e9, 0.3, 0.01, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatalf("NewPlate: %v", err)
	}
	k := p.StiffnessGlobal()
	// uniform w=1 at all three nodes, zero rotations: rigid body translation
	q := []float64{1, 0, 0, 1, 0, 0, 1, 0, 0}
	var energy float64
	for i := 0; i < 9; i++ {
		var ki float64
		for j := 0; j < 9; j++ {
			ki += k[i][j] * q[j]
		}
		energy += q[i] * ki
	}
	if math.Abs(energy) > 1e-3 {
		t.Fatalf("rigid body translation should store no strain energy, got %v", energy)
	}
}
