package la

import (
	"math"
	"testing"
)

func TestInvert2x2(t *testing.T) {
	a := Mat{{4, 7}, {2, 6}}
	inv, ok := Invert(a)
	if !ok {
		t.Fatal("expected invertible matrix")
	}
	// a * inv should be identity
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var s float64
			for k := 0; k < 2; k++ {
				s += a[i][k] * inv[k][j]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(s-want) > 1e-9 {
				t.Errorf("(A*Ainv)[%d][%d] = %v, want %v", i, j, s, want)
			}
		}
	}
}

func TestInvertSingular(t *testing.T) {
	a := Mat{{1, 2}, {2, 4}}
	_, ok := Invert(a)
	if ok {
		t.Fatal("expected singular matrix to be detected")
	}
}

func TestCondenseNoOp(t *testing.T) {
	k := Mat{{2, 0}, {0, 3}}
	f := []float64{1, 1}
	kOut, fOut := Condense(k, f, []int{0, 1}, nil)
	for i := range k {
		for j := range k[i] {
			if kOut[i][j] != k[i][j] {
				t.Errorf("kOut[%d][%d] = %v, want %v", i, j, kOut[i][j], k[i][j])
			}
		}
	}
	if fOut[0] != 1 || fOut[1] != 1 {
		t.Errorf("fOut = %v, want unchanged", fOut)
	}
}

func TestCondenseReducesToScalar(t *testing.T) {
	// k = [[4,2],[2,3]], condense dof 1 -> k_cond[0][0] = 4 - 2*(1/3)*2 = 4 - 4/3
	k := Mat{{4, 2}, {2, 3}}
	kOut, _ := Condense(k, nil, []int{0}, []int{1})
	want := 4.0 - 2.0*(1.0/3.0)*2.0
	if math.Abs(kOut[0][0]-want) > 1e-9 {
		t.Errorf("kOut[0][0] = %v, want %v", kOut[0][0], want)
	}
	if kOut[1][0] != 0 || kOut[0][1] != 0 || kOut[1][1] != 0 {
		t.Errorf("condensed rows/cols should be zero, got %v", kOut)
	}
}

func TestDenseSolve(t *testing.T) {
	k := Mat{{4, 1}, {1, 3}}
	f := []float64{1, 2}
	x, _, singular := DenseSolve(k, f)
	if singular {
		t.Fatal("unexpected singular")
	}
	// verify K*x == f
	r0 := k[0][0]*x[0] + k[0][1]*x[1]
	r1 := k[1][0]*x[0] + k[1][1]*x[1]
	if math.Abs(r0-f[0]) > 1e-9 || math.Abs(r1-f[1]) > 1e-9 {
		t.Errorf("K*x = [%v %v], want %v", r0, r1, f)
	}
}

func TestDenseSolveDetectsMechanism(t *testing.T) {
	k := Mat{{1, 1}, {1, 1}}
	f := []float64{1, 1}
	_, rank, singular := DenseSolve(k, f)
	if !singular {
		t.Fatal("expected singular system to be detected")
	}
	if rank != 1 {
		t.Errorf("pivotRank = %d, want 1", rank)
	}
}
