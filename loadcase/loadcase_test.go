package loadcase

import "testing"

func TestAddPointLoadAppends(t *testing.T) {
	c := NewCase(Live)
	c.AddPointLoad(NodeTarget(3), 1, -2, 0)
	if len(c.PointLoads) != 1 {
		t.Fatalf("expected 1 point load, got %d", len(c.PointLoads))
	}
	if c.PointLoads[0].Fy != -2 {
		t.Errorf("Fy = %v, want -2", c.PointLoads[0].Fy)
	}
}

func TestAddDistributedLoadDefaultsUniform(t *testing.T) {
	c := NewCase(Dead)
	c.AddDistributedLoad(7, -10000, nil, 0, 1, Local)
	got := c.DistributedLoads[0]
	if got.QyEnd != nil {
		t.Errorf("expected QyEnd nil for uniform load")
	}
	if got.T0 != 0 || got.T1 != 1 {
		t.Errorf("expected full-range [0,1], got [%v,%v]", got.T0, got.T1)
	}
}

func TestBuildULSCombination610(t *testing.T) {
	combo := BuildULSCombination6_10(1, 2, CategoryB, nil)
	if combo.Kind != ULS {
		t.Errorf("Kind = %v, want ULS", combo.Kind)
	}
	if combo.Factors[1] != GammaGUnfavourable {
		t.Errorf("dead factor = %v, want %v", combo.Factors[1], GammaGUnfavourable)
	}
	if combo.Factors[2] != GammaQ {
		t.Errorf("leading variable factor = %v, want %v", combo.Factors[2], GammaQ)
	}
}

func TestNewCombinationCopiesMap(t *testing.T) {
	src := map[LoadCaseID]float64{1: 1.2}
	combo := NewCombination(ULS, src)
	src[1] = 99
	if combo.Factors[1] != 1.2 {
		t.Errorf("NewCombination should copy the factor map, got mutated value %v", combo.Factors[1])
	}
}
