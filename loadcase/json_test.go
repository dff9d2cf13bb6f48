package loadcase

import "testing"

func TestCaseRoundTripsThroughJSON(t *testing.T) {
	c := NewCase(Live)
	c.ID = 3
	c.AddPointLoad(NodeTarget(5), 1, -2, 0.5)
	end := 500.0
	c.AddDistributedLoad(7, -1000, &end, 0, 1, Global)
	c.AddThermalLoad(7, 20, 5)
	c.IncludeSelfWeight = true

	raw, err := c.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	got := &Case{}
	if err := got.UnmarshalJSON(raw); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}

	if got.ID != c.ID || got.Kind != c.Kind || got.IncludeSelfWeight != c.IncludeSelfWeight {
		t.Fatalf("scalar fields did not round-trip: got %+v, want %+v", got, c)
	}
	if len(got.PointLoads) != 1 || got.PointLoads[0].Fy != -2 {
		t.Fatalf("point loads did not round-trip: %+v", got.PointLoads)
	}
	if len(got.DistributedLoads) != 1 || got.DistributedLoads[0].QyEnd == nil || *got.DistributedLoads[0].QyEnd != 500 {
		t.Fatalf("distributed loads did not round-trip: %+v", got.DistributedLoads)
	}
	if got.DistributedLoads[0].Frame != Global {
		t.Errorf("frame did not round-trip, got %v", got.DistributedLoads[0].Frame)
	}
	if len(got.ThermalLoads) != 1 || got.ThermalLoads[0].DeltaT != 20 {
		t.Fatalf("thermal loads did not round-trip: %+v", got.ThermalLoads)
	}
}

func TestFileRoundTripsCasesAndCombinations(t *testing.T) {
	dead := NewCase(Dead)
	dead.ID = 1
	dead.AddPointLoad(NodeTarget(1), 0, -1000, 0)
	live := NewCase(Live)
	live.ID = 2
	live.AddPointLoad(NodeTarget(1), 0, -2000, 0)

	f := &File{
		Cases: []*Case{dead, live},
		Combinations: map[string]*Combination{
			"uls-1": NewCombination(ULS, map[LoadCaseID]float64{1: 1.35, 2: 1.5}),
		},
	}

	raw, err := f.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	got := &File{}
	if err := got.UnmarshalJSON(raw); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}

	if len(got.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(got.Cases))
	}
	combo, ok := got.Combinations["uls-1"]
	if !ok {
		t.Fatalf("expected combination %q to round-trip", "uls-1")
	}
	if combo.Factors[1] != 1.35 || combo.Factors[2] != 1.5 {
		t.Errorf("combination factors did not round-trip: %+v", combo.Factors)
	}
}
